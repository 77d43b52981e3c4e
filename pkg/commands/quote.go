package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"railroute/pkg/rail"
	routingsvc "railroute/pkg/service/routing"
)

var (
	quoteAmount       float64
	quoteUrgencyHours float64
	quoteAllowCrypto  bool
	quoteRisk         string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Simulate routing a transfer and print the recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := routingsvc.NewService(rail.NewCatalog(), slog.Default())

		input := routingsvc.SimulationInput{
			Amount:        quoteAmount,
			AllowCrypto:   &quoteAllowCrypto,
			RiskTolerance: quoteRisk,
		}
		if cmd.Flags().Changed("urgency-hours") {
			input.UrgencyHours = &quoteUrgencyHours
		}

		result, err := svc.Simulate(context.Background(), input)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen, color.Bold)

		green.Printf("Recommended: %s (%s)\n", result.SelectedRail.DisplayName, result.SelectedRail.ID)
		fmt.Printf("  total cost: %.2f %s, settles in ~%d min\n",
			result.SelectedRail.TotalCost,
			result.SelectedRail.TotalCostCurrency,
			result.SelectedRail.EstimatedSettlementMinutes,
		)
		fmt.Printf("  %s\n\n", result.SelectedRail.RiskNotes)

		bold.Println("Alternatives:")
		for _, alt := range result.Alternatives {
			marker := " "
			if !alt.MeetsUrgency {
				marker = "!"
			}
			fmt.Printf("  %s %-26s %10.2f AED  ~%d min\n",
				marker, alt.DisplayName, alt.TotalCost, alt.EstimatedSettlementMinutes)
		}

		fmt.Printf("\n%s\n", result.Assumptions)
		return nil
	},
}

func init() {
	quoteCmd.Flags().Float64Var(&quoteAmount, "amount", 0, "Transfer amount in AED (required)")
	quoteCmd.Flags().Float64Var(&quoteUrgencyHours, "urgency-hours", 0, "Maximum acceptable settlement time in hours")
	quoteCmd.Flags().BoolVar(&quoteAllowCrypto, "allow-crypto", true, "Consider the stablecoin rail")
	quoteCmd.Flags().StringVar(&quoteRisk, "risk", "medium", "Risk tolerance: low, medium or high")
	_ = quoteCmd.MarkFlagRequired("amount")
}

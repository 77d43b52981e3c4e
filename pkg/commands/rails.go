package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"railroute/pkg/rail"
)

var railsCmd = &cobra.Command{
	Use:   "rails",
	Short: "Print the settlement rail catalog",
	Run: func(cmd *cobra.Command, args []string) {
		header := color.New(color.Bold)
		header.Printf("%-26s %10s %9s %9s %10s\n",
			"RAIL", "BASE(AED)", "VAR(%)", "FX(%)", "SETTLE(m)")

		for _, d := range rail.NewCatalog().All() {
			fmt.Printf("%-26s %10.2f %9.2f %9.2f %10d\n",
				d.Kind, d.BaseFeeAED, d.VariableFeePct, d.FxSpreadPct, d.SettlementMinutes)
		}
	},
}

package routing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"railroute/pkg/domain"
	"railroute/pkg/quote"
	"railroute/pkg/rail"
)

const (
	defaultSourceCurrency      = "AED"
	defaultDestinationCurrency = "SAR"
)

// SimulationInput is the normalized simulate-payment request. Optional
// fields are pointers so absence can be told apart from zero values.
type SimulationInput struct {
	Amount              float64
	SourceCurrency      string
	DestinationCurrency string
	UrgencyHours        *float64
	AllowCrypto         *bool
	RiskTolerance       string
	Metadata            map[string]any
}

// SimulationResult is the full outcome of one routing simulation. It is
// ephemeral: nothing about a simulation is persisted.
type SimulationResult struct {
	PaymentID           string        `json:"paymentId"`
	Amount              float64       `json:"amount"`
	SourceCurrency      string        `json:"sourceCurrency"`
	DestinationCurrency string        `json:"destinationCurrency"`
	Summary             string        `json:"summary"`
	Assumptions         string        `json:"assumptions"`
	SelectedRail        quote.Quote   `json:"selectedRail"`
	Alternatives        []quote.Quote `json:"alternatives"`
}

// Service prices the rail catalog against simulate requests and picks a
// recommendation.
type Service struct {
	catalog *rail.Catalog
	logger  *slog.Logger
}

// NewService creates a routing service over the given catalog.
func NewService(catalog *rail.Catalog, logger *slog.Logger) *Service {
	return &Service{catalog: catalog, logger: logger}
}

// Rails returns the catalog contents for listing.
func (s *Service) Rails(ctx context.Context) []rail.Definition {
	return s.catalog.All()
}

// Simulate quotes every eligible rail for the request and selects the
// recommended one. Fails only on a non-positive amount; every other input
// is defensively defaulted.
func (s *Service) Simulate(ctx context.Context, in SimulationInput) (*SimulationResult, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	sourceCurrency := in.SourceCurrency
	if sourceCurrency == "" {
		sourceCurrency = defaultSourceCurrency
	}
	destinationCurrency := in.DestinationCurrency
	if destinationCurrency == "" {
		destinationCurrency = defaultDestinationCurrency
	}
	allowCrypto := true
	if in.AllowCrypto != nil {
		allowCrypto = *in.AllowCrypto
	}

	req := quote.Request{
		Amount:        in.Amount,
		UrgencyHours:  in.UrgencyHours,
		AllowCrypto:   allowCrypto,
		RiskTolerance: quote.ParseTolerance(in.RiskTolerance),
	}

	quotes := quote.ComputeAll(s.catalog.Available(allowCrypto), req)
	selected, alternatives, err := quote.SelectRecommendation(quotes)
	if err != nil {
		return nil, err
	}

	result := &SimulationResult{
		PaymentID:           "pay_" + uuid.NewString(),
		Amount:              in.Amount,
		SourceCurrency:      sourceCurrency,
		DestinationCurrency: destinationCurrency,
		Summary:             summary(selected, in.Amount, sourceCurrency, destinationCurrency),
		Assumptions:         assumptions(),
		SelectedRail:        selected,
		Alternatives:        alternatives,
	}

	s.logger.Info("payment simulation completed",
		"payment_id", result.PaymentID,
		"amount", in.Amount,
		"selected_rail", selected.ID,
		"total_cost", selected.TotalCost,
	)
	return result, nil
}

func summary(selected quote.Quote, amount float64, source, destination string) string {
	return fmt.Sprintf(
		"Recommended %s for a %.2f %s -> %s transfer: total cost %.2f AED, settlement in ~%d minutes.",
		selected.DisplayName, amount, source, destination,
		selected.TotalCost, selected.EstimatedSettlementMinutes,
	)
}

func assumptions() string {
	return "Fees are computed on an AED-denominated amount; no currency conversion is applied. " +
		"Quotes are indicative and for demonstration only; no funds are moved."
}

package routing

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railroute/pkg/domain"
	"railroute/pkg/rail"
)

func newTestService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(rail.NewCatalog(), logger)
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestSimulateDefaults(t *testing.T) {
	svc := newTestService()

	result, err := svc.Simulate(context.Background(), SimulationInput{Amount: 10000})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.PaymentID, "pay_"))
	assert.Equal(t, 10000.0, result.Amount)
	assert.Equal(t, "AED", result.SourceCurrency)
	assert.Equal(t, "SAR", result.DestinationCurrency)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Assumptions)

	// Crypto allowed by default, so all four rails are quoted.
	assert.Len(t, result.Alternatives, 3)
}

func TestSimulateInvalidAmount(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name   string
		amount float64
	}{
		{name: "zero", amount: 0},
		{name: "negative", amount: -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Simulate(context.Background(), SimulationInput{Amount: tt.amount})
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestSimulateExcludesCryptoRail(t *testing.T) {
	svc := newTestService()

	result, err := svc.Simulate(context.Background(), SimulationInput{
		Amount:      10000,
		AllowCrypto: boolPtr(false),
	})
	require.NoError(t, err)

	assert.NotEqual(t, rail.StablecoinPartner, result.SelectedRail.ID)
	for _, alt := range result.Alternatives {
		assert.NotEqual(t, rail.StablecoinPartner, alt.ID)
	}
	assert.Len(t, result.Alternatives, 2)
}

func TestSimulateUrgencyScenario(t *testing.T) {
	svc := newTestService()

	result, err := svc.Simulate(context.Background(), SimulationInput{
		Amount:       10000,
		UrgencyHours: floatPtr(1),
	})
	require.NoError(t, err)

	// swift_wire cannot settle within the hour; the pick is the cheapest
	// of the remaining three.
	assert.Equal(t, rail.StablecoinPartner, result.SelectedRail.ID)
	assert.True(t, result.SelectedRail.MeetsUrgency)
}

func TestSimulateLowRiskToleranceFlagsStablecoin(t *testing.T) {
	svc := newTestService()

	result, err := svc.Simulate(context.Background(), SimulationInput{
		Amount:        10000,
		RiskTolerance: "low",
	})
	require.NoError(t, err)

	quotes := append(result.Alternatives, result.SelectedRail)
	for _, q := range quotes {
		if q.ID == rail.StablecoinPartner {
			assert.False(t, q.SuitsRiskTolerance)
		} else {
			assert.True(t, q.SuitsRiskTolerance, "rail %s", q.ID)
		}
	}
}

func TestRails(t *testing.T) {
	svc := newTestService()

	defs := svc.Rails(context.Background())
	assert.Len(t, defs, 4)
}

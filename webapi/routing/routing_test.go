package routing_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railroute/app"
	"railroute/pkg/config"
	"railroute/pkg/ledger"
	"railroute/pkg/rail"
	routingsvc "railroute/pkg/service/routing"
)

func newTestApp() *fiber.App {
	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "127.0.0.1", Port: 8080},
		Log:       &config.Log{},
		Auth:      &config.Auth{Header: "X-API-Key"},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Cors:      &config.Cors{Origins: "*"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.New(app.Deps{
		Config:  cfg,
		Logger:  logger,
		Catalog: rail.NewCatalog(),
		Ledger:  ledger.New(),
	})
}

func postJSON(t *testing.T, fiberApp *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSimulatePayment(t *testing.T) {
	fiberApp := newTestApp()

	resp := postJSON(t, fiberApp, "/simulate-payment",
		`{"amount": 10000, "urgencyHours": 1, "allowCrypto": true, "riskTolerance": "medium"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result routingsvc.SimulationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.NotEmpty(t, result.PaymentID)
	assert.Equal(t, 10000.0, result.Amount)
	assert.Equal(t, "AED", result.SourceCurrency)
	assert.Equal(t, "SAR", result.DestinationCurrency)
	assert.Equal(t, rail.StablecoinPartner, result.SelectedRail.ID)
	assert.Len(t, result.Alternatives, 3)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Assumptions)
}

func TestSimulatePaymentDefaults(t *testing.T) {
	fiberApp := newTestApp()

	resp := postJSON(t, fiberApp, "/simulate-payment", `{"amount": 100}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result routingsvc.SimulationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "AED", result.SourceCurrency)
	assert.Equal(t, "SAR", result.DestinationCurrency)

	// At amount 100 the swift wire quote must price at exactly 151.10.
	for _, q := range append(result.Alternatives, result.SelectedRail) {
		if q.ID == rail.SwiftWire {
			assert.InDelta(t, 151.10, q.TotalCost, 0.001)
		}
	}
}

func TestSimulatePaymentInvalidAmount(t *testing.T) {
	fiberApp := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "negative amount", body: `{"amount": -5}`},
		{name: "zero amount", body: `{"amount": 0}`},
		{name: "missing amount", body: `{}`},
		{name: "non-numeric amount", body: `{"amount": "lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, fiberApp, "/simulate-payment", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSimulatePaymentUnrecognizedRiskToleranceDefaultsToMedium(t *testing.T) {
	fiberApp := newTestApp()

	resp := postJSON(t, fiberApp, "/simulate-payment",
		`{"amount": 10000, "riskTolerance": "extreme"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result routingsvc.SimulationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	// Medium behavior: every rail suits, including the stablecoin rail.
	for _, q := range append(result.Alternatives, result.SelectedRail) {
		assert.True(t, q.SuitsRiskTolerance, "rail %s", q.ID)
	}
}

func TestSimulatePaymentNegativeUrgencyFallsBack(t *testing.T) {
	fiberApp := newTestApp()

	resp := postJSON(t, fiberApp, "/simulate-payment",
		`{"amount": 10000, "urgencyHours": -1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result routingsvc.SimulationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	// A negative deadline is a well-defined number no rail can meet, so
	// selection falls back to the cheapest rail overall.
	assert.Equal(t, rail.StablecoinPartner, result.SelectedRail.ID)
	for _, q := range append(result.Alternatives, result.SelectedRail) {
		assert.False(t, q.MeetsUrgency, "rail %s", q.ID)
	}
}

func TestSimulatePaymentExcludesCrypto(t *testing.T) {
	fiberApp := newTestApp()

	resp := postJSON(t, fiberApp, "/simulate-payment", `{"amount": 10000, "allowCrypto": false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result routingsvc.SimulationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.NotEqual(t, rail.StablecoinPartner, result.SelectedRail.ID)
	for _, alt := range result.Alternatives {
		assert.NotEqual(t, rail.StablecoinPartner, alt.ID)
	}
}

func TestListRails(t *testing.T) {
	fiberApp := newTestApp()

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/rails", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rails []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rails))
	assert.Len(t, rails, 4)
}

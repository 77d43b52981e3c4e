package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"railroute/pkg/rail"
)

// Tolerance is the caller's appetite for settlement risk. Only low has an
// effect: it flags crypto rails as unsuitable without excluding them.
type Tolerance string

const (
	ToleranceLow    Tolerance = "low"
	ToleranceMedium Tolerance = "medium"
	ToleranceHigh   Tolerance = "high"
)

// ParseTolerance maps a raw string to a Tolerance, defaulting to medium.
func ParseTolerance(s string) Tolerance {
	switch Tolerance(s) {
	case ToleranceLow, ToleranceMedium, ToleranceHigh:
		return Tolerance(s)
	default:
		return ToleranceMedium
	}
}

// Request is the per-simulation context a quote is computed against.
// Amount is treated as AED-denominated for fee math regardless of the
// stated source currency. A nil UrgencyHours means no deadline.
type Request struct {
	Amount        float64
	UrgencyHours  *float64
	AllowCrypto   bool
	RiskTolerance Tolerance
}

// FeesBreakdown itemizes a quote's cost, each figure rounded to 2 decimals.
type FeesBreakdown struct {
	BaseFeeAED     float64 `json:"baseFeeAED"`
	VariableFeeAED float64 `json:"variableFeeAED"`
	FxSpreadAED    float64 `json:"fxSpreadAED"`
}

// Quote is the computed cost/time/risk profile of routing an amount over
// one rail. Immutable once computed.
type Quote struct {
	ID                         rail.Kind     `json:"id"`
	DisplayName                string        `json:"displayName"`
	TotalCost                  float64       `json:"totalCost"`
	TotalCostCurrency          string        `json:"totalCostCurrency"`
	EstimatedSettlementMinutes int           `json:"estimatedSettlementMinutes"`
	MeetsUrgency               bool          `json:"meetsUrgency"`
	SuitsRiskTolerance         bool          `json:"suitsRiskTolerance"`
	FeesBreakdown              FeesBreakdown `json:"feesBreakdown"`
	Steps                      []string      `json:"steps"`
	RiskNotes                  string        `json:"riskNotes"`
}

// Compute prices a single rail for the given request. Pure and total:
// inputs are pre-validated by the caller and no failure path exists.
//
// The total is computed from the unrounded components and each displayed
// figure is rounded independently, so the total may differ from the sum
// of the displayed breakdown fields by up to 0.02.
func Compute(def rail.Definition, req Request) Quote {
	amount := decimal.NewFromFloat(req.Amount)
	hundred := decimal.NewFromInt(100)

	base := decimal.NewFromFloat(def.BaseFeeAED)
	variable := amount.Mul(decimal.NewFromFloat(def.VariableFeePct)).Div(hundred)
	fxSpread := amount.Mul(decimal.NewFromFloat(def.FxSpreadPct)).Div(hundred)
	total := base.Add(variable).Add(fxSpread)

	meetsUrgency := true
	if req.UrgencyHours != nil {
		meetsUrgency = float64(def.SettlementMinutes) <= *req.UrgencyHours*60
	}

	suitsRisk := !(req.RiskTolerance == ToleranceLow && def.Crypto)

	return Quote{
		ID:                         def.Kind,
		DisplayName:                def.DisplayName,
		TotalCost:                  round2(total),
		TotalCostCurrency:          "AED",
		EstimatedSettlementMinutes: def.SettlementMinutes,
		MeetsUrgency:               meetsUrgency,
		SuitsRiskTolerance:         suitsRisk,
		FeesBreakdown: FeesBreakdown{
			BaseFeeAED:     round2(base),
			VariableFeeAED: round2(variable),
			FxSpreadAED:    round2(fxSpread),
		},
		Steps:     steps(def.DisplayName),
		RiskNotes: def.RiskNotes,
	}
}

// ComputeAll prices every given rail in order.
func ComputeAll(defs []rail.Definition, req Request) []Quote {
	quotes := make([]Quote, 0, len(defs))
	for _, def := range defs {
		quotes = append(quotes, Compute(def, req))
	}
	return quotes
}

func steps(displayName string) []string {
	return []string{
		fmt.Sprintf("Initiate transfer instruction via %s", displayName),
		fmt.Sprintf("%s processes and settles the payment", displayName),
		"Beneficiary account is credited and confirmation is returned",
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

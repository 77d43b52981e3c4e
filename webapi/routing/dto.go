package routing

// SimulatePaymentRequest is the body of POST /simulate-payment. Amount is
// the only field that can fail validation; everything else is defensively
// defaulted downstream rather than rejected (an unrecognized riskTolerance
// falls back to medium, a negative urgencyHours simply rules every rail out).
type SimulatePaymentRequest struct {
	Amount              float64        `json:"amount" validate:"required,gt=0"`
	SourceCurrency      string         `json:"sourceCurrency"`
	DestinationCurrency string         `json:"destinationCurrency"`
	UrgencyHours        *float64       `json:"urgencyHours"`
	AllowCrypto         *bool          `json:"allowCrypto"`
	RiskTolerance       string         `json:"riskTolerance"`
	Metadata            map[string]any `json:"metadata"`
}

// RailDTO is one catalog entry as returned by GET /rails.
type RailDTO struct {
	ID                string  `json:"id"`
	DisplayName       string  `json:"displayName"`
	BaseFeeAED        float64 `json:"baseFeeAED"`
	VariableFeePct    float64 `json:"variableFeePct"`
	FxSpreadPct       float64 `json:"fxSpreadPct"`
	SettlementMinutes int     `json:"settlementMinutes"`
	Crypto            bool    `json:"crypto"`
	RiskNotes         string  `json:"riskNotes"`
}

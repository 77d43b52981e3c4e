package execution

// ExecutePaymentRequest is the body of POST /execute-payment. Payment
// entries are opaque beyond externalInvoiceId and are echoed back on the
// execution record.
type ExecutePaymentRequest struct {
	RunID        string           `json:"runId"`
	SimulateOnly bool             `json:"simulateOnly"`
	Payments     []map[string]any `json:"payments" validate:"required,min=1"`
}

package execution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"railroute/pkg/domain"
	"railroute/pkg/ledger"
)

// Input is the normalized execute-payment request. Payments entries are
// passed through as-is and echoed on the record; only externalInvoiceId
// is interpreted.
type Input struct {
	RunID        string
	SimulateOnly bool
	Payments     []map[string]any
}

// Service performs mock executions against the ledger. No external
// transfer is ever initiated; records complete synchronously on creation.
type Service struct {
	ledger *ledger.Ledger
	logger *slog.Logger
}

// NewService creates an execution service over the given ledger.
func NewService(l *ledger.Ledger, logger *slog.Logger) *Service {
	return &Service{ledger: l, logger: logger}
}

// Execute validates the request, builds a completed execution record and
// stores it. The record is immutable afterward; subsequent Status calls
// return it unchanged.
func (s *Service) Execute(ctx context.Context, in Input) (*ledger.ExecutionRecord, error) {
	if len(in.Payments) == 0 {
		return nil, domain.ErrEmptyPayments
	}

	now := time.Now().UTC()
	rec := ledger.ExecutionRecord{
		ExecutionID:    "exec_" + uuid.NewString(),
		RunID:          in.RunID,
		Status:         ledger.StatusCompleted,
		Summary:        summary(len(in.Payments), in.SimulateOnly),
		CreatedAt:      now,
		CompletedAt:    now,
		SimulateOnly:   in.SimulateOnly,
		Payments:       in.Payments,
		PaymentsStatus: paymentsStatus(in.Payments, in.SimulateOnly),
	}
	s.ledger.Record(rec)

	s.logger.Info("execution recorded",
		"execution_id", rec.ExecutionID,
		"payments", len(in.Payments),
		"simulate_only", in.SimulateOnly,
	)
	return &rec, nil
}

// Status returns the stored record for an execution id.
func (s *Service) Status(ctx context.Context, executionID string) (*ledger.ExecutionRecord, error) {
	rec, ok := s.ledger.Lookup(executionID)
	if !ok {
		return nil, domain.ErrExecutionNotFound
	}
	return &rec, nil
}

func summary(count int, simulateOnly bool) string {
	mode := "live"
	if simulateOnly {
		mode = "simulate-only"
	}
	return fmt.Sprintf("Processed %d payment(s) in %s mode", count, mode)
}

func paymentsStatus(payments []map[string]any, simulateOnly bool) []ledger.PaymentStatus {
	message := "Mock execution completed; no external transfer was initiated."
	if simulateOnly {
		message = "Simulated only; no funds were moved."
	}

	statuses := make([]ledger.PaymentStatus, 0, len(payments))
	for _, p := range payments {
		var invoiceID *string
		if raw, ok := p["externalInvoiceId"]; ok {
			if id, ok := raw.(string); ok {
				invoiceID = &id
			}
		}
		statuses = append(statuses, ledger.PaymentStatus{
			ExternalInvoiceID: invoiceID,
			Status:            string(ledger.StatusCompleted),
			Message:           message,
		})
	}
	return statuses
}

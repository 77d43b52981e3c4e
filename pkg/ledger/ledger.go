package ledger

import (
	"sync"
	"time"
)

// ExecutionStatus is the lifecycle state of an execution record. Execution
// completes synchronously on creation, so completed is the only reachable
// state today; the type exists so an asynchronous pipeline can widen it
// without touching callers.
type ExecutionStatus string

const StatusCompleted ExecutionStatus = "completed"

// PaymentStatus is the per-input-payment outcome of an execution.
// ExternalInvoiceID passes through from the request, nil when absent.
type PaymentStatus struct {
	ExternalInvoiceID *string `json:"externalInvoiceId"`
	Status            string  `json:"status"`
	Message           string  `json:"message"`
}

// ExecutionRecord is written once at creation and never updated. CreatedAt
// and CompletedAt are equal because completion is synchronous.
type ExecutionRecord struct {
	ExecutionID    string           `json:"executionId"`
	RunID          string           `json:"runId,omitempty"`
	Status         ExecutionStatus  `json:"status"`
	Summary        string           `json:"summary"`
	CreatedAt      time.Time        `json:"createdAt"`
	CompletedAt    time.Time        `json:"completedAt"`
	SimulateOnly   bool             `json:"simulateOnly"`
	Payments       []map[string]any `json:"payments"`
	PaymentsStatus []PaymentStatus  `json:"paymentsStatus"`
}

// Ledger is a process-lifetime store of execution records. Entries are
// immutable after Record and are never evicted. The mutex makes the map
// safe under Fiber's concurrent request handling.
type Ledger struct {
	mu      sync.RWMutex
	records map[string]ExecutionRecord
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{records: make(map[string]ExecutionRecord)}
}

// Record stores a record under its execution id. Ids are freshly generated
// per execution, so overwrite semantics never come into play.
func (l *Ledger) Record(rec ExecutionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[rec.ExecutionID] = rec
}

// Lookup returns the record for an execution id, if present.
func (l *Ledger) Lookup(executionID string) (ExecutionRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[executionID]
	return rec, ok
}

// Count returns the number of stored records.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

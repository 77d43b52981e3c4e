package domain

import "errors"

// Domain errors surfaced across services and mapped to HTTP status codes at the edge.
var (
	// ErrInvalidAmount is returned when a simulation amount is missing or not positive
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrEmptyPayments is returned when an execution request carries no payments
	ErrEmptyPayments = errors.New("payments must be a non-empty array")
	// ErrExecutionNotFound is returned when a status lookup misses the ledger
	ErrExecutionNotFound = errors.New("execution not found")
	// ErrNoQuotes is returned when a recommendation is requested over zero quotes
	ErrNoQuotes = errors.New("no quotes to select from")
	// ErrUnknownRail is returned when a rail kind is not in the catalog
	ErrUnknownRail = errors.New("unknown rail")
)

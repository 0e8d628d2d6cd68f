package service

import (
	"context"
)

// Ledger event kinds published after successful writes.
const (
	EventAttendanceRecorded    = "attendance_recorded"
	EventExpenseRecorded       = "expense_recorded"
	EventClientPaymentReceived = "client_payment_received"
	EventWorkerPaymentMade     = "worker_payment_made"
)

// LedgerEvent represents a ledger write to be fanned out asynchronously,
// e.g. to sync listeners or reporting pipelines.
type LedgerEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Kind        string `json:"kind"`
	SiteID      string `json:"site_id,omitempty"`
	WorkerID    string `json:"worker_id,omitempty"`
	Day         string `json:"day,omitempty"`
	AmountPaise int64  `json:"amount_paise,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger event for async processing
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

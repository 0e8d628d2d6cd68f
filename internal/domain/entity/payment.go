package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMode is how money changed hands.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "CASH"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeBank PaymentMode = "BANK"
)

// IsValid checks if the PaymentMode is a known value.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeBank:
		return true
	default:
		return false
	}
}

// PaymentDirection distinguishes the two ledgers in the unified feed.
type PaymentDirection string

const (
	// PaymentDirectionReceived is money in from a client, tied to a site.
	PaymentDirectionReceived PaymentDirection = "RECEIVED"
	// PaymentDirectionPaid is money out to a worker, tied to a worker.
	PaymentDirectionPaid PaymentDirection = "PAID"
)

// ClientPayment is money received from a client for a site. Append-only.
type ClientPayment struct {
	ID        uuid.UUID
	SiteID    uuid.UUID
	Amount    Money // Strictly positive.
	Mode      PaymentMode
	Note      string
	Day       Day
	CreatedAt time.Time
}

// WorkerPayment is money paid out to a worker. Append-only. It reduces the
// worker's balance; it carries no site reference.
type WorkerPayment struct {
	ID        uuid.UUID
	WorkerID  uuid.UUID
	Amount    Money // Strictly positive.
	Mode      PaymentMode
	Note      string
	Day       Day
	CreatedAt time.Time
}

// PaymentRecord is one row of the unified payment feed. Exactly one of
// SiteID or WorkerID is set, according to Direction.
type PaymentRecord struct {
	ID            uuid.UUID        `json:"id"`
	Direction     PaymentDirection `json:"direction"`
	SiteID        *uuid.UUID       `json:"siteId,omitempty"`
	WorkerID      *uuid.UUID       `json:"workerId,omitempty"`
	Counterparty  string           `json:"counterpartyName"`
	Amount        Money            `json:"amount"`
	Mode          PaymentMode      `json:"mode"`
	Note          string           `json:"note,omitempty"`
	Day           Day              `json:"day"`
	CreatedAt     time.Time        `json:"createdAt"`
}

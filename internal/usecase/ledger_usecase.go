package usecase

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// MarkAttendanceInput records one worker on one day. Marking the same worker
// and day again replaces the earlier record, site included.
type MarkAttendanceInput struct {
	WorkerID  uuid.UUID
	SiteID    uuid.UUID
	Day       entity.Day
	IsPresent bool
}

// RecordExpenseInput appends a material purchase to a site's ledger.
type RecordExpenseInput struct {
	SiteID   uuid.UUID
	Name     string
	Quantity string
	Cost     entity.Money
	Day      entity.Day
}

// RecordClientPaymentInput appends money received from a client for a site.
type RecordClientPaymentInput struct {
	SiteID uuid.UUID
	Amount entity.Money
	Mode   entity.PaymentMode
	Note   string
	Day    entity.Day
}

// RecordWorkerPaymentInput appends a wage payout to a worker.
type RecordWorkerPaymentInput struct {
	WorkerID uuid.UUID
	Amount   entity.Money
	Mode     entity.PaymentMode
	Note     string
	Day      entity.Day
}

// LedgerUsecase defines the write side of the ledger plus its raw listings.
// All mutations are contractor only.
type LedgerUsecase interface {
	// MarkAttendance upserts the attendance record keyed on (worker, day),
	// snapshotting the worker's current daily wage.
	MarkAttendance(ctx context.Context, actor entity.Actor, input *MarkAttendanceInput) (*entity.AttendanceRecord, error)

	// ListSiteAttendance lists the records booked at a site on a day.
	ListSiteAttendance(ctx context.Context, actor entity.Actor, siteID uuid.UUID, day entity.Day) ([]*entity.AttendanceRecord, error)

	// RecordExpense appends a material expense to a site.
	RecordExpense(ctx context.Context, actor entity.Actor, input *RecordExpenseInput) (*entity.MaterialExpense, error)

	// ListSiteExpenses lists a site's expenses, newest day first.
	ListSiteExpenses(ctx context.Context, actor entity.Actor, siteID uuid.UUID) ([]*entity.MaterialExpense, error)

	// RecordClientPayment appends money in from a client.
	RecordClientPayment(ctx context.Context, actor entity.Actor, input *RecordClientPaymentInput) (*entity.ClientPayment, error)

	// RecordWorkerPayment appends money out to a worker.
	RecordWorkerPayment(ctx context.Context, actor entity.Actor, input *RecordWorkerPaymentInput) (*entity.WorkerPayment, error)

	// ListPayments lists the unified feed of both ledgers, newest first.
	ListPayments(ctx context.Context, actor entity.Actor, limit int) ([]*entity.PaymentRecord, error)

	// ListSitePayments lists money received for one site, newest day first.
	ListSitePayments(ctx context.Context, actor entity.Actor, siteID uuid.UUID) ([]*entity.ClientPayment, error)

	// ListWorkerPayments lists payouts to one worker, newest day first.
	// Contractors can read any worker; a worker only their own.
	ListWorkerPayments(ctx context.Context, actor entity.Actor, workerID uuid.UUID) ([]*entity.WorkerPayment, error)
}

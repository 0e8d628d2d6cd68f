package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository defines persistence for both payment ledgers. Payments
// are append-only; there are no update or delete operations.
type PaymentRepository interface {
	// CreateClientPayment persists money received from a client for a site.
	CreateClientPayment(ctx context.Context, payment *entity.ClientPayment) error

	// CreateWorkerPayment persists money paid out to a worker.
	CreateWorkerPayment(ctx context.Context, payment *entity.WorkerPayment) error

	// FindClientPaymentsBySite retrieves a site's incoming payments, newest day first.
	FindClientPaymentsBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.ClientPayment, error)

	// FindWorkerPaymentsByWorker retrieves payouts to one worker, newest day first.
	FindWorkerPaymentsByWorker(ctx context.Context, workerID uuid.UUID) ([]*entity.WorkerPayment, error)

	// FindAll retrieves the unified feed of both ledgers, newest first, with
	// counterparty names resolved.
	FindAll(ctx context.Context, limit int) ([]*entity.PaymentRecord, error)

	// SumClientPaymentsBySite totals money received for one site.
	SumClientPaymentsBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error)

	// SumClientPayments totals money received across all sites.
	SumClientPayments(ctx context.Context) (entity.Money, error)

	// SumWorkerPaymentsByWorker totals payouts to one worker.
	SumWorkerPaymentsByWorker(ctx context.Context, workerID uuid.UUID) (entity.Money, error)

	// SumWorkerPayments totals payouts across all workers.
	SumWorkerPayments(ctx context.Context) (entity.Money, error)
}

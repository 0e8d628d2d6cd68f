package usecase

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkerInput defines the data required to put a worker on the roll.
type CreateWorkerInput struct {
	Name      string
	Role      entity.WorkerRole
	DailyWage entity.Money
	Mobile    string
	Email     string
}

// UpdateWorkerWageInput changes a worker's daily rate going forward.
type UpdateWorkerWageInput struct {
	WorkerID  uuid.UUID
	DailyWage entity.Money
}

// WorkerUsecase defines the contractor-facing worker roll operations.
type WorkerUsecase interface {
	// CreateWorker adds a worker to the roll. Contractor only.
	CreateWorker(ctx context.Context, actor entity.Actor, input *CreateWorkerInput) (*entity.Worker, error)

	// UpdateWorkerWage sets a new daily rate. Existing attendance records
	// keep their wage snapshots. Contractor only.
	UpdateWorkerWage(ctx context.Context, actor entity.Actor, input *UpdateWorkerWageInput) (*entity.Worker, error)

	// GetWorker retrieves one worker.
	GetWorker(ctx context.Context, actor entity.Actor, workerID uuid.UUID) (*entity.Worker, error)

	// ListWorkers retrieves the whole roll, newest first. Contractor only.
	ListWorkers(ctx context.Context, actor entity.Actor) ([]*entity.Worker, error)

	// GetWorkerBalance derives a worker's settlement position. Contractors
	// can read any worker; a worker can read only their own.
	GetWorkerBalance(ctx context.Context, actor entity.Actor, workerID uuid.UUID) (*entity.WorkerBalance, error)
}

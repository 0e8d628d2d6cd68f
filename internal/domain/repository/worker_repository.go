package repository

import (
	"context"
	"errors"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorkerNotFound is returned when a worker does not exist in storage.
var ErrWorkerNotFound = errors.New("worker not found")

// WorkerRepository defines the standard operations for worker persistence.
type WorkerRepository interface {
	// FindByID retrieves a single worker by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)

	// FindAll retrieves every worker on the roll, newest first.
	FindAll(ctx context.Context) ([]*entity.Worker, error)

	// Create persists a new worker.
	Create(ctx context.Context, worker *entity.Worker) error

	// Update modifies an existing worker. Wage changes affect future
	// attendance only; existing records keep their snapshots.
	Update(ctx context.Context, worker *entity.Worker) error
}

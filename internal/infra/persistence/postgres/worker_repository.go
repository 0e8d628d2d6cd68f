package postgres

import (
	"context"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workerRepository implements the repository.WorkerRepository interface.
type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository is the constructor for workerRepository.
func NewWorkerRepository(db *gorm.DB) repository.WorkerRepository {
	return &workerRepository{
		db: db,
	}
}

// FindByID retrieves a single worker by their unique ID.
func (repo *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var workerM model.WorkerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker by ID")
	}

	return toWorkerDomain(&workerM), nil
}

// FindAll retrieves every worker on the roll, newest first.
func (repo *workerRepository) FindAll(ctx context.Context) ([]*entity.Worker, error) {
	var workerModels []*model.WorkerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&workerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find workers")
	}

	workers := make([]*entity.Worker, 0, len(workerModels))
	for _, m := range workerModels {
		workers = append(workers, toWorkerDomain(m))
	}

	return workers, nil
}

// Create persists a new worker.
func (repo *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	workerM := fromWorkerDomain(worker)

	if err := repo.db.WithContext(ctx).Create(workerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required worker information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create worker")
	}

	worker.CreatedAt = workerM.CreatedAt
	worker.UpdatedAt = workerM.UpdatedAt

	return nil
}

// Update modifies an existing worker.
func (repo *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	if err := repo.db.WithContext(ctx).Save(fromWorkerDomain(worker)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update worker")
	}

	return nil
}

// --- Mapper Functions ---

func toWorkerDomain(data *model.WorkerModel) *entity.Worker {
	if data == nil {
		return nil
	}

	return &entity.Worker{
		ID:        data.ID,
		Name:      data.Name,
		Role:      entity.WorkerRole(data.Role),
		DailyWage: entity.Money(data.DailyWage),
		Mobile:    data.Mobile,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWorkerDomain(data *entity.Worker) *model.WorkerModel {
	if data == nil {
		return nil
	}

	return &model.WorkerModel{
		ID:        data.ID,
		Name:      data.Name,
		Role:      string(data.Role),
		DailyWage: data.DailyWage.Paise(),
		Mobile:    data.Mobile,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

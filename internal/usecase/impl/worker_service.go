package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sitekhata/internal/delivery/context"
	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workerService implements the WorkerUsecase interface.
type workerService struct {
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	paymentRepo    repository.PaymentRepository
	logger         *slog.Logger
}

// WorkerServiceParams holds dependencies for WorkerService, injected by Fx.
type WorkerServiceParams struct {
	fx.In

	WorkerRepo     repository.WorkerRepository
	AttendanceRepo repository.AttendanceRepository
	PaymentRepo    repository.PaymentRepository
	Logger         *slog.Logger
}

// NewWorkerService is the constructor for workerService.
func NewWorkerService(params WorkerServiceParams) usecase.WorkerUsecase {
	return &workerService{
		workerRepo:     params.WorkerRepo,
		attendanceRepo: params.AttendanceRepo,
		paymentRepo:    params.PaymentRepo,
		logger:         params.Logger,
	}
}

func (s *workerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateWorker puts a worker on the roll.
func (s *workerService) CreateWorker(ctx context.Context, actor entity.Actor, input *usecase.CreateWorkerInput) (*entity.Worker, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if input.Name == "" || input.Mobile == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and mobile are required")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidWorkerRole
	}
	if input.DailyWage.IsNegative() {
		return nil, domainerrors.ErrNegativeWage
	}

	now := time.Now()
	worker := &entity.Worker{
		ID:        uuid.New(),
		Name:      input.Name,
		Role:      input.Role,
		DailyWage: input.DailyWage,
		Mobile:    input.Mobile,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, errors.Wrap(err, "failed to create worker")
	}

	s.log(ctx).Info("Worker created", slog.Any("workerID", worker.ID), slog.String("role", string(worker.Role)))

	return worker, nil
}

// UpdateWorkerWage sets a new daily rate going forward. Attendance already
// recorded keeps its wage snapshots untouched.
func (s *workerService) UpdateWorkerWage(ctx context.Context, actor entity.Actor, input *usecase.UpdateWorkerWageInput) (*entity.Worker, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if input.DailyWage.IsNegative() {
		return nil, domainerrors.ErrNegativeWage
	}

	worker, err := s.workerRepo.FindByID(ctx, input.WorkerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, domainerrors.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	worker.DailyWage = input.DailyWage
	worker.UpdatedAt = time.Now()

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, errors.Wrap(err, "failed to update worker wage")
	}

	s.log(ctx).Info("Worker wage updated", slog.Any("workerID", worker.ID), slog.String("dailyWage", worker.DailyWage.String()))

	return worker, nil
}

// GetWorker retrieves one worker.
func (s *workerService) GetWorker(ctx context.Context, actor entity.Actor, workerID uuid.UUID) (*entity.Worker, error) {
	if err := requireSelfOrContractor(actor, workerID); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, domainerrors.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	return worker, nil
}

// ListWorkers retrieves the whole roll.
func (s *workerService) ListWorkers(ctx context.Context, actor entity.Actor) ([]*entity.Worker, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workers")
	}

	return workers, nil
}

// GetWorkerBalance derives earned minus paid for one worker.
func (s *workerService) GetWorkerBalance(ctx context.Context, actor entity.Actor, workerID uuid.UUID) (*entity.WorkerBalance, error) {
	if err := requireSelfOrContractor(actor, workerID); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.FindByID(ctx, workerID); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, domainerrors.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	earned, err := s.attendanceRepo.SumWagesByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum wages")
	}

	paid, err := s.paymentRepo.SumWorkerPaymentsByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum worker payments")
	}

	return &entity.WorkerBalance{
		WorkerID:    workerID,
		TotalEarned: earned,
		TotalPaid:   paid,
		Balance:     earned - paid,
	}, nil
}

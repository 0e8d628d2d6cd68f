package impl

import (
	"context"
	"testing"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	mockRepo "sitekhata/internal/mocks/repository"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWorkerService(t *testing.T) (
	usecase.WorkerUsecase,
	*mockRepo.MockWorkerRepository,
	*mockRepo.MockAttendanceRepository,
	*mockRepo.MockPaymentRepository,
) {
	workerRepo := mockRepo.NewMockWorkerRepository(t)
	attendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewWorkerService(WorkerServiceParams{
		WorkerRepo:     workerRepo,
		AttendanceRepo: attendanceRepo,
		PaymentRepo:    paymentRepo,
		Logger:         testLogger(),
	})

	return service, workerRepo, attendanceRepo, paymentRepo
}

func TestWorkerService_CreateWorker_Success(t *testing.T) {
	service, workerRepo, _, _ := createTestWorkerService(t)
	ctx := context.Background()

	workerRepo.On("Create", ctx, mock.Anything).Return(nil)

	worker, err := service.CreateWorker(ctx, contractorActor(), &usecase.CreateWorkerInput{
		Name:      "Ramesh",
		Role:      entity.WorkerRoleMistri,
		DailyWage: entity.RupeesToMoney(700),
		Mobile:    "9876543210",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, worker.ID)
	assert.Equal(t, entity.WorkerRoleMistri, worker.Role)
	assert.Equal(t, entity.RupeesToMoney(700), worker.DailyWage)
}

func TestWorkerService_CreateWorker_InvalidRole(t *testing.T) {
	service, _, _, _ := createTestWorkerService(t)

	_, err := service.CreateWorker(context.Background(), contractorActor(), &usecase.CreateWorkerInput{
		Name:      "Ramesh",
		Role:      entity.WorkerRole("SUPERVISOR"),
		DailyWage: entity.RupeesToMoney(700),
		Mobile:    "9876543210",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidWorkerRole)
}

func TestWorkerService_CreateWorker_NegativeWage(t *testing.T) {
	service, _, _, _ := createTestWorkerService(t)

	_, err := service.CreateWorker(context.Background(), contractorActor(), &usecase.CreateWorkerInput{
		Name:      "Ramesh",
		Role:      entity.WorkerRoleHelper,
		DailyWage: entity.Money(-1),
		Mobile:    "9876543210",
	})

	require.ErrorIs(t, err, domainerrors.ErrNegativeWage)
}

func TestWorkerService_CreateWorker_WorkerForbidden(t *testing.T) {
	service, _, _, _ := createTestWorkerService(t)

	_, err := service.CreateWorker(context.Background(), workerActor(uuid.New()), &usecase.CreateWorkerInput{
		Name:      "Ramesh",
		Role:      entity.WorkerRoleHelper,
		DailyWage: entity.RupeesToMoney(400),
		Mobile:    "9876543210",
	})

	require.ErrorIs(t, err, domainerrors.ErrContractorOnly)
}

func TestWorkerService_UpdateWorkerWage_AppliesNewRate(t *testing.T) {
	service, workerRepo, _, _ := createTestWorkerService(t)
	ctx := context.Background()
	workerID := uuid.New()

	workerRepo.On("FindByID", ctx, workerID).
		Return(&entity.Worker{ID: workerID, Name: "Ramesh", DailyWage: entity.RupeesToMoney(500)}, nil)
	workerRepo.On("Update", ctx, mock.MatchedBy(func(w *entity.Worker) bool {
		return w.DailyWage == entity.RupeesToMoney(600)
	})).Return(nil)

	worker, err := service.UpdateWorkerWage(ctx, contractorActor(), &usecase.UpdateWorkerWageInput{
		WorkerID:  workerID,
		DailyWage: entity.RupeesToMoney(600),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(600), worker.DailyWage)
}

func TestWorkerService_UpdateWorkerWage_NotFound(t *testing.T) {
	service, workerRepo, _, _ := createTestWorkerService(t)
	ctx := context.Background()
	workerID := uuid.New()

	workerRepo.On("FindByID", ctx, workerID).Return(nil, repository.ErrWorkerNotFound)

	_, err := service.UpdateWorkerWage(ctx, contractorActor(), &usecase.UpdateWorkerWageInput{
		WorkerID:  workerID,
		DailyWage: entity.RupeesToMoney(600),
	})

	require.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)
}

func TestWorkerService_GetWorkerBalance_DerivesEarnedMinusPaid(t *testing.T) {
	service, workerRepo, attendanceRepo, paymentRepo := createTestWorkerService(t)
	ctx := context.Background()
	workerID := uuid.New()

	workerRepo.On("FindByID", ctx, workerID).Return(&entity.Worker{ID: workerID}, nil)
	attendanceRepo.On("SumWagesByWorker", ctx, workerID).Return(entity.RupeesToMoney(1400), nil)
	paymentRepo.On("SumWorkerPaymentsByWorker", ctx, workerID).Return(entity.RupeesToMoney(900), nil)

	balance, err := service.GetWorkerBalance(ctx, contractorActor(), workerID)

	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(1400), balance.TotalEarned)
	assert.Equal(t, entity.RupeesToMoney(900), balance.TotalPaid)
	assert.Equal(t, entity.RupeesToMoney(500), balance.Balance)
}

func TestWorkerService_GetWorkerBalance_WorkerReadsOwn(t *testing.T) {
	service, workerRepo, attendanceRepo, paymentRepo := createTestWorkerService(t)
	ctx := context.Background()
	workerID := uuid.New()

	workerRepo.On("FindByID", ctx, workerID).Return(&entity.Worker{ID: workerID}, nil)
	attendanceRepo.On("SumWagesByWorker", ctx, workerID).Return(entity.RupeesToMoney(700), nil)
	paymentRepo.On("SumWorkerPaymentsByWorker", ctx, workerID).Return(entity.Money(0), nil)

	balance, err := service.GetWorkerBalance(ctx, workerActor(workerID), workerID)

	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(700), balance.Balance)
}

func TestWorkerService_GetWorkerBalance_WorkerCannotReadOthers(t *testing.T) {
	service, _, _, _ := createTestWorkerService(t)

	_, err := service.GetWorkerBalance(context.Background(), workerActor(uuid.New()), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrWorkerScopeViolation)
}

func TestWorkerService_ListWorkers_WorkerForbidden(t *testing.T) {
	service, _, _, _ := createTestWorkerService(t)

	_, err := service.ListWorkers(context.Background(), workerActor(uuid.New()))

	require.ErrorIs(t, err, domainerrors.ErrContractorOnly)
}

package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a mock wired to the test's lifecycle.
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) CreateClientPayment(ctx context.Context, payment *entity.ClientPayment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) CreateWorkerPayment(ctx context.Context, payment *entity.WorkerPayment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) FindClientPaymentsBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.ClientPayment, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ClientPayment), args.Error(1)
}

func (m *MockPaymentRepository) FindWorkerPaymentsByWorker(ctx context.Context, workerID uuid.UUID) ([]*entity.WorkerPayment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WorkerPayment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, limit int) ([]*entity.PaymentRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) SumClientPaymentsBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error) {
	args := m.Called(ctx, siteID)

	return args.Get(0).(entity.Money), args.Error(1)
}

func (m *MockPaymentRepository) SumClientPayments(ctx context.Context) (entity.Money, error) {
	args := m.Called(ctx)

	return args.Get(0).(entity.Money), args.Error(1)
}

func (m *MockPaymentRepository) SumWorkerPaymentsByWorker(ctx context.Context, workerID uuid.UUID) (entity.Money, error) {
	args := m.Called(ctx, workerID)

	return args.Get(0).(entity.Money), args.Error(1)
}

func (m *MockPaymentRepository) SumWorkerPayments(ctx context.Context) (entity.Money, error) {
	args := m.Called(ctx)

	return args.Get(0).(entity.Money), args.Error(1)
}

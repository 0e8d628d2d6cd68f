package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWorkerRepository is a mock implementation of repository.WorkerRepository.
type MockWorkerRepository struct {
	mock.Mock
}

// NewMockWorkerRepository creates a mock wired to the test's lifecycle.
func NewMockWorkerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkerRepository {
	m := &MockWorkerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindAll(ctx context.Context) ([]*entity.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	return m.Called(ctx, worker).Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	return m.Called(ctx, worker).Error(0)
}

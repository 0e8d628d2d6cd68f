package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockExpenseRepository is a mock implementation of repository.ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

// NewMockExpenseRepository creates a mock wired to the test's lifecycle.
func NewMockExpenseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExpenseRepository {
	m := &MockExpenseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *entity.MaterialExpense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) FindBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.MaterialExpense, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MaterialExpense), args.Error(1)
}

func (m *MockExpenseRepository) SumBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error) {
	args := m.Called(ctx, siteID)

	return args.Get(0).(entity.Money), args.Error(1)
}

func (m *MockExpenseRepository) SumAll(ctx context.Context) (entity.Money, error) {
	args := m.Called(ctx)

	return args.Get(0).(entity.Money), args.Error(1)
}

package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAttendanceRepository is a mock implementation of repository.AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

// NewMockAttendanceRepository creates a mock wired to the test's lifecycle.
func NewMockAttendanceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAttendanceRepository {
	m := &MockAttendanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, record *entity.AttendanceRecord) (*entity.AttendanceRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindByWorkerAndDay(ctx context.Context, workerID uuid.UUID, day entity.Day) (*entity.AttendanceRecord, error) {
	args := m.Called(ctx, workerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindBySiteAndDay(ctx context.Context, siteID uuid.UUID, day entity.Day) ([]*entity.AttendanceRecord, error) {
	args := m.Called(ctx, siteID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindByWorker(ctx context.Context, workerID uuid.UUID, limit int) ([]*entity.AttendanceRecord, error) {
	args := m.Called(ctx, workerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) SumWagesByWorker(ctx context.Context, workerID uuid.UUID) (entity.Money, error) {
	args := m.Called(ctx, workerID)

	return args.Get(0).(entity.Money), args.Error(1)
}

func (m *MockAttendanceRepository) SumWagesBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error) {
	args := m.Called(ctx, siteID)

	return args.Get(0).(entity.Money), args.Error(1)
}

func (m *MockAttendanceRepository) CountPresentDaysBySite(ctx context.Context, siteID uuid.UUID) (int64, error) {
	args := m.Called(ctx, siteID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceRepository) CountPresentDaysByWorker(ctx context.Context, workerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, workerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceRepository) CountDistinctSitesByWorker(ctx context.Context, workerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, workerID)

	return args.Get(0).(int64), args.Error(1)
}

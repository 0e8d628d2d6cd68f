// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSiteRepository is a mock implementation of repository.SiteRepository.
type MockSiteRepository struct {
	mock.Mock
}

// NewMockSiteRepository creates a mock wired to the test's lifecycle.
func NewMockSiteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSiteRepository {
	m := &MockSiteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Site), args.Error(1)
}

func (m *MockSiteRepository) FindAll(ctx context.Context) ([]*entity.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Site), args.Error(1)
}

func (m *MockSiteRepository) FindByStatus(ctx context.Context, status entity.SiteStatus) ([]*entity.Site, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Site), args.Error(1)
}

func (m *MockSiteRepository) Create(ctx context.Context, site *entity.Site) error {
	return m.Called(ctx, site).Error(0)
}

func (m *MockSiteRepository) Update(ctx context.Context, site *entity.Site) error {
	return m.Called(ctx, site).Error(0)
}

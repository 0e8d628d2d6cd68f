// Package usecase provides testify mocks for the application usecase interfaces.
package usecase

import (
	"context"

	"sitekhata/internal/domain/entity"
	appusecase "sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSiteUsecase is a mock implementation of usecase.SiteUsecase.
type MockSiteUsecase struct {
	mock.Mock
}

// NewMockSiteUsecase creates a mock wired to the test's lifecycle.
func NewMockSiteUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSiteUsecase {
	m := &MockSiteUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSiteUsecase) CreateSite(ctx context.Context, actor entity.Actor, input *appusecase.CreateSiteInput) (*entity.Site, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Site), args.Error(1)
}

func (m *MockSiteUsecase) SetSiteStatus(ctx context.Context, actor entity.Actor, input *appusecase.SetSiteStatusInput) (*entity.Site, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Site), args.Error(1)
}

func (m *MockSiteUsecase) GetSite(ctx context.Context, actor entity.Actor, siteID uuid.UUID) (*entity.Site, error) {
	args := m.Called(ctx, actor, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Site), args.Error(1)
}

func (m *MockSiteUsecase) ListSites(ctx context.Context, actor entity.Actor, status *entity.SiteStatus) ([]*entity.Site, error) {
	args := m.Called(ctx, actor, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Site), args.Error(1)
}

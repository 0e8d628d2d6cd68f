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

func createTestSiteService(t *testing.T) (usecase.SiteUsecase, *mockRepo.MockSiteRepository) {
	siteRepo := mockRepo.NewMockSiteRepository(t)
	service := NewSiteService(SiteServiceParams{
		SiteRepo: siteRepo,
		Logger:   testLogger(),
	})

	return service, siteRepo
}

func validCreateSiteInput() *usecase.CreateSiteInput {
	return &usecase.CreateSiteInput{
		Name:            "Sharma Villa",
		ClientName:      "Mr. Sharma",
		StartDate:       entity.Day("2025-01-05"),
		ExpectedEndDate: entity.Day("2025-06-30"),
		EstimatedBudget: entity.RupeesToMoney(500000),
	}
}

func TestSiteService_CreateSite_Success(t *testing.T) {
	service, siteRepo := createTestSiteService(t)
	ctx := context.Background()

	siteRepo.On("Create", ctx, mock.Anything).Return(nil)

	site, err := service.CreateSite(ctx, contractorActor(), validCreateSiteInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, site.ID)
	assert.Equal(t, entity.SiteStatusOngoing, site.Status)
	assert.Equal(t, entity.RupeesToMoney(500000), site.EstimatedBudget)
	assert.Equal(t, "Mr. Sharma", site.ClientName)
}

func TestSiteService_CreateSite_WorkerForbidden(t *testing.T) {
	service, _ := createTestSiteService(t)

	_, err := service.CreateSite(context.Background(), workerActor(uuid.New()), validCreateSiteInput())

	require.ErrorIs(t, err, domainerrors.ErrContractorOnly)
}

func TestSiteService_CreateSite_NegativeBudget(t *testing.T) {
	service, _ := createTestSiteService(t)

	input := validCreateSiteInput()
	input.EstimatedBudget = entity.Money(-1)

	_, err := service.CreateSite(context.Background(), contractorActor(), input)

	require.ErrorIs(t, err, domainerrors.ErrNegativeBudget)
}

func TestSiteService_CreateSite_EndBeforeStart(t *testing.T) {
	service, _ := createTestSiteService(t)

	input := validCreateSiteInput()
	input.StartDate = entity.Day("2025-06-30")
	input.ExpectedEndDate = entity.Day("2025-01-05")

	_, err := service.CreateSite(context.Background(), contractorActor(), input)

	assertErrorCode(t, err, domainerrors.ErrValidationFailed)
}

func TestSiteService_SetSiteStatus_ReopensCompletedSite(t *testing.T) {
	service, siteRepo := createTestSiteService(t)
	ctx := context.Background()
	siteID := uuid.New()

	siteRepo.On("FindByID", ctx, siteID).
		Return(&entity.Site{ID: siteID, Status: entity.SiteStatusCompleted}, nil)
	siteRepo.On("Update", ctx, mock.MatchedBy(func(s *entity.Site) bool {
		return s.Status == entity.SiteStatusOngoing
	})).Return(nil)

	site, err := service.SetSiteStatus(ctx, contractorActor(), &usecase.SetSiteStatusInput{
		SiteID: siteID,
		Status: entity.SiteStatusOngoing,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SiteStatusOngoing, site.Status)
}

func TestSiteService_SetSiteStatus_InvalidStatus(t *testing.T) {
	service, _ := createTestSiteService(t)

	_, err := service.SetSiteStatus(context.Background(), contractorActor(), &usecase.SetSiteStatusInput{
		SiteID: uuid.New(),
		Status: entity.SiteStatus("DEMOLISHED"),
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidSiteStatus)
}

func TestSiteService_GetSite_NotFound(t *testing.T) {
	service, siteRepo := createTestSiteService(t)
	ctx := context.Background()
	siteID := uuid.New()

	siteRepo.On("FindByID", ctx, siteID).Return(nil, repository.ErrSiteNotFound)

	_, err := service.GetSite(ctx, contractorActor(), siteID)

	require.ErrorIs(t, err, domainerrors.ErrSiteNotFound)
}

func TestSiteService_ListSites_FiltersByStatus(t *testing.T) {
	service, siteRepo := createTestSiteService(t)
	ctx := context.Background()
	status := entity.SiteStatusCompleted

	siteRepo.On("FindByStatus", ctx, status).
		Return([]*entity.Site{{ID: uuid.New(), Status: status}}, nil)

	sites, err := service.ListSites(ctx, contractorActor(), &status)

	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, status, sites[0].Status)
}

func TestSiteService_ListSites_InvalidStatusFilter(t *testing.T) {
	service, _ := createTestSiteService(t)
	status := entity.SiteStatus("PAUSED")

	_, err := service.ListSites(context.Background(), contractorActor(), &status)

	require.ErrorIs(t, err, domainerrors.ErrInvalidSiteStatus)
}

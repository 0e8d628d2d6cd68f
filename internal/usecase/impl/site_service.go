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

// siteService implements the SiteUsecase interface.
type siteService struct {
	siteRepo repository.SiteRepository
	logger   *slog.Logger
}

// SiteServiceParams holds dependencies for SiteService, injected by Fx.
type SiteServiceParams struct {
	fx.In

	SiteRepo repository.SiteRepository
	Logger   *slog.Logger
}

// NewSiteService is the constructor for siteService.
func NewSiteService(params SiteServiceParams) usecase.SiteUsecase {
	return &siteService{
		siteRepo: params.SiteRepo,
		logger:   params.Logger,
	}
}

func (s *siteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateSite opens a new site in the ONGOING state.
func (s *siteService) CreateSite(ctx context.Context, actor entity.Actor, input *usecase.CreateSiteInput) (*entity.Site, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if err := validateCreateSite(input); err != nil {
		return nil, err
	}

	now := time.Now()
	site := &entity.Site{
		ID:              uuid.New(),
		Name:            input.Name,
		ClientName:      input.ClientName,
		StartDate:       input.StartDate,
		ExpectedEndDate: input.ExpectedEndDate,
		Status:          entity.SiteStatusOngoing,
		EstimatedBudget: input.EstimatedBudget,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.siteRepo.Create(ctx, site); err != nil {
		return nil, errors.Wrap(err, "failed to create site")
	}

	s.log(ctx).Info("Site created", slog.Any("siteID", site.ID), slog.String("client", site.ClientName))

	return site, nil
}

func validateCreateSite(input *usecase.CreateSiteInput) error {
	if input.Name == "" || input.ClientName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and clientName are required")
	}
	if input.StartDate == "" || input.ExpectedEndDate == "" {
		return domainerrors.ErrValidationFailed.WithDetails("startDate and expectedEndDate are required")
	}
	if input.ExpectedEndDate.Before(input.StartDate) {
		return domainerrors.ErrValidationFailed.WithDetails("expectedEndDate precedes startDate")
	}
	if input.EstimatedBudget.IsNegative() {
		return domainerrors.ErrNegativeBudget
	}

	return nil
}

// SetSiteStatus transitions a site's lifecycle state. Both directions are
// allowed; completed sites reopen for defect-liability work often enough that
// blocking the reverse transition would just push users to workarounds.
func (s *siteService) SetSiteStatus(ctx context.Context, actor entity.Actor, input *usecase.SetSiteStatusInput) (*entity.Site, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidSiteStatus
	}

	site, err := s.siteRepo.FindByID(ctx, input.SiteID)
	if err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find site")
	}

	site.Status = input.Status
	site.UpdatedAt = time.Now()

	if err := s.siteRepo.Update(ctx, site); err != nil {
		return nil, errors.Wrap(err, "failed to update site status")
	}

	s.log(ctx).Info("Site status changed", slog.Any("siteID", site.ID), slog.String("status", string(site.Status)))

	return site, nil
}

// GetSite retrieves one site.
func (s *siteService) GetSite(ctx context.Context, actor entity.Actor, siteID uuid.UUID) (*entity.Site, error) {
	site, err := s.siteRepo.FindByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find site")
	}

	return site, nil
}

// ListSites retrieves all sites, optionally filtered by status.
func (s *siteService) ListSites(ctx context.Context, actor entity.Actor, status *entity.SiteStatus) ([]*entity.Site, error) {
	if status != nil {
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidSiteStatus
		}
		sites, err := s.siteRepo.FindByStatus(ctx, *status)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list sites by status")
		}

		return sites, nil
	}

	sites, err := s.siteRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites")
	}

	return sites, nil
}

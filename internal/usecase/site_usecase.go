package usecase

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSiteInput defines the data required to open a new site.
type CreateSiteInput struct {
	Name            string
	ClientName      string
	StartDate       entity.Day
	ExpectedEndDate entity.Day
	EstimatedBudget entity.Money
}

// SetSiteStatusInput moves a site between lifecycle states. COMPLETED back to
// ONGOING is permitted; handover dates slip and sites reopen for defect work.
type SetSiteStatusInput struct {
	SiteID uuid.UUID
	Status entity.SiteStatus
}

// SiteUsecase defines the contractor-facing site operations.
type SiteUsecase interface {
	// CreateSite opens a new ONGOING site. Contractor only.
	CreateSite(ctx context.Context, actor entity.Actor, input *CreateSiteInput) (*entity.Site, error)

	// SetSiteStatus transitions a site's lifecycle state. Contractor only.
	SetSiteStatus(ctx context.Context, actor entity.Actor, input *SetSiteStatusInput) (*entity.Site, error)

	// GetSite retrieves one site.
	GetSite(ctx context.Context, actor entity.Actor, siteID uuid.UUID) (*entity.Site, error)

	// ListSites retrieves all sites, optionally filtered by status, newest first.
	ListSites(ctx context.Context, actor entity.Actor, status *entity.SiteStatus) ([]*entity.Site, error)
}

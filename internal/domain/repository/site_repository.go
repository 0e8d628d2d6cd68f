package repository

import (
	"context"
	"errors"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSiteNotFound is returned when a site does not exist in storage.
var ErrSiteNotFound = errors.New("site not found")

// SiteRepository defines the standard operations for site persistence.
type SiteRepository interface {
	// FindByID retrieves a single site by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error)

	// FindAll retrieves every site, newest first.
	FindAll(ctx context.Context) ([]*entity.Site, error)

	// FindByStatus retrieves all sites in the given lifecycle state, newest first.
	FindByStatus(ctx context.Context, status entity.SiteStatus) ([]*entity.Site, error)

	// Create persists a new site.
	Create(ctx context.Context, site *entity.Site) error

	// Update modifies an existing site.
	Update(ctx context.Context, site *entity.Site) error
}

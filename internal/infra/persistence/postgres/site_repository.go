package postgres

import (
	"context"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// siteRepository implements the repository.SiteRepository interface.
type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository is the constructor for siteRepository.
func NewSiteRepository(db *gorm.DB) repository.SiteRepository {
	return &siteRepository{
		db: db,
	}
}

// FindByID retrieves a single site by its unique ID.
func (repo *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	var siteM model.SiteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&siteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find site by ID")
	}

	return toSiteDomain(&siteM), nil
}

// FindAll retrieves every site, newest first.
func (repo *siteRepository) FindAll(ctx context.Context) ([]*entity.Site, error) {
	var siteModels []*model.SiteModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&siteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sites")
	}

	return toSiteDomainSlice(siteModels), nil
}

// FindByStatus retrieves all sites in the given lifecycle state, newest first.
func (repo *siteRepository) FindByStatus(ctx context.Context, status entity.SiteStatus) ([]*entity.Site, error) {
	var siteModels []*model.SiteModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&siteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sites by status")
	}

	return toSiteDomainSlice(siteModels), nil
}

// Create persists a new site.
func (repo *siteRepository) Create(ctx context.Context, site *entity.Site) error {
	siteM := fromSiteDomain(site)

	if err := repo.db.WithContext(ctx).Create(siteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required site information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create site")
	}

	site.CreatedAt = siteM.CreatedAt
	site.UpdatedAt = siteM.UpdatedAt

	return nil
}

// Update modifies an existing site.
func (repo *siteRepository) Update(ctx context.Context, site *entity.Site) error {
	if err := repo.db.WithContext(ctx).Save(fromSiteDomain(site)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update site")
	}

	return nil
}

// --- Mapper Functions ---

func toSiteDomain(data *model.SiteModel) *entity.Site {
	if data == nil {
		return nil
	}

	return &entity.Site{
		ID:              data.ID,
		Name:            data.Name,
		ClientName:      data.ClientName,
		StartDate:       entity.Day(data.StartDate),
		ExpectedEndDate: entity.Day(data.ExpectedEndDate),
		Status:          entity.SiteStatus(data.Status),
		EstimatedBudget: entity.Money(data.EstimatedBudget),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toSiteDomainSlice(models []*model.SiteModel) []*entity.Site {
	sites := make([]*entity.Site, 0, len(models))
	for _, m := range models {
		sites = append(sites, toSiteDomain(m))
	}

	return sites
}

func fromSiteDomain(data *entity.Site) *model.SiteModel {
	if data == nil {
		return nil
	}

	return &model.SiteModel{
		ID:              data.ID,
		Name:            data.Name,
		ClientName:      data.ClientName,
		StartDate:       data.StartDate.String(),
		ExpectedEndDate: data.ExpectedEndDate.String(),
		Status:          string(data.Status),
		EstimatedBudget: data.EstimatedBudget.Paise(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

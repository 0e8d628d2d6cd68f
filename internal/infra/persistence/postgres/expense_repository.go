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

// expenseRepository implements the repository.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new material expense.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.MaterialExpense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid site reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required expense information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.CreatedAt = expenseM.CreatedAt

	return nil
}

// FindBySite retrieves a site's expenses, newest day first.
func (repo *expenseRepository) FindBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.MaterialExpense, error) {
	var expenseModels []*model.MaterialExpenseModel

	if err := repo.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("day DESC, created_at DESC").
		Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expenses by site")
	}

	expenses := make([]*entity.MaterialExpense, 0, len(expenseModels))
	for _, m := range expenseModels {
		expenses = append(expenses, toExpenseDomain(m))
	}

	return expenses, nil
}

// SumBySite totals all expense costs booked against one site.
func (repo *expenseRepository) SumBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MaterialExpenseModel{}).
		Where("site_id = ?", siteID).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum expenses by site")
	}

	return entity.Money(total), nil
}

// SumAll totals every expense across all sites.
func (repo *expenseRepository) SumAll(ctx context.Context) (entity.Money, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MaterialExpenseModel{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum all expenses")
	}

	return entity.Money(total), nil
}

// --- Mapper Functions ---

func toExpenseDomain(data *model.MaterialExpenseModel) *entity.MaterialExpense {
	if data == nil {
		return nil
	}

	return &entity.MaterialExpense{
		ID:        data.ID,
		SiteID:    data.SiteID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Cost:      entity.Money(data.Cost),
		Day:       entity.Day(data.Day),
		CreatedAt: data.CreatedAt,
	}
}

func fromExpenseDomain(data *entity.MaterialExpense) *model.MaterialExpenseModel {
	if data == nil {
		return nil
	}

	return &model.MaterialExpenseModel{
		ID:        data.ID,
		SiteID:    data.SiteID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Cost:      data.Cost.Paise(),
		Day:       data.Day.String(),
		CreatedAt: data.CreatedAt,
	}
}

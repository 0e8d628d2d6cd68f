package repository

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// ExpenseRepository defines material expense persistence. The expense ledger
// is append-only; there are no update or delete operations.
type ExpenseRepository interface {
	// Create persists a new material expense.
	Create(ctx context.Context, expense *entity.MaterialExpense) error

	// FindBySite retrieves a site's expenses, newest day first.
	FindBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.MaterialExpense, error)

	// SumBySite totals all expense amounts booked against one site.
	SumBySite(ctx context.Context, siteID uuid.UUID) (entity.Money, error)

	// SumAll totals every expense across all sites.
	SumAll(ctx context.Context) (entity.Money, error)
}

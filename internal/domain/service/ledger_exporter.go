package service

import (
	"context"

	"sitekhata/internal/domain/entity"
)

// SiteSheet is one site's slice of a ledger export: the site, its derived
// financials, and its raw expense and payment lines.
type SiteSheet struct {
	Site       *entity.Site
	Financials *entity.SiteFinancials
	Expenses   []*entity.MaterialExpense
	Payments   []*entity.ClientPayment
}

// WorkerRow is one worker's line in a ledger export.
type WorkerRow struct {
	Worker  *entity.Worker
	Balance *entity.WorkerBalance
}

// LedgerSnapshot is everything a full-book export contains.
type LedgerSnapshot struct {
	Sites     []*SiteSheet
	Workers   []*WorkerRow
	Portfolio *entity.PortfolioSummary
}

// LedgerExporter defines the interface for rendering a ledger snapshot into a
// downloadable workbook.
type LedgerExporter interface {
	// ExportWorkbook renders the snapshot as an xlsx file.
	ExportWorkbook(ctx context.Context, snapshot *LedgerSnapshot) ([]byte, error)
}

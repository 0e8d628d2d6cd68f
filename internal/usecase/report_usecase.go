package usecase

import (
	"context"

	"sitekhata/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentQRInput describes the UPI collect request to render as a QR code.
type PaymentQRInput struct {
	PayeeVPA  string
	PayeeName string
	Amount    entity.Money
	Note      string
}

// ReportUsecase defines the derived, read-only views over the ledger.
type ReportUsecase interface {
	// GetSiteFinancials derives one site's cost and budget position.
	GetSiteFinancials(ctx context.Context, actor entity.Actor, siteID uuid.UUID) (*entity.SiteFinancials, error)

	// GetPortfolioSummary derives the contractor's global cash view.
	// Contractor only.
	GetPortfolioSummary(ctx context.Context, actor entity.Actor) (*entity.PortfolioSummary, error)

	// GetWorkerSummary builds the worker-facing dashboard. Contractors can
	// read any worker; a worker only their own.
	GetWorkerSummary(ctx context.Context, actor entity.Actor, workerID uuid.UUID) (*entity.WorkerSummary, error)

	// ExportLedger renders the whole book as an xlsx workbook. Contractor only.
	ExportLedger(ctx context.Context, actor entity.Actor) ([]byte, error)

	// GeneratePaymentQR renders a UPI collect QR as PNG bytes. Contractor only.
	GeneratePaymentQR(ctx context.Context, actor entity.Actor, input *PaymentQRInput) ([]byte, error)
}

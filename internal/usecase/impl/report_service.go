package impl

import (
	"context"
	"log/slog"

	deliverycontext "sitekhata/internal/delivery/context"
	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/domain/service"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentAttendanceDays caps the attendance slice on the worker dashboard.
const recentAttendanceDays = 14

// reportService implements the ReportUsecase interface. Every figure is
// derived on read; nothing here writes to the ledger.
type reportService struct {
	siteRepo       repository.SiteRepository
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	expenseRepo    repository.ExpenseRepository
	paymentRepo    repository.PaymentRepository
	exporter       service.LedgerExporter
	qrService      service.PaymentQRService
	logger         *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	SiteRepo       repository.SiteRepository
	WorkerRepo     repository.WorkerRepository
	AttendanceRepo repository.AttendanceRepository
	ExpenseRepo    repository.ExpenseRepository
	PaymentRepo    repository.PaymentRepository
	Exporter       service.LedgerExporter
	QRService      service.PaymentQRService
	Logger         *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		siteRepo:       params.SiteRepo,
		workerRepo:     params.WorkerRepo,
		attendanceRepo: params.AttendanceRepo,
		expenseRepo:    params.ExpenseRepo,
		paymentRepo:    params.PaymentRepo,
		exporter:       params.Exporter,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

func (s *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetSiteFinancials derives one site's cost and budget position. Labor cost
// sums every wage snapshot booked at the site regardless of whether those
// wages were settled, so this is an accrual view.
func (s *reportService) GetSiteFinancials(ctx context.Context, actor entity.Actor, siteID uuid.UUID) (*entity.SiteFinancials, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}

	site, err := s.siteRepo.FindByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find site")
	}

	return s.deriveSiteFinancials(ctx, site)
}

func (s *reportService) deriveSiteFinancials(ctx context.Context, site *entity.Site) (*entity.SiteFinancials, error) {
	materialCost, err := s.expenseRepo.SumBySite(ctx, site.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum site expenses")
	}

	laborCost, err := s.attendanceRepo.SumWagesBySite(ctx, site.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum site wages")
	}

	manDays, err := s.attendanceRepo.CountPresentDaysBySite(ctx, site.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count site man-days")
	}

	totalCost := materialCost + laborCost

	return &entity.SiteFinancials{
		SiteID:          site.ID,
		MaterialCost:    materialCost,
		LaborCost:       laborCost,
		TotalCost:       totalCost,
		RemainingBudget: site.EstimatedBudget - totalCost,
		ManDays:         manDays,
	}, nil
}

// GetPortfolioSummary derives the global cash view: realized client payments
// against full material spend and wage payouts. It deliberately mixes cash
// and accrual figures, so it is a separate report from SiteFinancials.
func (s *reportService) GetPortfolioSummary(ctx context.Context, actor entity.Actor) (*entity.PortfolioSummary, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}

	received, err := s.paymentRepo.SumClientPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum client payments")
	}

	paidOut, err := s.paymentRepo.SumWorkerPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum worker payments")
	}

	materialCost, err := s.expenseRepo.SumAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum material expenses")
	}

	return &entity.PortfolioSummary{
		TotalReceived:      received,
		TotalPaidToWorkers: paidOut,
		TotalMaterialCost:  materialCost,
		NetProfit:          received - paidOut - materialCost,
	}, nil
}

// GetWorkerSummary builds the worker-facing dashboard.
func (s *reportService) GetWorkerSummary(ctx context.Context, actor entity.Actor, workerID uuid.UUID) (*entity.WorkerSummary, error) {
	if err := requireSelfOrContractor(actor, workerID); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.FindByID(ctx, workerID); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, domainerrors.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	daysWorked, err := s.attendanceRepo.CountPresentDaysByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count worked days")
	}

	sitesWorked, err := s.attendanceRepo.CountDistinctSitesByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count worked sites")
	}

	earned, err := s.attendanceRepo.SumWagesByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum wages")
	}

	paid, err := s.paymentRepo.SumWorkerPaymentsByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum worker payments")
	}

	recent, err := s.attendanceRepo.FindByWorker(ctx, workerID, recentAttendanceDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent attendance")
	}

	return &entity.WorkerSummary{
		WorkerID:      workerID,
		DaysWorked:    daysWorked,
		SitesWorked:   sitesWorked,
		TotalReceived: paid,
		Balance:       earned - paid,
		RecentDays:    recent,
	}, nil
}

// ExportLedger renders the whole book as an xlsx workbook.
func (s *reportService) ExportLedger(ctx context.Context, actor entity.Actor) ([]byte, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}

	snapshot, err := s.collectSnapshot(ctx, actor)
	if err != nil {
		return nil, err
	}

	book, err := s.exporter.ExportWorkbook(ctx, snapshot)
	if err != nil {
		s.log(ctx).Error("Ledger export failed", slog.Any("error", err))

		return nil, domainerrors.ErrExportFailed.WithDetails(err.Error())
	}

	s.log(ctx).Info("Ledger exported",
		slog.Int("sites", len(snapshot.Sites)), slog.Int("workers", len(snapshot.Workers)))

	return book, nil
}

func (s *reportService) collectSnapshot(ctx context.Context, actor entity.Actor) (*service.LedgerSnapshot, error) {
	sites, err := s.siteRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites")
	}

	sheets := make([]*service.SiteSheet, 0, len(sites))
	for _, site := range sites {
		financials, err := s.deriveSiteFinancials(ctx, site)
		if err != nil {
			return nil, err
		}

		expenses, err := s.expenseRepo.FindBySite(ctx, site.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list site expenses")
		}

		payments, err := s.paymentRepo.FindClientPaymentsBySite(ctx, site.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list site payments")
		}

		sheets = append(sheets, &service.SiteSheet{
			Site:       site,
			Financials: financials,
			Expenses:   expenses,
			Payments:   payments,
		})
	}

	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workers")
	}

	rows := make([]*service.WorkerRow, 0, len(workers))
	for _, worker := range workers {
		earned, err := s.attendanceRepo.SumWagesByWorker(ctx, worker.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sum wages")
		}

		paid, err := s.paymentRepo.SumWorkerPaymentsByWorker(ctx, worker.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sum worker payments")
		}

		rows = append(rows, &service.WorkerRow{
			Worker: worker,
			Balance: &entity.WorkerBalance{
				WorkerID:    worker.ID,
				TotalEarned: earned,
				TotalPaid:   paid,
				Balance:     earned - paid,
			},
		})
	}

	portfolio, err := s.GetPortfolioSummary(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &service.LedgerSnapshot{
		Sites:     sheets,
		Workers:   rows,
		Portfolio: portfolio,
	}, nil
}

// GeneratePaymentQR renders a UPI collect QR as PNG bytes.
func (s *reportService) GeneratePaymentQR(ctx context.Context, actor entity.Actor, input *usecase.PaymentQRInput) ([]byte, error) {
	if err := requireContractor(actor); err != nil {
		return nil, err
	}
	if input.PayeeVPA == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payee VPA is required")
	}
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}

	png, err := s.qrService.GeneratePaymentQR(input.PayeeVPA, input.PayeeName, input.Amount, input.Note)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

package impl

import (
	"context"
	"testing"

	"sitekhata/internal/domain/entity"
	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/domain/service"
	mockRepo "sitekhata/internal/mocks/repository"
	mockSvc "sitekhata/internal/mocks/service"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportTestMocks struct {
	siteRepo       *mockRepo.MockSiteRepository
	workerRepo     *mockRepo.MockWorkerRepository
	attendanceRepo *mockRepo.MockAttendanceRepository
	expenseRepo    *mockRepo.MockExpenseRepository
	paymentRepo    *mockRepo.MockPaymentRepository
	exporter       *mockSvc.MockLedgerExporter
	qrService      *mockSvc.MockPaymentQRService
}

func createTestReportService(t *testing.T) (usecase.ReportUsecase, *reportTestMocks) {
	m := &reportTestMocks{
		siteRepo:       mockRepo.NewMockSiteRepository(t),
		workerRepo:     mockRepo.NewMockWorkerRepository(t),
		attendanceRepo: mockRepo.NewMockAttendanceRepository(t),
		expenseRepo:    mockRepo.NewMockExpenseRepository(t),
		paymentRepo:    mockRepo.NewMockPaymentRepository(t),
		exporter:       mockSvc.NewMockLedgerExporter(t),
		qrService:      mockSvc.NewMockPaymentQRService(t),
	}

	reports := NewReportService(ReportServiceParams{
		SiteRepo:       m.siteRepo,
		WorkerRepo:     m.workerRepo,
		AttendanceRepo: m.attendanceRepo,
		ExpenseRepo:    m.expenseRepo,
		PaymentRepo:    m.paymentRepo,
		Exporter:       m.exporter,
		QRService:      m.qrService,
		Logger:         testLogger(),
	})

	return reports, m
}

func TestReportService_GetSiteFinancials(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()
	siteID := uuid.New()

	m.siteRepo.On("FindByID", ctx, siteID).
		Return(&entity.Site{ID: siteID, EstimatedBudget: entity.RupeesToMoney(500000)}, nil)
	m.expenseRepo.On("SumBySite", ctx, siteID).Return(entity.RupeesToMoney(7400), nil)
	m.attendanceRepo.On("SumWagesBySite", ctx, siteID).Return(entity.RupeesToMoney(1400), nil)
	m.attendanceRepo.On("CountPresentDaysBySite", ctx, siteID).Return(int64(2), nil)

	financials, err := reports.GetSiteFinancials(ctx, contractorActor(), siteID)

	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(7400), financials.MaterialCost)
	assert.Equal(t, entity.RupeesToMoney(1400), financials.LaborCost)
	assert.Equal(t, entity.RupeesToMoney(8800), financials.TotalCost)
	assert.Equal(t, entity.RupeesToMoney(491200), financials.RemainingBudget)
	assert.Equal(t, int64(2), financials.ManDays)
}

func TestReportService_GetSiteFinancials_OverBudget(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()
	siteID := uuid.New()

	m.siteRepo.On("FindByID", ctx, siteID).
		Return(&entity.Site{ID: siteID, EstimatedBudget: entity.RupeesToMoney(1000)}, nil)
	m.expenseRepo.On("SumBySite", ctx, siteID).Return(entity.RupeesToMoney(1500), nil)
	m.attendanceRepo.On("SumWagesBySite", ctx, siteID).Return(entity.Money(0), nil)
	m.attendanceRepo.On("CountPresentDaysBySite", ctx, siteID).Return(int64(0), nil)

	financials, err := reports.GetSiteFinancials(ctx, contractorActor(), siteID)

	require.NoError(t, err)
	assert.True(t, financials.RemainingBudget.IsNegative())
	assert.Equal(t, entity.RupeesToMoney(-500), financials.RemainingBudget)
}

func TestReportService_GetSiteFinancials_SiteNotFound(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()
	siteID := uuid.New()

	m.siteRepo.On("FindByID", ctx, siteID).Return(nil, repository.ErrSiteNotFound)

	_, err := reports.GetSiteFinancials(ctx, contractorActor(), siteID)

	require.ErrorIs(t, err, domainerrors.ErrSiteNotFound)
}

func TestReportService_GetPortfolioSummary(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()

	m.paymentRepo.On("SumClientPayments", ctx).Return(entity.RupeesToMoney(100000), nil)
	m.paymentRepo.On("SumWorkerPayments", ctx).Return(entity.RupeesToMoney(30000), nil)
	m.expenseRepo.On("SumAll", ctx).Return(entity.RupeesToMoney(20000), nil)

	summary, err := reports.GetPortfolioSummary(ctx, contractorActor())

	require.NoError(t, err)
	assert.Equal(t, entity.RupeesToMoney(100000), summary.TotalReceived)
	assert.Equal(t, entity.RupeesToMoney(50000), summary.NetProfit)
}

func TestReportService_GetPortfolioSummary_WorkerForbidden(t *testing.T) {
	reports, _ := createTestReportService(t)

	_, err := reports.GetPortfolioSummary(context.Background(), workerActor(uuid.New()))

	require.ErrorIs(t, err, domainerrors.ErrContractorOnly)
}

func TestReportService_GetWorkerSummary(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()
	workerID := uuid.New()
	recent := []*entity.AttendanceRecord{
		{ID: uuid.New(), WorkerID: workerID, Day: entity.Day("2025-01-15"), IsPresent: true},
	}

	m.workerRepo.On("FindByID", ctx, workerID).Return(&entity.Worker{ID: workerID}, nil)
	m.attendanceRepo.On("CountPresentDaysByWorker", ctx, workerID).Return(int64(12), nil)
	m.attendanceRepo.On("CountDistinctSitesByWorker", ctx, workerID).Return(int64(3), nil)
	m.attendanceRepo.On("SumWagesByWorker", ctx, workerID).Return(entity.RupeesToMoney(8400), nil)
	m.paymentRepo.On("SumWorkerPaymentsByWorker", ctx, workerID).Return(entity.RupeesToMoney(7000), nil)
	m.attendanceRepo.On("FindByWorker", ctx, workerID, recentAttendanceDays).Return(recent, nil)

	summary, err := reports.GetWorkerSummary(ctx, workerActor(workerID), workerID)

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.DaysWorked)
	assert.Equal(t, int64(3), summary.SitesWorked)
	assert.Equal(t, entity.RupeesToMoney(7000), summary.TotalReceived)
	assert.Equal(t, entity.RupeesToMoney(1400), summary.Balance)
	assert.Len(t, summary.RecentDays, 1)
}

func TestReportService_GetWorkerSummary_WorkerCannotReadOthers(t *testing.T) {
	reports, _ := createTestReportService(t)

	_, err := reports.GetWorkerSummary(context.Background(), workerActor(uuid.New()), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrWorkerScopeViolation)
}

func TestReportService_ExportLedger(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()
	siteID := uuid.New()
	workerID := uuid.New()

	m.siteRepo.On("FindAll", ctx).
		Return([]*entity.Site{{ID: siteID, Name: "Sharma Villa", EstimatedBudget: entity.RupeesToMoney(500000)}}, nil)
	m.expenseRepo.On("SumBySite", ctx, siteID).Return(entity.RupeesToMoney(7400), nil)
	m.attendanceRepo.On("SumWagesBySite", ctx, siteID).Return(entity.RupeesToMoney(1400), nil)
	m.attendanceRepo.On("CountPresentDaysBySite", ctx, siteID).Return(int64(2), nil)
	m.expenseRepo.On("FindBySite", ctx, siteID).Return([]*entity.MaterialExpense{}, nil)
	m.paymentRepo.On("FindClientPaymentsBySite", ctx, siteID).Return([]*entity.ClientPayment{}, nil)

	m.workerRepo.On("FindAll", ctx).Return([]*entity.Worker{{ID: workerID, Name: "Ramesh"}}, nil)
	m.attendanceRepo.On("SumWagesByWorker", ctx, workerID).Return(entity.RupeesToMoney(1400), nil)
	m.paymentRepo.On("SumWorkerPaymentsByWorker", ctx, workerID).Return(entity.Money(0), nil)

	m.paymentRepo.On("SumClientPayments", ctx).Return(entity.RupeesToMoney(100000), nil)
	m.paymentRepo.On("SumWorkerPayments", ctx).Return(entity.Money(0), nil)
	m.expenseRepo.On("SumAll", ctx).Return(entity.RupeesToMoney(7400), nil)

	m.exporter.On("ExportWorkbook", ctx, mock.MatchedBy(func(s *service.LedgerSnapshot) bool {
		return len(s.Sites) == 1 && len(s.Workers) == 1 && s.Portfolio != nil
	})).Return([]byte("xlsx-bytes"), nil)

	book, err := reports.ExportLedger(ctx, contractorActor())

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), book)
}

func TestReportService_ExportLedger_ExporterFailure(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()

	m.siteRepo.On("FindAll", ctx).Return([]*entity.Site{}, nil)
	m.workerRepo.On("FindAll", ctx).Return([]*entity.Worker{}, nil)
	m.paymentRepo.On("SumClientPayments", ctx).Return(entity.Money(0), nil)
	m.paymentRepo.On("SumWorkerPayments", ctx).Return(entity.Money(0), nil)
	m.expenseRepo.On("SumAll", ctx).Return(entity.Money(0), nil)
	m.exporter.On("ExportWorkbook", ctx, mock.Anything).Return(nil, errors.New("render failed"))

	_, err := reports.ExportLedger(ctx, contractorActor())

	assertErrorCode(t, err, domainerrors.ErrExportFailed)
}

func TestReportService_GeneratePaymentQR(t *testing.T) {
	reports, m := createTestReportService(t)
	ctx := context.Background()

	m.qrService.On("GeneratePaymentQR", "builder@upi", "Sharma Constructions", entity.RupeesToMoney(900), "wage settlement").
		Return([]byte("png-bytes"), nil)

	png, err := reports.GeneratePaymentQR(ctx, contractorActor(), &usecase.PaymentQRInput{
		PayeeVPA:  "builder@upi",
		PayeeName: "Sharma Constructions",
		Amount:    entity.RupeesToMoney(900),
		Note:      "wage settlement",
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestReportService_GeneratePaymentQR_MissingVPA(t *testing.T) {
	reports, _ := createTestReportService(t)

	_, err := reports.GeneratePaymentQR(context.Background(), contractorActor(), &usecase.PaymentQRInput{
		Amount: entity.RupeesToMoney(900),
	})

	assertErrorCode(t, err, domainerrors.ErrValidationFailed)
}

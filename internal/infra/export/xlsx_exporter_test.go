package export

import (
	"bytes"
	"context"
	"testing"

	"sitekhata/internal/domain/entity"
	"sitekhata/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSnapshot() *service.LedgerSnapshot {
	siteID := uuid.New()
	workerID := uuid.New()

	return &service.LedgerSnapshot{
		Sites: []*service.SiteSheet{
			{
				Site: &entity.Site{
					ID:              siteID,
					Name:            "Sharma Villa",
					ClientName:      "Mr. Sharma",
					StartDate:       entity.Day("2025-01-05"),
					ExpectedEndDate: entity.Day("2025-06-30"),
					Status:          entity.SiteStatusOngoing,
					EstimatedBudget: entity.RupeesToMoney(500000),
				},
				Financials: &entity.SiteFinancials{
					SiteID:          siteID,
					MaterialCost:    entity.RupeesToMoney(7400),
					LaborCost:       entity.RupeesToMoney(1400),
					TotalCost:       entity.RupeesToMoney(8800),
					RemainingBudget: entity.RupeesToMoney(491200),
					ManDays:         2,
				},
				Expenses: []*entity.MaterialExpense{
					{SiteID: siteID, Name: "Cement", Quantity: "50 bags", Cost: entity.RupeesToMoney(5000), Day: entity.Day("2025-01-10")},
				},
				Payments: []*entity.ClientPayment{
					{SiteID: siteID, Amount: entity.RupeesToMoney(100000), Mode: entity.PaymentModeBank, Day: entity.Day("2025-01-12")},
				},
			},
		},
		Workers: []*service.WorkerRow{
			{
				Worker: &entity.Worker{ID: workerID, Name: "Ramesh", Role: entity.WorkerRoleMistri, DailyWage: entity.RupeesToMoney(700), Mobile: "9876543210"},
				Balance: &entity.WorkerBalance{
					WorkerID:    workerID,
					TotalEarned: entity.RupeesToMoney(1400),
					TotalPaid:   entity.RupeesToMoney(900),
					Balance:     entity.RupeesToMoney(500),
				},
			},
		},
		Portfolio: &entity.PortfolioSummary{
			TotalReceived:      entity.RupeesToMoney(100000),
			TotalPaidToWorkers: entity.RupeesToMoney(900),
			TotalMaterialCost:  entity.RupeesToMoney(7400),
			NetProfit:          entity.RupeesToMoney(91700),
		},
	}
}

func TestXLSXExporter_ExportWorkbook(t *testing.T) {
	exporter := NewXLSXExporter()

	book, err := exporter.ExportWorkbook(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	require.NotEmpty(t, book)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Workers")
	assert.Contains(t, sheets, "Sharma Villa")

	netProfit, err := f.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "₹91,700", netProfit)

	workerName, err := f.GetCellValue("Workers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh", workerName)

	balance, err := f.GetCellValue("Workers", "G2")
	require.NoError(t, err)
	assert.Equal(t, "₹500", balance)

	client, err := f.GetCellValue("Sharma Villa", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Mr. Sharma", client)
}

func TestXLSXExporter_NilSnapshot(t *testing.T) {
	exporter := NewXLSXExporter()

	_, err := exporter.ExportWorkbook(context.Background(), nil)
	require.Error(t, err)
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Sharma Villa", expected: "Sharma Villa"},
		{name: "forbidden punctuation", input: "Plot 3/B: Phase?2", expected: "Plot 3 B  Phase 2"},
		{name: "truncated to 31", input: "An Extremely Long Construction Site Name", expected: "An Extremely Long Construction "},
		{name: "empty after cleanup", input: "???", expected: "Site"},
		{name: "collides with summary", input: "Summary", expected: "Summary (site)"},
		{name: "collides with workers", input: "Workers", expected: "Workers (site)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheetName(tt.input); got != tt.expected {
				t.Fatalf("sheetName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

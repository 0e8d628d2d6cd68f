package export

import (
	"context"
	"fmt"
	"strings"

	domainerrors "sitekhata/internal/domain/errors"
	"sitekhata/internal/domain/service"

	"github.com/xuri/excelize/v2"
)

// xlsxExporter renders a ledger snapshot into an Excel workbook with one
// summary sheet, one workers sheet and one sheet per site.
type xlsxExporter struct{}

// NewXLSXExporter is the constructor for xlsxExporter.
func NewXLSXExporter() service.LedgerExporter {
	return &xlsxExporter{}
}

const summarySheet = "Summary"

// ExportWorkbook renders the snapshot as an xlsx file.
func (e *xlsxExporter) ExportWorkbook(ctx context.Context, snapshot *service.LedgerSnapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, domainerrors.ErrExportFailed.WrapMessage("nil snapshot")
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	f.SetSheetName("Sheet1", summarySheet)
	e.writeSummarySheet(f, snapshot)
	e.writeWorkersSheet(f, snapshot.Workers)

	for _, sheet := range snapshot.Sites {
		if err := e.writeSiteSheet(f, sheet); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	return buf.Bytes(), nil
}

func (e *xlsxExporter) writeSummarySheet(f *excelize.File, snapshot *service.LedgerSnapshot) {
	setRow(f, summarySheet, 1, "Metric", "Amount")

	row := 2
	if p := snapshot.Portfolio; p != nil {
		setRow(f, summarySheet, row, "Total received from clients", p.TotalReceived.String())
		setRow(f, summarySheet, row+1, "Total paid to workers", p.TotalPaidToWorkers.String())
		setRow(f, summarySheet, row+2, "Total material cost", p.TotalMaterialCost.String())
		setRow(f, summarySheet, row+3, "Net profit", p.NetProfit.String())
		row += 4
	}

	setRow(f, summarySheet, row+1, "Sites", len(snapshot.Sites))
	setRow(f, summarySheet, row+2, "Workers", len(snapshot.Workers))

	_ = f.SetColWidth(summarySheet, "A", "A", 30)
	_ = f.SetColWidth(summarySheet, "B", "B", 18)
}

func (e *xlsxExporter) writeWorkersSheet(f *excelize.File, workers []*service.WorkerRow) {
	const sheet = "Workers"
	_, _ = f.NewSheet(sheet)

	setRow(f, sheet, 1, "Name", "Role", "Daily Wage", "Mobile", "Total Earned", "Total Paid", "Balance")

	for i, row := range workers {
		r := i + 2
		earned, paid, balance := "", "", ""
		if row.Balance != nil {
			earned = row.Balance.TotalEarned.String()
			paid = row.Balance.TotalPaid.String()
			balance = row.Balance.Balance.String()
		}
		setRow(f, sheet, r,
			row.Worker.Name,
			string(row.Worker.Role),
			row.Worker.DailyWage.String(),
			row.Worker.Mobile,
			earned,
			paid,
			balance,
		)
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "G", 16)
}

func (e *xlsxExporter) writeSiteSheet(f *excelize.File, sheet *service.SiteSheet) error {
	name := sheetName(sheet.Site.Name)
	if _, err := f.NewSheet(name); err != nil {
		return domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	setRow(f, name, 1, "Site", sheet.Site.Name)
	setRow(f, name, 2, "Client", sheet.Site.ClientName)
	setRow(f, name, 3, "Status", string(sheet.Site.Status))
	setRow(f, name, 4, "Start", sheet.Site.StartDate.String())
	setRow(f, name, 5, "Expected end", sheet.Site.ExpectedEndDate.String())
	setRow(f, name, 6, "Estimated budget", sheet.Site.EstimatedBudget.String())

	row := 8
	if fin := sheet.Financials; fin != nil {
		setRow(f, name, row, "Material cost", fin.MaterialCost.String())
		setRow(f, name, row+1, "Labor cost", fin.LaborCost.String())
		setRow(f, name, row+2, "Total cost", fin.TotalCost.String())
		setRow(f, name, row+3, "Remaining budget", fin.RemainingBudget.String())
		setRow(f, name, row+4, "Man-days", fin.ManDays)
		row += 6
	}

	setRow(f, name, row, "Material Expenses")
	setRow(f, name, row+1, "Day", "Name", "Quantity", "Cost")
	row += 2
	for _, exp := range sheet.Expenses {
		setRow(f, name, row, exp.Day.String(), exp.Name, exp.Quantity, exp.Cost.String())
		row++
	}

	row++
	setRow(f, name, row, "Client Payments")
	setRow(f, name, row+1, "Day", "Mode", "Note", "Amount")
	row += 2
	for _, pay := range sheet.Payments {
		setRow(f, name, row, pay.Day.String(), string(pay.Mode), pay.Note, pay.Amount.String())
		row++
	}

	_ = f.SetColWidth(name, "A", "A", 22)
	_ = f.SetColWidth(name, "B", "D", 18)

	return nil
}

// setRow writes values left to right starting at column A of the given row.
func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}

// sheetName sanitizes a site name into a legal Excel sheet name. Excel caps
// names at 31 characters and forbids a handful of punctuation characters.
func sheetName(name string) string {
	replacer := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")
	name = strings.TrimSpace(replacer.Replace(name))
	if name == "" {
		name = "Site"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if name == summarySheet || name == "Workers" {
		name = fmt.Sprintf("%s (site)", name[:min(len(name), 24)])
	}

	return name
}

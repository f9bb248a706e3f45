package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExportService turns daily reports into downloadable XLSX artifacts.
// It renders already-computed report data and never feeds back into the
// ledger or the bill state.
type ExportService struct {
	reports   *ReportService
	dir       string
	stallName string
}

// NewExportService creates a new export service
func NewExportService(reports *ReportService, dir, stallName string) *ExportService {
	return &ExportService{reports: reports, dir: dir, stallName: stallName}
}

// ExportFileName returns the artifact name for a report date.
func ExportFileName(date string) string {
	return fmt.Sprintf("Sales_Report_%s.xlsx", date)
}

// ExportDaily builds the date's report and writes it as an XLSX workbook,
// returning the file path. Dates without sales return ErrNoSales before
// anything is written.
func (s *ExportService) ExportDaily(ctx context.Context, date string) (string, error) {
	report, err := s.reports.BuildReport(ctx, date)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return "", err
	}

	f.SetCellValue(summary, "A1", s.stallName+" - Daily Sales Report")
	f.SetCellValue(summary, "A2", "Date")
	f.SetCellValue(summary, "B2", report.Date)
	f.SetCellValue(summary, "A3", "Total Orders")
	f.SetCellValue(summary, "B3", report.OrderCount)
	f.SetCellValue(summary, "A4", "Cash Sales")
	f.SetCellValue(summary, "B4", report.CashTotal)
	f.SetCellValue(summary, "A5", "Online Sales")
	f.SetCellValue(summary, "B5", report.OnlineTotal)
	f.SetCellValue(summary, "A6", "Grand Total")
	f.SetCellValue(summary, "B6", report.GrandTotal)

	const transactions = "Transactions"
	if _, err := f.NewSheet(transactions); err != nil {
		return "", err
	}

	headers := []string{"Time", "Receipt No", "Items", "Payment", "Total (Rs.)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(transactions, cell, h)
	}
	for row, entry := range report.Sales {
		values := []interface{}{entry.Time, entry.ReceiptNo, entry.Items, entry.Payment, entry.Total}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(transactions, cell, v)
		}
	}
	f.SetColWidth(transactions, "C", "C", 40)

	path := filepath.Join(s.dir, ExportFileName(date))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}

	return path, nil
}

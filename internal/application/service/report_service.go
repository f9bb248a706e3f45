package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/enum"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
	"github.com/stallworks/stallpos-api/pkg/apperror"
)

// ErrNoSales is returned when a report date has no ledger entries at all.
// It is distinct from a report whose recognized-payment totals are zero.
var ErrNoSales = apperror.NewAppError(http.StatusNotFound, "No sales on this date")

// ReportService aggregates the sale ledger into date-scoped reports
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// DailyReport is a date-scoped aggregation of the ledger
type DailyReport struct {
	Date        string      `json:"date"`
	OrderCount  int64       `json:"order_count"`
	CashTotal   int64       `json:"cash_total"`
	OnlineTotal int64       `json:"online_total"`
	GrandTotal  int64       `json:"grand_total"`
	Sales       []SaleEntry `json:"sales"`
}

// SaleEntry is one transaction row of the daily report
type SaleEntry struct {
	ReceiptNo string `json:"receipt_no"`
	Time      string `json:"time"`
	Items     string `json:"items"`
	Total     int64  `json:"total"`
	Payment   string `json:"payment"`
}

// ValidateDate checks a report date string (YYYY-MM-DD).
func ValidateDate(date string) error {
	if date == "" {
		return apperror.NewBadRequestError("Select a date")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}
	return nil
}

// BuildReport filters the ledger by business date and computes per-payment
// and grand totals plus a transaction listing. A date with no entries
// returns ErrNoSales.
//
// Sales tagged with an unrecognized payment count toward the order count
// but toward neither subtotal, so the grand total (cash + online) can
// undercount them. That matches how the stall has always kept its books.
func (s *ReportService) BuildReport(ctx context.Context, date string) (*DailyReport, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	totals, err := s.saleRepo.TotalsByPayment(ctx, date)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{Date: date}
	for _, row := range totals {
		report.OrderCount += row.OrderCount
		switch row.Payment.Normalize() {
		case enum.PaymentCash:
			report.CashTotal += row.Total
		case enum.PaymentOnline:
			report.OnlineTotal += row.Total
		}
	}

	if report.OrderCount == 0 {
		return nil, ErrNoSales
	}

	report.GrandTotal = report.CashTotal + report.OnlineTotal

	sales, err := s.saleRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	report.Sales = make([]SaleEntry, 0, len(sales))
	for i := range sales {
		report.Sales = append(report.Sales, newSaleEntry(&sales[i]))
	}

	return report, nil
}

// newSaleEntry formats a ledger entry for display: wall-clock time,
// "Name (xQty)" item summary and an upper-cased payment label with an
// UNKNOWN fallback.
func newSaleEntry(sale *entity.Sale) SaleEntry {
	names := make([]string, 0, len(sale.Items))
	for _, item := range sale.Items {
		names = append(names, fmt.Sprintf("%s (x%d)", item.Name, item.Qty))
	}

	return SaleEntry{
		ReceiptNo: sale.ReceiptNo,
		Time:      sale.RecordedAt.Format("15:04"),
		Items:     strings.Join(names, ", "),
		Total:     sale.Total,
		Payment:   sale.Payment.Label(),
	}
}

// GetSale returns a single ledger entry with its item snapshot.
func (s *ReportService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns the raw ledger with pagination, optionally filtered
// by business date.
func (s *ReportService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	if params.Date != "" {
		if err := ValidateDate(params.Date); err != nil {
			return nil, 0, err
		}
	}
	return s.saleRepo.List(ctx, params)
}

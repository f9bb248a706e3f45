package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/enum"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
	infraRepo "github.com/stallworks/stallpos-api/internal/infrastructure/repository"
	"github.com/stallworks/stallpos-api/pkg/pagination"
)

func TestValidateDate(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid date", "2024-01-05", false},
		{"empty date", "", true},
		{"wrong format", "05/01/2024", true},
		{"not a date", "today", true},
		{"impossible day", "2024-02-31", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDate(tc.date)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateDate(%q) = %v, wantErr %v", tc.date, err, tc.wantErr)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	reports := NewReportService(infraRepo.NewSaleRepository(db))

	// Two sales on the 5th, one on the 6th.
	mustAppendSale(t, db, "2024-01-05", "09:15", enum.PaymentCash,
		entity.SaleItem{Name: "Tea", Price: 20, Qty: 2})
	mustAppendSale(t, db, "2024-01-05", "13:40", enum.PaymentOnline,
		entity.SaleItem{Name: "Sandwich", Price: 60, Qty: 1})
	mustAppendSale(t, db, "2024-01-06", "10:05", enum.PaymentCash,
		entity.SaleItem{Name: "Samosa", Price: 15, Qty: 1})

	t.Run("aggregates one date only", func(t *testing.T) {
		report, err := reports.BuildReport(ctx, "2024-01-05")
		if err != nil {
			t.Fatalf("BuildReport: %v", err)
		}

		if report.OrderCount != 2 {
			t.Errorf("expected 2 orders, got %d", report.OrderCount)
		}
		if report.CashTotal != 40 {
			t.Errorf("expected cash total 40, got %d", report.CashTotal)
		}
		if report.OnlineTotal != 60 {
			t.Errorf("expected online total 60, got %d", report.OnlineTotal)
		}
		if report.GrandTotal != 100 {
			t.Errorf("expected grand total 100, got %d", report.GrandTotal)
		}
	})

	t.Run("lists transactions oldest first", func(t *testing.T) {
		report, err := reports.BuildReport(ctx, "2024-01-05")
		if err != nil {
			t.Fatalf("BuildReport: %v", err)
		}

		if len(report.Sales) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(report.Sales))
		}
		first := report.Sales[0]
		if first.Time != "09:15" {
			t.Errorf("expected first entry at 09:15, got %s", first.Time)
		}
		if first.Items != "Tea (x2)" {
			t.Errorf("expected item summary %q, got %q", "Tea (x2)", first.Items)
		}
		if first.Payment != "CASH" {
			t.Errorf("expected payment label CASH, got %s", first.Payment)
		}
	})

	t.Run("date without sales returns ErrNoSales", func(t *testing.T) {
		_, err := reports.BuildReport(ctx, "2024-01-07")
		if !errors.Is(err, ErrNoSales) {
			t.Errorf("expected ErrNoSales, got %v", err)
		}
	})

	t.Run("invalid date is rejected before touching the ledger", func(t *testing.T) {
		if _, err := reports.BuildReport(ctx, "garbage"); err == nil {
			t.Error("expected error for invalid date")
		}
	})
}

// A legacy entry tagged with an unrecognized payment counts as an order but
// toward neither subtotal.
func TestBuildReportUnknownPayment(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	reports := NewReportService(infraRepo.NewSaleRepository(db))

	mustAppendSale(t, db, "2024-03-01", "11:00", enum.PaymentCash,
		entity.SaleItem{Name: "Tea", Price: 20, Qty: 1})
	mustAppendSale(t, db, "2024-03-01", "11:30", enum.PaymentMethod("card"),
		entity.SaleItem{Name: "Coffee", Price: 30, Qty: 1})

	report, err := reports.BuildReport(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.OrderCount != 2 {
		t.Errorf("expected 2 orders, got %d", report.OrderCount)
	}
	if report.CashTotal != 20 || report.OnlineTotal != 0 {
		t.Errorf("unexpected subtotals: cash=%d online=%d", report.CashTotal, report.OnlineTotal)
	}
	if report.GrandTotal != 20 {
		t.Errorf("expected grand total 20, got %d", report.GrandTotal)
	}
	if report.Sales[1].Payment != "UNKNOWN" {
		t.Errorf("expected UNKNOWN label, got %s", report.Sales[1].Payment)
	}
}

func TestGetSale(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	reports := NewReportService(infraRepo.NewSaleRepository(db))

	recorded := mustAppendSale(t, db, "2024-01-05", "09:00", enum.PaymentCash,
		entity.SaleItem{Name: "Tea", Price: 20, Qty: 1})

	t.Run("returns the entry with its snapshot", func(t *testing.T) {
		sale, err := reports.GetSale(ctx, recorded.ID)
		if err != nil {
			t.Fatalf("GetSale: %v", err)
		}
		if sale.Total != 20 || len(sale.Items) != 1 {
			t.Errorf("unexpected sale: %+v", sale)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		if _, err := reports.GetSale(ctx, uuid.New()); err == nil {
			t.Error("expected not found error")
		}
	})
}

func TestListSales(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	reports := NewReportService(infraRepo.NewSaleRepository(db))

	mustAppendSale(t, db, "2024-01-05", "09:00", enum.PaymentCash,
		entity.SaleItem{Name: "Tea", Price: 20, Qty: 1})
	mustAppendSale(t, db, "2024-01-06", "09:00", enum.PaymentOnline,
		entity.SaleItem{Name: "Coffee", Price: 30, Qty: 1})

	t.Run("date filter narrows the ledger", func(t *testing.T) {
		params := &repository.SaleFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
			Date:       "2024-01-06",
		}
		sales, total, err := reports.ListSales(ctx, params)
		if err != nil {
			t.Fatalf("ListSales: %v", err)
		}
		if total != 1 || len(sales) != 1 {
			t.Fatalf("expected 1 sale, got total=%d len=%d", total, len(sales))
		}
		if sales[0].BusinessDate != "2024-01-06" {
			t.Errorf("unexpected sale: %+v", sales[0])
		}
		if len(sales[0].Items) != 1 {
			t.Errorf("expected items preloaded, got %+v", sales[0].Items)
		}
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		params := &repository.SaleFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		}
		_, total, err := reports.ListSales(ctx, params)
		if err != nil {
			t.Fatalf("ListSales: %v", err)
		}
		if total != 2 {
			t.Errorf("expected 2 sales, got %d", total)
		}
	})

	t.Run("invalid filter date is rejected", func(t *testing.T) {
		params := &repository.SaleFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
			Date:       "01-05-2024",
		}
		if _, _, err := reports.ListSales(ctx, params); err == nil {
			t.Error("expected error for invalid date filter")
		}
	})
}

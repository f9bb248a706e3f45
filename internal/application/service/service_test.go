package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/stallworks/stallpos-api/internal/config"
	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/enum"
	"github.com/stallworks/stallpos-api/internal/infrastructure/database"
	infraRepo "github.com/stallworks/stallpos-api/internal/infrastructure/repository"
)

// newTestDB opens a throwaway SQLite database in a temp dir with all
// migrations applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "stallpos_test.db"),
	}

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// mustAddItem seeds a menu item or fails the test.
func mustAddItem(t *testing.T, catalog *CatalogService, name string, price int64) *entity.MenuItem {
	t.Helper()

	item, err := catalog.AddItem(context.Background(), &AddItemInput{Name: name, Price: price})
	if err != nil {
		t.Fatalf("failed to add menu item %q: %v", name, err)
	}
	return item
}

// mustAppendSale writes a ledger entry directly, bypassing the bill flow,
// so report tests can control timestamps and payment tags.
func mustAppendSale(t *testing.T, db *gorm.DB, date string, clock string, payment enum.PaymentMethod, items ...entity.SaleItem) *entity.Sale {
	t.Helper()

	recordedAt, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		t.Fatalf("bad test timestamp %s %s: %v", date, clock, err)
	}

	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Qty)
	}

	sale := &entity.Sale{
		ReceiptNo:    "RCP-" + date + "-" + clock,
		RecordedAt:   recordedAt,
		BusinessDate: date,
		Register:     "main",
		Total:        total,
		Payment:      payment,
		Items:        items,
	}

	repo := infraRepo.NewSaleRepository(db)
	if err := repo.Append(context.Background(), sale); err != nil {
		t.Fatalf("failed to append sale: %v", err)
	}
	return sale
}

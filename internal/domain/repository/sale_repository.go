package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/enum"
	"github.com/stallworks/stallpos-api/pkg/pagination"
)

// SaleRepository defines the interface for the append-only sale ledger.
// Entries are never updated; the only removal is the wholesale purge of a
// business date.
type SaleRepository interface {
	// Append records a completed sale together with its item snapshot.
	Append(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// List returns sales with their items, oldest first, optionally
	// filtered by business date.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListByDate returns every sale for the business date, oldest first,
	// items included.
	ListByDate(ctx context.Context, date string) ([]entity.Sale, error)
	// TotalsByPayment aggregates order counts and totals per payment
	// method for the business date.
	TotalsByPayment(ctx context.Context, date string) ([]PaymentTotalResult, error)
	// DeleteByDate removes every sale (and its items) recorded on the
	// business date in one transaction, returning how many sales matched.
	DeleteByDate(ctx context.Context, date string) (int64, error)
}

// SaleFilterParams contains filtering parameters for ledger queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Date       string
	Payment    *enum.PaymentMethod
}

// PaymentTotalResult is one aggregation row of the daily report
type PaymentTotalResult struct {
	Payment    enum.PaymentMethod `json:"payment"`
	OrderCount int64              `json:"order_count"`
	Total      int64              `json:"total"`
}

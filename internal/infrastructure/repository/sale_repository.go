package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	domainRepo "github.com/stallworks/stallpos-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Append(ctx context.Context, sale *entity.Sale) error {
	// Items ride along in the same insert; gorm fills SaleID via the
	// association, so the snapshot lands atomically with the sale row.
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Date != "" {
		query = query.Where("business_date = ?", params.Date)
	}
	if params.Payment != nil {
		query = query.Where("payment = ?", *params.Payment)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("recorded_at ASC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListByDate(ctx context.Context, date string) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("business_date = ?", date).
		Order("recorded_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) TotalsByPayment(ctx context.Context, date string) ([]domainRepo.PaymentTotalResult, error) {
	var results []domainRepo.PaymentTotalResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment,
			COUNT(id) as order_count,
			COALESCE(SUM(total), 0) as total
		FROM sales
		WHERE business_date = ?
		GROUP BY payment
	`, date).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *saleRepository) DeleteByDate(ctx context.Context, date string) (int64, error) {
	var deleted int64

	// All-or-nothing for the matched subset: items and sales go in one
	// transaction or not at all.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("sale_id IN (?)", tx.Model(&entity.Sale{}).Select("id").Where("business_date = ?", date)).
			Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}

		res := tx.Where("business_date = ?", date).Delete(&entity.Sale{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})

	if err != nil {
		return 0, err
	}
	return deleted, nil
}

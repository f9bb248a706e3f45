package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stallworks/stallpos-api/internal/domain/enum"
)

// Sale is an immutable, finalized record of a completed transaction.
// Entries are only ever appended or removed wholesale by business date;
// there is no soft delete and no update path.
type Sale struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo string    `gorm:"size:100;unique;not null" json:"receipt_no"`
	// RecordedAt is the completion instant; BusinessDate is its calendar
	// date (YYYY-MM-DD) fixed once at completion so reporting never
	// re-derives dates from timestamps.
	RecordedAt   time.Time          `gorm:"not null;index" json:"recorded_at"`
	BusinessDate string             `gorm:"size:10;not null;index" json:"business_date"`
	Register     string             `gorm:"size:64;not null;default:main" json:"register"`
	Total        int64              `gorm:"not null" json:"total"`
	Payment      enum.PaymentMethod `gorm:"size:16;not null;default:unknown" json:"payment"`
	CreatedAt    time.Time          `json:"created_at"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a detached snapshot of one bill line at completion time.
// It carries no menu item reference: later catalog edits must never
// change a recorded sale.
type SaleItem struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	Name   string    `gorm:"size:255;not null" json:"name"`
	Price  int64     `gorm:"not null" json:"price"`
	Qty    int       `gorm:"not null" json:"qty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

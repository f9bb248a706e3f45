package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
)

// MenuRepository defines the interface for menu catalog data operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// List returns the catalog in insertion order; empty when nothing is stored.
	List(ctx context.Context) ([]entity.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

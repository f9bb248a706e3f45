package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/domain/entity"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
	"github.com/stallworks/stallpos-api/pkg/apperror"
)

// Menu item prices are whole rupees within the stall's fixed range.
const (
	MinItemPrice = 10
	MaxItemPrice = 200
)

// CatalogService handles menu catalog operations
type CatalogService struct {
	menuRepo repository.MenuRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(menuRepo repository.MenuRepository) *CatalogService {
	return &CatalogService{menuRepo: menuRepo}
}

// AddItemInput represents the add menu item input
type AddItemInput struct {
	Name  string
	Price int64
}

// AddItem validates and persists a new menu item. The name must be
// non-empty after trimming and the price within [MinItemPrice, MaxItemPrice].
func (s *CatalogService) AddItem(ctx context.Context, input *AddItemInput) (*entity.MenuItem, error) {
	name := strings.TrimSpace(input.Name)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "name",
			Message: "Name must not be empty",
		})
	}
	if input.Price < MinItemPrice || input.Price > MaxItemPrice {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "Price must be between Rs. 10 and Rs. 200",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := &entity.MenuItem{
		Name:  name,
		Price: input.Price,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ListItems returns the catalog in insertion order; empty when nothing
// has been stored yet.
func (s *CatalogService) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// GetItem retrieves a single menu item
func (s *CatalogService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// DeleteItem removes a menu item by id. Deleting an absent id is a no-op;
// already-recorded sales keep their snapshot either way.
func (s *CatalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.menuRepo.Delete(ctx, id)
}

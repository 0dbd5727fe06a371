package repository

import (
	"context"

	"farmnaturals/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CategoryRepository persists categories. Every mutation is a single statement.
type CategoryRepository interface {
	// List returns all categories ordered by id ascending.
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	// Update replaces every field of the category with the given id.
	Update(ctx context.Context, category *entity.Category) error
	// Delete removes the category. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uint) error
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category     string // exact category name, empty for all
	FeaturedOnly bool
}

// ProductRepository persists products.
type ProductRepository interface {
	// List returns products matching the filter ordered by id ascending.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update replaces every field of the product with the given id.
	Update(ctx context.Context, product *entity.Product) error
	// Delete removes the product. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uint) error
}

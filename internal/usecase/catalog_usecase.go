package usecase

import (
	"context"

	"farmnaturals/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CategoryInput is the full set of writable category fields.
type CategoryInput struct {
	Name        string
	Description string
}

// ProductInput is the full set of writable product fields.
type ProductInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Unit        string
	Stock       int
	StockUnit   string
	Description string
	ImageURL    string
	Featured    bool
}

// ExportOutput is a rendered catalog file.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StorefrontPage is what a category page shows.
type StorefrontPage struct {
	Category *entity.Category
	Products []*entity.Product
	Featured []*entity.Product
}

// CatalogUsecase defines category and product management.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uint) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uint, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	// ListProducts returns all products, or only those of category when it is not empty.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)
	ListFeaturedProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	ExportProducts(ctx context.Context) (*ExportOutput, error)

	// Storefront loads the data rendered on a category page. The name match ignores case.
	Storefront(ctx context.Context, categoryName string) (*StorefrontPage, error)
}

package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	exporter     service.ProductExporter
	now          func() time.Time
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Exporter     service.ProductExporter
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		exporter:     params.Exporter,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Categories ---

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCategoryError(err, "failed to get category")
	}

	return category, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if category.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uint, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if category.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, mapCategoryError(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory succeeds whether or not the category existed.
func (srv *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}

// --- Products ---

func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{Category: strings.TrimSpace(category)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) ListFeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{FeaturedOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to get product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uint, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct succeeds whether or not the product existed.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// ExportProducts renders the whole catalog through the configured exporter.
func (srv *catalogService) ExportProducts(ctx context.Context) (*usecase.ExportOutput, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for export")
	}

	var buf bytes.Buffer
	if err := srv.exporter.Export(&buf, products); err != nil {
		srv.log(ctx).Error("Failed to export products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to export products")
	}

	return &usecase.ExportOutput{
		Filename:    fmt.Sprintf("products-%s.xlsx", srv.now().UTC().Format("20060102-150405")),
		ContentType: srv.exporter.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// Storefront loads a category page. Categories are few, so the name match is done in memory.
func (srv *catalogService) Storefront(ctx context.Context, categoryName string) (*usecase.StorefrontPage, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	var category *entity.Category
	for _, c := range categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(categoryName)) {
			category = c

			break
		}
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}

	products, err := srv.productRepo.List(ctx, repository.ProductFilter{Category: category.Name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	featured := make([]*entity.Product, 0)
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	return &usecase.StorefrontPage{
		Category: category,
		Products: products,
		Featured: featured,
	}, nil
}

func buildProduct(input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Unit:        input.Unit,
		Stock:       input.Stock,
		StockUnit:   input.StockUnit,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
	}

	switch {
	case product.Name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	case product.Category == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("product category is required")
	case product.Price.IsNegative():
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case product.Stock < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	return product, nil
}

func mapCategoryError(err error, message string) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return errors.Wrap(err, message)
}

func mapProductError(err error, message string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, message)
}

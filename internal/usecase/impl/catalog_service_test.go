package impl

import (
	"context"
	"io"
	"testing"
	"time"

	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/usecase"
	mockRepo "farmnaturals/internal/mocks/repository"
	mockService "farmnaturals/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	service      *catalogService
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	exporter     *mockService.MockProductExporter
}

func createTestCatalogService(t *testing.T) *catalogFixture {
	t.Helper()

	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	exporter := mockService.NewMockProductExporter(t)

	svc := NewCatalogService(CatalogServiceParams{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		Exporter:     exporter,
		Logger:       newDiscardLogger(),
	}).(*catalogService)

	return &catalogFixture{
		service:      svc,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		exporter:     exporter,
	}
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:     "Raw Honey",
		Category: "Honey",
		Price:    decimal.RequireFromString("12.50"),
		Unit:     "jar",
		Stock:    10,
	}
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.GetCategory(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, &entity.Category{Name: "Honey", Description: "Local honey"}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: " Honey ", Description: "Local honey"})

	require.NoError(t, err)
	assert.Equal(t, "Honey", category.Name)
}

func TestCatalogService_CreateCategory_RequiresName(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateCategory(context.Background(), &usecase.CategoryInput{Name: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Update(ctx, &entity.Category{ID: 5, Name: "Eggs"}).
		Return(repository.ErrCategoryNotFound)

	_, err := fx.service.UpdateCategory(ctx, 5, &usecase.CategoryInput{Name: "Eggs"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_DeleteIsIdempotent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Delete(ctx, uint(404)).Return(nil)
	fx.productRepo.EXPECT().Delete(ctx, uint(404)).Return(nil)

	require.NoError(t, fx.service.DeleteCategory(ctx, 404))
	require.NoError(t, fx.service.DeleteProduct(ctx, 404))
}

func TestCatalogService_ListProducts_Filter(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	products := []*entity.Product{{ID: 1, Name: "Raw Honey", Category: "Honey"}}

	fx.productRepo.EXPECT().List(ctx, repository.ProductFilter{Category: "Honey"}).Return(products, nil)

	got, err := fx.service.ListProducts(ctx, " Honey ")

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{"missing name", func(in *usecase.ProductInput) { in.Name = "" }},
		{"missing category", func(in *usecase.ProductInput) { in.Category = " " }},
		{"negative price", func(in *usecase.ProductInput) { in.Price = decimal.NewFromInt(-1) }},
		{"negative stock", func(in *usecase.ProductInput) { in.Stock = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			input := validProductInput()
			tt.mutate(input)

			_, err := fx.service.CreateProduct(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == 3 && p.Name == "Raw Honey" && p.Price.Equal(decimal.RequireFromString("12.5"))
		})).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, 3, validProductInput())

	require.NoError(t, err)
	assert.Equal(t, uint(3), product.ID)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, 3, validProductInput())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ExportProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.service.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	ctx := context.Background()
	products := []*entity.Product{{ID: 1, Name: "Raw Honey"}}

	fx.productRepo.EXPECT().List(ctx, repository.ProductFilter{}).Return(products, nil)
	fx.exporter.EXPECT().
		Export(mock.Anything, products).
		Run(func(w io.Writer, _ []*entity.Product) {
			_, _ = w.Write([]byte("xlsx-bytes"))
		}).
		Return(nil)
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	out, err := fx.service.ExportProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, "products-20260301-093000.xlsx", out.Filename)
	assert.Equal(t, []byte("xlsx-bytes"), out.Data)
}

func TestCatalogService_ExportProducts_ExporterError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().List(ctx, repository.ProductFilter{}).Return(nil, nil)
	fx.exporter.EXPECT().Export(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.ExportProducts(ctx)

	assert.Error(t, err)
}

func TestCatalogService_Storefront(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	honey := &entity.Category{ID: 2, Name: "Honey"}
	products := []*entity.Product{
		{ID: 1, Name: "Raw Honey", Category: "Honey", Featured: true},
		{ID: 2, Name: "Comb Honey", Category: "Honey"},
	}

	fx.categoryRepo.EXPECT().List(ctx).Return([]*entity.Category{{ID: 1, Name: "Eggs"}, honey}, nil)
	fx.productRepo.EXPECT().List(ctx, repository.ProductFilter{Category: "Honey"}).Return(products, nil)

	page, err := fx.service.Storefront(ctx, "honey")

	require.NoError(t, err)
	assert.Equal(t, honey, page.Category)
	assert.Len(t, page.Products, 2)
	require.Len(t, page.Featured, 1)
	assert.Equal(t, "Raw Honey", page.Featured[0].Name)
}

func TestCatalogService_Storefront_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().List(ctx).Return([]*entity.Category{{ID: 1, Name: "Eggs"}}, nil)

	_, err := fx.service.Storefront(ctx, "Honey")

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

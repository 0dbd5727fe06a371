package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apimiddleware "farmnaturals/internal/delivery/api/middleware"
	"farmnaturals/internal/delivery/api/render"
	"farmnaturals/internal/delivery/api/validator"
	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/service"
	mockUsecase "farmnaturals/internal/mocks/usecase"
	"farmnaturals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer

	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/health", HealthCheck)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		identity := mockUsecase.NewMockIdentityUsecase(t)
		identity.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Email: "a@example.com", Password: "secret"}).
			Return(&entity.User{ID: 1, Email: "a@example.com"}, nil)

		e := newTestEcho(t)
		e.POST("/register", NewAuthHandler(AuthHandlerParams{IdentityUC: identity}).Register)

		rec := serve(e, jsonRequest(http.MethodPost, "/register", `{"email":"a@example.com","password":"secret"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
	})

	t.Run("duplicate email is a bad request", func(t *testing.T) {
		identity := mockUsecase.NewMockIdentityUsecase(t)
		identity.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyRegistered)

		e := newTestEcho(t)
		e.POST("/register", NewAuthHandler(AuthHandlerParams{IdentityUC: identity}).Register)

		rec := serve(e, jsonRequest(http.MethodPost, "/register", `{"email":"a@example.com","password":"secret"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMAIL_ALREADY_REGISTERED", errorCode(t, rec))
	})

	t.Run("invalid email never reaches the usecase", func(t *testing.T) {
		identity := mockUsecase.NewMockIdentityUsecase(t)

		e := newTestEcho(t)
		e.POST("/register", NewAuthHandler(AuthHandlerParams{IdentityUC: identity}).Register)

		rec := serve(e, jsonRequest(http.MethodPost, "/register", `{"email":"nope","password":"secret"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestAuthHandler_Token(t *testing.T) {
	form := url.Values{"username": {"root@example.com"}, "password": {"pw"}}

	t.Run("issues a bearer token", func(t *testing.T) {
		identity := mockUsecase.NewMockIdentityUsecase(t)
		identity.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "root@example.com", Password: "pw"}).
			Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: "bearer", IsAdmin: true}, nil)

		e := newTestEcho(t)
		e.POST("/token", NewAuthHandler(AuthHandlerParams{IdentityUC: identity}).Token)

		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := serve(e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"jwt","token_type":"bearer","is_admin":true}`, rec.Body.String())
	})

	t.Run("wrong credentials are unauthorized", func(t *testing.T) {
		identity := mockUsecase.NewMockIdentityUsecase(t)
		identity.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		e := newTestEcho(t)
		e.POST("/token", NewAuthHandler(AuthHandlerParams{IdentityUC: identity}).Token)

		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := serve(e, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	t.Run("passes every field through", func(t *testing.T) {
		catalog := mockUsecase.NewMockCatalogUsecase(t)
		catalog.EXPECT().
			CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
				return in.Name == "Kale" && in.Category == "Greens" && in.Price.Equal(decimal.RequireFromString("3.25")) &&
					in.Stock == 10 && in.Featured
			})).
			Return(&entity.Product{ID: 3, Name: "Kale", Category: "Greens", Price: decimal.RequireFromString("3.25"), Stock: 10, Featured: true}, nil)

		e := newTestEcho(t)
		e.POST("/products", NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalog}).CreateProduct)

		rec := serve(e, jsonRequest(http.MethodPost, "/products",
			`{"name":"Kale","category":"Greens","price":3.25,"stock":10,"featured":true}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var body ProductResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, uint(3), body.ID)
		assert.Contains(t, rec.Body.String(), `"price":"3.25"`)
	})

	t.Run("missing price is rejected", func(t *testing.T) {
		catalog := mockUsecase.NewMockCatalogUsecase(t)

		e := newTestEcho(t)
		e.POST("/products", NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalog}).CreateProduct)

		rec := serve(e, jsonRequest(http.MethodPost, "/products", `{"name":"Kale","category":"Greens"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "price is required")
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		e := newTestEcho(t)
		e.GET("/products/:id", NewCatalogHandler(CatalogHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t)}).GetProduct)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/products/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		catalog := mockUsecase.NewMockCatalogUsecase(t)
		catalog.EXPECT().GetProduct(mock.Anything, uint(9)).Return(nil, domainerrors.ErrProductNotFound)

		e := newTestEcho(t)
		e.GET("/products/:id", NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalog}).GetProduct)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/products/9", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(t, rec))
	})
}

func TestCatalogHandler_ListPublicProducts(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	catalog.EXPECT().ListProducts(mock.Anything, "Honey").Return([]*entity.Product{{ID: 1, Name: "Clover"}}, nil)

	e := newTestEcho(t)
	e.GET("/products/public", NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalog}).ListPublicProducts)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/products/public?category=Honey", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Clover", body[0].Name)
}

func TestCatalogHandler_ExportProducts(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	catalog.EXPECT().ExportProducts(mock.Anything).Return(&usecase.ExportOutput{
		Filename:    "products-20260101-000000.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}, nil)

	e := newTestEcho(t)
	e.GET("/products/export", NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalog}).ExportProducts)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/products/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="products-20260101-000000.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestCatalogHandler_DeleteCategory(t *testing.T) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	catalog.EXPECT().DeleteCategory(mock.Anything, uint(4)).Return(nil)

	e := newTestEcho(t)
	e.DELETE("/categories/:id", NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalog}).DeleteCategory)

	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/categories/4", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Category deleted successfully"}`, rec.Body.String())
}

func TestStorefrontHandler_CategoryPage(t *testing.T) {
	t.Run("renders html", func(t *testing.T) {
		catalog := mockUsecase.NewMockCatalogUsecase(t)
		catalog.EXPECT().Storefront(mock.Anything, "honey").Return(&usecase.StorefrontPage{
			Category: &entity.Category{Name: "Honey"},
			Products: []*entity.Product{{Name: "Clover", Price: decimal.NewFromInt(9)}},
		}, nil)

		e := newTestEcho(t)
		e.GET("/shop/:category", NewStorefrontHandler(catalog).CategoryPage)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/shop/honey", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Contains(t, rec.Body.String(), "Clover")
	})

	t.Run("unknown category", func(t *testing.T) {
		catalog := mockUsecase.NewMockCatalogUsecase(t)
		catalog.EXPECT().Storefront(mock.Anything, "rocks").Return(nil, domainerrors.ErrCategoryNotFound)

		e := newTestEcho(t)
		e.GET("/shop/:category", NewStorefrontHandler(catalog).CategoryPage)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/shop/rocks", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStorefrontHandler_AdminPage(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/admin", NewStorefrontHandler(mockUsecase.NewMockCatalogUsecase(t)).AdminPage)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FarmNaturals Admin")
}

func TestCartHandler_AddToCart(t *testing.T) {
	t.Run("returns the accumulated quantity", func(t *testing.T) {
		cart := mockUsecase.NewMockCartUsecase(t)
		cart.EXPECT().
			AddToCart(mock.Anything, &usecase.AddToCartInput{Email: "a@example.com", ProductName: "Eggs", Quantity: 3}).
			Return(&usecase.AddToCartOutput{Email: "a@example.com", ProductName: "Eggs", Quantity: 5}, nil)

		e := newTestEcho(t)
		e.POST("/cart/add", NewCartHandler(cart).AddToCart)

		rec := serve(e, jsonRequest(http.MethodPost, "/cart/add", `{"email":"a@example.com","product_name":"Eggs","quantity":3}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Product added to cart","email":"a@example.com","product_name":"Eggs","quantity":5}`, rec.Body.String())
	})

	t.Run("negative quantity", func(t *testing.T) {
		e := newTestEcho(t)
		e.POST("/cart/add", NewCartHandler(mockUsecase.NewMockCartUsecase(t)).AddToCart)

		rec := serve(e, jsonRequest(http.MethodPost, "/cart/add", `{"email":"a@example.com","product_name":"Eggs","quantity":-1}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		e := newTestEcho(t)
		e.POST("/cart/add", NewCartHandler(mockUsecase.NewMockCartUsecase(t)).AddToCart)

		rec := serve(e, jsonRequest(http.MethodPost, "/cart/add", `{"quantity":"many"`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	cart := mockUsecase.NewMockCartUsecase(t)
	cart.EXPECT().ClearCart(mock.Anything, "a@example.com").Return(int64(2), nil)

	e := newTestEcho(t)
	e.DELETE("/cart/:email", NewCartHandler(cart).ClearCart)

	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/cart/a@example.com", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cart cleared"}`, rec.Body.String())
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		orders := mockUsecase.NewMockOrderUsecase(t)
		orders.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
				return in.Email == "a@example.com" && len(in.Cart) == 2 &&
					string(in.Cart[0]) == `{"product_name":"Eggs","quantity":2,"price":4.5,"image_url":"/uploads/eggs.png","category":"Dairy"}` &&
					string(in.Cart[1]) == `{"name":"Raw Honey","quantity":"2","price":"12.50"}` &&
					json.Valid(in.OrderData) && in.PaymentMethod == "card"
			})).
			Return(&entity.Order{OrderNumber: "FN2026-ABCDEFGH"}, nil)

		e := newTestEcho(t)
		e.POST("/orders/create", NewOrderHandler(OrderHandlerParams{OrderUC: orders}).CreateOrder)

		rec := serve(e, jsonRequest(http.MethodPost, "/orders/create",
			`{"email":"a@example.com","orderData":{"address":"1 Farm Rd"},"cart":[{"product_name":"Eggs","quantity":2,"price":4.5,"image_url":"/uploads/eggs.png","category":"Dairy"},{"name":"Raw Honey","quantity":"2","price":"12.50"}],"payment_method":"card"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Order created successfully","order_number":"FN2026-ABCDEFGH"}`, rec.Body.String())
	})

	t.Run("storage failure is opaque", func(t *testing.T) {
		orders := mockUsecase.NewMockOrderUsecase(t)
		orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderCreationFailed)

		e := newTestEcho(t)
		e.POST("/orders/create", NewOrderHandler(OrderHandlerParams{OrderUC: orders}).CreateOrder)

		rec := serve(e, jsonRequest(http.MethodPost, "/orders/create", `{"email":"a@example.com","cart":[]}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "details")
	})
}

func TestOrderHandler_GetStatus(t *testing.T) {
	orders := mockUsecase.NewMockOrderUsecase(t)
	orders.EXPECT().GetStatus(mock.Anything, "FN2026-ABCDEFGH").Return(entity.OrderStatusShipped, nil)
	orders.EXPECT().GetStatus(mock.Anything, "missing").Return("", domainerrors.ErrOrderNotFound)

	e := newTestEcho(t)
	e.GET("/orders/status/:order_id", NewOrderHandler(OrderHandlerParams{OrderUC: orders}).GetStatus)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/orders/status/FN2026-ABCDEFGH", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Shipped"}`, rec.Body.String())

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/orders/status/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", errorCode(t, rec))
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("illegal transition", func(t *testing.T) {
		orders := mockUsecase.NewMockOrderUsecase(t)
		orders.EXPECT().
			UpdateStatus(mock.Anything, "FN1", "Processing").
			Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("Delivered -> Processing"))

		e := newTestEcho(t)
		e.PUT("/orders/:order_id/status", NewOrderHandler(OrderHandlerParams{OrderUC: orders}).UpdateStatus)

		rec := serve(e, jsonRequest(http.MethodPut, "/orders/FN1/status", `{"status":"Processing"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", errorCode(t, rec))
		assert.Contains(t, rec.Body.String(), "Delivered -> Processing")
	})

	t.Run("success", func(t *testing.T) {
		orders := mockUsecase.NewMockOrderUsecase(t)
		orders.EXPECT().
			UpdateStatus(mock.Anything, "FN1", "Shipped").
			Return(&entity.Order{OrderNumber: "FN1", Status: entity.OrderStatusShipped}, nil)

		e := newTestEcho(t)
		e.PUT("/orders/:order_id/status", NewOrderHandler(OrderHandlerParams{OrderUC: orders}).UpdateStatus)

		rec := serve(e, jsonRequest(http.MethodPut, "/orders/FN1/status", `{"status":"Shipped"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"order_number":"FN1","status":"Shipped"}`, rec.Body.String())
	})
}

func TestOrderHandler_TrackingQR(t *testing.T) {
	orders := mockUsecase.NewMockOrderUsecase(t)
	orders.EXPECT().TrackingQR(mock.Anything, "FN1").Return([]byte("\x89PNG"), nil)

	e := newTestEcho(t)
	e.GET("/orders/:order_id/qr", NewOrderHandler(OrderHandlerParams{OrderUC: orders}).TrackingQR)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/orders/FN1/qr", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestDashboardHandler_Stats(t *testing.T) {
	dashboard := mockUsecase.NewMockDashboardUsecase(t)
	dashboard.EXPECT().Stats(mock.Anything).Return(&entity.DashboardStats{
		TotalOrders:    3,
		TotalRevenue:   decimal.RequireFromString("42.50"),
		TotalProducts:  7,
		TotalCustomers: 2,
	}, nil)

	e := newTestEcho(t)
	e.GET("/dashboard/stats", NewDashboardHandler(dashboard).Stats)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_orders":3,"total_revenue":"42.5","total_products":7,"total_customers":2}`, rec.Body.String())
}

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestMediaHandler_UploadImage(t *testing.T) {
	png, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "pixel.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	media := mockUsecase.NewMockMediaUsecase(t)
	media.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(in *usecase.UploadInput) bool { return in.Filename == "pixel.png" })).
		Return(&usecase.UploadOutput{Key: "k.png", URL: "/images/k.png"}, nil)

	e := newTestEcho(t)
	e.POST("/upload-image", NewMediaHandler(media).UploadImage)

	req := httptest.NewRequest(http.MethodPost, "/upload-image", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"/images/k.png"}`, rec.Body.String())
}

func TestMediaHandler_UploadImageMissingFile(t *testing.T) {
	e := newTestEcho(t)
	e.POST("/upload-image", NewMediaHandler(mockUsecase.NewMockMediaUsecase(t)).UploadImage)

	rec := serve(e, jsonRequest(http.MethodPost, "/upload-image", `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestMediaHandler_ServeImage(t *testing.T) {
	media := mockUsecase.NewMockMediaUsecase(t)
	media.EXPECT().Open(mock.Anything, "k.png").Return(
		io.NopCloser(strings.NewReader("img")),
		&service.StoredImage{Key: "k.png", ContentType: "image/png", Size: 3},
		nil,
	)
	media.EXPECT().Open(mock.Anything, "gone.png").Return(nil, nil, domainerrors.ErrImageNotFound)

	e := newTestEcho(t)
	e.GET("/images/*", NewMediaHandler(media).ServeImage)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/images/k.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "img", rec.Body.String())

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/images/gone.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

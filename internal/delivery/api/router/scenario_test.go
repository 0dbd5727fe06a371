package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"farmnaturals/config"
	apimiddleware "farmnaturals/internal/delivery/api/middleware"
	"farmnaturals/internal/delivery/api/router/handler"
	"farmnaturals/internal/delivery/api/validator"
	"farmnaturals/internal/domain/entity"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/infra/auth"
	mockUsecase "farmnaturals/internal/mocks/usecase"
	"farmnaturals/internal/usecase"
	"farmnaturals/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps users, cart lines and orders in memory behind one lock, standing in for the
// database in end-to-end tests.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*entity.User
	cart   map[[2]string]*entity.CartLine
	orders map[string]*entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[string]*entity.User{},
		cart:   map[[2]string]*entity.CartLine{},
		orders: map[string]*entity.Order{},
	}
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := *u

	return &out, nil
}

func (r memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	r.s.nextID++
	user.ID = r.s.nextID
	stored := *user
	r.s.users[user.Email] = &stored

	return nil
}

func (r memUserRepo) PromoteToAdmin(_ context.Context, emails []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var promoted int64
	for _, email := range emails {
		if u, ok := r.s.users[email]; ok && !u.IsAdmin {
			u.IsAdmin = true
			promoted++
		}
	}

	return promoted, nil
}

type memCartRepo struct{ s *memStore }

func (r memCartRepo) AddQuantity(_ context.Context, email, productName string, quantity int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := [2]string{email, productName}
	line, ok := r.s.cart[key]
	if !ok {
		line = &entity.CartLine{Email: email, ProductName: productName}
		r.s.cart[key] = line
	}
	line.Quantity += quantity
	line.UpdatedAt = time.Now()

	return line.Quantity, nil
}

func (r memCartRepo) ListByEmail(_ context.Context, email string) ([]*entity.CartLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var lines []*entity.CartLine
	for _, line := range r.s.cart {
		if line.Email == email {
			out := *line
			lines = append(lines, &out)
		}
	}
	slices.SortFunc(lines, func(a, b *entity.CartLine) int { return strings.Compare(a.ProductName, b.ProductName) })

	return lines, nil
}

func (r memCartRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var removed int64
	for key, line := range r.s.cart {
		if line.Email == email {
			delete(r.s.cart, key)
			removed++
		}
	}

	return removed, nil
}

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[order.OrderNumber]; ok {
		return repository.ErrDuplicateOrderNumber
	}
	r.s.nextID++
	order.ID = r.s.nextID
	stored := *order
	r.s.orders[order.OrderNumber] = &stored

	return nil
}

func (r memOrderRepo) FindByNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[orderNumber]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	out := *order

	return &out, nil
}

func (r memOrderRepo) FindByNumberForUpdate(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return r.FindByNumber(ctx, orderNumber)
}

func (r memOrderRepo) ListByEmail(_ context.Context, email string) ([]*entity.OrderSummary, error) {
	return r.list(func(o *entity.Order) bool { return o.Email == email }), nil
}

func (r memOrderRepo) ListAll(_ context.Context) ([]*entity.OrderSummary, error) {
	return r.list(func(*entity.Order) bool { return true }), nil
}

func (r memOrderRepo) list(keep func(*entity.Order) bool) []*entity.OrderSummary {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var orders []*entity.Order
	for _, o := range r.s.orders {
		if keep(o) {
			orders = append(orders, o)
		}
	}
	slices.SortFunc(orders, func(a, b *entity.Order) int { return b.OrderDate.Compare(a.OrderDate) })

	summaries := make([]*entity.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, o.Summary())
	}

	return summaries
}

func (r memOrderRepo) UpdateStatus(_ context.Context, orderNumber string, status entity.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[orderNumber]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status

	return nil
}

// memTxManager serializes transactions, which is what the row lock guarantees for a single order.
type memTxManager struct {
	mu sync.Mutex
	s  *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(memFactory{s: m.s})
}

type memFactory struct{ s *memStore }

func (f memFactory) NewUserRepository() repository.UserRepository   { return memUserRepo(f) }
func (f memFactory) NewCartRepository() repository.CartRepository   { return memCartRepo(f) }
func (f memFactory) NewOrderRepository() repository.OrderRepository { return memOrderRepo(f) }

const scenarioAdmin = "root@farm.test"

type shopScenario struct {
	e        *echo.Echo
	identity usecase.IdentityUsecase
}

// newShopScenario wires the real identity, cart and order services over the in-memory store.
func newShopScenario(t *testing.T) *shopScenario {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemStore()

	cfg := &config.Config{Auth: &config.AuthConfig{BootstrapAdmins: []string{scenarioAdmin}}}
	cfg.SecretKey.Access = "scenario-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	identity := impl.NewIdentityService(impl.IdentityServiceParams{
		UserRepo:     memUserRepo{s: store},
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	cart := impl.NewCartService(memCartRepo{s: store}, logger)
	orders := impl.NewOrderService(impl.OrderServiceParams{
		TxManager: &memTxManager{s: store},
		OrderRepo: memOrderRepo{s: store},
		Logger:    logger,
	})

	catalog := mockUsecase.NewMockCatalogUsecase(t)
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{IdentityUC: identity, Logger: logger}),
		CatalogHandler:    handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalog}),
		StorefrontHandler: handler.NewStorefrontHandler(catalog),
		CartHandler:       handler.NewCartHandler(cart),
		OrderHandler:      handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orders, Logger: logger}),
		DashboardHandler:  handler.NewDashboardHandler(mockUsecase.NewMockDashboardUsecase(t)),
		MediaHandler:      handler.NewMediaHandler(mockUsecase.NewMockMediaUsecase(t)),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(identity),
	}).RegisterRoutes(e)

	return &shopScenario{e: e, identity: identity}
}

func (s *shopScenario) do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func (s *shopScenario) register(t *testing.T, email, password string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/register", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (s *shopScenario) login(t *testing.T, email, password string) handler.TokenResponse {
	t.Helper()

	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func (s *shopScenario) addToCart(t *testing.T, email, product string, quantity int) int {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/cart/add",
		fmt.Sprintf(`{"email":%q,"product_name":%q,"quantity":%d}`, email, product, quantity), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out handler.AddToCartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out.Quantity
}

func TestShop_CheckoutAndFulfilment(t *testing.T) {
	s := newShopScenario(t)
	const customer = "alice@farm.test"

	s.register(t, customer, "alice-pass")
	s.register(t, scenarioAdmin, "root-pass")
	require.NoError(t, s.identity.BootstrapAdmins(context.Background()))

	rec := s.do(t, http.MethodPost, "/register", `{"email":"alice@farm.test","password":"again"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	customerToken := s.login(t, customer, "alice-pass")
	assert.False(t, customerToken.IsAdmin)
	assert.Equal(t, "bearer", customerToken.TokenType)

	assert.Equal(t, 2, s.addToCart(t, customer, "Raw Honey", 2))
	assert.Equal(t, 3, s.addToCart(t, customer, "Raw Honey", 1))

	rec = s.do(t, http.MethodGet, "/cart/"+customer, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []handler.CartLineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "Raw Honey", lines[0].ProductName)
	assert.Equal(t, 3, lines[0].Quantity)

	rec = s.do(t, http.MethodPost, "/orders/create", `{
		"email": "alice@farm.test",
		"orderData": {"address": "12 Farm Rd", "city": "Springfield", "state": "IL", "zip": "62704"},
		"cart": [{"product_name": "Raw Honey", "quantity": 3, "price": "12.50", "image_url": "/images/honey.png"}],
		"payment_method": "cod"
	}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created handler.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.OrderNumber)

	rec = s.do(t, http.MethodGet, "/orders/status/"+created.OrderNumber, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Processing"}`, rec.Body.String())

	statusPath := "/admin/api/orders/" + created.OrderNumber + "/status"
	rec = s.do(t, http.MethodPut, statusPath, `{"status":"Shipped"}`, customerToken.AccessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := s.login(t, scenarioAdmin, "root-pass")
	require.True(t, adminToken.IsAdmin)

	rec = s.do(t, http.MethodPut, statusPath, `{"status":"Shipped"}`, adminToken.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/orders/user/"+customer, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []handler.OrderSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, created.OrderNumber, history[0].OrderNumber)
	assert.Equal(t, "Shipped", history[0].Status)
	assert.Equal(t, "37.5", history[0].TotalAmount.String())
	assert.Equal(t, "12 Farm Rd, Springfield, IL 62704", history[0].DeliveryAddress)

	rec = s.do(t, http.MethodGet, "/cart/"+customer, "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	assert.Len(t, lines, 1, "checkout leaves the cart in place")
}

func TestShop_CartAddsAccumulateUnderConcurrency(t *testing.T) {
	s := newShopScenario(t)

	var wg sync.WaitGroup
	for _, quantity := range []int{2, 3} {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec := s.do(t, http.MethodPost, "/cart/add",
				fmt.Sprintf(`{"email":"bob@farm.test","product_name":"Eggs","quantity":%d}`, quantity), "")
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	rec := s.do(t, http.MethodGet, "/cart/bob@farm.test", "", "")
	var lines []handler.CartLineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

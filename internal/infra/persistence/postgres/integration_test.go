package postgres

import (
	"context"
	"encoding/hex"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"farmnaturals/internal/domain/entity"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDatabase connects to the database named by POSTGRES_TEST_DSN and migrates it.
// Tests using it are skipped when the variable is unset.
func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(16)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, migrate(ctx, db))

	return db
}

// uniqueEmail isolates each test's rows and removes them afterwards.
func uniqueEmail(t *testing.T, db *gorm.DB) string {
	t.Helper()

	email := uuid.NewString() + "@farm.test"
	t.Cleanup(func() {
		db.Where("email = ?", email).Delete(&model.CartLineModel{})
		db.Where("email = ?", email).Delete(&model.OrderModel{})
	})

	return email
}

func TestCartRepository_AddQuantitySequential(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewCartRepository(db)
	email := uniqueEmail(t, db)
	ctx := context.Background()

	total, err := repo.AddQuantity(ctx, email, "Raw Honey", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, err = repo.AddQuantity(ctx, email, "Raw Honey", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestCartRepository_AddQuantityConcurrent(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewCartRepository(db)
	email := uniqueEmail(t, db)
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// 2 and 3 alternate, so the expected total is known up front.
			quantity := 2 + i%2
			_, err := repo.AddQuantity(ctx, email, "Eggs", quantity)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	lines, err := repo.ListByEmail(ctx, email)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, workers/2*(2+3), lines[0].Quantity)
}

func TestCartRepository_LongProductNames(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewCartRepository(db)
	email := uniqueEmail(t, db)
	ctx := context.Background()

	name := strings.Repeat("Heirloom Tomato ", 40)
	total, err := repo.AddQuantity(ctx, email, name, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Random hex does not compress, so this exceeds the btree row limit of the unique index.
	random := make([]byte, 0, 16*1024)
	for len(random) < cap(random) {
		id := uuid.New()
		random = hex.AppendEncode(random, id[:])
	}
	_, err = repo.AddQuantity(ctx, email, string(random), 1)
	assert.ErrorIs(t, err, repository.ErrValueOutOfRange)
}

func TestOrderRepository_StoresCallerValuesExactly(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewOrderRepository(db)
	email := uniqueEmail(t, db)
	ctx := context.Background()

	order := &entity.Order{
		OrderNumber:   "CUSTOM-" + strings.Repeat("X", 120) + "-" + uuid.NewString(),
		Email:         email,
		TotalAmount:   decimal.RequireFromString("12.345"),
		OrderData:     []byte(`{"cart":[]}`),
		OrderDate:     time.Now().UTC(),
		PaymentMethod: strings.Repeat("gift card then cash on delivery ", 5),
		Status:        entity.OrderStatusProcessing,
	}
	require.NoError(t, repo.Create(ctx, order))

	stored, err := repo.FindByNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "12.345", stored.TotalAmount.String())
	assert.Equal(t, order.PaymentMethod, stored.PaymentMethod)

	assert.ErrorIs(t, repo.Create(ctx, &entity.Order{
		OrderNumber: order.OrderNumber,
		Email:       email,
		OrderDate:   time.Now().UTC(),
		Status:      entity.OrderStatusProcessing,
	}), repository.ErrDuplicateOrderNumber)
}

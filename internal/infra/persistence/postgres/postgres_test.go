package postgres

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmnaturals/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func testPostgresConfig() *config.PostgresConfig {
	return &config.PostgresConfig{
		Host:             "localhost",
		Port:             5432,
		Database:         "farmnaturals",
		User:             "postgres",
		Password:         "postgres",
		SSLMode:          "disable",
		MinConns:         1,
		MaxConns:         10,
		ConnectTimeout:   5 * time.Second,
		StatementTimeout: 15 * time.Second,
	}
}

// newDryRunDB returns a handle that renders SQL without ever dialing the server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: buildDSN(testPostgresConfig())}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(testPostgresConfig())

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=farmnaturals sslmode=disable connect_timeout=5 statement_timeout=15000",
		dsn)
}

func TestBuildDSN_OmitsUnsetTimeouts(t *testing.T) {
	cfg := testPostgresConfig()
	cfg.ConnectTimeout = 0
	cfg.StatementTimeout = 0

	dsn := buildDSN(cfg)

	assert.NotContains(t, dsn, "connect_timeout")
	assert.NotContains(t, dsn, "statement_timeout")
}

func TestBuildDSN_SubSecondConnectTimeoutRoundsUp(t *testing.T) {
	cfg := testPostgresConfig()
	cfg.ConnectTimeout = 300 * time.Millisecond

	assert.Contains(t, buildDSN(cfg), "connect_timeout=1")
}

func TestConnect_PooledWhenOpenSucceeds(t *testing.T) {
	cfg := testPostgresConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var calls int
	open := func(dsn string, gcfg *gorm.Config) (*gorm.DB, error) {
		calls++
		assert.False(t, gcfg.DisableAutomaticPing)
		assert.True(t, gcfg.TranslateError)

		return newDryRunDB(t), nil
	}

	db, pooled, err := connect(cfg, logger, open)
	require.NoError(t, err)
	assert.True(t, pooled)
	assert.Equal(t, 1, calls)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestConnect_FallsBackToUnpooled(t *testing.T) {
	cfg := testPostgresConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var calls int
	open := func(dsn string, gcfg *gorm.Config) (*gorm.DB, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("connection refused")
		}
		assert.True(t, gcfg.DisableAutomaticPing)

		return newDryRunDB(t), nil
	}

	db, pooled, err := connect(cfg, logger, open)
	require.NoError(t, err)
	assert.False(t, pooled)
	assert.Equal(t, 2, calls)
	assert.NotNil(t, db)
}

func TestConnect_FailsWhenFallbackFails(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	open := func(string, *gorm.Config) (*gorm.DB, error) {
		return nil, errors.New("bad dsn")
	}

	_, _, err := connect(testPostgresConfig(), logger, open)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unpooled")
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"farmnaturals/config"
	"farmnaturals/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// openFunc opens a gorm handle; replaced in tests.
type openFunc func(dsn string, cfg *gorm.Config) (*gorm.DB, error)

func openPostgres(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn}), cfg)
}

// New opens the PostgreSQL gateway. A bounded pool is tried first; when the database cannot be
// reached the gateway degrades to an unpooled handle that dials per operation, so the service
// keeps starting and recovers once the database is up. Schema migration then waits in the
// background and the returned Readiness fires when it completes.
func New(params Params) (*gorm.DB, *Readiness, error) {
	db, pooled, err := connect(params.Config.Postgres, params.Logger, openPostgres)
	if err != nil {
		return nil, nil, err
	}

	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	readiness := NewReadiness()
	gate := &schemaGate{
		ping:      sqlDB.PingContext,
		readiness: readiness,
		logger:    params.Logger,
		interval:  dbReadyRetryInterval,
	}
	if params.Config.Postgres.AutoMigrate {
		gate.migrate = func(ctx context.Context) error { return migrate(ctx, db) }
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := gate.prepare(startCtx); err != nil {
				if pooled {
					return err
				}
				params.Logger.Warn("PostgreSQL still unreachable, continuing unpooled with schema setup pending",
					slog.Any("error", err),
				)
				go gate.retry(monitorCtx)

				return nil
			}

			if pooled {
				go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, readiness, nil
}

// connect returns the gorm handle and whether it is pooled.
func connect(cfg *config.PostgresConfig, logger *slog.Logger, open openFunc) (*gorm.DB, bool, error) {
	dsn := buildDSN(cfg)

	db, err := open(dsn, &gorm.Config{TranslateError: true})
	if err == nil {
		if err := configurePool(db, cfg); err != nil {
			return nil, false, err
		}

		return db, true, nil
	}

	closeQuietly(db)
	logger.Warn("PostgreSQL pool unavailable, falling back to unpooled connections",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.Any("error", err),
	)

	db, err = open(dsn, &gorm.Config{TranslateError: true, DisableAutomaticPing: true})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to open unpooled PostgreSQL handle")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	// No idle connections: every statement dials and closes its own connection.
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxOpenConns(cfg.MaxConns)

	return db, false, nil
}

// closeQuietly releases a handle returned alongside an open error.
func closeQuietly(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func configurePool(db *gorm.DB, cfg *config.PostgresConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return nil
}

// buildDSN renders a libpq key/value DSN. statement_timeout is passed through as a runtime parameter.
func buildDSN(cfg *config.PostgresConfig) string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	if cfg.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", max(1, int(cfg.ConnectTimeout/time.Second)))
	}
	if cfg.StatementTimeout > 0 {
		dsn += fmt.Sprintf(" statement_timeout=%d", cfg.StatementTimeout.Milliseconds())
	}

	return dsn
}

func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}

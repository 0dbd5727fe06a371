package postgres

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"farmnaturals/internal/domain/lifecycle"

	"github.com/pkg/errors"
)

const dbReadyRetryInterval = 5 * time.Second

// Readiness tracks whether the database has answered and the schema is in place. Work that
// needs the schema registers with OnReady.
type Readiness struct {
	mu      sync.Mutex
	ready   bool
	waiting []func(context.Context)
}

// NewReadiness returns a Readiness that is not ready yet.
func NewReadiness() *Readiness {
	return &Readiness{}
}

// Ready reports whether the schema is in place.
func (r *Readiness) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ready
}

// OnReady runs fn immediately when the database is ready, otherwise as soon as it becomes ready.
func (r *Readiness) OnReady(fn func(context.Context)) {
	r.mu.Lock()
	if !r.ready {
		r.waiting = append(r.waiting, fn)
		r.mu.Unlock()

		return
	}
	r.mu.Unlock()

	runReadyCallback(fn)
}

func (r *Readiness) markReady() {
	r.mu.Lock()
	if r.ready {
		r.mu.Unlock()

		return
	}
	r.ready = true
	waiting := r.waiting
	r.waiting = nil
	r.mu.Unlock()

	for _, fn := range waiting {
		runReadyCallback(fn)
	}
}

func runReadyCallback(fn func(context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	fn(ctx)
}

// schemaGate pings the database and migrates the schema, then marks readiness.
type schemaGate struct {
	ping      func(context.Context) error
	migrate   func(context.Context) error // nil when auto-migration is off
	readiness *Readiness
	logger    *slog.Logger
	interval  time.Duration
}

func (g *schemaGate) prepare(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := g.ping(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if g.migrate != nil {
		if err := g.migrate(ctx); err != nil {
			return err
		}
	}

	g.readiness.markReady()

	return nil
}

// retry repeats prepare until it succeeds or ctx ends.
func (g *schemaGate) retry(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := g.prepare(ctx); err != nil {
				g.logger.Warn("PostgreSQL schema setup still pending",
					slog.Int("attempt", attempt),
					slog.Any("error", err),
				)

				continue
			}

			g.logger.Info("PostgreSQL reachable, schema ready", slog.Int("attempt", attempt))

			return
		}
	}
}

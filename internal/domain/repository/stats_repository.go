package repository

import (
	"context"

	"farmnaturals/internal/domain/entity"
)

// StatsRepository computes dashboard aggregates.
type StatsRepository interface {
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}

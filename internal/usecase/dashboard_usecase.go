package usecase

import (
	"context"

	"farmnaturals/internal/domain/entity"
)

// DashboardUsecase exposes admin aggregates.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

package impl

import (
	"context"

	"farmnaturals/internal/domain/entity"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	statsRepo repository.StatsRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(statsRepo repository.StatsRepository) usecase.DashboardUsecase {
	return &dashboardService{statsRepo: statsRepo}
}

func (srv *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := srv.statsRepo.DashboardStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard stats")
	}

	return stats, nil
}

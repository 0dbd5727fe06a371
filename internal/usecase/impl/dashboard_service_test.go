package impl

import (
	"context"
	"testing"

	"farmnaturals/internal/domain/entity"
	mockRepo "farmnaturals/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	svc := NewDashboardService(statsRepo)
	ctx := context.Background()
	want := &entity.DashboardStats{
		TotalOrders:    3,
		TotalRevenue:   decimal.RequireFromString("87.75"),
		TotalProducts:  12,
		TotalCustomers: 2,
	}

	statsRepo.EXPECT().DashboardStats(ctx).Return(want, nil)

	got, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardService_Stats_Error(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	svc := NewDashboardService(statsRepo)
	ctx := context.Background()

	statsRepo.EXPECT().DashboardStats(ctx).Return(nil, errors.New("timeout"))

	_, err := svc.Stats(ctx)

	assert.Error(t, err)
}

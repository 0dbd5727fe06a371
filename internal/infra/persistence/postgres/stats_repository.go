package postgres

import (
	"context"

	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// dashboardStatsSQL reads every aggregate in one statement so the numbers come from one snapshot.
const dashboardStatsSQL = `
SELECT
	(SELECT COUNT(*) FROM orders) AS total_orders,
	(SELECT COALESCE(SUM(total_amount), 0) FROM orders) AS total_revenue,
	(SELECT COUNT(*) FROM products) AS total_products,
	(SELECT COUNT(*) FROM users WHERE is_admin = FALSE) AS total_customers`

type statsRow struct {
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
	TotalProducts  int64
	TotalCustomers int64
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var row statsRow
	if err := repo.db.WithContext(ctx).Raw(dashboardStatsSQL).Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to compute dashboard stats")
	}

	return &entity.DashboardStats{
		TotalOrders:    row.TotalOrders,
		TotalRevenue:   row.TotalRevenue,
		TotalProducts:  row.TotalProducts,
		TotalCustomers: row.TotalCustomers,
	}, nil
}

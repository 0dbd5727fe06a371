package entity

import "github.com/shopspring/decimal"

// DashboardStats are the admin dashboard aggregates.
type DashboardStats struct {
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
	TotalProducts  int64
	TotalCustomers int64 // non-admin users
}

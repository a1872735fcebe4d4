package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the landing-page snapshot. Monetary totals are
// canonical USD.
type DashboardSummary struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalCustomers int             `json:"totalCustomers"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	LowStockCount  int             `json:"lowStockCount"`
	RecentSales    []RecentSale    `json:"recentSales"`
}

// RecentSale is a dashboard row for one of the latest sales.
type RecentSale struct {
	SaleID       string          `json:"saleID"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

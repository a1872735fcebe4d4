package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse is the landing-page snapshot.
type DashboardResponse struct {
	TotalProducts  int                  `json:"totalProducts"`
	TotalCustomers int                  `json:"totalCustomers"`
	TotalSales     decimal.Decimal      `json:"totalSales"`
	TotalExpenses  decimal.Decimal      `json:"totalExpenses"`
	LowStockCount  int                  `json:"lowStockCount"`
	RecentSales    []RecentSaleResponse `json:"recentSales"`
}

// RecentSaleResponse is one row in the dashboard's recent-sales list.
type RecentSaleResponse struct {
	SaleID       string          `json:"saleID"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToDashboardResponse converts a domain.DashboardSummary to its API shape.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	recent := make([]RecentSaleResponse, len(s.RecentSales))
	for i, r := range s.RecentSales {
		recent[i] = RecentSaleResponse{
			SaleID:       r.SaleID,
			CustomerName: r.CustomerName,
			TotalAmount:  r.TotalAmount,
			CreatedAt:    r.CreatedAt,
		}
	}
	return DashboardResponse{
		TotalProducts:  s.TotalProducts,
		TotalCustomers: s.TotalCustomers,
		TotalSales:     s.TotalSales,
		TotalExpenses:  s.TotalExpenses,
		LowStockCount:  s.LowStockCount,
		RecentSales:    recent,
	}
}

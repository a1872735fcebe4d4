package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// ReportingSvcFacade defines read operations for dashboard aggregates
type ReportingSvcFacade interface {
	// GetDashboardSummary returns the landing-page snapshot.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

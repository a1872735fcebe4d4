package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// ReportingReader defines read operations for dashboard aggregates
type ReportingReader interface {
	// FindDashboardSummary aggregates the landing-page counters and the
	// latest sales in one pass.
	FindDashboardSummary(ctx context.Context, recentLimit int) (*domain.DashboardSummary, error)
}

// ReportingRepositoryFacade combines all reporting repository interfaces
type ReportingRepositoryFacade interface {
	ReportingReader
}

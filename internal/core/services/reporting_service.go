package services

import (
	"context"
	"fmt"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
)

const dashboardRecentSales = 5

// ReportingService aggregates the dashboard numbers.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

func (s *ReportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.reportingRepo.FindDashboardSummary(ctx, dashboardRecentSales)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}
	return summary, nil
}

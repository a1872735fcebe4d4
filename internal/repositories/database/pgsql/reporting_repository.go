package pgsql

import (
	"context"
	"fmt"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	db DBPool
}

func newPgxReportingRepository(db DBPool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// FindDashboardSummary aggregates the landing-page counters. Monetary totals
// are canonical USD and exclude cancelled sales.
func (r *PgxReportingRepository) FindDashboardSummary(ctx context.Context, recentLimit int) (*domain.DashboardSummary, error) {
	if recentLimit <= 0 {
		recentLimit = 5
	}

	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM customers),
			COALESCE((SELECT SUM(total_amount) FROM sales WHERE status = 'completed'), 0),
			COALESCE((SELECT SUM(amount) FROM expenses), 0),
			(SELECT COUNT(*) FROM product_unit_sizes WHERE stock_level < min_stock_level);
	`
	var summary domain.DashboardSummary
	err := r.db.QueryRow(ctx, query).Scan(
		&summary.TotalProducts,
		&summary.TotalCustomers,
		&summary.TotalSales,
		&summary.TotalExpenses,
		&summary.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard summary: %w", err)
	}

	recentQuery := `
		SELECT s.sale_id, c.full_name, s.total_amount, s.created_at
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		WHERE s.status = 'completed'
		ORDER BY s.created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, recentQuery, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sales: %w", err)
	}
	defer rows.Close()

	summary.RecentSales = []domain.RecentSale{}
	for rows.Next() {
		var sale domain.RecentSale
		if err := rows.Scan(&sale.SaleID, &sale.CustomerName, &sale.TotalAmount, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent sale row: %w", err)
		}
		summary.RecentSales = append(summary.RecentSales, sale)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recent sale rows: %w", rows.Err())
	}
	return &summary, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db DBPool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale inserts the sale, its items and decrements stock for every line.
// The guarded UPDATE keeps stock from going negative under concurrent sales.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO sales (sale_id, customer_id, price_list_id, currency, transaction_exchange_rate,
			total_amount, syp_amount, payment_amount, payment_method, sale_date, status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`, sale.SaleID, sale.CustomerID, nullIfEmpty(sale.PriceListID), sale.Currency, sale.TransactionExchangeRate,
		sale.TotalAmount, sale.SYPAmount, sale.PaymentAmount, sale.PaymentMethod, sale.SaleDate, sale.Status, sale.Notes,
		sale.CreatedAt, sale.CreatedBy, sale.LastUpdatedAt, sale.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}

	for _, item := range sale.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO sale_items (sale_item_id, sale_id, product_id, unit_size_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, item.SaleItemID, item.SaleID, item.ProductID, item.UnitSizeID, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return fmt.Errorf("failed to save sale item: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE product_unit_sizes
			SET stock_level = stock_level - $3
			WHERE product_id = $1 AND unit_size_id = $2 AND stock_level >= $3;
		`, item.ProductID, item.UnitSizeID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: insufficient stock for product %s", apperrors.ErrValidation, item.ProductID)
		}
	}

	return r.Commit(ctx, tx)
}

// CancelSale marks the sale cancelled and puts every line's quantity back on
// the shelf in the same transaction.
func (r *PgxSaleRepository) CancelSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE sales
		SET status = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE sale_id = $1 AND status = 'completed';
	`, sale.SaleID, sale.Status, sale.Notes, sale.LastUpdatedAt, sale.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to cancel sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: sale is not in completed state", apperrors.ErrValidation)
	}

	for _, item := range sale.Items {
		_, err = tx.Exec(ctx, `
			UPDATE product_unit_sizes
			SET stock_level = stock_level + $3
			WHERE product_id = $1 AND unit_size_id = $2;
		`, item.ProductID, item.UnitSizeID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// AddPaymentToSale records a payment and bumps the sale's paid amount
// atomically, so the sale row and its payment history never disagree.
func (r *PgxSaleRepository) AddPaymentToSale(ctx context.Context, payment domain.CustomerPayment, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO customer_payments (payment_id, customer_id, sale_id, currency, amount, syp_amount,
			transaction_exchange_rate, payment_date, payment_method, reference_number, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`, payment.PaymentID, payment.CustomerID, payment.SaleID, payment.Currency, payment.Amount, payment.SYPAmount,
		payment.TransactionExchangeRate, payment.PaymentDate, payment.PaymentMethod, payment.ReferenceNumber,
		payment.Notes, payment.CreatedAt, payment.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE sales
		SET payment_amount = payment_amount + $2, last_updated_at = $3, last_updated_by = $4
		WHERE sale_id = $1;
	`, sale.SaleID, payment.Amount, sale.LastUpdatedAt, sale.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update sale payment amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

const saleColumns = `s.sale_id, s.customer_id, c.full_name, COALESCE(s.price_list_id::text, ''),
	s.currency, s.transaction_exchange_rate, s.total_amount, s.syp_amount, s.payment_amount,
	s.payment_method, s.sale_date, s.status, s.notes,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(
		&sale.SaleID, &sale.CustomerID, &sale.CustomerName, &sale.PriceListID,
		&sale.Currency, &sale.TransactionExchangeRate, &sale.TotalAmount, &sale.SYPAmount, &sale.PaymentAmount,
		&sale.PaymentMethod, &sale.SaleDate, &sale.Status, &sale.Notes,
		&sale.CreatedAt, &sale.CreatedBy, &sale.LastUpdatedAt, &sale.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		WHERE s.sale_id = $1;
	`
	sale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	items, err := r.findSaleItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

func (r *PgxSaleRepository) findSaleItems(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	query := `
		SELECT i.sale_item_id, i.sale_id, i.product_id, p.name, i.unit_size_id, u.name,
			i.quantity, i.unit_price, i.subtotal
		FROM sale_items i
		JOIN products p ON p.product_id = i.product_id
		JOIN unit_sizes u ON u.unit_size_id = i.unit_size_id
		WHERE i.sale_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	items := []domain.SaleItem{}
	for rows.Next() {
		var item domain.SaleItem
		err := rows.Scan(&item.SaleItemID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.UnitSizeID, &item.UnitSizeName, &item.Quantity, &item.UnitPrice, &item.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", rows.Err())
	}
	return items, nil
}

func (r *PgxSaleRepository) FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		ORDER BY s.sale_date DESC, s.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	return r.querySales(ctx, query, normalizeLimit(limit, 50), normalizeOffset(offset))
}

func (r *PgxSaleRepository) FindSalesByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		WHERE s.customer_id = $3
		ORDER BY s.sale_date DESC, s.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	return r.querySales(ctx, query, normalizeLimit(limit, 50), normalizeOffset(offset), customerID)
}

func (r *PgxSaleRepository) querySales(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var sale domain.Sale
		err := rows.Scan(
			&sale.SaleID, &sale.CustomerID, &sale.CustomerName, &sale.PriceListID,
			&sale.Currency, &sale.TransactionExchangeRate, &sale.TotalAmount, &sale.SYPAmount, &sale.PaymentAmount,
			&sale.PaymentMethod, &sale.SaleDate, &sale.Status, &sale.Notes,
			&sale.CreatedAt, &sale.CreatedBy, &sale.LastUpdatedAt, &sale.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}
	return sales, nil
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

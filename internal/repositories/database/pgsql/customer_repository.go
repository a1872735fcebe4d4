package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxCustomerRepository struct {
	db DBPool
}

func newPgxCustomerRepository(db DBPool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, full_name, email, phone, address, default_price_list_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		customer.CustomerID, customer.FullName, customer.Email, customer.Phone, customer.Address,
		nullIfEmpty(customer.DefaultPriceListID),
		customer.CreatedAt, customer.CreatedBy, customer.LastUpdatedAt, customer.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return fmt.Errorf("%w: customer with this email already exists", apperrors.ErrDuplicate)
			case "23503": // foreign_key_violation
				return fmt.Errorf("%w: unknown default price list", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET full_name = $2, email = $3, phone = $4, address = $5, default_price_list_id = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE customer_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		customer.CustomerID, customer.FullName, customer.Email, customer.Phone, customer.Address,
		nullIfEmpty(customer.DefaultPriceListID),
		customer.LastUpdatedAt, customer.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: unknown default price list", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: customer has sales or payments on record", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const customerColumns = `customer_id, full_name, email, phone, address,
	COALESCE(default_price_list_id::text, ''),
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&customer.CustomerID, &customer.FullName, &customer.Email, &customer.Phone, &customer.Address,
		&customer.DefaultPriceListID,
		&customer.CreatedAt, &customer.CreatedBy, &customer.LastUpdatedAt, &customer.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY full_name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var customer domain.Customer
		err := rows.Scan(
			&customer.CustomerID, &customer.FullName, &customer.Email, &customer.Phone, &customer.Address,
			&customer.DefaultPriceListID,
			&customer.CreatedAt, &customer.CreatedBy, &customer.LastUpdatedAt, &customer.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

// FindCustomerAccountSummary aggregates completed sales and payments in
// canonical USD. Cancelled sales are excluded from both sides.
func (r *PgxCustomerRepository) FindCustomerAccountSummary(ctx context.Context, customerID string) (*domain.CustomerAccountSummary, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1);`, customerID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	query := `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM sales WHERE customer_id = $1 AND status = 'completed'), 0),
			COALESCE((SELECT SUM(p.amount) FROM customer_payments p
				JOIN sales s ON s.sale_id = p.sale_id
				WHERE p.customer_id = $1 AND s.status = 'completed'), 0),
			(SELECT MAX(payment_date) FROM customer_payments WHERE customer_id = $1);
	`
	summary := domain.CustomerAccountSummary{CustomerID: customerID}
	err = r.db.QueryRow(ctx, query, customerID).Scan(
		&summary.TotalSales, &summary.TotalPayments, &summary.LastPaymentDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate customer account: %w", err)
	}
	summary.Balance = summary.TotalSales.Sub(summary.TotalPayments)
	return &summary, nil
}

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

// PgxPaymentRepository serves payment reads. Writes go through the sale
// repository so the sale's paid amount moves in the same transaction.
type PgxPaymentRepository struct {
	db DBPool
}

func newPgxPaymentRepository(db DBPool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, customer_id, sale_id, currency, amount, syp_amount,
	transaction_exchange_rate, payment_date, payment_method, reference_number, notes, created_at, created_by`

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM customer_payments WHERE payment_id = $1;`
	var payment domain.CustomerPayment
	err := r.db.QueryRow(ctx, query, paymentID).Scan(
		&payment.PaymentID, &payment.CustomerID, &payment.SaleID, &payment.Currency,
		&payment.Amount, &payment.SYPAmount, &payment.TransactionExchangeRate,
		&payment.PaymentDate, &payment.PaymentMethod, &payment.ReferenceNumber, &payment.Notes,
		&payment.CreatedAt, &payment.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentsBySale(ctx context.Context, saleID string) ([]domain.CustomerPayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM customer_payments
		WHERE sale_id = $1
		ORDER BY payment_date DESC, created_at DESC;
	`
	return r.queryPayments(ctx, query, saleID)
}

func (r *PgxPaymentRepository) FindPaymentsByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.CustomerPayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM customer_payments
		WHERE customer_id = $1
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryPayments(ctx, query, customerID, normalizeLimit(limit, 50), normalizeOffset(offset))
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.CustomerPayment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.CustomerPayment{}
	for rows.Next() {
		var payment domain.CustomerPayment
		err := rows.Scan(
			&payment.PaymentID, &payment.CustomerID, &payment.SaleID, &payment.Currency,
			&payment.Amount, &payment.SYPAmount, &payment.TransactionExchangeRate,
			&payment.PaymentDate, &payment.PaymentMethod, &payment.ReferenceNumber, &payment.Notes,
			&payment.CreatedAt, &payment.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}

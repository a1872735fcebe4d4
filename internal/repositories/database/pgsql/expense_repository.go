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

type PgxExpenseRepository struct {
	db DBPool
}

func newPgxExpenseRepository(db DBPool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, description, category, currency, amount, syp_amount,
	transaction_exchange_rate, date, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		expense.ExpenseID, expense.Description, expense.Category, expense.Currency,
		expense.Amount, expense.SYPAmount, expense.TransactionExchangeRate, expense.Date,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET description = $2, category = $3, currency = $4, amount = $5, syp_amount = $6,
			transaction_exchange_rate = $7, date = $8, last_updated_at = $9, last_updated_by = $10
		WHERE expense_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		expense.ExpenseID, expense.Description, expense.Category, expense.Currency,
		expense.Amount, expense.SYPAmount, expense.TransactionExchangeRate, expense.Date,
		expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	var expense domain.Expense
	err := r.db.QueryRow(ctx, query, expenseID).Scan(
		&expense.ExpenseID, &expense.Description, &expense.Category, &expense.Currency,
		&expense.Amount, &expense.SYPAmount, &expense.TransactionExchangeRate, &expense.Date,
		&expense.CreatedAt, &expense.CreatedBy, &expense.LastUpdatedAt, &expense.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, normalizeLimit(limit, 50), normalizeOffset(offset))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var expense domain.Expense
		err := rows.Scan(
			&expense.ExpenseID, &expense.Description, &expense.Category, &expense.Currency,
			&expense.Amount, &expense.SYPAmount, &expense.TransactionExchangeRate, &expense.Date,
			&expense.CreatedAt, &expense.CreatedBy, &expense.LastUpdatedAt, &expense.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return expenses, nil
}

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

type PgxReturnRepository struct {
	BaseRepository
}

func newPgxReturnRepository(db DBPool) portsrepo.ReturnRepositoryFacade {
	return &PgxReturnRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReturnRepositoryFacade = (*PgxReturnRepository)(nil)

func (r *PgxReturnRepository) SaveReturn(ctx context.Context, ret domain.Return) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO returns (return_id, kind, transaction_id, return_date, return_reason, currency,
			transaction_exchange_rate, refund_amount, syp_amount, status, refund_status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`, ret.ReturnID, ret.Kind, ret.TransactionID, ret.ReturnDate, ret.ReturnReason, ret.Currency,
		ret.TransactionExchangeRate, ret.RefundAmount, ret.SYPAmount, ret.Status, ret.RefundStatus, ret.Notes,
		ret.CreatedAt, ret.CreatedBy, ret.LastUpdatedAt, ret.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save return: %w", err)
	}

	for _, item := range ret.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO return_items (return_item_id, return_id, product_id, unit_size_id, quantity,
				unit_price, subtotal, return_reason, item_condition)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`, item.ReturnItemID, item.ReturnID, item.ProductID, item.UnitSizeID, item.Quantity,
			item.UnitPrice, item.Subtotal, item.ReturnReason, item.ItemCondition)
		if err != nil {
			return fmt.Errorf("failed to save return item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateReturnStatus applies the status change and, when adjustStock is set,
// moves stock in the same transaction: sale returns put goods back, purchase
// returns take them off the shelf.
func (r *PgxReturnRepository) UpdateReturnStatus(ctx context.Context, ret domain.Return, adjustStock bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE returns
		SET status = $2, refund_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE return_id = $1;
	`, ret.ReturnID, ret.Status, ret.RefundStatus, ret.LastUpdatedAt, ret.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update return status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if adjustStock {
		for _, item := range ret.Items {
			delta := item.Quantity
			if ret.Kind == domain.ReturnPurchase {
				delta = -delta
			}
			tag, err := tx.Exec(ctx, `
				UPDATE product_unit_sizes
				SET stock_level = stock_level + $3
				WHERE product_id = $1 AND unit_size_id = $2 AND stock_level + $3 >= 0;
			`, item.ProductID, item.UnitSizeID, delta)
			if err != nil {
				return fmt.Errorf("failed to adjust stock for return: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: stock adjustment for product %s would go negative", apperrors.ErrValidation, item.ProductID)
			}
		}
	}

	return r.Commit(ctx, tx)
}

const returnColumns = `return_id, kind, transaction_id, return_date, return_reason, currency,
	transaction_exchange_rate, refund_amount, syp_amount, status, refund_status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxReturnRepository) FindReturnByID(ctx context.Context, returnID string) (*domain.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE return_id = $1;`
	var ret domain.Return
	err := r.Pool.QueryRow(ctx, query, returnID).Scan(
		&ret.ReturnID, &ret.Kind, &ret.TransactionID, &ret.ReturnDate, &ret.ReturnReason, &ret.Currency,
		&ret.TransactionExchangeRate, &ret.RefundAmount, &ret.SYPAmount, &ret.Status, &ret.RefundStatus, &ret.Notes,
		&ret.CreatedAt, &ret.CreatedBy, &ret.LastUpdatedAt, &ret.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find return by ID %s: %w", returnID, err)
	}

	itemsQuery := `
		SELECT i.return_item_id, i.return_id, i.product_id, p.name, i.unit_size_id, i.quantity,
			i.unit_price, i.subtotal, i.return_reason, i.item_condition
		FROM return_items i
		JOIN products p ON p.product_id = i.product_id
		WHERE i.return_id = $1;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, returnID)
	if err != nil {
		return nil, fmt.Errorf("failed to query return items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ReturnItem
		err := rows.Scan(&item.ReturnItemID, &item.ReturnID, &item.ProductID, &item.ProductName,
			&item.UnitSizeID, &item.Quantity, &item.UnitPrice, &item.Subtotal,
			&item.ReturnReason, &item.ItemCondition)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return item row: %w", err)
		}
		ret.Items = append(ret.Items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating return item rows: %w", rows.Err())
	}
	return &ret, nil
}

func (r *PgxReturnRepository) FindReturns(ctx context.Context, kind domain.ReturnKind, limit int, offset int) ([]domain.Return, error) {
	query := `
		SELECT ` + returnColumns + `
		FROM returns
		WHERE kind = $1
		ORDER BY return_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, kind, normalizeLimit(limit, 50), normalizeOffset(offset))
	if err != nil {
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	returns := []domain.Return{}
	for rows.Next() {
		var ret domain.Return
		err := rows.Scan(
			&ret.ReturnID, &ret.Kind, &ret.TransactionID, &ret.ReturnDate, &ret.ReturnReason, &ret.Currency,
			&ret.TransactionExchangeRate, &ret.RefundAmount, &ret.SYPAmount, &ret.Status, &ret.RefundStatus, &ret.Notes,
			&ret.CreatedAt, &ret.CreatedBy, &ret.LastUpdatedAt, &ret.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return row: %w", err)
		}
		returns = append(returns, ret)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating return rows: %w", rows.Err())
	}
	return returns, nil
}

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

type PgxPriceListRepository struct {
	BaseRepository
}

func newPgxPriceListRepository(db DBPool) portsrepo.PriceListRepositoryFacade {
	return &PgxPriceListRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PriceListRepositoryFacade = (*PgxPriceListRepository)(nil)

// SavePriceList inserts the list and seeds a zero-priced item for every
// existing product variant so the new list is immediately editable.
func (r *PgxPriceListRepository) SavePriceList(ctx context.Context, list domain.PriceList) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO price_lists (price_list_id, name, description, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, list.PriceListID, list.Name, list.Description, list.Status,
		list.CreatedAt, list.CreatedBy, list.LastUpdatedAt, list.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: price list named %q already exists", apperrors.ErrDuplicate, list.Name)
		}
		return fmt.Errorf("failed to save price list: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO price_list_items (price_list_item_id, price_list_id, product_id, unit_size_id, price)
		SELECT gen_random_uuid(), $1, product_id, unit_size_id, 0
		FROM product_unit_sizes;
	`, list.PriceListID)
	if err != nil {
		return fmt.Errorf("failed to seed price list items: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPriceListRepository) UpdatePriceList(ctx context.Context, list domain.PriceList) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE price_lists
		SET name = $2, description = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE price_list_id = $1;
	`, list.PriceListID, list.Name, list.Description, list.Status, list.LastUpdatedAt, list.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update price list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertPriceListItems applies price changes. Items whose price actually
// moved keep their old value in previous_price and the change time in
// price_changed_at.
func (r *PgxPriceListRepository) UpsertPriceListItems(ctx context.Context, priceListID string, items []domain.PriceListItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, item := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO price_list_items (price_list_item_id, price_list_id, product_id, unit_size_id, price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (price_list_id, product_id, unit_size_id) DO UPDATE SET
				previous_price = CASE WHEN price_list_items.price != EXCLUDED.price THEN price_list_items.price ELSE price_list_items.previous_price END,
				price_changed_at = CASE WHEN price_list_items.price != EXCLUDED.price THEN now() ELSE price_list_items.price_changed_at END,
				price = EXCLUDED.price;
		`, item.PriceListItemID, priceListID, item.ProductID, item.UnitSizeID, item.Price)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("%w: unknown product variant %s/%s", apperrors.ErrValidation, item.ProductID, item.UnitSizeID)
			}
			return fmt.Errorf("failed to upsert price list item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPriceListRepository) DeletePriceList(ctx context.Context, priceListID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM price_lists WHERE price_list_id = $1;`, priceListID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: price list is still assigned to customers or sales", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to delete price list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPriceListRepository) FindPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error) {
	query := `
		SELECT price_list_id, name, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM price_lists
		WHERE price_list_id = $1;
	`
	var list domain.PriceList
	err := r.Pool.QueryRow(ctx, query, priceListID).Scan(
		&list.PriceListID, &list.Name, &list.Description, &list.Status,
		&list.CreatedAt, &list.CreatedBy, &list.LastUpdatedAt, &list.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price list by ID %s: %w", priceListID, err)
	}

	itemsQuery := `
		SELECT price_list_item_id, price_list_id, product_id, unit_size_id, price, previous_price, price_changed_at
		FROM price_list_items
		WHERE price_list_id = $1;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, priceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price list items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.PriceListItem
		err := rows.Scan(&item.PriceListItemID, &item.PriceListID, &item.ProductID, &item.UnitSizeID,
			&item.Price, &item.PreviousPrice, &item.PriceChangedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price list item row: %w", err)
		}
		list.Items = append(list.Items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating price list item rows: %w", rows.Err())
	}
	return &list, nil
}

func (r *PgxPriceListRepository) FindPriceLists(ctx context.Context) ([]domain.PriceList, error) {
	query := `
		SELECT price_list_id, name, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM price_lists
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query price lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.PriceList{}
	for rows.Next() {
		var list domain.PriceList
		err := rows.Scan(
			&list.PriceListID, &list.Name, &list.Description, &list.Status,
			&list.CreatedAt, &list.CreatedBy, &list.LastUpdatedAt, &list.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price list row: %w", err)
		}
		lists = append(lists, list)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating price list rows: %w", rows.Err())
	}
	return lists, nil
}

func (r *PgxPriceListRepository) FindPriceListItem(ctx context.Context, priceListID, productID, unitSizeID string) (*domain.PriceListItem, error) {
	query := `
		SELECT price_list_item_id, price_list_id, product_id, unit_size_id, price, previous_price, price_changed_at
		FROM price_list_items
		WHERE price_list_id = $1 AND product_id = $2 AND unit_size_id = $3;
	`
	var item domain.PriceListItem
	err := r.Pool.QueryRow(ctx, query, priceListID, productID, unitSizeID).Scan(
		&item.PriceListItemID, &item.PriceListID, &item.ProductID, &item.UnitSizeID,
		&item.Price, &item.PreviousPrice, &item.PriceChangedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price list item: %w", err)
	}
	return &item, nil
}

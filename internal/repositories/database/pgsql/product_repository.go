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

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db DBPool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// SaveProduct inserts the product, its unit size variants and a zero-priced
// item in every price list, so freshly created products show up everywhere
// pricing is edited.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO products (product_id, name, description, category, brand_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, product.ProductID, product.Name, product.Description, product.Category, nullIfEmpty(product.BrandID),
		product.CreatedAt, product.CreatedBy, product.LastUpdatedAt, product.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	for _, v := range product.UnitSizes {
		if err := insertProductUnitSize(ctx, tx, v); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO price_list_items (price_list_item_id, price_list_id, product_id, unit_size_id, price)
			SELECT gen_random_uuid(), price_list_id, $1, $2, 0
			FROM price_lists;
		`, v.ProductID, v.UnitSizeID)
		if err != nil {
			return fmt.Errorf("failed to seed price list items for product: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func insertProductUnitSize(ctx context.Context, tx pgx.Tx, v domain.ProductUnitSize) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO product_unit_sizes (product_unit_size_id, product_id, unit_size_id, sku, stock_level, min_stock_level)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, v.ProductUnitSizeID, v.ProductID, v.UnitSizeID, v.SKU, v.StockLevel, v.MinStockLevel)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: SKU %s already exists", apperrors.ErrDuplicate, v.SKU)
		}
		return fmt.Errorf("failed to save product unit size: %w", err)
	}
	return nil
}

// UpdateProduct updates the product row and reconciles the variant set:
// incoming variants are upserted, variants absent from the incoming set are
// removed along with their price list entries.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, category = $4, brand_id = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE product_id = $1;
	`, product.ProductID, product.Name, product.Description, product.Category, nullIfEmpty(product.BrandID),
		product.LastUpdatedAt, product.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	keepIDs := make([]string, 0, len(product.UnitSizes))
	for _, v := range product.UnitSizes {
		keepIDs = append(keepIDs, v.UnitSizeID)
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM product_unit_sizes WHERE product_id = $1 AND unit_size_id = $2);
		`, v.ProductID, v.UnitSizeID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check product unit size: %w", err)
		}
		if exists {
			_, err = tx.Exec(ctx, `
				UPDATE product_unit_sizes SET sku = $3, min_stock_level = $4
				WHERE product_id = $1 AND unit_size_id = $2;
			`, v.ProductID, v.UnitSizeID, v.SKU, v.MinStockLevel)
			if err != nil {
				return fmt.Errorf("failed to update product unit size: %w", err)
			}
			continue
		}
		if err := insertProductUnitSize(ctx, tx, v); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO price_list_items (price_list_item_id, price_list_id, product_id, unit_size_id, price)
			SELECT gen_random_uuid(), price_list_id, $1, $2, 0
			FROM price_lists;
		`, v.ProductID, v.UnitSizeID)
		if err != nil {
			return fmt.Errorf("failed to seed price list items for product: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM price_list_items WHERE product_id = $1 AND unit_size_id != ALL($2);
	`, product.ProductID, keepIDs)
	if err != nil {
		return fmt.Errorf("failed to prune price list items: %w", err)
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM product_unit_sizes WHERE product_id = $1 AND unit_size_id != ALL($2);
	`, product.ProductID, keepIDs)
	if err != nil {
		return fmt.Errorf("failed to prune product unit sizes: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: product is referenced by sales or purchases", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustStock changes a variant's stock level by delta, refusing to go below
// zero.
func (r *PgxProductRepository) AdjustStock(ctx context.Context, productUnitSizeID string, delta int) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE product_unit_sizes
		SET stock_level = stock_level + $2
		WHERE product_unit_size_id = $1 AND stock_level + $2 >= 0;
	`, productUnitSizeID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stock adjustment would go negative or variant not found", apperrors.ErrValidation)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT p.product_id, p.name, p.description, p.category,
			COALESCE(p.brand_id::text, ''), COALESCE(b.name, ''),
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM products p
		LEFT JOIN brands b ON b.brand_id = p.brand_id
		WHERE p.product_id = $1;
	`
	var product domain.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&product.ProductID, &product.Name, &product.Description, &product.Category,
		&product.BrandID, &product.BrandName,
		&product.CreatedAt, &product.CreatedBy, &product.LastUpdatedAt, &product.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	variants, err := r.findVariants(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	product.UnitSizes = variants[productID]
	return &product, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT p.product_id, p.name, p.description, p.category,
			COALESCE(p.brand_id::text, ''), COALESCE(b.name, ''),
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM products p
		LEFT JOIN brands b ON b.brand_id = p.brand_id
		ORDER BY p.name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	ids := []string{}
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(
			&product.ProductID, &product.Name, &product.Description, &product.Category,
			&product.BrandID, &product.BrandName,
			&product.CreatedAt, &product.CreatedBy, &product.LastUpdatedAt, &product.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
		ids = append(ids, product.ProductID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	if len(ids) == 0 {
		return products, nil
	}
	variants, err := r.findVariants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].UnitSizes = variants[products[i].ProductID]
	}
	return products, nil
}

func (r *PgxProductRepository) findVariants(ctx context.Context, productIDs []string) (map[string][]domain.ProductUnitSize, error) {
	query := `
		SELECT v.product_unit_size_id, v.product_id, v.unit_size_id, u.name, v.sku, v.stock_level, v.min_stock_level
		FROM product_unit_sizes v
		JOIN unit_sizes u ON u.unit_size_id = v.unit_size_id
		WHERE v.product_id = ANY($1)
		ORDER BY u.name;
	`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query product unit sizes: %w", err)
	}
	defer rows.Close()

	variants := map[string][]domain.ProductUnitSize{}
	for rows.Next() {
		var v domain.ProductUnitSize
		err := rows.Scan(&v.ProductUnitSizeID, &v.ProductID, &v.UnitSizeID, &v.UnitSizeName, &v.SKU, &v.StockLevel, &v.MinStockLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product unit size row: %w", err)
		}
		variants[v.ProductID] = append(variants[v.ProductID], v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product unit size rows: %w", rows.Err())
	}
	return variants, nil
}

func (r *PgxProductRepository) FindProductUnitSize(ctx context.Context, productID, unitSizeID string) (*domain.ProductUnitSize, error) {
	query := `
		SELECT v.product_unit_size_id, v.product_id, v.unit_size_id, u.name, v.sku, v.stock_level, v.min_stock_level
		FROM product_unit_sizes v
		JOIN unit_sizes u ON u.unit_size_id = v.unit_size_id
		WHERE v.product_id = $1 AND v.unit_size_id = $2;
	`
	var v domain.ProductUnitSize
	err := r.Pool.QueryRow(ctx, query, productID, unitSizeID).Scan(
		&v.ProductUnitSizeID, &v.ProductID, &v.UnitSizeID, &v.UnitSizeName, &v.SKU, &v.StockLevel, &v.MinStockLevel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product unit size: %w", err)
	}
	return &v, nil
}

func (r *PgxProductRepository) FindLowStockVariants(ctx context.Context) ([]domain.ProductUnitSize, error) {
	query := `
		SELECT v.product_unit_size_id, v.product_id, v.unit_size_id, u.name, v.sku, v.stock_level, v.min_stock_level
		FROM product_unit_sizes v
		JOIN unit_sizes u ON u.unit_size_id = v.unit_size_id
		WHERE v.stock_level < v.min_stock_level
		ORDER BY v.stock_level;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock variants: %w", err)
	}
	defer rows.Close()

	variants := []domain.ProductUnitSize{}
	for rows.Next() {
		var v domain.ProductUnitSize
		err := rows.Scan(&v.ProductUnitSizeID, &v.ProductID, &v.UnitSizeID, &v.UnitSizeName, &v.SKU, &v.StockLevel, &v.MinStockLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan low stock row: %w", err)
		}
		variants = append(variants, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating low stock rows: %w", rows.Err())
	}
	return variants, nil
}

// nullIfEmpty maps "" to NULL for optional foreign keys.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

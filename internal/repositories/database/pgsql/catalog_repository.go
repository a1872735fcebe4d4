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

// PgxCatalogRepository stores the simple named reference entities: brands,
// unit sizes and expense categories. The three tables share one shape, so the
// SQL goes through shared helpers parameterized by table and key column.
type PgxCatalogRepository struct {
	db DBPool
}

func newPgxCatalogRepository(db DBPool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{db: db}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

// namedRow mirrors the shared column set of the reference tables.
type namedRow struct {
	ID            string
	Name          string
	AuditedFields domain.AuditFields
}

func (r *PgxCatalogRepository) saveNamed(ctx context.Context, table, idColumn string, row namedRow) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, table, idColumn)
	_, err := r.db.Exec(ctx, query,
		row.ID, row.Name,
		row.AuditedFields.CreatedAt, row.AuditedFields.CreatedBy,
		row.AuditedFields.LastUpdatedAt, row.AuditedFields.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: %s named %q already exists", apperrors.ErrDuplicate, table, row.Name)
		}
		return fmt.Errorf("failed to save %s: %w", table, err)
	}
	return nil
}

func (r *PgxCatalogRepository) updateNamed(ctx context.Context, table, idColumn string, row namedRow) error {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE %s = $1;
	`, table, idColumn)
	tag, err := r.db.Exec(ctx, query,
		row.ID, row.Name, row.AuditedFields.LastUpdatedAt, row.AuditedFields.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) deleteNamed(ctx context.Context, table, idColumn, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, table, idColumn)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: %s is still referenced", apperrors.ErrValidation, table)
		}
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) findNamedByID(ctx context.Context, table, idColumn, id string) (*namedRow, error) {
	query := fmt.Sprintf(`
		SELECT %s, name, created_at, created_by, last_updated_at, last_updated_by
		FROM %s WHERE %s = $1;
	`, idColumn, table, idColumn)
	var row namedRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name,
		&row.AuditedFields.CreatedAt, &row.AuditedFields.CreatedBy,
		&row.AuditedFields.LastUpdatedAt, &row.AuditedFields.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s by ID %s: %w", table, id, err)
	}
	return &row, nil
}

func (r *PgxCatalogRepository) findNamed(ctx context.Context, table, idColumn string) ([]namedRow, error) {
	query := fmt.Sprintf(`
		SELECT %s, name, created_at, created_by, last_updated_at, last_updated_by
		FROM %s ORDER BY name;
	`, idColumn, table)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	result := []namedRow{}
	for rows.Next() {
		var row namedRow
		err := rows.Scan(
			&row.ID, &row.Name,
			&row.AuditedFields.CreatedAt, &row.AuditedFields.CreatedBy,
			&row.AuditedFields.LastUpdatedAt, &row.AuditedFields.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, rows.Err())
	}
	return result, nil
}

func (r *PgxCatalogRepository) SaveBrand(ctx context.Context, brand domain.Brand) error {
	return r.saveNamed(ctx, "brands", "brand_id", namedRow{ID: brand.BrandID, Name: brand.Name, AuditedFields: brand.AuditFields})
}

func (r *PgxCatalogRepository) UpdateBrand(ctx context.Context, brand domain.Brand) error {
	return r.updateNamed(ctx, "brands", "brand_id", namedRow{ID: brand.BrandID, Name: brand.Name, AuditedFields: brand.AuditFields})
}

func (r *PgxCatalogRepository) DeleteBrand(ctx context.Context, brandID string) error {
	return r.deleteNamed(ctx, "brands", "brand_id", brandID)
}

func (r *PgxCatalogRepository) FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	row, err := r.findNamedByID(ctx, "brands", "brand_id", brandID)
	if err != nil {
		return nil, err
	}
	return &domain.Brand{BrandID: row.ID, Name: row.Name, AuditFields: row.AuditedFields}, nil
}

func (r *PgxCatalogRepository) FindBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.findNamed(ctx, "brands", "brand_id")
	if err != nil {
		return nil, err
	}
	brands := make([]domain.Brand, len(rows))
	for i, row := range rows {
		brands[i] = domain.Brand{BrandID: row.ID, Name: row.Name, AuditFields: row.AuditedFields}
	}
	return brands, nil
}

func (r *PgxCatalogRepository) SaveUnitSize(ctx context.Context, unitSize domain.UnitSize) error {
	return r.saveNamed(ctx, "unit_sizes", "unit_size_id", namedRow{ID: unitSize.UnitSizeID, Name: unitSize.Name, AuditedFields: unitSize.AuditFields})
}

func (r *PgxCatalogRepository) UpdateUnitSize(ctx context.Context, unitSize domain.UnitSize) error {
	return r.updateNamed(ctx, "unit_sizes", "unit_size_id", namedRow{ID: unitSize.UnitSizeID, Name: unitSize.Name, AuditedFields: unitSize.AuditFields})
}

func (r *PgxCatalogRepository) DeleteUnitSize(ctx context.Context, unitSizeID string) error {
	return r.deleteNamed(ctx, "unit_sizes", "unit_size_id", unitSizeID)
}

func (r *PgxCatalogRepository) FindUnitSizeByID(ctx context.Context, unitSizeID string) (*domain.UnitSize, error) {
	row, err := r.findNamedByID(ctx, "unit_sizes", "unit_size_id", unitSizeID)
	if err != nil {
		return nil, err
	}
	return &domain.UnitSize{UnitSizeID: row.ID, Name: row.Name, AuditFields: row.AuditedFields}, nil
}

func (r *PgxCatalogRepository) FindUnitSizes(ctx context.Context) ([]domain.UnitSize, error) {
	rows, err := r.findNamed(ctx, "unit_sizes", "unit_size_id")
	if err != nil {
		return nil, err
	}
	sizes := make([]domain.UnitSize, len(rows))
	for i, row := range rows {
		sizes[i] = domain.UnitSize{UnitSizeID: row.ID, Name: row.Name, AuditFields: row.AuditedFields}
	}
	return sizes, nil
}

func (r *PgxCatalogRepository) SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	return r.saveNamed(ctx, "expense_categories", "expense_category_id", namedRow{ID: category.ExpenseCategoryID, Name: category.Name, AuditedFields: category.AuditFields})
}

func (r *PgxCatalogRepository) UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	return r.updateNamed(ctx, "expense_categories", "expense_category_id", namedRow{ID: category.ExpenseCategoryID, Name: category.Name, AuditedFields: category.AuditFields})
}

func (r *PgxCatalogRepository) DeleteExpenseCategory(ctx context.Context, categoryID string) error {
	return r.deleteNamed(ctx, "expense_categories", "expense_category_id", categoryID)
}

func (r *PgxCatalogRepository) FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	row, err := r.findNamedByID(ctx, "expense_categories", "expense_category_id", categoryID)
	if err != nil {
		return nil, err
	}
	return &domain.ExpenseCategory{ExpenseCategoryID: row.ID, Name: row.Name, AuditFields: row.AuditedFields}, nil
}

func (r *PgxCatalogRepository) FindExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	rows, err := r.findNamed(ctx, "expense_categories", "expense_category_id")
	if err != nil {
		return nil, err
	}
	categories := make([]domain.ExpenseCategory, len(rows))
	for i, row := range rows {
		categories[i] = domain.ExpenseCategory{ExpenseCategoryID: row.ID, Name: row.Name, AuditFields: row.AuditedFields}
	}
	return categories, nil
}

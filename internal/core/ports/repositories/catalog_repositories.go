package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// BrandReader defines read operations for brand data
type BrandReader interface {
	// FindBrandByID retrieves a specific brand by its ID.
	FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)

	// FindBrands retrieves all brands, ordered by name.
	FindBrands(ctx context.Context) ([]domain.Brand, error)
}

// BrandWriter defines write operations for brand data
type BrandWriter interface {
	// SaveBrand persists a new brand.
	SaveBrand(ctx context.Context, brand domain.Brand) error

	// UpdateBrand updates an existing brand.
	UpdateBrand(ctx context.Context, brand domain.Brand) error

	// DeleteBrand removes a brand.
	DeleteBrand(ctx context.Context, brandID string) error
}

// UnitSizeReader defines read operations for unit size data
type UnitSizeReader interface {
	// FindUnitSizeByID retrieves a specific unit size by its ID.
	FindUnitSizeByID(ctx context.Context, unitSizeID string) (*domain.UnitSize, error)

	// FindUnitSizes retrieves all unit sizes, ordered by name.
	FindUnitSizes(ctx context.Context) ([]domain.UnitSize, error)
}

// UnitSizeWriter defines write operations for unit size data
type UnitSizeWriter interface {
	// SaveUnitSize persists a new unit size.
	SaveUnitSize(ctx context.Context, unitSize domain.UnitSize) error

	// UpdateUnitSize updates an existing unit size.
	UpdateUnitSize(ctx context.Context, unitSize domain.UnitSize) error

	// DeleteUnitSize removes a unit size.
	DeleteUnitSize(ctx context.Context, unitSizeID string) error
}

// ExpenseCategoryReader defines read operations for expense category data
type ExpenseCategoryReader interface {
	// FindExpenseCategoryByID retrieves a specific expense category by its ID.
	FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)

	// FindExpenseCategories retrieves all expense categories, ordered by name.
	FindExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
}

// ExpenseCategoryWriter defines write operations for expense category data
type ExpenseCategoryWriter interface {
	// SaveExpenseCategory persists a new expense category.
	SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error

	// UpdateExpenseCategory updates an existing expense category.
	UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error

	// DeleteExpenseCategory removes an expense category.
	DeleteExpenseCategory(ctx context.Context, categoryID string) error
}

// CatalogRepositoryFacade combines the catalog reference-data repository
// interfaces. This is a facade for clients that need access to all operations
type CatalogRepositoryFacade interface {
	BrandReader
	BrandWriter
	UnitSizeReader
	UnitSizeWriter
	ExpenseCategoryReader
	ExpenseCategoryWriter
}

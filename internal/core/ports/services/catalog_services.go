package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
)

// CatalogSvcFacade manages the simple reference entities products and
// expenses hang off: brands, unit sizes and expense categories.
type CatalogSvcFacade interface {
	// CreateBrand persists a new brand.
	CreateBrand(ctx context.Context, req dto.NamedItemRequest, creatorUserID string) (*domain.Brand, error)

	// ListBrands retrieves all brands.
	ListBrands(ctx context.Context) ([]domain.Brand, error)

	// UpdateBrand renames a brand.
	UpdateBrand(ctx context.Context, brandID string, req dto.NamedItemRequest, updaterUserID string) (*domain.Brand, error)

	// DeleteBrand removes a brand.
	DeleteBrand(ctx context.Context, brandID string) error

	// CreateUnitSize persists a new unit size.
	CreateUnitSize(ctx context.Context, req dto.NamedItemRequest, creatorUserID string) (*domain.UnitSize, error)

	// ListUnitSizes retrieves all unit sizes.
	ListUnitSizes(ctx context.Context) ([]domain.UnitSize, error)

	// UpdateUnitSize renames a unit size.
	UpdateUnitSize(ctx context.Context, unitSizeID string, req dto.NamedItemRequest, updaterUserID string) (*domain.UnitSize, error)

	// DeleteUnitSize removes a unit size.
	DeleteUnitSize(ctx context.Context, unitSizeID string) error

	// CreateExpenseCategory persists a new expense category.
	CreateExpenseCategory(ctx context.Context, req dto.NamedItemRequest, creatorUserID string) (*domain.ExpenseCategory, error)

	// ListExpenseCategories retrieves all expense categories.
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)

	// UpdateExpenseCategory renames an expense category.
	UpdateExpenseCategory(ctx context.Context, categoryID string, req dto.NamedItemRequest, updaterUserID string) (*domain.ExpenseCategory, error)

	// DeleteExpenseCategory removes an expense category.
	DeleteExpenseCategory(ctx context.Context, categoryID string) error
}

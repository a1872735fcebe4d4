package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
)

// CatalogService manages brands, unit sizes and expense categories.
type CatalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) CreateBrand(ctx context.Context, req dto.NamedItemRequest, creatorUserID string) (*domain.Brand, error) {
	brand := domain.Brand{
		BrandID:     uuid.NewString(),
		Name:        req.Name,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.catalogRepo.SaveBrand(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, nil
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.catalogRepo.FindBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, brandID string, req dto.NamedItemRequest, updaterUserID string) (*domain.Brand, error) {
	brand, err := s.catalogRepo.FindBrandByID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	brand.Name = req.Name
	brand.Touch(updaterUserID, time.Now())
	if err := s.catalogRepo.UpdateBrand(ctx, *brand); err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, brandID string) error {
	if err := s.catalogRepo.DeleteBrand(ctx, brandID); err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

func (s *CatalogService) CreateUnitSize(ctx context.Context, req dto.NamedItemRequest, creatorUserID string) (*domain.UnitSize, error) {
	unitSize := domain.UnitSize{
		UnitSizeID:  uuid.NewString(),
		Name:        req.Name,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.catalogRepo.SaveUnitSize(ctx, unitSize); err != nil {
		return nil, fmt.Errorf("failed to create unit size: %w", err)
	}
	return &unitSize, nil
}

func (s *CatalogService) ListUnitSizes(ctx context.Context) ([]domain.UnitSize, error) {
	sizes, err := s.catalogRepo.FindUnitSizes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unit sizes: %w", err)
	}
	return sizes, nil
}

func (s *CatalogService) UpdateUnitSize(ctx context.Context, unitSizeID string, req dto.NamedItemRequest, updaterUserID string) (*domain.UnitSize, error) {
	unitSize, err := s.catalogRepo.FindUnitSizeByID(ctx, unitSizeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unit size: %w", err)
	}
	unitSize.Name = req.Name
	unitSize.Touch(updaterUserID, time.Now())
	if err := s.catalogRepo.UpdateUnitSize(ctx, *unitSize); err != nil {
		return nil, fmt.Errorf("failed to update unit size: %w", err)
	}
	return unitSize, nil
}

func (s *CatalogService) DeleteUnitSize(ctx context.Context, unitSizeID string) error {
	if err := s.catalogRepo.DeleteUnitSize(ctx, unitSizeID); err != nil {
		return fmt.Errorf("failed to delete unit size: %w", err)
	}
	return nil
}

func (s *CatalogService) CreateExpenseCategory(ctx context.Context, req dto.NamedItemRequest, creatorUserID string) (*domain.ExpenseCategory, error) {
	category := domain.ExpenseCategory{
		ExpenseCategoryID: uuid.NewString(),
		Name:              req.Name,
		AuditFields:       domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.catalogRepo.SaveExpenseCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create expense category: %w", err)
	}
	return &category, nil
}

func (s *CatalogService) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	categories, err := s.catalogRepo.FindExpenseCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) UpdateExpenseCategory(ctx context.Context, categoryID string, req dto.NamedItemRequest, updaterUserID string) (*domain.ExpenseCategory, error) {
	category, err := s.catalogRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense category: %w", err)
	}
	category.Name = req.Name
	category.Touch(updaterUserID, time.Now())
	if err := s.catalogRepo.UpdateExpenseCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update expense category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) DeleteExpenseCategory(ctx context.Context, categoryID string) error {
	if err := s.catalogRepo.DeleteExpenseCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete expense category: %w", err)
	}
	return nil
}

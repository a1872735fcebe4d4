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

type ProductService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

func NewProductService(productRepo portsrepo.ProductRepositoryFacade) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	now := time.Now()
	productID := uuid.NewString()

	product := domain.Product{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		BrandID:     req.BrandID,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	for _, v := range req.UnitSizes {
		product.UnitSizes = append(product.UnitSizes, domain.ProductUnitSize{
			ProductUnitSizeID: uuid.NewString(),
			ProductID:         productID,
			UnitSizeID:        v.UnitSizeID,
			SKU:               v.SKU,
			MinStockLevel:     v.MinStockLevel,
		})
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "product created", "product_id", productID, "variants", len(product.UnitSizes))
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	existing, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Category = req.Category
	existing.BrandID = req.BrandID
	existing.Touch(updaterUserID, time.Now())

	byUnitSize := map[string]domain.ProductUnitSize{}
	for _, v := range existing.UnitSizes {
		byUnitSize[v.UnitSizeID] = v
	}

	variants := make([]domain.ProductUnitSize, 0, len(req.UnitSizes))
	for _, in := range req.UnitSizes {
		v, ok := byUnitSize[in.UnitSizeID]
		if !ok {
			v = domain.ProductUnitSize{
				ProductUnitSizeID: uuid.NewString(),
				ProductID:         productID,
				UnitSizeID:        in.UnitSizeID,
			}
		}
		v.SKU = in.SKU
		v.MinStockLevel = in.MinStockLevel
		variants = append(variants, v)
	}
	existing.UnitSizes = variants

	if err := s.productRepo.UpdateProduct(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) AdjustStock(ctx context.Context, productID, unitSizeID string, req dto.AdjustStockRequest) (*domain.ProductUnitSize, error) {
	variant, err := s.productRepo.FindProductUnitSize(ctx, productID, unitSizeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product variant: %w", err)
	}

	if err := s.productRepo.AdjustStock(ctx, variant.ProductUnitSizeID, req.Delta); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	s.LogInfo(ctx, "stock adjusted", "product_unit_size_id", variant.ProductUnitSizeID, "delta", req.Delta)
	return s.productRepo.FindProductUnitSize(ctx, productID, unitSizeID)
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	products, err := s.productRepo.FindProducts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *ProductService) ListLowStockVariants(ctx context.Context) ([]domain.ProductUnitSize, error) {
	variants, err := s.productRepo.FindLowStockVariants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock variants: %w", err)
	}
	if variants == nil {
		return []domain.ProductUnitSize{}, nil
	}
	return variants, nil
}

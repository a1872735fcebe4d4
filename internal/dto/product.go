package dto

import (
	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// ProductUnitSizeInput is one size variant in a create/update request.
type ProductUnitSizeInput struct {
	UnitSizeID    string `json:"unitSizeID" binding:"required"`
	SKU           string `json:"sku" binding:"required"`
	MinStockLevel int    `json:"minStockLevel" binding:"omitempty,gte=0"`
}

// CreateProductRequest defines the data needed to create a product with its
// size variants.
type CreateProductRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	BrandID     string                 `json:"brandID" binding:"required"`
	UnitSizes   []ProductUnitSizeInput `json:"unitSizes" binding:"required,min=1,dive"`
}

// UpdateProductRequest mirrors the create shape; the unit-size slice is the
// desired final set (removed variants are deleted, new ones added, stock on
// surviving ones preserved).
type UpdateProductRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	BrandID     string                 `json:"brandID" binding:"required"`
	UnitSizes   []ProductUnitSizeInput `json:"unitSizes" binding:"required,min=1,dive"`
}

// AdjustStockRequest changes the stock level of one variant by a delta
// (positive for intake, negative for shrinkage corrections).
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductUnitSizeResponse is the API shape of a size variant.
type ProductUnitSizeResponse struct {
	ProductUnitSizeID string `json:"productUnitSizeID"`
	UnitSizeID        string `json:"unitSizeID"`
	UnitSizeName      string `json:"unitSizeName,omitempty"`
	SKU               string `json:"sku"`
	StockLevel        int    `json:"stockLevel"`
	MinStockLevel     int    `json:"minStockLevel"`
	LowStock          bool   `json:"lowStock"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	ProductID   string                    `json:"productID"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Category    string                    `json:"category,omitempty"`
	BrandID     string                    `json:"brandID"`
	BrandName   string                    `json:"brandName,omitempty"`
	UnitSizes   []ProductUnitSizeResponse `json:"unitSizes"`
}

// ToProductResponse converts a domain.Product to its API shape.
func ToProductResponse(p *domain.Product) ProductResponse {
	sizes := make([]ProductUnitSizeResponse, len(p.UnitSizes))
	for i, s := range p.UnitSizes {
		sizes[i] = ProductUnitSizeResponse{
			ProductUnitSizeID: s.ProductUnitSizeID,
			UnitSizeID:        s.UnitSizeID,
			UnitSizeName:      s.UnitSizeName,
			SKU:               s.SKU,
			StockLevel:        s.StockLevel,
			MinStockLevel:     s.MinStockLevel,
			LowStock:          s.IsLowStock(),
		}
	}
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		BrandID:     p.BrandID,
		BrandName:   p.BrandName,
		UnitSizes:   sizes,
	}
}

// ToListProductResponse converts a slice of products to API shapes.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

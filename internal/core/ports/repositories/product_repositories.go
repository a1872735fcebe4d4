package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product with its unit size variants.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProducts retrieves a paginated list of products with variants.
	FindProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)

	// FindProductUnitSize retrieves one sellable variant of a product.
	FindProductUnitSize(ctx context.Context, productID, unitSizeID string) (*domain.ProductUnitSize, error)

	// FindLowStockVariants retrieves variants at or below their reorder point.
	FindLowStockVariants(ctx context.Context) ([]domain.ProductUnitSize, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product and its variants, seeding a
	// zero-priced item into every price list in the same transaction.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates a product and reconciles its variant set.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product and its variants.
	DeleteProduct(ctx context.Context, productID string) error

	// AdjustStock changes a variant's stock level by delta.
	AdjustStock(ctx context.Context, productUnitSizeID string, delta int) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
// This is a facade for clients that need access to all operations
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

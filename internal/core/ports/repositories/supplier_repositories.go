package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a specific supplier by its ID.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// FindSuppliers retrieves a paginated list of suppliers.
	FindSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier updates an existing supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier.
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
// This is a facade for clients that need access to all operations
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}

package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale with its items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSales retrieves a paginated list of sales, newest first.
	FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)

	// FindSalesByCustomer retrieves a customer's sales, newest first.
	FindSalesByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a sale with its items and decrements stock for every
	// line in the same transaction.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// CancelSale marks a sale cancelled and restores stock for every line in
	// the same transaction.
	CancelSale(ctx context.Context, sale domain.Sale) error

	// AddPaymentToSale records a payment and bumps the sale's payment amount
	// in the same transaction.
	AddPaymentToSale(ctx context.Context, payment domain.CustomerPayment, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
// This is a facade for clients that need access to all operations
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// PurchaseReader defines read operations for purchase invoice data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase invoice with its items.
	FindPurchaseByID(ctx context.Context, purchaseInvoiceID string) (*domain.PurchaseInvoice, error)

	// FindPurchaseByInvoiceNumber retrieves an invoice by its supplier number.
	FindPurchaseByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.PurchaseInvoice, error)

	// FindPurchases retrieves a paginated list of purchase invoices.
	FindPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error)

	// FindPurchaseStatusLogs retrieves an invoice's status history, oldest first.
	FindPurchaseStatusLogs(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseStatusLog, error)
}

// PurchaseWriter defines write operations for purchase invoice data
type PurchaseWriter interface {
	// SavePurchase persists a purchase invoice with its items.
	SavePurchase(ctx context.Context, purchase domain.PurchaseInvoice) error

	// UpdatePurchaseStatus applies a status transition and appends its log
	// entry in the same transaction.
	UpdatePurchaseStatus(ctx context.Context, purchase domain.PurchaseInvoice, log domain.PurchaseStatusLog) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
// This is a facade for clients that need access to all operations
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

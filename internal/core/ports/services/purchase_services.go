package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchase invoice data
type PurchaseReaderSvc interface {
	// GetPurchaseByID retrieves a purchase invoice with its items.
	GetPurchaseByID(ctx context.Context, purchaseInvoiceID string) (*domain.PurchaseInvoice, error)

	// ListPurchases retrieves a paginated list of purchase invoices.
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error)

	// ListPurchaseStatusLogs retrieves an invoice's status history.
	ListPurchaseStatusLogs(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseStatusLog, error)
}

// PurchaseWriterSvc defines write operations for purchase invoice data
type PurchaseWriterSvc interface {
	// CreatePurchase records a supplier invoice. Invoice numbers must be
	// unique across all purchases.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.PurchaseInvoice, error)

	// UpdatePurchaseStatus transitions the receiving and/or payment status
	// and appends a log entry.
	UpdatePurchaseStatus(ctx context.Context, purchaseInvoiceID string, req dto.UpdatePurchaseStatusRequest, updaterUserID string) (*domain.PurchaseInvoice, error)
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}

package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
)

// SaleReaderSvc defines read operations for sale data
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale with its items.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a paginated list of sales.
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)

	// ListSalesByCustomer retrieves a customer's sales.
	ListSalesByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.Sale, error)
}

// SaleWriterSvc defines write operations for sale data
type SaleWriterSvc interface {
	// CreateSale prices the requested items from the sale's price list,
	// freezes the transaction rate for SYP sales and decrements stock.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error)

	// CancelSale voids a completed sale and restores its stock.
	CancelSale(ctx context.Context, saleID string, req dto.CancelSaleRequest, updaterUserID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}

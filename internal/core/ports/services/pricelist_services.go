package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
)

// PriceListReaderSvc defines read operations for price list data
type PriceListReaderSvc interface {
	// GetPriceListByID retrieves a price list with its items.
	GetPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error)

	// ListPriceLists retrieves all price lists.
	ListPriceLists(ctx context.Context) ([]domain.PriceList, error)
}

// PriceListWriterSvc defines write operations for price list data
type PriceListWriterSvc interface {
	// CreatePriceList persists a new price list.
	CreatePriceList(ctx context.Context, req dto.CreatePriceListRequest, creatorUserID string) (*domain.PriceList, error)

	// UpdatePriceList updates a price list's name, description and status.
	UpdatePriceList(ctx context.Context, priceListID string, req dto.UpdatePriceListRequest, updaterUserID string) (*domain.PriceList, error)

	// SetPriceListItems applies price changes to a list's items.
	SetPriceListItems(ctx context.Context, priceListID string, req dto.SetPriceListItemsRequest, updaterUserID string) (*domain.PriceList, error)

	// DeletePriceList removes a price list.
	DeletePriceList(ctx context.Context, priceListID string) error
}

// PriceListSvcFacade combines all price list-related service interfaces
type PriceListSvcFacade interface {
	PriceListReaderSvc
	PriceListWriterSvc
}

package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// PriceListReader defines read operations for price list data
type PriceListReader interface {
	// FindPriceListByID retrieves a price list with its items.
	FindPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error)

	// FindPriceLists retrieves all price lists, without items.
	FindPriceLists(ctx context.Context) ([]domain.PriceList, error)

	// FindPriceListItem retrieves the price of one variant within a list.
	FindPriceListItem(ctx context.Context, priceListID, productID, unitSizeID string) (*domain.PriceListItem, error)
}

// PriceListWriter defines write operations for price list data
type PriceListWriter interface {
	// SavePriceList persists a new price list, seeding zero-priced items for
	// every existing product variant in the same transaction.
	SavePriceList(ctx context.Context, list domain.PriceList) error

	// UpdatePriceList updates a price list's name, description and status.
	UpdatePriceList(ctx context.Context, list domain.PriceList) error

	// UpsertPriceListItems applies price changes, recording the previous
	// price and change time on every item whose price actually moved.
	UpsertPriceListItems(ctx context.Context, priceListID string, items []domain.PriceListItem) error

	// DeletePriceList removes a price list and its items.
	DeletePriceList(ctx context.Context, priceListID string) error
}

// PriceListRepositoryFacade combines all price list-related repository interfaces
// This is a facade for clients that need access to all operations
type PriceListRepositoryFacade interface {
	PriceListReader
	PriceListWriter
}

package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePriceListRequest defines the data needed to create a price list.
type CreatePriceListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdatePriceListRequest renames or re-states a price list.
type UpdatePriceListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required,oneof=active inactive"`
}

// PriceListItemInput sets the USD price for one product variant in a list.
type PriceListItemInput struct {
	ProductID  string          `json:"productID" binding:"required"`
	UnitSizeID string          `json:"unitSizeID" binding:"required"`
	Price      decimal.Decimal `json:"price"`
}

// SetPriceListItemsRequest bulk-updates prices within a list.
type SetPriceListItemsRequest struct {
	Items []PriceListItemInput `json:"items" binding:"required,min=1,dive"`
}

// PriceListItemResponse is the API shape of one priced variant.
type PriceListItemResponse struct {
	PriceListItemID string           `json:"priceListItemID"`
	ProductID       string           `json:"productID"`
	UnitSizeID      string           `json:"unitSizeID"`
	Price           decimal.Decimal  `json:"price"`
	PreviousPrice   *decimal.Decimal `json:"previousPrice,omitempty"`
	PriceChangedAt  *time.Time       `json:"priceChangedAt,omitempty"`
}

// PriceListResponse is the API shape of a price list.
type PriceListResponse struct {
	PriceListID string                  `json:"priceListID"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Status      string                  `json:"status"`
	Items       []PriceListItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// ToPriceListResponse converts a domain.PriceList to its API shape.
func ToPriceListResponse(pl *domain.PriceList) PriceListResponse {
	items := make([]PriceListItemResponse, len(pl.Items))
	for i, it := range pl.Items {
		items[i] = PriceListItemResponse{
			PriceListItemID: it.PriceListItemID,
			ProductID:       it.ProductID,
			UnitSizeID:      it.UnitSizeID,
			Price:           it.Price,
			PreviousPrice:   it.PreviousPrice,
			PriceChangedAt:  it.PriceChangedAt,
		}
	}
	return PriceListResponse{
		PriceListID: pl.PriceListID,
		Name:        pl.Name,
		Description: pl.Description,
		Status:      string(pl.Status),
		Items:       items,
		CreatedAt:   pl.CreatedAt,
	}
}

// ToListPriceListResponse converts a slice of price lists to API shapes.
func ToListPriceListResponse(lists []domain.PriceList) []PriceListResponse {
	res := make([]PriceListResponse, len(lists))
	for i := range lists {
		res[i] = ToPriceListResponse(&lists[i])
	}
	return res
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceListStatus marks whether a price list can be assigned to customers.
type PriceListStatus string

const (
	PriceListActive   PriceListStatus = "active"
	PriceListInactive PriceListStatus = "inactive"
)

// PriceList is a named tier of USD unit prices (retail, wholesale, ...).
// Customers may carry a default list; a sale may override it.
type PriceList struct {
	PriceListID string          `json:"priceListID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      PriceListStatus `json:"status"`

	Items []PriceListItem `json:"items,omitempty"`
	AuditFields
}

// PriceListItem prices one product variant within a list. Prices are always
// USD; SYP sale prices are derived at sale time from the transaction rate.
type PriceListItem struct {
	PriceListItemID string           `json:"priceListItemID"`
	PriceListID     string           `json:"priceListID"`
	ProductID       string           `json:"productID"`
	UnitSizeID      string           `json:"unitSizeID"`
	Price           decimal.Decimal  `json:"price"`
	PreviousPrice   *decimal.Decimal `json:"previousPrice,omitempty"`
	PriceChangedAt  *time.Time       `json:"priceChangedAt,omitempty"`
}

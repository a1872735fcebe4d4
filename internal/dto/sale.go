package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemInput is one requested line on a new sale. Prices are resolved
// server-side from the sale's price list, so the client sends only what and
// how much.
type SaleItemInput struct {
	ProductID  string `json:"productID" binding:"required"`
	UnitSizeID string `json:"unitSizeID" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest defines the data needed to ring up a sale. SYP sales
// freeze an exchange rate on the record: an explicit transactionExchangeRate
// wins, otherwise the default rate in effect on the sale date is used.
type CreateSaleRequest struct {
	CustomerID              string           `json:"customerID" binding:"required"`
	PriceListID             string           `json:"priceListID"`
	Currency                string           `json:"currency" binding:"required,oneof=USD SYP"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate"`
	PaymentAmount           *decimal.Decimal `json:"paymentAmount"`
	PaymentMethod           string           `json:"paymentMethod" binding:"required,oneof=cash card bank_transfer"`
	SaleDate                *time.Time       `json:"saleDate"`
	Notes                   string           `json:"notes"`
	Items                   []SaleItemInput  `json:"items" binding:"required,min=1,dive"`
}

// CancelSaleRequest carries the reason for voiding a sale.
type CancelSaleRequest struct {
	Reason string `json:"reason"`
}

// SaleItemResponse is the API shape of one sale line.
type SaleItemResponse struct {
	SaleItemID   string          `json:"saleItemID"`
	ProductID    string          `json:"productID"`
	ProductName  string          `json:"productName,omitempty"`
	UnitSizeID   string          `json:"unitSizeID"`
	UnitSizeName string          `json:"unitSizeName,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// SaleResponse is the API shape of a sale.
type SaleResponse struct {
	SaleID                  string             `json:"saleID"`
	CustomerID              string             `json:"customerID"`
	CustomerName            string             `json:"customerName,omitempty"`
	PriceListID             string             `json:"priceListID,omitempty"`
	Currency                string             `json:"currency"`
	TransactionExchangeRate *decimal.Decimal   `json:"transactionExchangeRate,omitempty"`
	TotalAmount             decimal.Decimal    `json:"totalAmount"`
	SYPAmount               *decimal.Decimal   `json:"sypAmount,omitempty"`
	PaymentAmount           decimal.Decimal    `json:"paymentAmount"`
	Outstanding             decimal.Decimal    `json:"outstanding"`
	PaymentMethod           string             `json:"paymentMethod"`
	SaleDate                time.Time          `json:"saleDate"`
	Status                  string             `json:"status"`
	Notes                   string             `json:"notes,omitempty"`
	Items                   []SaleItemResponse `json:"items,omitempty"`
	CreatedAt               time.Time          `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to its API shape.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			SaleItemID:   it.SaleItemID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			UnitSizeID:   it.UnitSizeID,
			UnitSizeName: it.UnitSizeName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Subtotal:     it.Subtotal,
		}
	}
	return SaleResponse{
		SaleID:                  s.SaleID,
		CustomerID:              s.CustomerID,
		CustomerName:            s.CustomerName,
		PriceListID:             s.PriceListID,
		Currency:                string(s.Currency),
		TransactionExchangeRate: s.TransactionExchangeRate,
		TotalAmount:             s.TotalAmount,
		SYPAmount:               s.SYPAmount,
		PaymentAmount:           s.PaymentAmount,
		Outstanding:             s.OutstandingUSD(),
		PaymentMethod:           string(s.PaymentMethod),
		SaleDate:                s.SaleDate,
		Status:                  string(s.Status),
		Notes:                   s.Notes,
		Items:                   items,
		CreatedAt:               s.CreatedAt,
	}
}

// ToListSaleResponse converts a slice of sales to API shapes.
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}

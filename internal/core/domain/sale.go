package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

// PaymentMethod identifies how money changed hands.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer:
		return true
	}
	return false
}

// Sale is a completed counter sale. TotalAmount is canonical USD; when the
// sale was rung up in SYP, SYPAmount keeps the native total and
// TransactionExchangeRate the rate that linked the two at sale time. The rate
// is frozen on the record: later default-rate changes never touch history.
type Sale struct {
	SaleID                  string           `json:"saleID"`
	CustomerID              string           `json:"customerID"`
	CustomerName            string           `json:"customerName,omitempty"` // joined for display
	PriceListID             string           `json:"priceListID,omitempty"`
	Currency                Currency         `json:"currency"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate,omitempty"` // set iff Currency == SYP
	TotalAmount             decimal.Decimal  `json:"totalAmount"`                       // canonical USD
	SYPAmount               *decimal.Decimal `json:"sypAmount,omitempty"`               // native total iff Currency == SYP
	PaymentAmount           decimal.Decimal  `json:"paymentAmount"`                     // USD received so far
	PaymentMethod           PaymentMethod    `json:"paymentMethod"`
	SaleDate                time.Time        `json:"saleDate"`
	Status                  SaleStatus       `json:"status"`
	Notes                   string           `json:"notes,omitempty"`

	Items []SaleItem `json:"items,omitempty"`
	AuditFields
}

// OutstandingUSD is the unpaid remainder of the sale in canonical USD.
func (s Sale) OutstandingUSD() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaymentAmount)
}

// SaleItem is one line on a sale. UnitPrice and Subtotal are in the sale's
// currency: for SYP sales the unit price already carries the
// ceiling-to-hundreds rounding, and Subtotal is quantity times that rounded
// price, never recomputed from USD.
type SaleItem struct {
	SaleItemID   string          `json:"saleItemID"`
	SaleID       string          `json:"saleID"`
	ProductID    string          `json:"productID"`
	ProductName  string          `json:"productName,omitempty"` // joined for display
	UnitSizeID   string          `json:"unitSizeID"`
	UnitSizeName string          `json:"unitSizeName,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerPayment is money received against a sale. Amount is canonical USD;
// SYP payments keep the native figure and the rate applied at entry time.
type CustomerPayment struct {
	PaymentID               string           `json:"paymentID"`
	CustomerID              string           `json:"customerID"`
	SaleID                  string           `json:"saleID"`
	Currency                Currency         `json:"currency"`
	Amount                  decimal.Decimal  `json:"amount"` // canonical USD
	SYPAmount               *decimal.Decimal `json:"sypAmount,omitempty"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate,omitempty"`
	PaymentDate             time.Time        `json:"paymentDate"`
	PaymentMethod           PaymentMethod    `json:"paymentMethod"`
	ReferenceNumber         string           `json:"referenceNumber,omitempty"`
	Notes                   string           `json:"notes,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
	CreatedBy               string           `json:"createdBy"`
}

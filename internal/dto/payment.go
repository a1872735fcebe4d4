package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment against a
// sale. The amount is in the request currency; SYP payments convert to
// canonical USD at the explicit transactionExchangeRate when given, otherwise
// at the default rate in effect on the payment date.
type CreatePaymentRequest struct {
	SaleID                  string           `json:"saleID" binding:"required"`
	Currency                string           `json:"currency" binding:"required,oneof=USD SYP"`
	Amount                  decimal.Decimal  `json:"amount" binding:"required"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate"`
	PaymentDate             *time.Time       `json:"paymentDate"`
	PaymentMethod           string           `json:"paymentMethod" binding:"required,oneof=cash card bank_transfer"`
	ReferenceNumber         string           `json:"referenceNumber"`
	Notes                   string           `json:"notes"`
}

// PaymentResponse is the API shape of a customer payment.
type PaymentResponse struct {
	PaymentID               string           `json:"paymentID"`
	CustomerID              string           `json:"customerID"`
	SaleID                  string           `json:"saleID"`
	Currency                string           `json:"currency"`
	Amount                  decimal.Decimal  `json:"amount"`
	SYPAmount               *decimal.Decimal `json:"sypAmount,omitempty"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate,omitempty"`
	PaymentDate             time.Time        `json:"paymentDate"`
	PaymentMethod           string           `json:"paymentMethod"`
	ReferenceNumber         string           `json:"referenceNumber,omitempty"`
	Notes                   string           `json:"notes,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
}

// ToPaymentResponse converts a domain.CustomerPayment to its API shape.
func ToPaymentResponse(p *domain.CustomerPayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:               p.PaymentID,
		CustomerID:              p.CustomerID,
		SaleID:                  p.SaleID,
		Currency:                string(p.Currency),
		Amount:                  p.Amount,
		SYPAmount:               p.SYPAmount,
		TransactionExchangeRate: p.TransactionExchangeRate,
		PaymentDate:             p.PaymentDate,
		PaymentMethod:           string(p.PaymentMethod),
		ReferenceNumber:         p.ReferenceNumber,
		Notes:                   p.Notes,
		CreatedAt:               p.CreatedAt,
	}
}

// ToListPaymentResponse converts a slice of payments to API shapes.
func ToListPaymentResponse(payments []domain.CustomerPayment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

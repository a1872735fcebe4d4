package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost entry. Amount is canonical USD; expenses
// entered in SYP keep the native figure in SYPAmount and the rate used to
// derive the USD amount in TransactionExchangeRate.
type Expense struct {
	ExpenseID               string           `json:"expenseID"`
	Description             string           `json:"description"`
	Category                string           `json:"category"`
	Currency                Currency         `json:"currency"`
	Amount                  decimal.Decimal  `json:"amount"` // canonical USD
	SYPAmount               *decimal.Decimal `json:"sypAmount,omitempty"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate,omitempty"`
	Date                    time.Time        `json:"date"`
	AuditFields
}

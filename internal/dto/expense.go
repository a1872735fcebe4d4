package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense. The
// amount is in the request currency; SYP amounts convert to canonical USD at
// the explicit transactionExchangeRate when given, otherwise at the default
// rate in effect on the expense date.
type CreateExpenseRequest struct {
	Description             string           `json:"description" binding:"required"`
	Category                string           `json:"category" binding:"required"`
	Currency                string           `json:"currency" binding:"required,oneof=USD SYP"`
	Amount                  decimal.Decimal  `json:"amount" binding:"required"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate"`
	Date                    *time.Time       `json:"date"`
}

// UpdateExpenseRequest mirrors the create shape.
type UpdateExpenseRequest = CreateExpenseRequest

// ExpenseResponse is the API shape of an expense.
type ExpenseResponse struct {
	ExpenseID               string           `json:"expenseID"`
	Description             string           `json:"description"`
	Category                string           `json:"category"`
	Currency                string           `json:"currency"`
	Amount                  decimal.Decimal  `json:"amount"`
	SYPAmount               *decimal.Decimal `json:"sypAmount,omitempty"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate,omitempty"`
	Date                    time.Time        `json:"date"`
	CreatedAt               time.Time        `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to its API shape.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:               e.ExpenseID,
		Description:             e.Description,
		Category:                e.Category,
		Currency:                string(e.Currency),
		Amount:                  e.Amount,
		SYPAmount:               e.SYPAmount,
		TransactionExchangeRate: e.TransactionExchangeRate,
		Date:                    e.Date,
		CreatedAt:               e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of expenses to API shapes.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

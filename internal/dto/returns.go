package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReturnItemInput is one requested line on a new return.
type ReturnItemInput struct {
	ProductID     string          `json:"productID" binding:"required"`
	UnitSizeID    string          `json:"unitSizeID" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	ReturnReason  string          `json:"returnReason"`
	ItemCondition string          `json:"itemCondition"`
}

// CreateReturnRequest defines the data needed to record a return, against
// either a sale or a purchase invoice depending on kind. SYP refunds convert
// at the explicit transactionExchangeRate when given, otherwise at the
// default rate in effect on the return date.
type CreateReturnRequest struct {
	Kind                    string            `json:"kind" binding:"required,oneof=sale purchase"`
	TransactionID           string            `json:"transactionID" binding:"required"`
	ReturnDate              *time.Time        `json:"returnDate"`
	ReturnReason            string            `json:"returnReason" binding:"required"`
	Currency                string            `json:"currency" binding:"required,oneof=USD SYP"`
	TransactionExchangeRate *decimal.Decimal  `json:"transactionExchangeRate"`
	Notes                   string            `json:"notes"`
	Items                   []ReturnItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateReturnStatusRequest changes the processing and/or refund status of a
// return. At least one of the two must be set.
type UpdateReturnStatusRequest struct {
	Status       *string `json:"status" binding:"omitempty,oneof=pending completed rejected"`
	RefundStatus *string `json:"refundStatus" binding:"omitempty,oneof=pending refunded"`
}

// ReturnItemResponse is the API shape of one returned line.
type ReturnItemResponse struct {
	ReturnItemID  string          `json:"returnItemID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName,omitempty"`
	UnitSizeID    string          `json:"unitSizeID"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ReturnReason  string          `json:"returnReason,omitempty"`
	ItemCondition string          `json:"itemCondition,omitempty"`
}

// ReturnResponse is the API shape of a return.
type ReturnResponse struct {
	ReturnID                string               `json:"returnID"`
	Kind                    string               `json:"kind"`
	TransactionID           string               `json:"transactionID"`
	ReturnDate              time.Time            `json:"returnDate"`
	ReturnReason            string               `json:"returnReason"`
	Currency                string               `json:"currency"`
	TransactionExchangeRate *decimal.Decimal     `json:"transactionExchangeRate,omitempty"`
	RefundAmount            decimal.Decimal      `json:"refundAmount"`
	SYPAmount               *decimal.Decimal     `json:"sypAmount,omitempty"`
	Status                  string               `json:"status"`
	RefundStatus            string               `json:"refundStatus"`
	Notes                   string               `json:"notes,omitempty"`
	Items                   []ReturnItemResponse `json:"items,omitempty"`
	CreatedAt               time.Time            `json:"createdAt"`
}

// ToReturnResponse converts a domain.Return to its API shape.
func ToReturnResponse(r *domain.Return) ReturnResponse {
	items := make([]ReturnItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = ReturnItemResponse{
			ReturnItemID:  it.ReturnItemID,
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			UnitSizeID:    it.UnitSizeID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			Subtotal:      it.Subtotal,
			ReturnReason:  it.ReturnReason,
			ItemCondition: it.ItemCondition,
		}
	}
	return ReturnResponse{
		ReturnID:                r.ReturnID,
		Kind:                    string(r.Kind),
		TransactionID:           r.TransactionID,
		ReturnDate:              r.ReturnDate,
		ReturnReason:            r.ReturnReason,
		Currency:                string(r.Currency),
		TransactionExchangeRate: r.TransactionExchangeRate,
		RefundAmount:            r.RefundAmount,
		SYPAmount:               r.SYPAmount,
		Status:                  string(r.Status),
		RefundStatus:            string(r.RefundStatus),
		Notes:                   r.Notes,
		Items:                   items,
		CreatedAt:               r.CreatedAt,
	}
}

// ToListReturnResponse converts a slice of returns to API shapes.
func ToListReturnResponse(returns []domain.Return) []ReturnResponse {
	res := make([]ReturnResponse, len(returns))
	for i := range returns {
		res[i] = ToReturnResponse(&returns[i])
	}
	return res
}

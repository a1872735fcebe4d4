package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemInput is one requested line on a new purchase invoice.
type PurchaseItemInput struct {
	ProductID  string          `json:"productID" binding:"required"`
	UnitSizeID string          `json:"unitSizeID" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreatePurchaseRequest defines the data needed to record a purchase invoice.
type CreatePurchaseRequest struct {
	SupplierID     string              `json:"supplierID" binding:"required"`
	InvoiceNumber  string              `json:"invoiceNumber" binding:"required"`
	Date           *time.Time          `json:"date"`
	PaymentDueDate *time.Time          `json:"paymentDueDate"`
	Notes          string              `json:"notes"`
	Items          []PurchaseItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseStatusRequest changes the receiving and/or payment status of
// a purchase invoice. At least one of the two must be set.
type UpdatePurchaseStatusRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending received cancelled"`
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,oneof=unpaid partial paid"`
	Reason        string  `json:"reason"`
}

// PurchaseItemResponse is the API shape of one purchase line.
type PurchaseItemResponse struct {
	PurchaseItemID string          `json:"purchaseItemID"`
	ProductID      string          `json:"productID"`
	ProductName    string          `json:"productName,omitempty"`
	UnitSizeID     string          `json:"unitSizeID"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse is the API shape of a purchase invoice.
type PurchaseResponse struct {
	PurchaseInvoiceID  string                 `json:"purchaseInvoiceID"`
	SupplierID         string                 `json:"supplierID"`
	SupplierName       string                 `json:"supplierName,omitempty"`
	InvoiceNumber      string                 `json:"invoiceNumber"`
	Date               time.Time              `json:"date"`
	PaymentDueDate     *time.Time             `json:"paymentDueDate,omitempty"`
	PaymentDate        *time.Time             `json:"paymentDate,omitempty"`
	TotalAmount        decimal.Decimal        `json:"totalAmount"`
	Status             string                 `json:"status"`
	PaymentStatus      string                 `json:"paymentStatus"`
	CancellationReason string                 `json:"cancellationReason,omitempty"`
	Notes              string                 `json:"notes,omitempty"`
	Items              []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
}

// PurchaseStatusLogResponse is one recorded status transition.
type PurchaseStatusLogResponse struct {
	PurchaseStatusLogID string    `json:"purchaseStatusLogID"`
	OldStatus           *string   `json:"oldStatus,omitempty"`
	NewStatus           *string   `json:"newStatus,omitempty"`
	OldPaymentStatus    *string   `json:"oldPaymentStatus,omitempty"`
	NewPaymentStatus    *string   `json:"newPaymentStatus,omitempty"`
	Reason              string    `json:"reason,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	CreatedBy           string    `json:"createdBy"`
	CreatedByName       string    `json:"createdByName,omitempty"`
}

// ToPurchaseResponse converts a domain.PurchaseInvoice to its API shape.
func ToPurchaseResponse(p *domain.PurchaseInvoice) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = PurchaseItemResponse{
			PurchaseItemID: it.PurchaseItemID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			UnitSizeID:     it.UnitSizeID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			Subtotal:       it.Subtotal,
		}
	}
	return PurchaseResponse{
		PurchaseInvoiceID:  p.PurchaseInvoiceID,
		SupplierID:         p.SupplierID,
		SupplierName:       p.SupplierName,
		InvoiceNumber:      p.InvoiceNumber,
		Date:               p.Date,
		PaymentDueDate:     p.PaymentDueDate,
		PaymentDate:        p.PaymentDate,
		TotalAmount:        p.TotalAmount,
		Status:             string(p.Status),
		PaymentStatus:      string(p.PaymentStatus),
		CancellationReason: p.CancellationReason,
		Notes:              p.Notes,
		Items:              items,
		CreatedAt:          p.CreatedAt,
	}
}

// ToListPurchaseResponse converts a slice of purchase invoices to API shapes.
func ToListPurchaseResponse(purchases []domain.PurchaseInvoice) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return res
}

// ToPurchaseStatusLogResponse converts one status log entry to its API shape.
func ToPurchaseStatusLogResponse(l *domain.PurchaseStatusLog) PurchaseStatusLogResponse {
	return PurchaseStatusLogResponse{
		PurchaseStatusLogID: l.PurchaseStatusLogID,
		OldStatus:           statusString(l.OldStatus),
		NewStatus:           statusString(l.NewStatus),
		OldPaymentStatus:    paymentStatusString(l.OldPaymentStatus),
		NewPaymentStatus:    paymentStatusString(l.NewPaymentStatus),
		Reason:              l.Reason,
		CreatedAt:           l.CreatedAt,
		CreatedBy:           l.CreatedBy,
		CreatedByName:       l.CreatedByName,
	}
}

// ToListPurchaseStatusLogResponse converts status log entries to API shapes.
func ToListPurchaseStatusLogResponse(logs []domain.PurchaseStatusLog) []PurchaseStatusLogResponse {
	res := make([]PurchaseStatusLogResponse, len(logs))
	for i := range logs {
		res[i] = ToPurchaseStatusLogResponse(&logs[i])
	}
	return res
}

func statusString(s *domain.PurchaseStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func paymentStatusString(s *domain.PurchasePaymentStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

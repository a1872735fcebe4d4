package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus is the receiving state of a purchase invoice.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseReceived  PurchaseStatus = "received"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// PurchasePaymentStatus tracks settlement with the supplier.
type PurchasePaymentStatus string

const (
	PurchaseUnpaid  PurchasePaymentStatus = "unpaid"
	PurchasePartial PurchasePaymentStatus = "partial"
	PurchasePaid    PurchasePaymentStatus = "paid"
)

// PurchaseInvoice is a supplier invoice. Purchases are recorded in USD.
type PurchaseInvoice struct {
	PurchaseInvoiceID  string                `json:"purchaseInvoiceID"`
	SupplierID         string                `json:"supplierID"`
	SupplierName       string                `json:"supplierName,omitempty"` // joined for display
	InvoiceNumber      string                `json:"invoiceNumber"`
	Date               time.Time             `json:"date"`
	PaymentDueDate     *time.Time            `json:"paymentDueDate,omitempty"`
	PaymentDate        *time.Time            `json:"paymentDate,omitempty"`
	TotalAmount        decimal.Decimal       `json:"totalAmount"`
	Status             PurchaseStatus        `json:"status"`
	PaymentStatus      PurchasePaymentStatus `json:"paymentStatus"`
	CancellationReason string                `json:"cancellationReason,omitempty"`
	Notes              string                `json:"notes,omitempty"`

	Items []PurchaseItem `json:"items,omitempty"`
	AuditFields
}

// PurchaseItem is one line on a purchase invoice.
type PurchaseItem struct {
	PurchaseItemID    string          `json:"purchaseItemID"`
	PurchaseInvoiceID string          `json:"purchaseInvoiceID"`
	ProductID         string          `json:"productID"`
	ProductName       string          `json:"productName,omitempty"`
	UnitSizeID        string          `json:"unitSizeID"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Subtotal          decimal.Decimal `json:"subtotal"`
}

// PurchaseStatusLog is an append-only record of a status or payment-status
// transition on a purchase invoice. Nil old/new pairs mean that dimension
// did not change in this transition.
type PurchaseStatusLog struct {
	PurchaseStatusLogID string                 `json:"purchaseStatusLogID"`
	PurchaseInvoiceID   string                 `json:"purchaseInvoiceID"`
	OldStatus           *PurchaseStatus        `json:"oldStatus,omitempty"`
	NewStatus           *PurchaseStatus        `json:"newStatus,omitempty"`
	OldPaymentStatus    *PurchasePaymentStatus `json:"oldPaymentStatus,omitempty"`
	NewPaymentStatus    *PurchasePaymentStatus `json:"newPaymentStatus,omitempty"`
	Reason              string                 `json:"reason,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
	CreatedBy           string                 `json:"createdBy"`
	CreatedByName       string                 `json:"createdByName,omitempty"` // joined for display
}

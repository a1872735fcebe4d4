package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnKind distinguishes customer returns (against a sale) from returns to
// a supplier (against a purchase invoice).
type ReturnKind string

const (
	ReturnSale     ReturnKind = "sale"
	ReturnPurchase ReturnKind = "purchase"
)

// Valid reports whether k is a known return kind.
func (k ReturnKind) Valid() bool {
	return k == ReturnSale || k == ReturnPurchase
}

// ReturnStatus is the processing state of a return.
type ReturnStatus string

const (
	ReturnPending   ReturnStatus = "pending"
	ReturnCompleted ReturnStatus = "completed"
	ReturnRejected  ReturnStatus = "rejected"
)

// RefundStatus tracks whether money moved back.
type RefundStatus string

const (
	RefundPending  RefundStatus = "pending"
	RefundRefunded RefundStatus = "refunded"
)

// Return records goods coming back, either from a customer or to a supplier.
// RefundAmount is canonical USD; SYP-denominated returns keep the native
// figure and the rate captured at entry time.
type Return struct {
	ReturnID                string           `json:"returnID"`
	Kind                    ReturnKind       `json:"kind"`
	TransactionID           string           `json:"transactionID"` // sale or purchase invoice ID
	ReturnDate              time.Time        `json:"returnDate"`
	ReturnReason            string           `json:"returnReason"`
	Currency                Currency         `json:"currency"`
	TransactionExchangeRate *decimal.Decimal `json:"transactionExchangeRate,omitempty"`
	RefundAmount            decimal.Decimal  `json:"refundAmount"` // canonical USD
	SYPAmount               *decimal.Decimal `json:"sypAmount,omitempty"`
	Status                  ReturnStatus     `json:"status"`
	RefundStatus            RefundStatus     `json:"refundStatus"`
	Notes                   string           `json:"notes,omitempty"`

	Items []ReturnItem `json:"items,omitempty"`
	AuditFields
}

// ReturnItem is one returned line. UnitPrice and Subtotal are in the return's
// currency, mirroring the sale-item convention.
type ReturnItem struct {
	ReturnItemID  string          `json:"returnItemID"`
	ReturnID      string          `json:"returnID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName,omitempty"`
	UnitSizeID    string          `json:"unitSizeID"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ReturnReason  string          `json:"returnReason,omitempty"`
	ItemCondition string          `json:"itemCondition,omitempty"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a buyer with an optional default price list.
type Customer struct {
	CustomerID         string `json:"customerID"`
	FullName           string `json:"fullName"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Address            string `json:"address,omitempty"`
	DefaultPriceListID string `json:"defaultPriceListID,omitempty"`
	AuditFields
}

// CustomerAccountSummary is the derived account position for one customer.
// Amounts are canonical USD.
type CustomerAccountSummary struct {
	CustomerID      string          `json:"customerID"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalPayments   decimal.Decimal `json:"totalPayments"`
	Balance         decimal.Decimal `json:"balance"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
}

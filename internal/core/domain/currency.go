package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the two currencies the shop operates in.
// All amounts are stored in USD; SYP appears only as a transaction-native
// amount alongside the rate that produced it.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencySYP Currency = "SYP"
)

// Valid reports whether c is a supported currency code.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencySYP
}

// BootstrapExchangeRate is the fallback SYP-per-USD rate used when the rate
// history is empty (fresh install). Callers log a warning when it is used.
var BootstrapExchangeRate = decimal.NewFromInt(13000)

// ExchangeRate is one entry in the append-only SYP-per-USD rate history.
// Rows are never mutated after insert; the "current" rate is the row flagged
// IsDefault, and updating the rate means flipping the old flag off and
// inserting a new flagged row in one transaction.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Rate           decimal.Decimal `json:"rate"` // SYP per 1 USD, > 0
	IsDefault      bool            `json:"isDefault"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

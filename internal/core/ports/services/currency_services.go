package services

import (
	"context"
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for exchange rate data
type CurrencyReaderSvc interface {
	// CurrentRate returns the effective default SYP-per-USD rate. When the
	// rate history is empty it falls back to the bootstrap rate rather than
	// failing, and reports that via the second return.
	CurrentRate(ctx context.Context) (decimal.Decimal, bool, error)

	// RateForDate returns the default rate in effect at t, falling back to
	// the current default when nothing predates t.
	RateForDate(ctx context.Context, t time.Time) (decimal.Decimal, error)

	// ListExchangeRates returns the rate history, newest first.
	ListExchangeRates(ctx context.Context, limit int, offset int) ([]domain.ExchangeRate, error)

	// Convert converts an amount between USD and SYP. A nil rate means the
	// current default.
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, rate *decimal.Decimal) (decimal.Decimal, error)

	// Format renders an amount for display in the given currency, converting
	// from canonical USD at rate when the currency is SYP.
	Format(ctx context.Context, amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (string, error)
}

// CurrencyWriterSvc defines write operations for exchange rate data
type CurrencyWriterSvc interface {
	// UpdateDefaultRate appends a new rate and atomically makes it the
	// default.
	UpdateDefaultRate(ctx context.Context, req dto.UpdateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// CurrencySvcFacade combines all exchange rate-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

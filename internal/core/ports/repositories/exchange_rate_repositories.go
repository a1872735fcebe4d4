package repositories

import (
	"context"
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindDefaultRate retrieves the current default USD/SYP rate.
	FindDefaultRate(ctx context.Context) (*domain.ExchangeRate, error)

	// FindRateAsOf retrieves the latest rate created at or before t.
	FindRateAsOf(ctx context.Context, t time.Time) (*domain.ExchangeRate, error)

	// FindExchangeRates retrieves the rate history, newest first.
	FindExchangeRates(ctx context.Context, limit int, offset int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveDefaultRate appends a new rate and makes it the default, clearing
	// the previous default in the same transaction.
	SaveDefaultRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateExchangeRateRequest carries a new default SYP-per-USD rate.
type UpdateExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse is the API shape of one rate-history entry.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Rate           decimal.Decimal `json:"rate"`
	IsDefault      bool            `json:"isDefault"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// CurrentRateResponse reports the effective default rate. Bootstrap is true
// when the rate history is empty and the hardcoded fallback is in effect.
type CurrentRateResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	Bootstrap bool            `json:"bootstrap"`
}

// RateForDateResponse reports the default rate that was in effect at a point
// in time, used to pre-populate backdated transaction forms.
type RateForDateResponse struct {
	Rate decimal.Decimal `json:"rate"`
	AsOf time.Time       `json:"asOf"`
}

// ConvertAmountRequest asks for a one-off conversion, optionally at an
// explicit rate instead of the current default.
type ConvertAmountRequest struct {
	Amount decimal.Decimal  `json:"amount"`
	From   domain.Currency  `json:"from" binding:"required,oneof=USD SYP"`
	To     domain.Currency  `json:"to" binding:"required,oneof=USD SYP"`
	Rate   *decimal.Decimal `json:"rate,omitempty"`
}

// ConvertAmountResponse carries the converted amount and a display string
// rendered with the general display-rounding rules.
type ConvertAmountResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its API shape.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		Rate:           rate.Rate,
		IsDefault:      rate.IsDefault,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of rates to API shapes.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

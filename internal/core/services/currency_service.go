package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyService owns the USD/SYP conversion rules. Every caller that needs
// a rate goes through here; nothing else reads the exchange_rates table.
type CurrencyService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

func NewCurrencyService(rateRepo portsrepo.ExchangeRateRepositoryFacade) *CurrencyService {
	return &CurrencyService{rateRepo: rateRepo}
}

// CurrentRate returns the effective default SYP-per-USD rate. An empty rate
// history falls back to the bootstrap rate instead of failing, so a fresh
// install can ring up sales before anyone has set a rate.
func (s *CurrencyService) CurrentRate(ctx context.Context) (decimal.Decimal, bool, error) {
	rate, err := s.rateRepo.FindDefaultRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "no default exchange rate configured, using bootstrap rate",
				"bootstrap_rate", domain.BootstrapExchangeRate.String())
			return domain.BootstrapExchangeRate, true, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to get current exchange rate: %w", err)
	}
	return rate.Rate, false, nil
}

// RateForDate returns the default rate that was in effect at t. When nothing
// predates t the current default (or bootstrap fallback) is used.
func (s *CurrencyService) RateForDate(ctx context.Context, t time.Time) (decimal.Decimal, error) {
	rate, err := s.rateRepo.FindRateAsOf(ctx, t)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			current, _, err := s.CurrentRate(ctx)
			return current, err
		}
		return decimal.Zero, fmt.Errorf("failed to get exchange rate for date: %w", err)
	}
	return rate.Rate, nil
}

// ListExchangeRates returns the rate history, newest first.
func (s *CurrencyService) ListExchangeRates(ctx context.Context, limit int, offset int) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.FindExchangeRates(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// UpdateDefaultRate appends a new rate and atomically makes it the default.
// Rates already on record keep their original values: history is append-only.
func (s *CurrencyService) UpdateDefaultRate(ctx context.Context, req dto.UpdateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		Rate:           req.Rate,
		IsDefault:      true,
		CreatedAt:      time.Now(),
		CreatedBy:      creatorUserID,
	}

	if err := s.rateRepo.SaveDefaultRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "failed to update default exchange rate")
		return nil, fmt.Errorf("failed to update default exchange rate: %w", err)
	}

	s.LogInfo(ctx, "default exchange rate updated",
		"exchange_rate_id", rate.ExchangeRateID, "rate", rate.Rate.String())
	return &rate, nil
}

// Convert converts an amount between USD and SYP and applies the display
// rounding of the target currency. A nil rate means the current default.
func (s *CurrencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, rate *decimal.Decimal) (decimal.Decimal, error) {
	r, err := s.resolveRate(ctx, rate)
	if err != nil {
		return decimal.Zero, err
	}

	converted, err := domain.ConvertAmount(amount, from, to, r)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	return domain.RoundDisplayAmount(converted, to), nil
}

// Format renders a canonical USD amount for display in the given currency.
func (s *CurrencyService) Format(ctx context.Context, amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (string, error) {
	formatted, err := domain.FormatAmount(amount, currency, rate)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	return formatted, nil
}

func (s *CurrencyService) resolveRate(ctx context.Context, rate *decimal.Decimal) (decimal.Decimal, error) {
	if rate != nil {
		if !rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		return *rate, nil
	}
	current, _, err := s.CurrentRate(ctx)
	return current, err
}

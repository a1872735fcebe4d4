package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// resolveTransactionRate picks the SYP-per-USD rate frozen on a money
// transaction. An operator-supplied rate wins; otherwise a dated transaction
// takes the default rate in effect on that date, and everything else takes
// the current default.
func resolveTransactionRate(ctx context.Context, svc portssvc.CurrencyReaderSvc, override *decimal.Decimal, txnDate *time.Time) (decimal.Decimal, error) {
	if override != nil {
		if !override.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: transaction exchange rate must be positive", apperrors.ErrValidation)
		}
		return *override, nil
	}
	if txnDate != nil {
		return svc.RateForDate(ctx, *txnDate)
	}
	rate, _, err := svc.CurrentRate(ctx)
	return rate, err
}

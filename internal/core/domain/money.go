package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate indicates a conversion was attempted with a zero or negative
// exchange rate. Rates are validated at write time, so hitting this means the
// caller bypassed the rate store.
var ErrInvalidRate = errors.New("exchange rate must be positive")

// ErrUnknownCurrency indicates a currency code outside USD/SYP.
var ErrUnknownCurrency = errors.New("unknown currency")

var hundred = decimal.NewFromInt(100)

// ConvertAmount converts an amount between USD and SYP at the given
// SYP-per-USD rate. Same-currency conversion is the identity, including for
// zero and negative amounts.
func ConvertAmount(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if !from.Valid() || !to.Valid() {
		return decimal.Zero, fmt.Errorf("%w: %q -> %q", ErrUnknownCurrency, from, to)
	}
	if from == to {
		return amount, nil
	}
	if !rate.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}
	if from == CurrencyUSD {
		return amount.Mul(rate), nil
	}
	return amount.Div(rate), nil
}

// RoundDisplayAmount applies the general display rounding: USD to two decimal
// places, SYP to the nearest whole pound. Transaction totals, payments and
// expenses all use this rule.
func RoundDisplayAmount(amount decimal.Decimal, currency Currency) decimal.Decimal {
	if currency == CurrencyUSD {
		return amount.Round(2)
	}
	return amount.Round(0)
}

// RoundUnitPriceSYP rounds a SYP unit sale price up to the next multiple of
// 100, so customer-facing prices end in round numbers. The rounded price is
// always >= the raw converted price and less than 100 SYP above it.
//
// Negative amounts (refund line items) round toward zero instead, so a refund
// price never grows in magnitude past what was charged.
func RoundUnitPriceSYP(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(hundred).Ceil().Mul(hundred)
}

// FormatAmount renders a canonical USD amount for display in the requested
// currency. USD renders as a $-prefixed two-decimal figure; SYP converts at
// the given rate, rounds to the nearest pound (plain rounding, not the
// unit-price ceiling) and adds thousands separators and the SYP suffix.
func FormatAmount(amount decimal.Decimal, currency Currency, rate decimal.Decimal) (string, error) {
	switch currency {
	case CurrencyUSD:
		return "$" + amount.StringFixed(2), nil
	case CurrencySYP:
		syp, err := ConvertAmount(amount, CurrencyUSD, CurrencySYP, rate)
		if err != nil {
			return "", err
		}
		return groupThousands(syp.Round(0)) + " SYP", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}
}

// groupThousands renders a whole decimal with comma separators.
func groupThousands(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

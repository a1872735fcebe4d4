package domain_test

import (
	"testing"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertAmount_SameCurrencyIdentity(t *testing.T) {
	rate := decimal.NewFromInt(13000)
	for _, cur := range []domain.Currency{domain.CurrencyUSD, domain.CurrencySYP} {
		amount := decimal.NewFromFloat(123.45)
		got, err := domain.ConvertAmount(amount, cur, cur, rate)
		require.NoError(t, err)
		assert.True(t, amount.Equal(got), "same-currency conversion must be exact identity")
	}
}

func TestConvertAmount_RoundTrip(t *testing.T) {
	rates := []decimal.Decimal{
		decimal.NewFromInt(13000),
		decimal.NewFromFloat(12537.5),
		decimal.NewFromInt(1),
		decimal.NewFromFloat(0.5),
	}
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(4.37),
		decimal.NewFromInt(0),
		decimal.NewFromFloat(-250.10),
		decimal.NewFromInt(1000000),
	}
	tolerance := decimal.New(1, -9)
	for _, rate := range rates {
		for _, amount := range amounts {
			syp, err := domain.ConvertAmount(amount, domain.CurrencyUSD, domain.CurrencySYP, rate)
			require.NoError(t, err)
			back, err := domain.ConvertAmount(syp, domain.CurrencySYP, domain.CurrencyUSD, rate)
			require.NoError(t, err)
			diff := back.Sub(amount).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"round trip of %s at rate %s drifted by %s", amount, rate, diff)
		}
	}
}

func TestConvertAmount_ZeroIsZero(t *testing.T) {
	rate := decimal.NewFromInt(13000)
	got, err := domain.ConvertAmount(decimal.Zero, domain.CurrencyUSD, domain.CurrencySYP, rate)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = domain.ConvertAmount(decimal.Zero, domain.CurrencySYP, domain.CurrencyUSD, rate)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestConvertAmount_RejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := domain.ConvertAmount(decimal.NewFromInt(10), domain.CurrencySYP, domain.CurrencyUSD, rate)
		assert.ErrorIs(t, err, domain.ErrInvalidRate, "rate %s must be rejected", rate)
	}
}

func TestConvertAmount_RejectsUnknownCurrency(t *testing.T) {
	_, err := domain.ConvertAmount(decimal.NewFromInt(10), domain.Currency("EUR"), domain.CurrencyUSD, decimal.NewFromInt(13000))
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestRoundUnitPriceSYP_CeilingToHundreds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already a multiple", "58500", "58500"},
		{"rounds up to next hundred", "56810", "56900"},
		{"just above a multiple", "100.01", "200"},
		{"just below a multiple", "199.99", "200"},
		{"zero stays zero", "0", "0"},
		{"negative rounds toward zero", "-56810", "-56800"},
		{"negative multiple unchanged", "-56800", "-56800"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			got := domain.RoundUnitPriceSYP(in)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"RoundUnitPriceSYP(%s) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

// The ceiling rule must never undercharge, and never overshoot by a full
// hundred, for any positive USD price and rate.
func TestRoundUnitPriceSYP_MonotonicCeiling(t *testing.T) {
	rate := decimal.NewFromInt(13000)
	prices := []string{"4.50", "4.37", "0.01", "12.99", "7.777", "150"}
	hundred := decimal.NewFromInt(100)
	for _, p := range prices {
		raw := decimal.RequireFromString(p).Mul(rate)
		rounded := domain.RoundUnitPriceSYP(raw)
		assert.True(t, rounded.GreaterThanOrEqual(raw), "rounded %s < raw %s", rounded, raw)
		assert.True(t, rounded.Sub(raw).LessThan(hundred), "rounded %s overshoots raw %s by >= 100", rounded, raw)
	}
}

func TestRoundDisplayAmount(t *testing.T) {
	assert.Equal(t, "20.00", domain.RoundDisplayAmount(decimal.RequireFromString("19.995"), domain.CurrencyUSD).StringFixed(2))
	assert.Equal(t, "1.23", domain.RoundDisplayAmount(decimal.RequireFromString("1.234"), domain.CurrencyUSD).StringFixed(2))
	assert.Equal(t, "56810", domain.RoundDisplayAmount(decimal.RequireFromString("56810.4"), domain.CurrencySYP).String())
	assert.Equal(t, "-57000", domain.RoundDisplayAmount(decimal.RequireFromString("-56999.5"), domain.CurrencySYP).String())
}

func TestFormatAmount(t *testing.T) {
	rate := decimal.NewFromInt(13000)
	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		want     string
	}{
		{"USD two decimals with rounding", "19.995", domain.CurrencyUSD, "$20.00"},
		{"USD plain", "4.37", domain.CurrencyUSD, "$4.37"},
		{"SYP one dollar", "1", domain.CurrencySYP, "13,000 SYP"},
		{"SYP grouping across millions", "100", domain.CurrencySYP, "1,300,000 SYP"},
		{"SYP nearest pound, not ceiling", "4.37", domain.CurrencySYP, "56,810 SYP"},
		{"SYP zero", "0", domain.CurrencySYP, "0 SYP"},
		{"SYP negative", "-1", domain.CurrencySYP, "-13,000 SYP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.FormatAmount(decimal.RequireFromString(tt.amount), tt.currency, rate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount_UnknownCurrency(t *testing.T) {
	_, err := domain.FormatAmount(decimal.NewFromInt(1), domain.Currency("EUR"), decimal.NewFromInt(13000))
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

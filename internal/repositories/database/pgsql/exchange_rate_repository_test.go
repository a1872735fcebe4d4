package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exchangeRateRows = []string{"exchange_rate_id", "rate", "is_default", "created_at", "created_by"}

func TestFindRateAsOf_ResolvesLatestAtOrBefore(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxExchangeRateRepository(mock)
	ctx := context.Background()

	// Two rates on record; asking for a point between them must return the
	// older one, resolved in SQL by created_at <= t, newest first.
	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM exchange_rates\s+WHERE created_at <= \$1\s+ORDER BY created_at DESC\s+LIMIT 1`).
		WithArgs(asOf).
		WillReturnRows(pgxmock.NewRows(exchangeRateRows).
			AddRow("rate-1", decimal.NewFromInt(12800), false, older, "user-1"))

	rate, err := repo.FindRateAsOf(ctx, asOf)

	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(12800)), "rate %s", rate.Rate)
	assert.True(t, rate.CreatedAt.Equal(older))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRateAsOf_NothingPredates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxExchangeRateRepository(mock)
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM exchange_rates\s+WHERE created_at <= \$1`).
		WithArgs(asOf).
		WillReturnError(pgx.ErrNoRows)

	rate, err := repo.FindRateAsOf(context.Background(), asOf)

	require.Error(t, err)
	assert.Nil(t, rate)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDefaultRate_NewestDefaultWins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxExchangeRateRepository(mock)
	created := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE is_default = TRUE\s+ORDER BY created_at DESC\s+LIMIT 1`).
		WillReturnRows(pgxmock.NewRows(exchangeRateRows).
			AddRow("rate-2", decimal.NewFromInt(14500), true, created, "user-1"))

	rate, err := repo.FindDefaultRate(context.Background())

	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(14500)), "rate %s", rate.Rate)
	assert.True(t, rate.IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDefaultRate_EmptyHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxExchangeRateRepository(mock)
	mock.ExpectQuery(`WHERE is_default = TRUE`).
		WillReturnError(pgx.ErrNoRows)

	rate, err := repo.FindDefaultRate(context.Background())

	require.Error(t, err)
	assert.Nil(t, rate)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDefaultRate_SwapsDefaultInOneTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxExchangeRateRepository(mock)
	rate := domain.ExchangeRate{
		ExchangeRateID: "rate-3",
		Rate:           decimal.NewFromInt(15000),
		IsDefault:      true,
		CreatedAt:      time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		CreatedBy:      "user-1",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE exchange_rates SET is_default = FALSE WHERE is_default = TRUE`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO exchange_rates`).
		WithArgs(rate.ExchangeRateID, rate.Rate, rate.CreatedAt, rate.CreatedBy).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.SaveDefaultRate(context.Background(), rate)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

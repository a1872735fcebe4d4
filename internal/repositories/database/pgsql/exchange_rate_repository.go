package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxExchangeRateRepository implements the exchange rate ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db DBPool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, rate, is_default, created_at, created_by`

func scanExchangeRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	err := row.Scan(
		&rate.ExchangeRateID,
		&rate.Rate,
		&rate.IsDefault,
		&rate.CreatedAt,
		&rate.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// FindDefaultRate retrieves the current default rate. The schema allows at
// most one default row, but the newest wins should that constraint ever be
// relaxed.
func (r *PgxExchangeRateRepository) FindDefaultRate(ctx context.Context) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE is_default = TRUE
		ORDER BY created_at DESC
		LIMIT 1;
	`
	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find default exchange rate: %w", err)
	}
	return rate, nil
}

// FindRateAsOf retrieves the latest rate created at or before t.
func (r *PgxExchangeRateRepository) FindRateAsOf(ctx context.Context, t time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE created_at <= $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, t))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate as of %s: %w", t.Format(time.RFC3339), err)
	}
	return rate, nil
}

// FindExchangeRates retrieves the rate history, newest first.
func (r *PgxExchangeRateRepository) FindExchangeRates(ctx context.Context, limit int, offset int) ([]domain.ExchangeRate, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		var rate domain.ExchangeRate
		err := rows.Scan(
			&rate.ExchangeRateID,
			&rate.Rate,
			&rate.IsDefault,
			&rate.CreatedAt,
			&rate.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, rate)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", rows.Err())
	}
	return rates, nil
}

// SaveDefaultRate appends a new rate and makes it the default. Clearing the
// old flag and setting the new one happen in one transaction so there is
// never a moment with zero or two defaults.
func (r *PgxExchangeRateRepository) SaveDefaultRate(ctx context.Context, rate domain.ExchangeRate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `UPDATE exchange_rates SET is_default = FALSE WHERE is_default = TRUE;`)
	if err != nil {
		return fmt.Errorf("failed to clear previous default rate: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO exchange_rates (exchange_rate_id, rate, is_default, created_at, created_by)
		VALUES ($1, $2, TRUE, $3, $4);
	`, rate.ExchangeRateID, rate.Rate, rate.CreatedAt, rate.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert exchange rate: %w", err)
	}

	return r.Commit(ctx, tx)
}

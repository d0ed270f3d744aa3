package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/PPKK-Project/Tlan/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRateRepository implements the repositories.CurrencyRateRepositoryFacade
// interface using pgxpool.
type PgxCurrencyRateRepository struct {
	pool *pgxpool.Pool
}

// NewCurrencyRateRepository creates a new PgxCurrencyRateRepository.
func NewCurrencyRateRepository(pool *pgxpool.Pool) *PgxCurrencyRateRepository {
	return &PgxCurrencyRateRepository{pool: pool}
}

// SaveCurrencyRates upserts the full rate set by currency code in a single
// batch. The last-fetched value always wins; there is no partial-field merge.
func (r *PgxCurrencyRateRepository) SaveCurrencyRates(ctx context.Context, rates []domain.CurrencyRate) error {
	if len(rates) == 0 {
		return nil
	}

	query := `
		INSERT INTO currency_rates (currency_code, rate, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	batch := &pgx.Batch{}
	for _, rate := range rates {
		batch.Queue(query, rate.CurrencyCode, rate.Rate, rate.LastUpdatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range rates {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert currency rates: %w", err)
		}
	}
	return nil
}

// FindCurrencyRateByCode retrieves a rate by its 3-letter currency code.
func (r *PgxCurrencyRateRepository) FindCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, rate, last_updated_at
		FROM currency_rates
		WHERE currency_code = $1;
	`
	var rate domain.CurrencyRate
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(
		&rate.CurrencyCode,
		&rate.Rate,
		&rate.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency rate %s: %w", currencyCode, err)
	}
	return &rate, nil
}

// ListCurrencyRates retrieves the full persisted rate table.
func (r *PgxCurrencyRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, rate, last_updated_at
		FROM currency_rates
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyRate, error) {
		var rate domain.CurrencyRate
		err := row.Scan(&rate.CurrencyCode, &rate.Rate, &rate.LastUpdatedAt)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency rates: %w", err)
	}
	return rates, nil
}

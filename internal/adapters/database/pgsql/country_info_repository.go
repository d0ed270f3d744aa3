package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/PPKK-Project/Tlan/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxCountryInfoRepository implements the repositories.CountryInfoRepositoryFacade
// interface using pgxpool. The currency_code column is nullable: it is set
// only when a rate row existed at rebuild time.
type PgxCountryInfoRepository struct {
	pool *pgxpool.Pool
}

// NewCountryInfoRepository creates a new PgxCountryInfoRepository.
func NewCountryInfoRepository(pool *pgxpool.Pool) *PgxCountryInfoRepository {
	return &PgxCountryInfoRepository{pool: pool}
}

// SaveCountryInfos upserts the full derived record set by country code in a
// single batch.
func (r *PgxCountryInfoRepository) SaveCountryInfos(ctx context.Context, infos []domain.CountryInfo) error {
	if len(infos) == 0 {
		return nil
	}

	query := `
		INSERT INTO country_info (country_code, country_name, currency_code, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (country_code) DO UPDATE SET
			country_name = EXCLUDED.country_name,
			currency_code = EXCLUDED.currency_code,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	batch := &pgx.Batch{}
	for _, info := range infos {
		var currencyCode *string
		if info.CurrencyRate != nil {
			currencyCode = &info.CurrencyRate.CurrencyCode
		}
		batch.Queue(query, info.CountryCode, info.CountryName, currencyCode, info.LastUpdatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range infos {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert country info: %w", err)
		}
	}
	return nil
}

// FindCountryInfoByCode retrieves one derived country record, joined with
// its currency rate when one is linked.
func (r *PgxCountryInfoRepository) FindCountryInfoByCode(ctx context.Context, countryCode string) (*domain.CountryInfo, error) {
	query := `
		SELECT ci.country_code, ci.country_name, ci.last_updated_at,
		       cr.currency_code, cr.rate, cr.last_updated_at
		FROM country_info ci
		LEFT JOIN currency_rates cr ON ci.currency_code = cr.currency_code
		WHERE ci.country_code = $1;
	`
	info, err := scanCountryInfo(r.pool.QueryRow(ctx, query, countryCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country info %s: %w", countryCode, err)
	}
	return info, nil
}

// ListCountryInfo retrieves all derived country records with their rates.
func (r *PgxCountryInfoRepository) ListCountryInfo(ctx context.Context) ([]domain.CountryInfo, error) {
	query := `
		SELECT ci.country_code, ci.country_name, ci.last_updated_at,
		       cr.currency_code, cr.rate, cr.last_updated_at
		FROM country_info ci
		LEFT JOIN currency_rates cr ON ci.currency_code = cr.currency_code
		ORDER BY ci.country_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query country info: %w", err)
	}
	defer rows.Close()

	infos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CountryInfo, error) {
		info, err := scanCountryInfo(row)
		if err != nil {
			return domain.CountryInfo{}, err
		}
		return *info, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan country info: %w", err)
	}
	return infos, nil
}

// scanCountryInfo scans one joined row; the rate columns are NULL when no
// currency rate is linked.
func scanCountryInfo(row pgx.Row) (*domain.CountryInfo, error) {
	var (
		info          domain.CountryInfo
		currencyCode  *string
		rate          *decimal.Decimal
		rateUpdatedAt *time.Time
	)
	if err := row.Scan(&info.CountryCode, &info.CountryName, &info.LastUpdatedAt,
		&currencyCode, &rate, &rateUpdatedAt); err != nil {
		return nil, err
	}
	if currencyCode != nil && rate != nil && rateUpdatedAt != nil {
		info.CurrencyRate = &domain.CurrencyRate{
			CurrencyCode:  *currencyCode,
			Rate:          *rate,
			LastUpdatedAt: *rateUpdatedAt,
		}
	}
	return &info, nil
}

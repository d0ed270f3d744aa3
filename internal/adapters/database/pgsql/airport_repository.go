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

// PgxAirportRepository implements the repositories.AirportRepositoryFacade
// interface using pgxpool.
type PgxAirportRepository struct {
	pool *pgxpool.Pool
}

// NewAirportRepository creates a new PgxAirportRepository.
func NewAirportRepository(pool *pgxpool.Pool) *PgxAirportRepository {
	return &PgxAirportRepository{pool: pool}
}

// CountAirports returns the number of persisted airport records.
func (r *PgxAirportRepository) CountAirports(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM airports;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return count, nil
}

// SaveAirports bulk-inserts the seed catalog via COPY. Only called against
// an empty collection.
func (r *PgxAirportRepository) SaveAirports(ctx context.Context, airports []domain.Airport) error {
	rows := make([][]any, len(airports))
	for i, a := range airports {
		rows[i] = []any{a.Code, a.Name, a.Country, a.City}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"airports"},
		[]string{"code", "name", "country", "city"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk-insert airports: %w", err)
	}
	return nil
}

// FindAirportByCode retrieves an airport by its IATA code.
func (r *PgxAirportRepository) FindAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	query := `
		SELECT code, name, country, city
		FROM airports
		WHERE code = $1;
	`
	var airport domain.Airport
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&airport.Code,
		&airport.Name,
		&airport.Country,
		&airport.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find airport %s: %w", code, err)
	}
	return &airport, nil
}

// ListAirports retrieves the full airport catalog.
func (r *PgxAirportRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	query := `
		SELECT code, name, country, city
		FROM airports
		ORDER BY code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	airports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Airport, error) {
		var airport domain.Airport
		err := row.Scan(&airport.Code, &airport.Name, &airport.Country, &airport.City)
		return airport, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan airports: %w", err)
	}
	return airports, nil
}

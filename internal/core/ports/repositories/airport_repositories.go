package repositories

import (
	"context"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
)

// AirportReader defines read operations for the airport catalog
type AirportReader interface {
	// CountAirports returns the number of persisted airport records.
	CountAirports(ctx context.Context) (int64, error)

	// FindAirportByCode retrieves a single airport by its IATA code.
	FindAirportByCode(ctx context.Context, code string) (*domain.Airport, error)

	// ListAirports retrieves the full airport catalog.
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

// AirportWriter defines write operations for the airport catalog
type AirportWriter interface {
	// SaveAirports bulk-inserts the given airports. Only called against an
	// empty collection during the one-time seed.
	SaveAirports(ctx context.Context, airports []domain.Airport) error
}

// AirportRepositoryFacade combines all airport repository interfaces
type AirportRepositoryFacade interface {
	AirportReader
	AirportWriter
}

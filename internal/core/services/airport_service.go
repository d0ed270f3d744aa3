package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
	portsrepo "github.com/PPKK-Project/Tlan/internal/core/ports/repositories"
)

// AirportService seeds and serves the static airport catalog. It implements
// portssvc.AirportSvc.
type AirportService struct {
	airportRepo portsrepo.AirportRepositoryFacade
	seed        []domain.Airport
	logger      *slog.Logger
}

// NewAirportService creates a new AirportService over the given seed catalog.
func NewAirportService(airportRepo portsrepo.AirportRepositoryFacade, seed []domain.Airport, logger *slog.Logger) *AirportService {
	return &AirportService{
		airportRepo: airportRepo,
		seed:        seed,
		logger:      logger,
	}
}

// SeedAirportsIfEmpty bulk-inserts the fixed catalog when the airport
// collection holds no rows. The emptiness check makes re-running startup
// idempotent: after the first successful seed this is a no-op.
func (s *AirportService) SeedAirportsIfEmpty(ctx context.Context) error {
	count, err := s.airportRepo.CountAirports(ctx)
	if err != nil {
		return fmt.Errorf("failed to count airports before seeding: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Airport catalog already seeded", slog.Int64("count", count))
		return nil
	}

	if err := s.airportRepo.SaveAirports(ctx, s.seed); err != nil {
		return fmt.Errorf("failed to seed airport catalog: %w", err)
	}

	s.logger.Info("Airport catalog seeded", slog.Int("count", len(s.seed)))
	return nil
}

// GetAirportByCode retrieves one airport by its IATA code.
func (s *AirportService) GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	airport, err := s.airportRepo.FindAirportByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get airport by code: %w", err)
	}
	return airport, nil
}

// ListAirports retrieves the full airport catalog.
func (s *AirportService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	airports, err := s.airportRepo.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	if airports == nil {
		return []domain.Airport{}, nil
	}
	return airports, nil
}

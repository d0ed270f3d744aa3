package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
)

// BootstrapService sequences the reference-data startup steps:
//
//  1. seed the airport catalog if empty
//  2. sync currency rates (blocking)
//  3. rebuild country info from the persisted rates
//  4. refresh the safety advisory cache
//
// Steps 1→2→3 are strictly ordered; step 3 reads the rates step 2 just
// persisted. Step 4 is independent and runs last for simplicity. Storage
// faults are returned and fatal to startup; provider faults are logged and
// tolerated so the process still comes up degraded when a provider is down.
// It implements portssvc.BootstrapSvc.
type BootstrapService struct {
	airports    portssvc.AirportSvc
	rates       portssvc.RateSyncSvc
	countryInfo portssvc.CountryInfoSvc
	safety      portssvc.SafetyCacheSvc
	logger      *slog.Logger
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(airports portssvc.AirportSvc, rates portssvc.RateSyncSvc, countryInfo portssvc.CountryInfoSvc, safety portssvc.SafetyCacheSvc, logger *slog.Logger) *BootstrapService {
	return &BootstrapService{
		airports:    airports,
		rates:       rates,
		countryInfo: countryInfo,
		safety:      safety,
		logger:      logger,
	}
}

// Run executes the ordered bootstrap exactly once per process start.
func (s *BootstrapService) Run(ctx context.Context) error {
	s.logger.Info("Bootstrap started: seeding catalog and loading reference data")

	if err := s.airports.SeedAirportsIfEmpty(ctx); err != nil {
		return fmt.Errorf("bootstrap: airport seed failed: %w", err)
	}

	// The sync must complete before the rebuild: country info reads the
	// rate table from storage, not from the in-flight response. A provider
	// fault here is tolerated; the rebuild then runs over whatever rates
	// are already persisted.
	if _, err := s.rates.SyncCurrencyRates(ctx); err != nil {
		if !isProviderFault(err) {
			return fmt.Errorf("bootstrap: currency sync failed: %w", err)
		}
		s.logger.Warn("Bootstrap: currency sync failed, continuing with stored rates", slog.String("error", err.Error()))
	}

	if err := s.countryInfo.RebuildCountryInfo(ctx); err != nil {
		return fmt.Errorf("bootstrap: country info rebuild failed: %w", err)
	}

	if err := s.safety.RefreshSafetyCache(ctx); err != nil {
		// Never fatal: the cache serves an empty list until the first
		// successful scheduled refresh.
		s.logger.Warn("Bootstrap: safety cache refresh failed", slog.String("error", err.Error()))
	}

	s.logger.Info("Bootstrap completed")
	return nil
}

// isProviderFault reports whether the error originates from the external
// provider rather than from storage.
func isProviderFault(err error) bool {
	return errors.Is(err, apperrors.ErrNetwork) ||
		errors.Is(err, apperrors.ErrDecode) ||
		errors.Is(err, apperrors.ErrProvider)
}

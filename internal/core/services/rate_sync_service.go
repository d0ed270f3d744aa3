package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
	"github.com/PPKK-Project/Tlan/internal/core/ports"
	portsrepo "github.com/PPKK-Project/Tlan/internal/core/ports/repositories"
	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
)

// RateSyncService keeps the persisted exchange-rate table in sync with the
// currency provider. It implements portssvc.RateSvcFacade.
type RateSyncService struct {
	client      ports.RatesClient
	rateRepo    portsrepo.CurrencyRateRepositoryFacade
	countryInfo portssvc.CountryInfoSvc
	logger      *slog.Logger
}

// NewRateSyncService creates a new RateSyncService.
func NewRateSyncService(client ports.RatesClient, rateRepo portsrepo.CurrencyRateRepositoryFacade, countryInfo portssvc.CountryInfoSvc, logger *slog.Logger) *RateSyncService {
	return &RateSyncService{
		client:      client,
		rateRepo:    rateRepo,
		countryInfo: countryInfo,
		logger:      logger,
	}
}

// SyncCurrencyRates fetches the full USD-based rate table and upserts every
// entry in one batch. A fetch or decode failure aborts before any write, so
// the previously stored table is never truncated or partially overwritten.
func (s *RateSyncService) SyncCurrencyRates(ctx context.Context) (int, error) {
	table, err := s.client.FetchLatestRates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch currency rates: %w", err)
	}

	now := time.Now().UTC()
	rates := make([]domain.CurrencyRate, 0, len(table))
	for code, rate := range table {
		rates = append(rates, domain.CurrencyRate{
			CurrencyCode:  code,
			Rate:          rate,
			LastUpdatedAt: now,
		})
	}

	if err := s.rateRepo.SaveCurrencyRates(ctx, rates); err != nil {
		return 0, fmt.Errorf("failed to persist currency rates: %w", err)
	}

	s.logger.Info("Currency rates synchronized", slog.Int("count", len(rates)))
	return len(rates), nil
}

// SyncAndRebuild runs a full sync and, on success, rebuilds the derived
// country info so it reflects the freshly persisted rates. The rebuild reads
// the rates back from storage, not from the in-flight response.
func (s *RateSyncService) SyncAndRebuild(ctx context.Context) error {
	if _, err := s.SyncCurrencyRates(ctx); err != nil {
		return err
	}
	return s.countryInfo.RebuildCountryInfo(ctx)
}

// GetRateByCode retrieves one persisted rate by currency code.
func (s *RateSyncService) GetRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	rate, err := s.rateRepo.FindCurrencyRateByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency rate by code: %w", err)
	}
	return rate, nil
}

// ListRates retrieves the full persisted rate table.
func (s *RateSyncService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

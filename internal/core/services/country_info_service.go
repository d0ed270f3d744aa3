package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
	portsrepo "github.com/PPKK-Project/Tlan/internal/core/ports/repositories"
)

// CountryInfoService derives per-country metadata from the static catalog
// tables and the persisted rate table. It implements portssvc.CountryInfoSvc.
// The tables are injected so the derivation stays a pure function over
// swappable data.
type CountryInfoService struct {
	rateRepo          portsrepo.CurrencyRateReader
	countryRepo       portsrepo.CountryInfoRepositoryFacade
	currencyByCountry map[string]string
	nameByCountry     map[string]string
	logger            *slog.Logger
}

// NewCountryInfoService creates a new CountryInfoService over the given
// country→currency and country→name tables.
func NewCountryInfoService(rateRepo portsrepo.CurrencyRateReader, countryRepo portsrepo.CountryInfoRepositoryFacade, currencyByCountry, nameByCountry map[string]string, logger *slog.Logger) *CountryInfoService {
	return &CountryInfoService{
		rateRepo:          rateRepo,
		countryRepo:       countryRepo,
		currencyByCountry: currencyByCountry,
		nameByCountry:     nameByCountry,
		logger:            logger,
	}
}

// RebuildCountryInfo rebuilds the full derived record set: one record per
// entry in the country→currency table. The display name falls back to the
// country code when absent from the name table, and the rate reference is
// left unset when the currency has no persisted rate; neither case is an
// error. This is a total rebuild via batch upsert, not an incremental patch;
// countries dropped from the table are not actively deleted.
func (s *CountryInfoService) RebuildCountryInfo(ctx context.Context) error {
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load currency rates for rebuild: %w", err)
	}

	rateByCode := make(map[string]domain.CurrencyRate, len(rates))
	for _, rate := range rates {
		rateByCode[rate.CurrencyCode] = rate
	}

	now := time.Now().UTC()
	infos := make([]domain.CountryInfo, 0, len(s.currencyByCountry))
	for countryCode, currencyCode := range s.currencyByCountry {
		name, ok := s.nameByCountry[countryCode]
		if !ok {
			name = countryCode
		}

		info := domain.CountryInfo{
			CountryCode:   countryCode,
			CountryName:   name,
			LastUpdatedAt: now,
		}
		if rate, ok := rateByCode[currencyCode]; ok {
			info.CurrencyRate = &rate
		}
		infos = append(infos, info)
	}

	if err := s.countryRepo.SaveCountryInfos(ctx, infos); err != nil {
		return fmt.Errorf("failed to persist country info: %w", err)
	}

	s.logger.Info("Country info rebuilt", slog.Int("count", len(infos)))
	return nil
}

// GetCountryInfoByCode retrieves one derived country record.
func (s *CountryInfoService) GetCountryInfoByCode(ctx context.Context, countryCode string) (*domain.CountryInfo, error) {
	info, err := s.countryRepo.FindCountryInfoByCode(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get country info by code: %w", err)
	}
	return info, nil
}

// ListCountryInfo retrieves all derived country records.
func (s *CountryInfoService) ListCountryInfo(ctx context.Context) ([]domain.CountryInfo, error) {
	infos, err := s.countryRepo.ListCountryInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list country info: %w", err)
	}
	if infos == nil {
		return []domain.CountryInfo{}, nil
	}
	return infos, nil
}

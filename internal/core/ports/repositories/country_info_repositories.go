package repositories

import (
	"context"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
)

// CountryInfoReader defines read operations for derived country data
type CountryInfoReader interface {
	// FindCountryInfoByCode retrieves a single country record by its code.
	FindCountryInfoByCode(ctx context.Context, countryCode string) (*domain.CountryInfo, error)

	// ListCountryInfo retrieves all derived country records.
	ListCountryInfo(ctx context.Context) ([]domain.CountryInfo, error)
}

// CountryInfoWriter defines write operations for derived country data
type CountryInfoWriter interface {
	// SaveCountryInfos upserts the given records by country code in one batch.
	SaveCountryInfos(ctx context.Context, infos []domain.CountryInfo) error
}

// CountryInfoRepositoryFacade combines all country-info repository interfaces
type CountryInfoRepositoryFacade interface {
	CountryInfoReader
	CountryInfoWriter
}

package services

import (
	"context"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
)

// RateSyncSvc synchronizes the persisted exchange-rate table with the
// currency provider.
type RateSyncSvc interface {
	// SyncCurrencyRates fetches the full rate table and upserts it in one
	// batch, returning the number of rates written. A fetch failure mutates
	// nothing and leaves the previous table untouched.
	SyncCurrencyRates(ctx context.Context) (int, error)

	// SyncAndRebuild runs SyncCurrencyRates and, on success, rebuilds the
	// derived country info against the freshly persisted rates. This is the
	// operation both the bootstrap and the scheduled sync invoke.
	SyncAndRebuild(ctx context.Context) error
}

// RateReaderSvc defines read operations over the persisted rate table.
type RateReaderSvc interface {
	GetRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)
}

// RateSvcFacade combines rate synchronization and reads.
type RateSvcFacade interface {
	RateSyncSvc
	RateReaderSvc
}

// CountryInfoSvc derives and serves per-country metadata.
type CountryInfoSvc interface {
	// RebuildCountryInfo rebuilds the full derived record set from the
	// static catalog tables and the persisted rate table. Total rebuild,
	// never an incremental patch; only a storage fault can fail it.
	RebuildCountryInfo(ctx context.Context) error

	ListCountryInfo(ctx context.Context) ([]domain.CountryInfo, error)
	GetCountryInfoByCode(ctx context.Context, countryCode string) (*domain.CountryInfo, error)
}

// SafetyCacheSvc holds the in-memory travel-advisory snapshot.
type SafetyCacheSvc interface {
	// RefreshSafetyCache fetches the advisory document and, on a fully
	// parsed success, atomically replaces the snapshot. Any failure leaves
	// the previous snapshot untouched.
	RefreshSafetyCache(ctx context.Context) error

	// CachedSafetyList returns the last known-good snapshot, possibly
	// stale, and an empty list before the first successful fetch.
	CachedSafetyList() []domain.SafetyEntry
}

// AirportSvc seeds and serves the static airport catalog.
type AirportSvc interface {
	// SeedAirportsIfEmpty bulk-inserts the fixed catalog when the airport
	// collection is empty; a no-op on every later start.
	SeedAirportsIfEmpty(ctx context.Context) error

	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error)
}

// BootstrapSvc sequences the startup steps: seed catalog, sync rates
// (blocking), rebuild country info, refresh the safety cache.
type BootstrapSvc interface {
	// Run executes the ordered bootstrap. A storage fault is returned and
	// fatal to startup; provider faults are logged and tolerated.
	Run(ctx context.Context) error
}

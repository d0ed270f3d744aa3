package repositories

import (
	"context"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
)

// CurrencyRateReader defines read operations for currency rate data
type CurrencyRateReader interface {
	// FindCurrencyRateByCode retrieves a specific rate by its currency code.
	FindCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// ListCurrencyRates retrieves the full persisted rate table.
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for currency rate data
type CurrencyRateWriter interface {
	// SaveCurrencyRates upserts the given rates by currency code in one batch.
	// The last-fetched value wins; there is no partial-field merge.
	SaveCurrencyRates(ctx context.Context, rates []domain.CurrencyRate) error
}

// CurrencyRateRepositoryFacade combines all currency-rate repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}

// Package ports defines the outbound interfaces of the core: provider
// clients here, persistence in ports/repositories, service facades in
// ports/services.
package ports

import (
	"context"

	"github.com/PPKK-Project/Tlan/internal/dto"
)

// RatesClient fetches the full exchange-rate table from the currency
// provider. A single blocking call; failures come back wrapped as
// apperrors.ErrNetwork or apperrors.ErrDecode so callers can branch on
// cause. Retries belong to the scheduler, not here.
type RatesClient interface {
	FetchLatestRates(ctx context.Context) (dto.RateTable, error)
}

// SafetyClient fetches the travel-advisory document from the safety
// provider. The returned document may be structurally incomplete; callers
// navigate it defensively.
type SafetyClient interface {
	FetchAdvisories(ctx context.Context) (*dto.SafetyDocument, error)
}

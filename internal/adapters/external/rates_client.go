// Package external implements the outbound HTTP clients for the currency
// rate and travel safety providers.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/PPKK-Project/Tlan/internal/dto"
)

// HTTPRatesClient implements ports.RatesClient against the exchangerate-api
// style endpoint GET {base}/{apiKey}/latest/USD.
type HTTPRatesClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRatesClient creates a rates client with a bounded per-call timeout.
func NewRatesClient(baseURL, apiKey string, timeout time.Duration) *HTTPRatesClient {
	return &HTTPRatesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchLatestRates performs a single blocking call for the full USD-based
// rate table. No retry logic lives here; retries, if any, belong to the
// scheduler layer.
func (c *HTTPRatesClient) FetchLatestRates(ctx context.Context) (dto.RateTable, error) {
	url := fmt.Sprintf("%s/%s/latest/USD", c.baseURL, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building currency rates request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling currency provider: %w: %w", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("currency provider returned status %d: %w", resp.StatusCode, apperrors.ErrProvider)
	}

	var doc dto.LatestRatesDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding currency provider response: %w: %w", apperrors.ErrDecode, err)
	}

	// Any shape without a conversion_rates object is a decode failure.
	if len(doc.ConversionRates) == 0 {
		return nil, fmt.Errorf("currency provider response has no conversion_rates: %w", apperrors.ErrDecode)
	}

	return doc.ConversionRates, nil
}

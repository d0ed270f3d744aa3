package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/PPKK-Project/Tlan/internal/dto"
)

// HTTPSafetyClient implements ports.SafetyClient against the travel-alarm
// open-data endpoint. The service key is passed as a query parameter.
type HTTPSafetyClient struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

// NewSafetyClient creates a safety-advisory client with a bounded per-call
// timeout.
func NewSafetyClient(baseURL, serviceKey string, timeout time.Duration) *HTTPSafetyClient {
	return &HTTPSafetyClient{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: timeout},
	}
}

// FetchAdvisories performs a single blocking call for the full advisory
// document. The returned document may be structurally incomplete (the
// provider omits inner objects on its own errors); the caller navigates it
// defensively and decides whether to keep its previous snapshot.
func (c *HTTPSafetyClient) FetchAdvisories(ctx context.Context) (*dto.SafetyDocument, error) {
	q := url.Values{}
	q.Set("serviceKey", c.serviceKey)
	q.Set("returnType", "JSON")
	q.Set("numOfRows", "300")
	q.Set("pageNo", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building safety advisory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling safety provider: %w: %w", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("safety provider returned status %d: %w", resp.StatusCode, apperrors.ErrProvider)
	}

	var doc dto.SafetyDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding safety provider response: %w: %w", apperrors.ErrDecode, err)
	}

	return &doc, nil
}

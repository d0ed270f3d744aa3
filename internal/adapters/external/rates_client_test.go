package external_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PPKK-Project/Tlan/internal/adapters/external"
	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLatestRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","conversion_rates":{"USD":1.0,"KRW":1350.5}}`))
	}))
	defer server.Close()

	client := external.NewRatesClient(server.URL, "test-key", 5*time.Second)
	table, err := client.FetchLatestRates(context.Background())

	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.True(t, table["KRW"].Equal(decimal.NewFromFloat(1350.5)))
	assert.True(t, table["USD"].Equal(decimal.NewFromFloat(1.0)))
}

func TestFetchLatestRates_MissingConversionRatesIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD"}`))
	}))
	defer server.Close()

	client := external.NewRatesClient(server.URL, "test-key", 5*time.Second)
	table, err := client.FetchLatestRates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
	assert.Nil(t, table)
}

func TestFetchLatestRates_MalformedBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := external.NewRatesClient(server.URL, "test-key", 5*time.Second)
	_, err := client.FetchLatestRates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestFetchLatestRates_NonOKStatusIsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := external.NewRatesClient(server.URL, "test-key", 5*time.Second)
	_, err := client.FetchLatestRates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProvider)
}

func TestFetchLatestRates_ConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := external.NewRatesClient(server.URL, "test-key", time.Second)
	_, err := client.FetchLatestRates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

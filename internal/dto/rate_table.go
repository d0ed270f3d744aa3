package dto

import "github.com/shopspring/decimal"

// RateTable is the full exchange-rate table returned by the currency
// provider, keyed by ISO 4217 currency code, valued in units per 1 USD.
type RateTable map[string]decimal.Decimal

// LatestRatesDocument is the currency provider's response for
// GET {base}/{apiKey}/latest/USD. Only conversion_rates is consumed; a
// document without it is a decode failure.
type LatestRatesDocument struct {
	Result          string    `json:"result"`
	BaseCode        string    `json:"base_code"`
	ConversionRates RateTable `json:"conversion_rates"`
}

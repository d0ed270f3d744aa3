package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is one currency's value relative to the base currency (USD).
// The whole table is replaced on every successful sync; no history is kept.
type CurrencyRate struct {
	CurrencyCode  string          `json:"currencyCode"` // Primary Key (e.g., "KRW")
	Rate          decimal.Decimal `json:"rate"`         // Units of this currency per 1 USD
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

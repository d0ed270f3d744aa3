package domain

import "time"

// CountryInfo is derived, display-ready metadata for one supported country.
// It is rebuilt wholesale from the static catalog tables and the persisted
// rate table whenever currency rates change; it is never hand-edited.
type CountryInfo struct {
	CountryCode   string        `json:"countryCode"` // Primary Key (ISO 3166-1 alpha-2, e.g., "KR")
	CountryName   string        `json:"countryName"` // Localized display name; falls back to the code
	CurrencyRate  *CurrencyRate `json:"currencyRate,omitempty"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
}

// HasRate reports whether a currency rate was available when this record was
// last rebuilt. A missing rate means "unknown", not an error.
func (c CountryInfo) HasRate() bool {
	return c.CurrencyRate != nil
}

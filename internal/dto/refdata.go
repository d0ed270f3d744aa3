package dto

import (
	"time"

	"github.com/PPKK-Project/Tlan/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRateResponse defines the data returned for one currency rate.
type CurrencyRateResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Rate          decimal.Decimal `json:"rate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to its response DTO.
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		CurrencyCode:  rate.CurrencyCode,
		Rate:          rate.Rate,
		LastUpdatedAt: rate.LastUpdatedAt,
	}
}

// ToListCurrencyRateResponse converts a slice of rates to response DTOs.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i, rate := range rates {
		res[i] = ToCurrencyRateResponse(&rate)
	}
	return res
}

// CountryInfoResponse defines the data returned for one derived country
// record. Rate fields are omitted when no currency rate has been synced yet;
// consumers treat that as "unknown rate".
type CountryInfoResponse struct {
	CountryCode   string           `json:"countryCode"`
	CountryName   string           `json:"countryName"`
	CurrencyCode  string           `json:"currencyCode,omitempty"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToCountryInfoResponse converts a domain.CountryInfo to its response DTO.
func ToCountryInfoResponse(info *domain.CountryInfo) CountryInfoResponse {
	res := CountryInfoResponse{
		CountryCode:   info.CountryCode,
		CountryName:   info.CountryName,
		LastUpdatedAt: info.LastUpdatedAt,
	}
	if info.CurrencyRate != nil {
		res.CurrencyCode = info.CurrencyRate.CurrencyCode
		rate := info.CurrencyRate.Rate
		res.Rate = &rate
	}
	return res
}

// ToListCountryInfoResponse converts a slice of country infos to response DTOs.
func ToListCountryInfoResponse(infos []domain.CountryInfo) []CountryInfoResponse {
	res := make([]CountryInfoResponse, len(infos))
	for i, info := range infos {
		res[i] = ToCountryInfoResponse(&info)
	}
	return res
}

// AirportResponse defines the data returned for one airport record.
type AirportResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// ToListAirportResponse converts a slice of airports to response DTOs.
func ToListAirportResponse(airports []domain.Airport) []AirportResponse {
	res := make([]AirportResponse, len(airports))
	for i, a := range airports {
		res[i] = AirportResponse(a)
	}
	return res
}

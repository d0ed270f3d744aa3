package domain

// Airport is a static reference record for a travel origin or destination.
// The catalog is seeded once when empty and read-only afterwards.
type Airport struct {
	Code    string `json:"code"` // Primary Key (IATA code, e.g., "ICN")
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}

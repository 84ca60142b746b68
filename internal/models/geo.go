package models

// GeoInfo holds the location detected for a client IP.
// Zero values fall back to "Unknown"/"UTC" at the lookup site.
type GeoInfo struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Timezone    string `json:"timezone"`
}

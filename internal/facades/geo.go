package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// GeoEndpoint resolves the caller's IP to a location.
const GeoEndpoint = "https://ipapi.co/json/"

// unknownGeo is the fallback when the lookup fails or is rate limited.
var unknownGeo = models.GeoInfo{
	Country:     "Unknown",
	CountryCode: "XX",
	City:        "Unknown",
	Timezone:    "UTC",
}

// GeoFacade resolves client locations via ipapi.co. Best-effort: any failure
// returns the Unknown/UTC fallback.
type GeoFacade struct {
	client   *http.Client
	endpoint string
}

// NewGeoFacade creates a facade against the real endpoint.
func NewGeoFacade() *GeoFacade {
	return &GeoFacade{
		client:   &http.Client{Timeout: 3 * time.Second},
		endpoint: GeoEndpoint,
	}
}

// NewGeoFacadeWithEndpoint creates a facade against a custom endpoint, used by tests.
func NewGeoFacadeWithEndpoint(endpoint string) *GeoFacade {
	f := NewGeoFacade()
	f.endpoint = endpoint
	return f
}

type geoResponse struct {
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Timezone    string `json:"timezone"`
}

// Lookup resolves the service's outbound IP to a location.
func (f *GeoFacade) Lookup(ctx context.Context) models.GeoInfo {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return unknownGeo
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Warnw("geo lookup failed", "error", err)
		return unknownGeo
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warnw("geo lookup rejected", "status", resp.StatusCode)
		return unknownGeo
	}

	var parsed geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Log.Warnw("geo lookup decode failed", "error", err)
		return unknownGeo
	}

	geo := models.GeoInfo{
		Country:     parsed.CountryName,
		CountryCode: parsed.CountryCode,
		City:        parsed.City,
		Timezone:    parsed.Timezone,
	}
	if geo.Country == "" {
		geo.Country = "Unknown"
	}
	if geo.CountryCode == "" {
		geo.CountryCode = "XX"
	}
	if geo.Timezone == "" {
		geo.Timezone = "UTC"
	}
	return geo
}

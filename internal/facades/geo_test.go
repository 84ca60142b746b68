package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoFacade_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"country_name": "Germany", "country_code": "DE", "city": "Berlin", "timezone": "Europe/Berlin"}`))
	}))
	defer srv.Close()

	f := NewGeoFacadeWithEndpoint(srv.URL)

	geo := f.Lookup(context.Background())
	assert.Equal(t, "Germany", geo.Country)
	assert.Equal(t, "DE", geo.CountryCode)
	assert.Equal(t, "Berlin", geo.City)
	assert.Equal(t, "Europe/Berlin", geo.Timezone)
}

func TestGeoFacade_Lookup_Fallbacks(t *testing.T) {
	t.Run("RateLimited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		f := NewGeoFacadeWithEndpoint(srv.URL)
		assert.Equal(t, unknownGeo, f.Lookup(context.Background()))
	})

	t.Run("Unreachable", func(t *testing.T) {
		f := NewGeoFacadeWithEndpoint("http://127.0.0.1:1")
		assert.Equal(t, unknownGeo, f.Lookup(context.Background()))
	})

	t.Run("PartialResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"city": "Somewhere"}`))
		}))
		defer srv.Close()

		f := NewGeoFacadeWithEndpoint(srv.URL)
		geo := f.Lookup(context.Background())
		assert.Equal(t, "Unknown", geo.Country)
		assert.Equal(t, "XX", geo.CountryCode)
		assert.Equal(t, "UTC", geo.Timezone)
		assert.Equal(t, "Somewhere", geo.City)
	})
}

package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodingService_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"display_name": "Paris, Île-de-France, France", "lat": "48.8566", "lon": "2.3522"},
			{"display_name": "Paris, Texas, United States", "lat": "33.6609", "lon": "-95.5555"}
		]`))
	}))
	defer server.Close()

	service := NewGeocodingService(server.URL, "smart-travel-app")

	locations, err := service.Search("Paris")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Paris, Île-de-France, France", locations[0].Name)
	assert.Equal(t, 48.8566, locations[0].Latitude)
	assert.Equal(t, 2.3522, locations[0].Longitude)
	assert.Equal(t, -95.5555, locations[1].Longitude)
}

func TestGeocodingService_Search_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := NewGeocodingService(server.URL, "smart-travel-app")

	_, err := service.Search("Paris")
	assert.Error(t, err)
}

func TestGeocodingService_Search_SkipsUnparseableCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"display_name": "Broken", "lat": "not-a-number", "lon": "2.0"},
			{"display_name": "Fine", "lat": "1.0", "lon": "2.0"}
		]`))
	}))
	defer server.Close()

	service := NewGeocodingService(server.URL, "smart-travel-app")

	locations, err := service.Search("whatever")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Fine", locations[0].Name)
}

func TestGeocodingService_Search_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	service := NewGeocodingService(server.URL, "smart-travel-app")

	locations, err := service.Search("nowhere at all")
	require.NoError(t, err)
	assert.Empty(t, locations)
}

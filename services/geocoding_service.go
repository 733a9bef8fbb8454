// services/geocoding_service.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/smarttravelhq/smart-travel-backend/models"
)

// GeocodingService proxies destination lookups to a Nominatim-compatible
// geocoder. Lookup failures stay request-scoped; nothing is retried.
type GeocodingService struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewGeocodingService creates a new GeocodingService
func NewGeocodingService(baseURL, userAgent string) *GeocodingService {
	return &GeocodingService{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// nominatimResult is the subset of the geocoder response we care about.
// Coordinates arrive as strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns up to 5 location matches for a free-text query
func (s *GeocodingService) Search(query string) ([]models.Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "5")
	params.Set("addressdetails", "1")

	req, err := http.NewRequest("GET", s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder request: %v", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocoder: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocoder response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse geocoder response: %v", err)
	}

	locations := []models.Location{}
	for _, result := range results {
		lat, err := strconv.ParseFloat(result.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(result.Lon, 64)
		if err != nil {
			continue
		}
		locations = append(locations, models.Location{
			Name:      result.DisplayName,
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return locations, nil
}

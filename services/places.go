package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Place is one nearby point of interest around a property.
type Place struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Rating   float64 `json:"rating"`
}

// PlacesClient queries the hosted places API for points of interest near
// a coordinate.
type PlacesClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewPlacesClient(baseURL, apiKey string) *PlacesClient {
	return &PlacesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type placesResponse struct {
	Results []Place `json:"results"`
}

// Nearby returns up to limit places of the given category around a point.
func (c *PlacesClient) Nearby(ctx context.Context, lat, lng float64, category string, limit int) ([]Place, error) {
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("category", category)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/nearby?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places lookup failed with status %d", resp.StatusCode)
	}

	var out placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding places response: %w", err)
	}
	return out.Results, nil
}

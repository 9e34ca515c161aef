package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gingham-app/gingham/internal/model"
)

// DefaultBaseURL is the public Open-Meteo geocoding endpoint.
const DefaultBaseURL = "https://geocoding-api.open-meteo.com"

// Client resolves location queries via the Open-Meteo geocoding API, falling
// back to the curated park catalog when the upstream is unreachable.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client. An empty baseURL selects the public
// Open-Meteo endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Results []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// Search resolves a free-text query to candidate places. Upstream failures
// degrade to the curated catalog instead of erroring, so location search
// always returns something to pick from.
func (c *Client) Search(ctx context.Context, query string) ([]model.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return searchCatalog(""), nil
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "5")
	params.Set("language", "en")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return searchCatalog(query), nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return searchCatalog(query), nil
	}

	var raw geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(raw.Results) == 0 {
		return searchCatalog(query), nil
	}

	places := make([]model.Place, 0, len(raw.Results))
	for _, r := range raw.Results {
		places = append(places, model.Place{
			Lat:     r.Latitude,
			Lng:     r.Longitude,
			Address: formatAddress(r.Name, r.Admin1, r.Country),
			Name:    r.Name,
			PlaceID: fmt.Sprintf("om_%d", r.ID),
		})
	}
	return places, nil
}

// Resolve geocodes a single address, preferring the first upstream search
// result and falling back to the offline city table.
func (c *Client) Resolve(ctx context.Context, address string) (model.Place, error) {
	places, err := c.Search(ctx, address)
	if err != nil {
		return model.Place{}, err
	}
	if len(places) == 0 {
		return ResolveOffline(address), nil
	}
	return places[0], nil
}

func formatAddress(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrNoResults reports that the geocoding provider returned no match
// for the queried name. It is not a transport failure.
var ErrNoResults = errors.New("no geocoding results")

// GeocodingClient resolves free-text place names to coordinates using
// the Open-Meteo geocoding API.
type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	language   string
	logger     *slog.Logger
}

// NewGeocodingClient creates a geocoding client requesting results in
// the given language.
func NewGeocodingClient(baseURL, language string, timeout time.Duration, logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		language:   language,
		logger:     logger.With("component", "geocoding-client"),
	}
}

// Lookup returns the provider's first candidate for name, or ErrNoResults
// when the results array is empty or absent. No disambiguation, no retries.
func (c *GeocodingClient) Lookup(ctx context.Context, name string) (Place, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Place{}, fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", c.language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	resp, err := fetchJSON[geocodingResponse](ctx, c.httpClient, u.String())
	if err != nil {
		c.logger.Error("geocoding request failed", "name", name, "error", err)
		return Place{}, fmt.Errorf("geocode %q: %w", name, err)
	}

	if len(resp.Results) == 0 {
		c.logger.Debug("no geocoding match", "name", name)
		return Place{}, fmt.Errorf("geocode %q: %w", name, ErrNoResults)
	}
	return resp.Results[0], nil
}

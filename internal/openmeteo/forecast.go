package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API docs: https://open-meteo.com/en/docs
var dailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
}

// ForecastClient fetches forecasts from the Open-Meteo forecast API.
type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	timezone   string
	logger     *slog.Logger
}

// NewForecastClient creates a forecast client with a fixed reporting
// timezone. Units are always Celsius and km/h.
func NewForecastClient(baseURL, timezone string, timeout time.Duration, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		timezone:   timezone,
		logger:     logger.With("component", "forecast-client"),
	}
}

// Forecast fetches current conditions and the daily series for the given
// coordinates.
func (c *ForecastClient) Forecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	q.Set("current_weather", "true")
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", c.timezone)
	q.Set("temperature_unit", "celsius")
	q.Set("windspeed_unit", "kmh")
	u.RawQuery = q.Encode()

	resp, err := fetchJSON[ForecastResponse](ctx, c.httpClient, u.String())
	if err != nil {
		c.logger.Error("forecast request failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	return resp, nil
}

package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meteoua/pohoda-mcp/internal/config"
	"github.com/meteoua/pohoda-mcp/internal/openmeteo"
)

var (
	// ErrCityNotFound reports that a requested city produced no geocoding match.
	ErrCityNotFound = errors.New("city not found")

	// ErrForecastUnavailable reports that the forecast could not be fetched.
	ErrForecastUnavailable = errors.New("forecast unavailable")
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, name string) (openmeteo.Place, error)
}

// ForecastProvider fetches a forecast for resolved coordinates.
type ForecastProvider interface {
	Forecast(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastResponse, error)
}

// Query is a single forecast request. Coordinates are pointers so that an
// explicit 0 is a valid provided value and is never mistaken for "absent".
type Query struct {
	City      string
	Latitude  *float64
	Longitude *float64
}

// Service orchestrates coordinate resolution, the forecast fetch, and
// report rendering. It holds no per-request state.
type Service struct {
	geocoder        Geocoder
	forecasts       ForecastProvider
	defaultLocation Location
	maxDays         int
	logger          *slog.Logger
}

// NewService creates the orchestration service.
func NewService(geocoder Geocoder, forecasts ForecastProvider, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		geocoder:  geocoder,
		forecasts: forecasts,
		defaultLocation: Location{
			Name:      cfg.Location.Name,
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		},
		maxDays: cfg.ForecastDays,
		logger:  logger.With("component", "weather-service"),
	}
}

// Report resolves the query to a location, fetches the forecast, and
// returns the rendered text. Failures are typed: ErrCityNotFound when the
// geocoder has no match, ErrForecastUnavailable for everything upstream.
func (s *Service) Report(ctx context.Context, q Query) (string, error) {
	loc, err := s.resolve(ctx, q)
	if err != nil {
		if errors.Is(err, openmeteo.ErrNoResults) {
			return "", fmt.Errorf("%w: %q", ErrCityNotFound, q.City)
		}
		s.logger.Error("geocoding failed", "city", q.City, "error", err)
		return "", fmt.Errorf("resolve %q: %w", q.City, ErrForecastUnavailable)
	}

	resp, err := s.forecasts.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.logger.Error("forecast fetch failed",
			"latitude", loc.Latitude,
			"longitude", loc.Longitude,
			"error", err,
		)
		return "", fmt.Errorf("forecast for %s: %w", loc.DisplayName(), ErrForecastUnavailable)
	}

	return FormatReport(loc, resp, s.maxDays), nil
}

// resolve picks the location, in order: explicit coordinates, geocoded
// city, configured default.
func (s *Service) resolve(ctx context.Context, q Query) (Location, error) {
	if q.Latitude != nil && q.Longitude != nil {
		return Location{Latitude: *q.Latitude, Longitude: *q.Longitude}, nil
	}

	if q.City != "" {
		place, err := s.geocoder.Lookup(ctx, q.City)
		if err != nil {
			return Location{}, err
		}
		name := place.Name
		if place.Country != "" {
			name = place.Name + ", " + place.Country
		}
		return Location{Name: name, Latitude: place.Latitude, Longitude: place.Longitude}, nil
	}

	return s.defaultLocation, nil
}

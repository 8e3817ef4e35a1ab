package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Config represents the root configuration structure
type Config struct {
	Location     Location `yaml:"location" validate:"required"`
	Language     string   `yaml:"language" validate:"required,bcp47_language_tag"`
	Timezone     string   `yaml:"timezone" validate:"required"`
	ForecastDays int      `yaml:"forecast_days" validate:"min=1,max=16"`
	Timeout      int      `yaml:"timeout" validate:"min=100,max=300000"` // milliseconds
	GeocodingURL string   `yaml:"geocoding_url" validate:"required,url"`
	ForecastURL  string   `yaml:"forecast_url" validate:"required,url"`
}

// Location is the fallback location used when a request carries
// neither coordinates nor a city name
type Location struct {
	Name      string  `yaml:"name" validate:"required"`
	Latitude  float64 `yaml:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `yaml:"longitude" validate:"min=-180,max=180"`
}

// Default returns the built-in configuration. The server is fully
// functional without a config file.
func Default() *Config {
	return &Config{
		Location: Location{
			Name:      "Київ",
			Latitude:  50.4501,
			Longitude: 30.5234,
		},
		Language:     "uk",
		Timezone:     "Europe/Kyiv",
		ForecastDays: 7,
		Timeout:      10000,
		GeocodingURL: "https://geocoding-api.open-meteo.com/v1/search",
		ForecastURL:  "https://api.open-meteo.com/v1/forecast",
	}
}

// Load reads a YAML config from the specified path and validates it.
// Fields absent from the file keep their Default() values.
func Load(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	expandedData := os.ExpandEnv(string(data))

	// Parse YAML over the defaults
	config := Default()
	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate config
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

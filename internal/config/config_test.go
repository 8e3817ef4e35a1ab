package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Location.Name != "Київ" {
		t.Fatalf("expected default location Київ, got %s", cfg.Location.Name)
	}
	if cfg.Location.Latitude != 50.4501 || cfg.Location.Longitude != 30.5234 {
		t.Fatalf("expected Kyiv coordinates, got %f, %f", cfg.Location.Latitude, cfg.Location.Longitude)
	}
	if cfg.Language != "uk" {
		t.Fatalf("expected language uk, got %s", cfg.Language)
	}
	if cfg.Timezone != "Europe/Kyiv" {
		t.Fatalf("expected timezone Europe/Kyiv, got %s", cfg.Timezone)
	}
	if cfg.ForecastDays != 7 {
		t.Fatalf("expected 7 forecast days, got %d", cfg.ForecastDays)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("FORECAST_URL", "https://forecast.example.com/v1/forecast")

	configContent := `location:
  name: Львів
  latitude: 49.8397
  longitude: 24.0297
forecast_days: 5
forecast_url: ${FORECAST_URL}`

	tmpFile := tmpDir + "/config.yaml"
	if err := os.WriteFile(tmpFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to create config file: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Location.Name != "Львів" {
		t.Fatalf("expected location Львів, got %s", cfg.Location.Name)
	}
	if cfg.ForecastDays != 5 {
		t.Fatalf("expected 5 forecast days, got %d", cfg.ForecastDays)
	}
	if cfg.ForecastURL != "https://forecast.example.com/v1/forecast" {
		t.Fatalf("expected env-expanded forecast URL, got %s", cfg.ForecastURL)
	}
	// Fields absent from the file keep their defaults
	if cfg.Language != "uk" {
		t.Fatalf("expected default language uk, got %s", cfg.Language)
	}
	if cfg.Timeout != 10000 {
		t.Fatalf("expected default timeout 10000, got %d", cfg.Timeout)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "latitude out of range",
			content: `location:
  name: Десь
  latitude: 123.0
  longitude: 30.0`,
		},
		{
			name:    "forecast days too large",
			content: `forecast_days: 30`,
		},
		{
			name:    "bad geocoding url",
			content: `geocoding_url: not-a-url`,
		},
		{
			name:    "empty language",
			content: `language: ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := t.TempDir() + "/config.yaml"
			if err := os.WriteFile(tmpFile, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to create config file: %v", err)
			}
			if _, err := Load(tmpFile); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

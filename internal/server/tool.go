package server

import (
	"context"
	"errors"
	"strings"

	"github.com/meteoua/pohoda-mcp/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ForecastInput is the weather_forecast tool schema. All fields are
// optional; coordinates are pointers so an explicit 0 counts as provided.
type ForecastInput struct {
	City      string   `json:"city,omitempty" jsonschema:"Назва міста, наприклад Київ або Львів"`
	Latitude  *float64 `json:"latitude,omitempty" jsonschema:"Широта, від -90 до 90"`
	Longitude *float64 `json:"longitude,omitempty" jsonschema:"Довгота, від -180 до 180"`
}

func (s *MCPServer) weatherForecastHandler(ctx context.Context, _ *mcp.CallToolRequest, input *ForecastInput) (*mcp.CallToolResult, any, error) {
	if !s.validCoordinates(input) {
		return errorResult(weather.InvalidCoordinatesMessage), nil, nil
	}

	q := weather.Query{
		City:      strings.TrimSpace(input.City),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	report, err := s.weather.Report(ctx, q)
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return errorResult(weather.CityNotFoundMessage(q.City)), nil, nil
	case err != nil:
		s.logger.Error("tool call failed", "city", q.City, "error", err)
		return errorResult(weather.ForecastUnavailableMessage), nil, nil
	}

	return textResult(report), nil, nil
}

func (s *MCPServer) validCoordinates(input *ForecastInput) bool {
	if input.Latitude != nil {
		if err := s.validate.Var(*input.Latitude, "gte=-90,lte=90"); err != nil {
			return false
		}
	}
	if input.Longitude != nil {
		if err := s.validate.Var(*input.Longitude, "gte=-180,lte=180"); err != nil {
			return false
		}
	}
	return true
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

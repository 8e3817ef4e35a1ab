package server

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/meteoua/pohoda-mcp/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReportService produces the forecast text for a query.
type ReportService interface {
	Report(ctx context.Context, q weather.Query) (string, error)
}

// MCPServer exposes the weather tool over the MCP protocol.
type MCPServer struct {
	server   *mcp.Server
	weather  ReportService
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates the MCP server.
func New(svc ReportService, logger *slog.Logger) *MCPServer {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: "pohoda-mcp", Version: "1.0.0"},
		nil,
	)
	return &MCPServer{
		server:   mcpServer,
		weather:  svc,
		validate: validator.New(),
		logger:   logger.With("component", "mcp-server"),
	}
}

// Setup registers the tools.
func (s *MCPServer) Setup() {
	mcp.AddTool(
		s.server,
		&mcp.Tool{
			Name:        "weather_forecast",
			Title:       "Прогноз погоди",
			Description: "Повертає прогноз погоди для міста України або за координатами. Без параметрів повертає прогноз для Києва.",
		},
		s.weatherForecastHandler,
	)
}

// Run serves over stdio until the context is cancelled or the stream closes.
func (s *MCPServer) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

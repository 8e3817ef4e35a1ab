package weather

import (
	"fmt"
	"strings"

	"github.com/meteoua/pohoda-mcp/internal/openmeteo"
)

// Location is a resolved coordinate pair with an optional display name.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// DisplayName returns the location name, falling back to the coordinates
// at 4-decimal precision when no name was resolved.
func (l Location) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
}

// FormatReport renders a forecast payload as localized text. Pure:
// identical inputs produce byte-identical output.
//
// Layout: a header line, a blank line, then the current-conditions block
// (sub-header and three value lines) or a single "no data" line, then —
// when the daily series has any complete days — a blank line, the daily
// sub-header, and one line per day bounded to maxDays.
func FormatReport(loc Location, resp *openmeteo.ForecastResponse, maxDays int) string {
	lines := make([]string, 0, 8+maxDays)
	lines = append(lines, labelHeader+" "+loc.DisplayName(), "")

	if cw := resp.CurrentWeather; cw != nil {
		lines = append(lines,
			labelCurrent,
			fmt.Sprintf(tmplTemperature, cw.Temperature, weatherName(cw.WeatherCode)),
			fmt.Sprintf(tmplWind, cw.WindSpeed, int(cw.WindDirection)),
			fmt.Sprintf(tmplObservedAt, cw.Time),
		)
	} else {
		lines = append(lines, msgNoCurrentData)
	}

	if days := resp.Daily.Days(maxDays); len(days) > 0 {
		lines = append(lines, "", labelDaily)
		for _, d := range days {
			lines = append(lines, fmt.Sprintf(tmplDay, d.Date, d.MinTemperature, d.MaxTemperature, d.Precipitation))
		}
	}

	return strings.Join(lines, "\n")
}

package weather

import (
	"strings"
	"testing"

	"github.com/meteoua/pohoda-mcp/internal/openmeteo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResponse(days int) *openmeteo.ForecastResponse {
	daily := &openmeteo.DailySeries{}
	dates := []string{
		"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29",
		"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02",
	}
	for i := 0; i < days; i++ {
		daily.Time = append(daily.Time, dates[i])
		daily.TemperatureMax = append(daily.TemperatureMax, 24.0+float64(i))
		daily.TemperatureMin = append(daily.TemperatureMin, 14.0+float64(i))
		daily.PrecipitationSum = append(daily.PrecipitationSum, float64(i))
	}
	return &openmeteo.ForecastResponse{
		Latitude:  50.45,
		Longitude: 30.52,
		CurrentWeather: &openmeteo.CurrentWeather{
			Temperature:   21.3,
			WindSpeed:     12.5,
			WindDirection: 180,
			WeatherCode:   0,
			Time:          "2026-08-26T14:00",
		},
		Daily: daily,
	}
}

func TestFormatReport_FullPayload(t *testing.T) {
	loc := Location{Name: "Київ", Latitude: 50.4501, Longitude: 30.5234}
	out := FormatReport(loc, fullResponse(7), 7)
	lines := strings.Split(out, "\n")

	// header + blank + current block (sub-header and 3 lines) + blank +
	// daily header + 7 day lines
	require.Len(t, lines, 15)
	assert.Equal(t, "Прогноз погоди: Київ", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "Поточна погода:", lines[2])
	assert.Equal(t, "Температура: 21.3°C (ясно)", lines[3])
	assert.Equal(t, "Вітер: 12.5 км/год, напрямок 180°", lines[4])
	assert.Equal(t, "Станом на: 2026-08-26T14:00", lines[5])
	assert.Empty(t, lines[6])
	assert.Equal(t, "Прогноз на найближчі дні:", lines[7])
	assert.Equal(t, "2026-08-26: від 14.0°C до 24.0°C, опади 0.0 мм", lines[8])
	assert.Equal(t, "2026-09-01: від 20.0°C до 30.0°C, опади 6.0 мм", lines[14])
}

func TestFormatReport_CoordinateHeader(t *testing.T) {
	loc := Location{Latitude: 49.839683, Longitude: 24.029717}
	out := FormatReport(loc, fullResponse(1), 7)
	assert.True(t, strings.HasPrefix(out, "Прогноз погоди: 49.8397, 24.0297\n"))
}

func TestFormatReport_NoCurrentWeather(t *testing.T) {
	resp := fullResponse(2)
	resp.CurrentWeather = nil
	out := FormatReport(Location{Name: "Київ"}, resp, 7)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "Дані про поточну погоду відсутні", lines[2])
	assert.NotContains(t, out, "Поточна погода:")
}

func TestFormatReport_NoDailySeries(t *testing.T) {
	resp := fullResponse(0)
	resp.Daily = nil
	out := FormatReport(Location{Name: "Київ"}, resp, 7)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 6)
	assert.NotContains(t, out, "Прогноз на найближчі дні:")
}

func TestFormatReport_ShortSeries(t *testing.T) {
	out := FormatReport(Location{Name: "Київ"}, fullResponse(3), 7)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 11)
}

func TestFormatReport_BoundedToMaxDays(t *testing.T) {
	out := FormatReport(Location{Name: "Київ"}, fullResponse(8), 7)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 15)
	assert.NotContains(t, out, "2026-09-02")
}

func TestFormatReport_Pure(t *testing.T) {
	loc := Location{Name: "Київ", Latitude: 50.4501, Longitude: 30.5234}
	resp := fullResponse(7)
	assert.Equal(t, FormatReport(loc, resp, 7), FormatReport(loc, resp, 7))
}

func TestFormatReport_UnknownWeatherCode(t *testing.T) {
	resp := fullResponse(1)
	resp.CurrentWeather.WeatherCode = 42
	out := FormatReport(Location{Name: "Київ"}, resp, 7)
	assert.Contains(t, out, "(невідомо)")
}

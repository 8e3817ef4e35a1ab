package openmeteo

// Place is a single geocoding match.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geocodingResponse struct {
	Results []Place `json:"results"`
}

// ForecastResponse mirrors the forecast endpoint payload. Both sections
// are optional; absence means the provider had no data for the location.
type ForecastResponse struct {
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	CurrentWeather *CurrentWeather `json:"current_weather"`
	Daily          *DailySeries    `json:"daily"`
}

// CurrentWeather is the instantaneous conditions snapshot.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}

// DailySeries holds the per-day forecast values as parallel arrays,
// indexed positionally the way the API returns them.
type DailySeries struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// Day is one assembled record from the parallel daily arrays.
type Day struct {
	Date           string
	MinTemperature float64
	MaxTemperature float64
	Precipitation  float64
}

// Days zips the parallel arrays into per-day records, bounded to limit.
// The provider gives no structural guarantee that the arrays are equal
// length, so a day whose entries are missing from any array is dropped
// rather than failing the whole response.
func (d *DailySeries) Days(limit int) []Day {
	if d == nil {
		return nil
	}
	n := min(len(d.Time), limit)
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		if i >= len(d.TemperatureMax) || i >= len(d.TemperatureMin) || i >= len(d.PrecipitationSum) {
			continue
		}
		days = append(days, Day{
			Date:           d.Time[i],
			MinTemperature: d.TemperatureMin[i],
			MaxTemperature: d.TemperatureMax[i],
			Precipitation:  d.PrecipitationSum[i],
		})
	}
	return days
}

package weather

import "fmt"

// User-facing strings. The tool reports in Ukrainian; these are the only
// texts that ever cross the tool boundary.
const (
	labelHeader  = "Прогноз погоди:"
	labelCurrent = "Поточна погода:"
	labelDaily   = "Прогноз на найближчі дні:"

	msgNoCurrentData = "Дані про поточну погоду відсутні"

	tmplTemperature = "Температура: %.1f°C (%s)"
	tmplWind        = "Вітер: %.1f км/год, напрямок %d°"
	tmplObservedAt  = "Станом на: %s"
	tmplDay         = "%s: від %.1f°C до %.1f°C, опади %.1f мм"
)

// ForecastUnavailableMessage is returned for any upstream failure.
const ForecastUnavailableMessage = "Не вдалося отримати прогноз погоди. Спробуйте пізніше."

// InvalidCoordinatesMessage is returned when coordinates are out of range.
const InvalidCoordinatesMessage = "Некоректні координати: широта має бути в межах від -90 до 90, довгота — від -180 до 180."

// CityNotFoundMessage renders the "no geocoding match" response.
func CityNotFoundMessage(city string) string {
	return fmt.Sprintf("Місто «%s» не знайдено", city)
}

// WMO weather interpretation codes as reported by Open-Meteo.
var weatherNames = map[int]string{
	0:  "ясно",
	1:  "переважно ясно",
	2:  "мінлива хмарність",
	3:  "хмарно",
	45: "туман",
	48: "паморозевий туман",
	51: "легка мряка",
	53: "мряка",
	55: "густа мряка",
	61: "невеликий дощ",
	63: "дощ",
	65: "сильний дощ",
	66: "крижаний дощ",
	67: "сильний крижаний дощ",
	71: "невеликий сніг",
	73: "сніг",
	75: "сильний сніг",
	77: "снігова крупа",
	80: "невеликі зливи",
	81: "зливи",
	82: "сильні зливи",
	85: "невеликий снігопад",
	86: "сильний снігопад",
	95: "гроза",
	96: "гроза з градом",
	99: "гроза з сильним градом",
}

func weatherName(code int) string {
	if name, ok := weatherNames[code]; ok {
		return name
	}
	return "невідомо"
}

package weather

import (
	"math"
	"time"

	"weathermine/i18n"
	"weathermine/models"
)

// HourlyWindow caps every hourly sequence in a NormalizedForecast
const HourlyWindow = 24

// Open-Meteo reports local times without an offset when timezone=auto
var instantLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Normalizer converts raw forecast payloads into NormalizedForecast records
type Normalizer struct {
	Clock      Clock
	Translator i18n.Translator
	// Location is used to read upstream local times when the payload carries no offset
	Location *time.Location
}

// NewNormalizer creates a normalizer backed by the wall clock and the built-in tables
func NewNormalizer() *Normalizer {
	return &Normalizer{
		Clock:      SystemClock{},
		Translator: i18n.Default,
		Location:   time.Local,
	}
}

var defaultNormalizer = NewNormalizer()

// Normalize runs the default normalizer
func Normalize(payload *models.RawForecast, city string, latitude float64, lang i18n.Language) models.NormalizedForecast {
	return defaultNormalizer.Normalize(payload, city, latitude, lang)
}

// Normalize never fails: absent blocks and fields become zeros and empty sequences, and
// absent or unreadable sunrise/sunset instants are replaced by the current time.
func (n *Normalizer) Normalize(payload *models.RawForecast, city string, latitude float64, lang i18n.Language) models.NormalizedForecast {
	current := payload.CurrentOrEmpty()
	daily := payload.DailyOrEmpty()
	hourly := payload.HourlyOrEmpty()

	loc := n.location(payload)
	now := n.now().In(loc)

	sunrise := parseInstant(daily.SunriseToday(), loc, now)
	sunset := parseInstant(daily.SunsetToday(), loc, now)

	isDay := IsDaytime(now, sunrise, sunset)
	season := ClassifySeason(now, latitude)

	tr := n.translator()
	dayNight := "night"
	if isDay {
		dayNight = "day"
	}

	return models.NormalizedForecast{
		City:           city,
		Temperature:    roundInt(current.Temperature()),
		MinTemperature: roundInt(daily.MinToday()),
		MaxTemperature: roundInt(daily.MaxToday()),
		WeatherCode:    current.Code(),
		Condition:      ClassifyWeatherCode(current.Code()).Localize(tr, lang),
		WindSpeed:      roundInt(current.WindSpeed()),
		Humidity:       roundInt(current.Humidity()),
		CurrentTime:    FormatClockTime(now),
		Season:         season.Localize(tr, lang),
		IsDay:          isDay,
		DayNight:       tr.Translate(dayNight, lang),
		Sunrise:        FormatClockTime(sunrise),
		Sunset:         FormatClockTime(sunset),

		HourlyTime:                head(hourly.Time),
		HourlyPrecipitation:       head(hourly.PrecipitationProbability),
		HourlyPrecipitationAmount: mapHead(hourly.Precipitation, roundTenths),
		HourlyTemperature:         mapHead(hourly.Temperature2m, roundInt),
		HourlyWindSpeed:           mapHead(hourly.WindSpeed10m, roundInt),
		HourlyHumidity:            head(hourly.RelativeHumidity2m),
	}
}

func (n *Normalizer) now() time.Time {
	if n.Clock == nil {
		return time.Now()
	}
	return n.Clock.Now()
}

func (n *Normalizer) translator() i18n.Translator {
	if n.Translator == nil {
		return i18n.Default
	}
	return n.Translator
}

// location prefers the payload's own UTC offset so local upstream times round-trip
func (n *Normalizer) location(payload *models.RawForecast) *time.Location {
	if payload != nil && payload.UTCOffsetSeconds != nil {
		name := payload.Timezone
		if name == "" {
			name = "UTC"
		}
		return time.FixedZone(name, *payload.UTCOffsetSeconds)
	}
	if n.Location == nil {
		return time.Local
	}
	return n.Location
}

func parseInstant(value string, loc *time.Location, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc)
		}
	}
	return fallback
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// roundTenths rounds half away from zero at one decimal: 1.25 → 1.3
func roundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}

// head copies at most HourlyWindow leading elements and never returns nil
func head[T any](values []T) []T {
	n := min(len(values), HourlyWindow)
	out := make([]T, n)
	copy(out, values[:n])
	return out
}

func mapHead[T, R any](values []T, fn func(T) R) []R {
	n := min(len(values), HourlyWindow)
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(values[i])
	}
	return out
}

package weather

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
	"time"

	"weathermine/i18n"
	"weathermine/models"
)

func fixedNormalizer(now time.Time) *Normalizer {
	return &Normalizer{
		Clock:      FixedClock(now),
		Translator: i18n.Default,
		Location:   time.UTC,
	}
}

func decode(t *testing.T, raw string) *models.RawForecast {
	t.Helper()
	var payload models.RawForecast
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return &payload
}

func hourlyJSON(n int) string {
	times := make([]string, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = fmt.Sprintf("2024-06-01T%02d:00", i%24)
		values[i] = float64(i) + 0.4
	}
	t, _ := json.Marshal(times)
	v, _ := json.Marshal(values)
	return fmt.Sprintf(`{"time":%s,"temperature_2m":%s,"precipitation_probability":%s,"precipitation":%s,"wind_speed_10m":%s,"relative_humidity_2m":%s}`,
		t, v, v, v, v, v)
}

func TestNormalizeEndToEnd(t *testing.T) {
	payload := decode(t, `{
		"utc_offset_seconds": 7200,
		"timezone": "Europe/Paris",
		"current": {"temperature_2m": 21.6, "weather_code": 51, "wind_speed_10m": 11.2, "relative_humidity_2m": 60},
		"daily": {"temperature_2m_min": [14.1], "temperature_2m_max": [23.9], "sunrise": ["2024-06-01T05:30"], "sunset": ["2024-06-01T20:15"]},
		"hourly": `+hourlyJSON(24)+`
	}`)

	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC) // 12:00 in Paris
	got := fixedNormalizer(now).Normalize(payload, "Paris", 48.85, i18n.English)

	if got.City != "Paris" {
		t.Errorf("City = %q", got.City)
	}
	if got.Temperature != 22 || got.MinTemperature != 14 || got.MaxTemperature != 24 {
		t.Errorf("temperatures = %d/%d/%d, want 22/14/24", got.Temperature, got.MinTemperature, got.MaxTemperature)
	}
	if got.WeatherCode != 51 || got.Condition != "Rainy" {
		t.Errorf("weather = %d %q, want 51 Rainy", got.WeatherCode, got.Condition)
	}
	if got.WindSpeed != 11 || got.Humidity != 60 {
		t.Errorf("wind/humidity = %d/%d, want 11/60", got.WindSpeed, got.Humidity)
	}
	if got.Season != "Summer" {
		t.Errorf("Season = %q, want Summer", got.Season)
	}
	if got.Sunrise != "05:30" || got.Sunset != "20:15" {
		t.Errorf("sun = %s/%s, want 05:30/20:15", got.Sunrise, got.Sunset)
	}
	if got.CurrentTime != "12:00" {
		t.Errorf("CurrentTime = %q, want 12:00", got.CurrentTime)
	}
	// sunrise/sunset belong to June 1, so July 1 is outside the window
	if got.IsDay || got.DayNight != "Night" {
		t.Errorf("IsDay = %v %q, want false Night", got.IsDay, got.DayNight)
	}
	if len(got.HourlyTime) != 24 || len(got.HourlyTemperature) != 24 {
		t.Errorf("hourly lengths = %d/%d, want 24", len(got.HourlyTime), len(got.HourlyTemperature))
	}
}

func TestNormalizeDaytimeWithinWindow(t *testing.T) {
	payload := decode(t, `{
		"daily": {"sunrise": ["2024-06-01T05:30"], "sunset": ["2024-06-01T20:15"]}
	}`)

	n := fixedNormalizer(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	got := n.Normalize(payload, "Paris", 48.85, i18n.Spanish)
	if !got.IsDay || got.DayNight != "Día" {
		t.Errorf("IsDay = %v %q, want true Día", got.IsDay, got.DayNight)
	}
	if got.Season != "Primavera" {
		t.Errorf("Season = %q, want Primavera", got.Season)
	}

	n = fixedNormalizer(time.Date(2024, 6, 1, 5, 29, 0, 0, time.UTC))
	if got := n.Normalize(payload, "Paris", 48.85, i18n.English); got.IsDay {
		t.Error("one minute before sunrise should be night")
	}
}

func TestNormalizeTotality(t *testing.T) {
	now := time.Date(2024, 12, 25, 8, 45, 0, 0, time.UTC)
	n := fixedNormalizer(now)

	payloads := map[string]*models.RawForecast{
		"nil":           nil,
		"empty":         decode(t, `{}`),
		"empty blocks":  decode(t, `{"current":{},"daily":{},"hourly":{}}`),
		"null blocks":   decode(t, `{"current":null,"daily":null,"hourly":null}`),
		"partial daily": decode(t, `{"daily":{"temperature_2m_max":[]}}`),
		"bad sunrise":   decode(t, `{"daily":{"sunrise":["not a time"],"sunset":[""]}}`),
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			got := n.Normalize(payload, "Nowhere", -10, i18n.English)

			if got.Temperature != 0 || got.MinTemperature != 0 || got.MaxTemperature != 0 ||
				got.WindSpeed != 0 || got.Humidity != 0 || got.WeatherCode != 0 {
				t.Errorf("expected zero scalars, got %+v", got)
			}
			if got.Condition != "Clear" {
				t.Errorf("Condition = %q, want Clear", got.Condition)
			}
			// missing sunrise/sunset collapse to now, which is inside [now, now]
			if !got.IsDay || got.DayNight != "Day" {
				t.Errorf("IsDay = %v %q, want true Day", got.IsDay, got.DayNight)
			}
			if got.Sunrise != "08:45" || got.Sunset != "08:45" || got.CurrentTime != "08:45" {
				t.Errorf("times = %s/%s/%s, want 08:45", got.Sunrise, got.Sunset, got.CurrentTime)
			}
			if got.Season != "Summer" {
				t.Errorf("Season = %q, want Summer (southern December)", got.Season)
			}
			if got.HourlyTime == nil || got.HourlyPrecipitation == nil || got.HourlyPrecipitationAmount == nil ||
				got.HourlyTemperature == nil || got.HourlyWindSpeed == nil || got.HourlyHumidity == nil {
				t.Error("hourly sequences must be empty, not nil")
			}
		})
	}
}

func TestNormalizeTruncatesHourly(t *testing.T) {
	payload := decode(t, `{"hourly":`+hourlyJSON(30)+`}`)
	got := fixedNormalizer(time.Now()).Normalize(payload, "X", 0, i18n.English)

	lengths := []int{
		len(got.HourlyTime), len(got.HourlyPrecipitation), len(got.HourlyPrecipitationAmount),
		len(got.HourlyTemperature), len(got.HourlyWindSpeed), len(got.HourlyHumidity),
	}
	for i, l := range lengths {
		if l != 24 {
			t.Errorf("sequence %d has %d entries, want 24", i, l)
		}
	}

	if !reflect.DeepEqual(got.HourlyTime, payload.Hourly.Time[:24]) {
		t.Errorf("HourlyTime is not the first 24 entries")
	}
	if !reflect.DeepEqual(got.HourlyPrecipitation, payload.Hourly.PrecipitationProbability[:24]) {
		t.Errorf("HourlyPrecipitation is not the first 24 entries")
	}
	if !reflect.DeepEqual(got.HourlyHumidity, payload.Hourly.RelativeHumidity2m[:24]) {
		t.Errorf("HourlyHumidity is not the first 24 entries")
	}
	for i, v := range got.HourlyTemperature {
		if v != i {
			t.Errorf("HourlyTemperature[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestNormalizeKeepsShortHourly(t *testing.T) {
	payload := decode(t, `{"hourly":{"time":["2024-06-01T00:00","2024-06-01T01:00"],"temperature_2m":[1.5]}}`)
	got := fixedNormalizer(time.Now()).Normalize(payload, "X", 0, i18n.English)

	if len(got.HourlyTime) != 2 || len(got.HourlyTemperature) != 1 || len(got.HourlyWindSpeed) != 0 {
		t.Errorf("unexpected lengths: %d %d %d", len(got.HourlyTime), len(got.HourlyTemperature), len(got.HourlyWindSpeed))
	}
	if got.HourlyTemperature[0] != 2 {
		t.Errorf("1.5 should round half away from zero to 2, got %d", got.HourlyTemperature[0])
	}
}

func TestNormalizeRounding(t *testing.T) {
	payload := decode(t, `{
		"current": {"temperature_2m": -2.5, "wind_speed_10m": 2.5, "relative_humidity_2m": 59.49},
		"hourly": {"precipitation": [1.24, 1.25, 1.26, 0.05, 0], "wind_speed_10m": [0.5, 1.49], "relative_humidity_2m": [55.5]}
	}`)
	got := fixedNormalizer(time.Now()).Normalize(payload, "X", 0, i18n.English)

	if want := []float64{1.2, 1.3, 1.3, 0.1, 0}; !reflect.DeepEqual(got.HourlyPrecipitationAmount, want) {
		t.Errorf("HourlyPrecipitationAmount = %v, want %v", got.HourlyPrecipitationAmount, want)
	}
	if want := []int{1, 1}; !reflect.DeepEqual(got.HourlyWindSpeed, want) {
		t.Errorf("HourlyWindSpeed = %v, want %v", got.HourlyWindSpeed, want)
	}
	if want := []float64{55.5}; !reflect.DeepEqual(got.HourlyHumidity, want) {
		t.Errorf("HourlyHumidity should pass through, got %v", got.HourlyHumidity)
	}
	// half away from zero
	if got.Temperature != -3 || got.WindSpeed != 3 || got.Humidity != 59 {
		t.Errorf("scalars = %d/%d/%d, want -3/3/59", got.Temperature, got.WindSpeed, got.Humidity)
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	payload := decode(t, `{"hourly":{"time":["a","b"]}}`)
	got := fixedNormalizer(time.Now()).Normalize(payload, "X", 0, i18n.English)
	got.HourlyTime[0] = "changed"
	if payload.Hourly.Time[0] != "a" {
		t.Fatal("normalized sequence shares storage with the payload")
	}
}

func TestNormalizeUsesConfiguredLocationWithoutOffset(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	payload := decode(t, `{"daily":{"sunrise":["2024-06-01T04:25"],"sunset":["2024-06-01T18:52"]}}`)

	n := &Normalizer{
		Clock:    FixedClock(time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)), // 12:00 JST
		Location: tokyo,
	}
	got := n.Normalize(payload, "Tokyo", 35.68, i18n.English)
	if !got.IsDay || got.CurrentTime != "12:00" || got.Sunrise != "04:25" {
		t.Errorf("got IsDay=%v CurrentTime=%s Sunrise=%s", got.IsDay, got.CurrentTime, got.Sunrise)
	}
}

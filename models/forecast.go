package models

// RawForecast mirrors the Open-Meteo forecast payload. Every block and field may be absent;
// the accessor methods below are the only place defaults are substituted.
type RawForecast struct {
	Timezone         string `json:"timezone,omitempty"`
	UTCOffsetSeconds *int   `json:"utc_offset_seconds,omitempty"`

	Current *CurrentBlock `json:"current,omitempty"`
	Daily   *DailyBlock   `json:"daily,omitempty"`
	Hourly  *HourlyBlock  `json:"hourly,omitempty"`
}

// CurrentBlock holds the scalar "current" readings
type CurrentBlock struct {
	Temperature2m      *float64 `json:"temperature_2m,omitempty"`
	WeatherCode        *int     `json:"weather_code,omitempty"`
	WindSpeed10m       *float64 `json:"wind_speed_10m,omitempty"`
	RelativeHumidity2m *float64 `json:"relative_humidity_2m,omitempty"`
}

// DailyBlock holds per-day arrays, index 0 is today
type DailyBlock struct {
	Temperature2mMin []float64 `json:"temperature_2m_min,omitempty"`
	Temperature2mMax []float64 `json:"temperature_2m_max,omitempty"`
	Sunrise          []string  `json:"sunrise,omitempty"`
	Sunset           []string  `json:"sunset,omitempty"`
}

// HourlyBlock holds per-hour arrays aligned by index
type HourlyBlock struct {
	Time                     []string  `json:"time,omitempty"`
	Temperature2m            []float64 `json:"temperature_2m,omitempty"`
	PrecipitationProbability []float64 `json:"precipitation_probability,omitempty"`
	Precipitation            []float64 `json:"precipitation,omitempty"`
	WindSpeed10m             []float64 `json:"wind_speed_10m,omitempty"`
	RelativeHumidity2m       []float64 `json:"relative_humidity_2m,omitempty"`
}

// CurrentOrEmpty returns the current block, or an empty one when absent
func (f *RawForecast) CurrentOrEmpty() CurrentBlock {
	if f == nil || f.Current == nil {
		return CurrentBlock{}
	}
	return *f.Current
}

// DailyOrEmpty returns the daily block, or an empty one when absent
func (f *RawForecast) DailyOrEmpty() DailyBlock {
	if f == nil || f.Daily == nil {
		return DailyBlock{}
	}
	return *f.Daily
}

// HourlyOrEmpty returns the hourly block, or an empty one when absent
func (f *RawForecast) HourlyOrEmpty() HourlyBlock {
	if f == nil || f.Hourly == nil {
		return HourlyBlock{}
	}
	return *f.Hourly
}

// Temperature returns temperature_2m or 0
func (c CurrentBlock) Temperature() float64 { return valueOr(c.Temperature2m) }

// Code returns weather_code or 0
func (c CurrentBlock) Code() int {
	if c.WeatherCode == nil {
		return 0
	}
	return *c.WeatherCode
}

// WindSpeed returns wind_speed_10m or 0
func (c CurrentBlock) WindSpeed() float64 { return valueOr(c.WindSpeed10m) }

// Humidity returns relative_humidity_2m or 0
func (c CurrentBlock) Humidity() float64 { return valueOr(c.RelativeHumidity2m) }

// MinToday returns temperature_2m_min[0] or 0
func (d DailyBlock) MinToday() float64 { return firstOr(d.Temperature2mMin) }

// MaxToday returns temperature_2m_max[0] or 0
func (d DailyBlock) MaxToday() float64 { return firstOr(d.Temperature2mMax) }

// SunriseToday returns sunrise[0], or "" when absent
func (d DailyBlock) SunriseToday() string { return firstString(d.Sunrise) }

// SunsetToday returns sunset[0], or "" when absent
func (d DailyBlock) SunsetToday() string { return firstString(d.Sunset) }

func valueOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func firstOr(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func firstString(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

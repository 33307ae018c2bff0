package models

// NormalizedForecast is the display-ready record produced from a RawForecast
type NormalizedForecast struct {
	City           string `json:"city"`
	Temperature    int    `json:"temperature"`    // °C, rounded
	MinTemperature int    `json:"minTemperature"` // today's low, rounded
	MaxTemperature int    `json:"maxTemperature"` // today's high, rounded
	WeatherCode    int    `json:"weatherCode"`    // WMO code as reported upstream
	Condition      string `json:"condition"`      // localized category
	WindSpeed      int    `json:"windSpeed"`      // km/h, rounded
	Humidity       int    `json:"humidity"`       // percentage, rounded
	CurrentTime    string `json:"currentTime"`    // HH:MM
	Season         string `json:"season"`
	IsDay          bool   `json:"isDay"`
	DayNight       string `json:"dayNight"`
	Sunrise        string `json:"sunrise"` // HH:MM
	Sunset         string `json:"sunset"`  // HH:MM

	HourlyTime                []string  `json:"hourlyTime"`
	HourlyPrecipitation       []float64 `json:"hourlyPrecipitation"` // probability, %
	HourlyPrecipitationAmount []float64 `json:"hourlyPrecipitationAmount"`
	HourlyTemperature         []int     `json:"hourlyTemperature"`
	HourlyWindSpeed           []int     `json:"hourlyWindSpeed"`
	HourlyHumidity            []float64 `json:"hourlyHumidity"`
}

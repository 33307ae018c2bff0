package collector

import (
	"weathermine/datasource"
	"weathermine/providers/openmeteo"
)

// NewFromConfig wires the Open-Meteo geocoder and forecast client described by config
func NewFromConfig(config *datasource.Config) *Collector {
	geocoder := openmeteo.NewGeocoder(openmeteo.GeocoderOptions{
		BaseURL:         config.Geocoding.BaseURL,
		Language:        config.Geocoding.Language,
		SuggestionCount: config.Geocoding.SuggestionCount,
		Timeout:         config.Timeout,
	})
	forecasts := openmeteo.NewForecastClient(openmeteo.ForecastOptions{
		BaseURL:      config.Forecast.BaseURL,
		ForecastDays: config.Forecast.ForecastDays,
		Timeout:      config.Timeout,
	})

	c := NewCollector(geocoder, forecasts, nil)
	if config.Timeout > 0 {
		// geocoding and forecast requests run back to back
		c.SetFetchTimeout(2 * config.Timeout)
	}
	return c
}

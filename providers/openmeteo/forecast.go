package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"weathermine/datasource"
	"weathermine/models"
)

const (
	currentFields = "temperature_2m,weather_code,wind_speed_10m,relative_humidity_2m"
	hourlyFields  = "temperature_2m,precipitation_probability,precipitation,wind_speed_10m,relative_humidity_2m"
	dailyFields   = "temperature_2m_min,temperature_2m_max,sunrise,sunset"
)

// ForecastClient fetches raw forecasts from the Open-Meteo forecast API
type ForecastClient struct {
	client       *resty.Client
	forecastDays int
}

// Ensure ForecastClient implements datasource.ForecastSource
var _ datasource.ForecastSource = (*ForecastClient)(nil)

// ForecastOptions configures a ForecastClient; zero values select the defaults
type ForecastOptions struct {
	BaseURL      string
	ForecastDays int
	Timeout      time.Duration
}

// NewForecastClient creates a new Open-Meteo forecast client
func NewForecastClient(opts ForecastOptions) *ForecastClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultForecastURL
	}
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = 1
	}
	return &ForecastClient{
		client:       newRestClient(opts.BaseURL, opts.Timeout),
		forecastDays: opts.ForecastDays,
	}
}

// Name returns the source name
func (f *ForecastClient) Name() string {
	return "Open-Meteo forecast"
}

// FetchForecast fetches the current, hourly and daily blocks for a coordinate pair.
// Times come back in the location's own timezone.
func (f *ForecastClient) FetchForecast(ctx context.Context, latitude, longitude float64) (*models.RawForecast, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":      formatCoordinate(latitude),
			"longitude":     formatCoordinate(longitude),
			"current":       currentFields,
			"hourly":        hourlyFields,
			"daily":         dailyFields,
			"timezone":      "auto",
			"forecast_days": strconv.Itoa(f.forecastDays),
		}).
		Get("/v1/forecast")
	if err != nil {
		return nil, &datasource.TransportError{Service: f.Name(), Err: err}
	}

	if resp.IsError() {
		return nil, &datasource.TransportError{
			Service:    f.Name(),
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var forecast models.RawForecast
	if err := json.Unmarshal(resp.Body(), &forecast); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}
	return &forecast, nil
}

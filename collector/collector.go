package collector

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"weathermine/datasource"
	"weathermine/i18n"
	"weathermine/models"
	"weathermine/weather"
)

// Collector runs the lookup pipeline: geocode, fetch forecast, normalize
type Collector struct {
	geocoder     datasource.Geocoder
	forecasts    datasource.ForecastSource
	normalizer   *weather.Normalizer
	fetchTimeout time.Duration
}

// Result is the outcome of one city in a batch lookup
type Result struct {
	Query    string                     `json:"query"`
	Forecast *models.NormalizedForecast `json:"forecast,omitempty"`
	Err      error                      `json:"-"`
}

// NewCollector creates a collector. A nil normalizer uses the wall clock and built-in tables.
func NewCollector(geocoder datasource.Geocoder, forecasts datasource.ForecastSource, normalizer *weather.Normalizer) *Collector {
	if normalizer == nil {
		normalizer = weather.NewNormalizer()
	}
	return &Collector{
		geocoder:     geocoder,
		forecasts:    forecasts,
		normalizer:   normalizer,
		fetchTimeout: 15 * time.Second, // Default timeout
	}
}

// SetFetchTimeout changes the timeout applied to each city lookup
func (c *Collector) SetFetchTimeout(timeout time.Duration) {
	c.fetchTimeout = timeout
}

// Geocoder exposes the underlying geocoder for suggestion lookups
func (c *Collector) Geocoder() datasource.Geocoder {
	return c.geocoder
}

// Lookup resolves city and returns its normalized forecast
func (c *Collector) Lookup(ctx context.Context, city string, lang i18n.Language) (models.NormalizedForecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.NormalizedForecast{}, fmt.Errorf("empty city name: %w", datasource.ErrNotFound)
	}

	coords, err := c.geocoder.Resolve(ctx, city)
	if err != nil {
		return models.NormalizedForecast{}, fmt.Errorf("geocode %q: %w", city, err)
	}

	return c.LookupCoordinates(ctx, coords, lang)
}

// LookupCoordinates skips geocoding, e.g. for coordinates reported by the device
func (c *Collector) LookupCoordinates(ctx context.Context, coords models.Coordinates, lang i18n.Language) (models.NormalizedForecast, error) {
	payload, err := c.forecasts.FetchForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return models.NormalizedForecast{}, fmt.Errorf("fetch forecast for %.4f,%.4f: %w", coords.Latitude, coords.Longitude, err)
	}

	name := coords.Name
	if name == "" {
		name = fmt.Sprintf("%.2f, %.2f", coords.Latitude, coords.Longitude)
	}

	return c.normalizer.Normalize(payload, name, coords.Latitude, lang), nil
}

// CollectAll looks up every city concurrently. Results keep the order of cities and a
// failure for one city does not affect the others.
func (c *Collector) CollectAll(ctx context.Context, cities []string, lang i18n.Language) []Result {
	results := make([]Result, len(cities))

	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func(i int, city string) {
			defer wg.Done()
			results[i] = c.fetchOnce(ctx, city, lang)
		}(i, city)
	}

	wg.Wait()
	return results
}

// fetchOnce performs a single lookup under the collector's timeout
func (c *Collector) fetchOnce(ctx context.Context, city string, lang i18n.Language) Result {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	forecast, err := c.Lookup(fetchCtx, city, lang)
	if err != nil {
		return Result{Query: city, Err: err}
	}
	return Result{Query: city, Forecast: &forecast}
}

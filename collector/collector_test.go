package collector

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"weathermine/datasource"
	"weathermine/i18n"
	"weathermine/models"
	"weathermine/weather"
)

type fakeGeocoder struct {
	places map[string]models.Coordinates
}

func (f *fakeGeocoder) Name() string { return "fake geocoder" }

func (f *fakeGeocoder) Resolve(ctx context.Context, name string) (models.Coordinates, error) {
	if name == "slow" {
		<-ctx.Done()
		return models.Coordinates{}, &datasource.TransportError{Service: f.Name(), Err: ctx.Err()}
	}
	coords, ok := f.places[strings.ToLower(name)]
	if !ok {
		return models.Coordinates{}, datasource.ErrNotFound
	}
	return coords, nil
}

func (f *fakeGeocoder) Suggest(context.Context, string) ([]models.Suggestion, error) {
	return []models.Suggestion{}, nil
}

type fakeForecasts struct {
	mu    sync.Mutex
	calls []float64
	fail  bool
}

func (f *fakeForecasts) Name() string { return "fake forecasts" }

func (f *fakeForecasts) FetchForecast(_ context.Context, lat, _ float64) (*models.RawForecast, error) {
	f.mu.Lock()
	f.calls = append(f.calls, lat)
	f.mu.Unlock()

	if f.fail {
		return nil, &datasource.TransportError{Service: f.Name(), StatusCode: 503}
	}
	temp := lat / 2
	return &models.RawForecast{Current: &models.CurrentBlock{Temperature2m: &temp}}, nil
}

func newTestCollector(forecasts *fakeForecasts) *Collector {
	geocoder := &fakeGeocoder{places: map[string]models.Coordinates{
		"paris":  {Latitude: 48.85, Longitude: 2.35, Name: "Paris"},
		"sydney": {Latitude: -33.87, Longitude: 151.21, Name: "Sydney"},
	}}
	normalizer := &weather.Normalizer{
		Clock:    weather.FixedClock(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)),
		Location: time.UTC,
	}
	return NewCollector(geocoder, forecasts, normalizer)
}

func TestLookup(t *testing.T) {
	c := newTestCollector(&fakeForecasts{})

	got, err := c.Lookup(context.Background(), " Sydney ", i18n.Spanish)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.City != "Sydney" {
		t.Errorf("City = %q", got.City)
	}
	if got.Temperature != -17 {
		t.Errorf("Temperature = %d, want -17", got.Temperature)
	}
	// January in the southern hemisphere
	if got.Season != "Verano" {
		t.Errorf("Season = %q, want Verano", got.Season)
	}
}

func TestLookupErrors(t *testing.T) {
	c := newTestCollector(&fakeForecasts{})
	if _, err := c.Lookup(context.Background(), "Atlantis", i18n.English); !errors.Is(err, datasource.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.Lookup(context.Background(), "   ", i18n.English); !errors.Is(err, datasource.ErrNotFound) {
		t.Errorf("expected ErrNotFound for blank city, got %v", err)
	}

	c = newTestCollector(&fakeForecasts{fail: true})
	_, err := c.Lookup(context.Background(), "Paris", i18n.English)
	var te *datasource.TransportError
	if !errors.As(err, &te) || te.StatusCode != 503 {
		t.Errorf("expected TransportError 503, got %v", err)
	}
}

func TestLookupCoordinatesNamesUnnamedPlaces(t *testing.T) {
	c := newTestCollector(&fakeForecasts{})
	got, err := c.LookupCoordinates(context.Background(), models.Coordinates{Latitude: 40.4168, Longitude: -3.7038}, i18n.English)
	if err != nil {
		t.Fatalf("LookupCoordinates: %v", err)
	}
	if got.City != "40.42, -3.70" {
		t.Errorf("City = %q", got.City)
	}
}

func TestCollectAll(t *testing.T) {
	forecasts := &fakeForecasts{}
	c := newTestCollector(forecasts)

	results := c.CollectAll(context.Background(), []string{"Paris", "Atlantis", "Sydney"}, i18n.English)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Query != "Paris" || results[0].Err != nil || results[0].Forecast.City != "Paris" {
		t.Errorf("unexpected first result %+v", results[0])
	}
	if results[1].Query != "Atlantis" || !errors.Is(results[1].Err, datasource.ErrNotFound) || results[1].Forecast != nil {
		t.Errorf("unexpected second result %+v", results[1])
	}
	if results[2].Err != nil || results[2].Forecast.Season != "Summer" {
		t.Errorf("unexpected third result %+v", results[2])
	}
	if len(forecasts.calls) != 2 {
		t.Errorf("forecast fetched %d times, want 2", len(forecasts.calls))
	}
}

func TestCollectAllTimeout(t *testing.T) {
	c := newTestCollector(&fakeForecasts{})
	c.SetFetchTimeout(20 * time.Millisecond)

	results := c.CollectAll(context.Background(), []string{"slow", "Paris"}, i18n.English)
	if !errors.Is(results[0].Err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", results[0].Err)
	}
	if results[1].Err != nil {
		t.Errorf("fast lookup should succeed, got %v", results[1].Err)
	}
}

func TestNewFromConfig(t *testing.T) {
	config := datasource.DefaultConfig()
	config.Timeout = 3 * time.Second

	c := NewFromConfig(config)
	if c.fetchTimeout != 6*time.Second {
		t.Errorf("fetchTimeout = %v, want 6s", c.fetchTimeout)
	}
	if c.Geocoder().Name() != "Open-Meteo geocoding" {
		t.Errorf("unexpected geocoder %q", c.Geocoder().Name())
	}
}

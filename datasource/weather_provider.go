package datasource

import (
	"context"

	"weathermine/models"
)

// MinSuggestLength is the shortest query prefix that triggers a suggestion lookup
const MinSuggestLength = 2

// Geocoder is an interface for services that can turn place names into coordinates
type Geocoder interface {
	// Resolve returns the best match for a place name, or ErrNotFound
	Resolve(ctx context.Context, name string) (models.Coordinates, error)

	// Suggest returns autocomplete matches for a query prefix
	Suggest(ctx context.Context, prefix string) ([]models.Suggestion, error)

	// Name returns the geocoder's name
	Name() string
}

// ForecastSource is an interface for services that can fetch raw forecast payloads
type ForecastSource interface {
	// FetchForecast fetches the forecast for a coordinate pair
	FetchForecast(ctx context.Context, latitude, longitude float64) (*models.RawForecast, error)

	// Name returns the source's name
	Name() string
}

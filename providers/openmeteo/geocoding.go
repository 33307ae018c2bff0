package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"weathermine/datasource"
	"weathermine/models"
)

// Geocoder resolves place names through the Open-Meteo geocoding API
type Geocoder struct {
	client          *resty.Client
	language        string
	suggestionCount int
}

// Ensure Geocoder implements datasource.Geocoder
var _ datasource.Geocoder = (*Geocoder)(nil)

// GeocoderOptions configures a Geocoder; zero values select the defaults
type GeocoderOptions struct {
	BaseURL         string
	Language        string
	SuggestionCount int
	Timeout         time.Duration
}

// NewGeocoder creates a new Open-Meteo geocoder
func NewGeocoder(opts GeocoderOptions) *Geocoder {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultGeocodingURL
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.SuggestionCount <= 0 {
		opts.SuggestionCount = 5
	}
	return &Geocoder{
		client:          newRestClient(opts.BaseURL, opts.Timeout),
		language:        opts.Language,
		suggestionCount: opts.SuggestionCount,
	}
}

// Name returns the geocoder name
func (g *Geocoder) Name() string {
	return "Open-Meteo geocoding"
}

type searchResponse struct {
	Results []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Admin2    string  `json:"admin2"`
	} `json:"results"`
}

// Resolve returns the top match for name
func (g *Geocoder) Resolve(ctx context.Context, name string) (models.Coordinates, error) {
	response, err := g.search(ctx, name, 1)
	if err != nil {
		return models.Coordinates{}, err
	}

	if len(response.Results) == 0 {
		return models.Coordinates{}, fmt.Errorf("%q: %w", name, datasource.ErrNotFound)
	}

	top := response.Results[0]
	return models.Coordinates{
		Latitude:  top.Latitude,
		Longitude: top.Longitude,
		Name:      top.Name,
	}, nil
}

// Suggest returns up to the configured number of matches for prefix. Prefixes shorter
// than datasource.MinSuggestLength return an empty list without a request.
func (g *Geocoder) Suggest(ctx context.Context, prefix string) ([]models.Suggestion, error) {
	prefix = strings.TrimSpace(prefix)
	if utf8.RuneCountInString(prefix) < datasource.MinSuggestLength {
		return []models.Suggestion{}, nil
	}

	response, err := g.search(ctx, prefix, g.suggestionCount)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, len(response.Results))
	for _, r := range response.Results {
		suggestions = append(suggestions, models.Suggestion{
			ID:        r.ID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Admin2:    r.Admin2,
		})
	}
	return suggestions, nil
}

func (g *Geocoder) search(ctx context.Context, name string, count int) (searchResponse, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":     name,
			"count":    strconv.Itoa(count),
			"language": g.language,
			"format":   "json",
		}).
		Get("/v1/search")
	if err != nil {
		return searchResponse{}, &datasource.TransportError{Service: g.Name(), Err: err}
	}

	if resp.IsError() {
		return searchResponse{}, &datasource.TransportError{
			Service:    g.Name(),
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	var response searchResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return searchResponse{}, fmt.Errorf("failed to parse geocoding response: %w", err)
	}
	return response, nil
}

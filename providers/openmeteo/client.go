// Package openmeteo talks to the public Open-Meteo geocoding and forecast APIs.
package openmeteo

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// DefaultGeocodingURL is the public geocoding host
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	// DefaultForecastURL is the public forecast host
	DefaultForecastURL = "https://api.open-meteo.com"

	defaultTimeout = 10 * time.Second
	userAgent      = "WeatherMine/1.0"
)

// newRestClient builds a resty client with request ids and response logging.
// Retries are left at resty's default of zero.
func newRestClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if req.Header.Get("X-Request-ID") == "" {
			req.SetHeader("X-Request-ID", uuid.NewString())
		}
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		log.Printf("%s %s -> %d (%s, %d bytes) [%s]",
			resp.Request.Method, resp.Request.URL, resp.StatusCode(), resp.Time().Round(time.Millisecond),
			len(resp.Body()), resp.Request.Header.Get("X-Request-ID"))
		return nil
	})

	return client
}

func formatCoordinate(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

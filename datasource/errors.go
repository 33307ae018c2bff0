package datasource

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when geocoding yields no results
var ErrNotFound = errors.New("city not found")

// TransportError reports a failed or non-success HTTP exchange with an upstream service
type TransportError struct {
	Service    string // upstream service name
	StatusCode int    // 0 when no response was received
	Body       string
	Err        error // underlying network error, if any
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is, or wraps, a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

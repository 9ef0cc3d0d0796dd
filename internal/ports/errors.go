package ports

import (
	"fmt"
	"route-directions/internal/domain"

	"github.com/pkg/errors"
)

// Tagged failures returned by Geocoder and DirectionsProvider implementations.
var (
	ErrNoResults  = errors.New("no geocode results")
	ErrNoRoutes   = errors.New("no routes in directions response")
	ErrNoSegments = errors.New("no segments in first route")
)

// StatusError is returned for any non-200 response. Body is kept verbatim.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// InvalidCoordinatesError is returned when the geocoder resolves an address
// to a pair outside the latitude/longitude bounds.
type InvalidCoordinatesError struct {
	Address     string
	Coordinates domain.Coordinates
}

func (e *InvalidCoordinatesError) Error() string {
	return fmt.Sprintf("invalid coordinates %s for address %q", e.Coordinates, e.Address)
}

// MalformedResponseError wraps a body that could not be decoded.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

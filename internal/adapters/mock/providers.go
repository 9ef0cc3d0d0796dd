package mock

import (
	"context"
	"route-directions/internal/domain"
	"route-directions/internal/ports"
	"sync"

	"github.com/pkg/errors"
)

type GeocodeResult struct {
	Coordinates domain.Coordinates
	Err         error
}

// Geocoder answers from a fixed address table and counts calls.
// Unknown addresses yield ports.ErrNoResults.
type Geocoder struct {
	mu      sync.Mutex
	results map[string]GeocodeResult
	calls   []string
}

func NewGeocoder(results map[string]GeocodeResult) *Geocoder {
	return &Geocoder{results: results}
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, address)

	r, ok := g.results[address]
	if !ok {
		return domain.Coordinates{}, errors.Wrapf(ports.ErrNoResults, "address %q", address)
	}
	return r.Coordinates, r.Err
}

// Calls returns the addresses geocoded so far, in order.
func (g *Geocoder) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

type RouteCall struct {
	Origin, Destination domain.Coordinates
}

// Directions returns the same segment or error for every call.
type Directions struct {
	mu      sync.Mutex
	segment domain.Segment
	err     error
	calls   []RouteCall
}

func NewDirections(segment domain.Segment, err error) *Directions {
	return &Directions{segment: segment, err: err}
}

func (d *Directions) Route(ctx context.Context, origin, destination domain.Coordinates) (domain.Segment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, RouteCall{Origin: origin, Destination: destination})

	if d.err != nil {
		return domain.Segment{}, d.err
	}
	return d.segment, nil
}

func (d *Directions) Calls() []RouteCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]RouteCall(nil), d.calls...)
}

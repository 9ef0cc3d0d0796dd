package ports

import (
	"context"
	"route-directions/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the coordinates of the first match for address.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

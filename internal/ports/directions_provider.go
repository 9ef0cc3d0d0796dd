package ports

import (
	"context"
	"route-directions/internal/domain"
)

// Contract for retrieving turn-by-turn directions between two coordinates.
type DirectionsProvider interface {
	// Return the first segment of the first route from origin to destination.
	Route(ctx context.Context, origin, destination domain.Coordinates) (domain.Segment, error)
}

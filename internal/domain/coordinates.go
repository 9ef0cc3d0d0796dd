package domain

import (
	"strconv"

	"github.com/pkg/errors"
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// ErrCoordinateFormat reports a coordinate pair that is not exactly [lon, lat].
var ErrCoordinateFormat = errors.New("coordinates must be a [lon, lat] pair")

// CoordinatesFromList builds Coordinates from the [lon, lat] order used by ORS.
func CoordinatesFromList(pair []float64) (Coordinates, error) {
	if len(pair) != 2 {
		return Coordinates{}, errors.Wrapf(ErrCoordinateFormat, "got %d values", len(pair))
	}
	return Coordinates{Lon: pair[0], Lat: pair[1]}, nil
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Valid reports whether latitude is within [-90, 90] and longitude within [-180, 180].
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// String renders the pair as "[lon, lat]".
func (c Coordinates) String() string {
	return "[" + formatFloat(c.Lon) + ", " + formatFloat(c.Lat) + "]"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

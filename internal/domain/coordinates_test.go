package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, Coordinates{Lon: 2.35, Lat: 48.85}.Valid())
	assert.True(t, Coordinates{Lon: -180, Lat: 90}.Valid())
	assert.True(t, Coordinates{Lon: 180, Lat: -90}.Valid())
	assert.False(t, Coordinates{Lon: 200, Lat: 10}.Valid())
	assert.False(t, Coordinates{Lon: 10, Lat: -90.5}.Valid())
}

func TestCoordinatesFromList(t *testing.T) {
	c, err := CoordinatesFromList([]float64{13.4, 52.52})
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lon: 13.4, Lat: 52.52}, c)
	assert.Equal(t, []float64{13.4, 52.52}, c.CoordsToList())

	_, err = CoordinatesFromList([]float64{1})
	assert.ErrorIs(t, err, ErrCoordinateFormat)
}

func TestCoordinatesString(t *testing.T) {
	assert.Equal(t, "[2.35, 48.85]", Coordinates{Lon: 2.35, Lat: 48.85}.String())
	assert.Equal(t, "[13, -7.125]", Coordinates{Lon: 13, Lat: -7.125}.String())
}

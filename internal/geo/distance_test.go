package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	kingstonUser   = Point{Latitude: 18.0179, Longitude: -76.8099}
	kingstonReport = Point{Latitude: 18.02, Longitude: -76.81}
	farAway        = Point{Latitude: 19.5, Longitude: -75.0}
)

func TestDistanceMeters_ZeroForIdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(kingstonUser, kingstonUser))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{kingstonUser, kingstonReport},
		{kingstonUser, farAway},
		{{Latitude: -33.86, Longitude: 151.21}, {Latitude: 51.5, Longitude: -0.12}},
	}

	for _, p := range pairs {
		assert.Equal(t, DistanceMeters(p[0], p[1]), DistanceMeters(p[1], p[0]))
	}
}

func TestDistanceMeters_KingstonScenario(t *testing.T) {
	near := DistanceMeters(kingstonUser, kingstonReport)
	assert.InDelta(t, 235, near, 10)

	far := DistanceMeters(kingstonUser, farAway)
	assert.Greater(t, far, 200000.0)
}

func TestWithin_BoundaryIsInclusive(t *testing.T) {
	d := DistanceMeters(kingstonUser, kingstonReport)

	assert.True(t, Within(kingstonReport, kingstonUser, d))
	assert.False(t, Within(kingstonReport, kingstonUser, math.Nextafter(d, 0)))
	assert.True(t, Within(kingstonReport, kingstonUser, 5000))
	assert.False(t, Within(kingstonReport, farAway, 5000))
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(18.0179, -76.8099))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
}

// Package geo computes great-circle distances between WGS84 coordinates.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters returns the haversine distance between a and b.
// It is symmetric and zero for identical points.
func DistanceMeters(a, b Point) float64 {
	return orbgeo.DistanceHaversine(a.orb(), b.orb())
}

// Within reports whether b lies inside the circle of radius meters centred on a.
// The boundary counts as inside.
func Within(a, b Point, radiusMeters float64) bool {
	return DistanceMeters(a, b) <= radiusMeters
}

// ValidCoordinate reports whether lat/lon are finite WGS84 degrees.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func (p Point) orb() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371393.0

// Coordinate validation errors.
var (
	ErrInvalidLatitude     = errors.New("latitude must be between -90 and 90 degrees")
	ErrInvalidLongitude    = errors.New("longitude must be between -180 and 180 degrees")
	ErrMalformedCoordinate = errors.New("malformed coordinate")
)

// Point is a validated WGS84 coordinate carrying a label (usually a canonical address).
// The zero value is a valid point at (0, 0) with an empty label.
type Point struct {
	lat   float64 // Latitude in degrees, [-90, 90].
	lon   float64 // Longitude in degrees, [-180, 180].
	label string  // Label is ignored by distance computations.
}

// NewPoint validates the coordinate and returns a labeled point.
// Bounds are inclusive; NaN is rejected.
func NewPoint(lat, lon float64, label string) (Point, error) {
	if !(lat >= -90 && lat <= 90) {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidLatitude, lat)
	}
	if !(lon >= -180 && lon <= 180) {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidLongitude, lon)
	}

	return Point{lat: lat, lon: lon, label: label}, nil
}

// ParsePoint parses decimal latitude and longitude strings and validates them with NewPoint.
func ParsePoint(lat, lon, label string) (Point, error) {
	latVal, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: latitude %q", ErrMalformedCoordinate, lat)
	}
	lonVal, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: longitude %q", ErrMalformedCoordinate, lon)
	}

	return NewPoint(latVal, lonVal, label)
}

// Latitude returns the latitude in degrees.
func (p Point) Latitude() float64 { return p.lat }

// Longitude returns the longitude in degrees.
func (p Point) Longitude() float64 { return p.lon }

// Label returns the point label.
func (p Point) Label() string { return p.label }

// DistanceMeters returns the haversine great-circle distance to other in meters.
func (p Point) DistanceMeters(other Point) float64 {
	lat1 := toRadians(p.lat)
	lat2 := toRadians(other.lat)
	deltaLat := lat2 - lat1
	deltaLon := toRadians(other.lon) - toRadians(p.lon)

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	// Rounding can push a past 1 for near-antipodal points.
	a := math.Min(1, sinLat*sinLat+math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("%s (%.6f, %.6f)", p.label, p.lat, p.lon)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

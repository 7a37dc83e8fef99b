package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean radius of Earth.
const EarthRadiusMeters = 6_371_000.0

const degree = math.Pi / 180

// ValidateLatLon checks that latitude is in [-90,90] and longitude in [-180,180].
func ValidateLatLon(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// FromLatLon places a geographic position on a sphere of the given radius:
// θ = 90° - lat, φ = lon.
func FromLatLon(latDeg, lonDeg, radius float64) (Spherical, error) {
	if !ValidateLatLon(latDeg, lonDeg) {
		return Spherical{}, fmt.Errorf("lat/lon (%v, %v) out of range: %w", latDeg, lonDeg, ErrInvalidInput)
	}
	return NewSpherical(radius, (90-latDeg)*degree, lonDeg*degree)
}

// LatLon returns the latitude and longitude of c in degrees, longitude in
// (-180, 180].
func LatLon(c Coordinate) (lat, lon float64) {
	s := c.AsSpherical()
	lat = 90 - s.theta/degree
	lon = s.phi / degree
	if lon > 180 {
		lon -= 360
	}
	return lat, lon
}

// Haversine returns the great-circle distance in meters between two points
// specified by latitude and longitude in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	a := spherical(1, (90-lat1)*degree, lon1*degree)
	b := spherical(1, (90-lat2)*degree, lon2*degree)
	angle, err := a.angle(b)
	if err != nil {
		return math.NaN()
	}
	return EarthRadiusMeters * angle.Radians()
}

package geo

import (
	"fmt"

	"github.com/golang/geo/s1"
)

// Coordinate is a point in 3-D space regardless of the system it is
// expressed in. Implementations are immutable and safe for concurrent use.
type Coordinate interface {
	AsCartesian() Cartesian
	AsSpherical() Spherical
	AsCylindrical() Cylindrical

	// CartesianDistance is the Euclidean distance to other.
	CartesianDistance(other Coordinate) (float64, error)
	// CentralAngle is the angle between the position vectors of the two
	// points, measured at the origin.
	CentralAngle(other Coordinate) (s1.Angle, error)
	// QuasiEquals reports epsilon based similarity. False for nil.
	QuasiEquals(other Coordinate) bool
}

var (
	_ Coordinate = Cartesian{}
	_ Coordinate = Spherical{}
	_ Coordinate = Cylindrical{}
)

// System names a coordinate representation.
type System string

const (
	SystemCartesian   System = "cartesian"
	SystemSpherical   System = "spherical"
	SystemCylindrical System = "cylindrical"
)

// IsValid reports whether s is one of the supported systems.
func (s System) IsValid() bool {
	switch s {
	case SystemCartesian, SystemSpherical, SystemCylindrical:
		return true
	}
	return false
}

// New builds a coordinate in the given system from a scalar triple:
// (x, y, z), (r, θ, φ) or (ρ, φ, z).
func New(system System, a, b, c float64) (Coordinate, error) {
	switch system {
	case SystemCartesian:
		return NewCartesian(a, b, c)
	case SystemSpherical:
		return NewSpherical(a, b, c)
	case SystemCylindrical:
		return NewCylindrical(a, b, c)
	default:
		return nil, fmt.Errorf("unknown coordinate system %q: %w", system, ErrInvalidInput)
	}
}

// Convert returns c expressed in the given system.
func Convert(c Coordinate, system System) (Coordinate, error) {
	if isNil(c) {
		return nil, fmt.Errorf("convert nil coordinate: %w", ErrInvalidInput)
	}
	switch system {
	case SystemCartesian:
		return c.AsCartesian(), nil
	case SystemSpherical:
		return c.AsSpherical(), nil
	case SystemCylindrical:
		return c.AsCylindrical(), nil
	default:
		return nil, fmt.Errorf("unknown coordinate system %q: %w", system, ErrInvalidInput)
	}
}

// SystemOf reports the representation backing c. Implementations outside
// this package are reported as Cartesian.
func SystemOf(c Coordinate) System {
	switch c.(type) {
	case Spherical, *Spherical:
		return SystemSpherical
	case Cylindrical, *Cylindrical:
		return SystemCylindrical
	default:
		return SystemCartesian
	}
}

// Components returns the system of c and its scalar triple in that system.
func Components(c Coordinate) (System, [3]float64) {
	switch sys := SystemOf(c); sys {
	case SystemSpherical:
		s := c.AsSpherical()
		return sys, [3]float64{s.r, s.theta, s.phi}
	case SystemCylindrical:
		y := c.AsCylindrical()
		return sys, [3]float64{y.rho, y.phi, y.z}
	default:
		x := c.AsCartesian()
		return sys, [3]float64{x.v.X, x.v.Y, x.v.Z}
	}
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Coordinate) (float64, error) {
	if isNil(a) {
		return 0, fmt.Errorf("distance from nil coordinate: %w", ErrInvalidInput)
	}
	return a.CartesianDistance(b)
}

// CentralAngle is the angle between a and b at the origin.
func CentralAngle(a, b Coordinate) (s1.Angle, error) {
	if isNil(a) {
		return 0, fmt.Errorf("angle from nil coordinate: %w", ErrInvalidInput)
	}
	return a.CentralAngle(b)
}

// Equal compares a and b with DefaultTolerance.
func Equal(a, b Coordinate) bool {
	return EqualWithin(a, b, DefaultTolerance)
}

// EqualWithin compares two Cartesian values component-wise and everything
// else on the spherical rule, so mixed comparisons stay symmetric.
func EqualWithin(a, b Coordinate, tol Tolerance) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	ca, aok := exactCartesian(a)
	cb, bok := exactCartesian(b)
	if aok && bok {
		return ca.equalWithin(cb, tol)
	}
	return a.AsSpherical().equalWithin(b.AsSpherical(), tol)
}

func defaultDistance(self, other Coordinate) (float64, error) {
	if isNil(other) {
		return 0, fmt.Errorf("distance to nil coordinate: %w", ErrInvalidInput)
	}
	return self.AsCartesian().Distance(other.AsCartesian())
}

func defaultCentralAngle(self, other Coordinate) (s1.Angle, error) {
	if isNil(other) {
		return 0, fmt.Errorf("angle to nil coordinate: %w", ErrInvalidInput)
	}
	return self.AsSpherical().angle(other.AsSpherical())
}

func exactCartesian(c Coordinate) (Cartesian, bool) {
	switch v := c.(type) {
	case Cartesian:
		return v, true
	case *Cartesian:
		return *v, true
	}
	return Cartesian{}, false
}

func isNil(c Coordinate) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Cartesian:
		return v == nil
	case *Spherical:
		return v == nil
	case *Cylindrical:
		return v == nil
	}
	return false
}

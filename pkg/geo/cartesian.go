package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Cartesian is a point (x, y, z).
type Cartesian struct {
	v r3.Vector
}

// Reference points.
var (
	Origin = Cartesian{}
	UnitX  = Cartesian{v: r3.Vector{X: 1}}
	UnitY  = Cartesian{v: r3.Vector{Y: 1}}
	UnitZ  = Cartesian{v: r3.Vector{Z: 1}}
)

// NewCartesian validates that all three components are finite.
func NewCartesian(x, y, z float64) (Cartesian, error) {
	if err := checkFinite("x", x); err != nil {
		return Cartesian{}, err
	}
	if err := checkFinite("y", y); err != nil {
		return Cartesian{}, err
	}
	if err := checkFinite("z", z); err != nil {
		return Cartesian{}, err
	}
	return cartesian(x, y, z), nil
}

// CartesianFromVector validates v and wraps it.
func CartesianFromVector(v r3.Vector) (Cartesian, error) {
	return NewCartesian(v.X, v.Y, v.Z)
}

func cartesian(x, y, z float64) Cartesian {
	return Cartesian{v: r3.Vector{X: x, Y: y, Z: z}}
}

func (c Cartesian) X() float64 { return c.v.X }
func (c Cartesian) Y() float64 { return c.v.Y }
func (c Cartesian) Z() float64 { return c.v.Z }

// Vector returns the underlying r3 vector.
func (c Cartesian) Vector() r3.Vector { return c.v }

// Norm is the distance from the origin.
func (c Cartesian) Norm() float64 {
	return hypot3(c.v.X, c.v.Y, c.v.Z)
}

func (c Cartesian) String() string {
	return fmt.Sprintf("Cartesian(x=%g, y=%g, z=%g)", c.v.X, c.v.Y, c.v.Z)
}

// AsCartesian returns c.
func (c Cartesian) AsCartesian() Cartesian { return c }

// AsSpherical converts to (r, θ, φ). The polar angle of the origin is 0.
func (c Cartesian) AsSpherical() Spherical {
	r := c.Norm()
	theta := 0.0
	if r >= EpsilonZero {
		theta = math.Atan2(math.Hypot(c.v.X, c.v.Y), c.v.Z)
	}
	return spherical(r, theta, math.Atan2(c.v.Y, c.v.X))
}

// AsCylindrical converts to (ρ, φ, z).
func (c Cartesian) AsCylindrical() Cylindrical {
	return cylindrical(math.Hypot(c.v.X, c.v.Y), math.Atan2(c.v.Y, c.v.X), c.v.Z)
}

// Distance is the Euclidean distance between c and o.
func (c Cartesian) Distance(o Cartesian) (float64, error) {
	d := c.v.Sub(o.v)
	n := hypot3(d.X, d.Y, d.Z)
	if err := checkResult("distance", n); err != nil {
		return 0, err
	}
	return n, nil
}

// CartesianDistance implements Coordinate.
func (c Cartesian) CartesianDistance(other Coordinate) (float64, error) {
	if isNil(other) {
		return 0, fmt.Errorf("distance to nil coordinate: %w", ErrInvalidInput)
	}
	return c.Distance(other.AsCartesian())
}

// CentralAngle implements Coordinate. It is the angle between the two
// position vectors, atan2(|a×b|, a·b).
func (c Cartesian) CentralAngle(other Coordinate) (s1.Angle, error) {
	if isNil(other) {
		return 0, fmt.Errorf("angle to nil coordinate: %w", ErrInvalidInput)
	}
	return c.angle(other.AsCartesian())
}

func (c Cartesian) angle(o Cartesian) (s1.Angle, error) {
	if DefaultTolerance.IsZero(c.Norm()) || DefaultTolerance.IsZero(o.Norm()) {
		return 0, fmt.Errorf("central angle at the origin: %w", ErrInvalidResult)
	}
	a := c.v.Angle(o.v)
	if err := checkResult("central angle", a.Radians()); err != nil {
		return 0, err
	}
	return a, nil
}

// QuasiEquals implements Coordinate.
func (c Cartesian) QuasiEquals(other Coordinate) bool {
	return EqualWithin(c, other, DefaultTolerance)
}

func (c Cartesian) equalWithin(o Cartesian, tol Tolerance) bool {
	return tol.Equal(c.v.X, o.v.X) && tol.Equal(c.v.Y, o.v.Y) && tol.Equal(c.v.Z, o.v.Z)
}

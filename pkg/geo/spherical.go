package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Spherical is a point (r, θ, φ) per ISO 80000-2. θ is the polar angle
// from +z in [0, π], φ the azimuth in [0, 2π).
type Spherical struct {
	r     float64
	theta float64
	phi   float64
}

// Reference points.
var (
	SphericalOrigin = Spherical{}
	Zenith          = Spherical{r: 1}
)

// NewSpherical validates r ≥ 0 and finite angles, then normalizes the
// angles. A polar angle outside [0, π] is folded back with the azimuth
// turned by π, so (1, 3π/2, 0) becomes (1, π/2, π).
func NewSpherical(r, theta, phi float64) (Spherical, error) {
	if err := checkRadius("radius", r); err != nil {
		return Spherical{}, err
	}
	if err := checkFinite("theta", theta); err != nil {
		return Spherical{}, err
	}
	if err := checkFinite("phi", phi); err != nil {
		return Spherical{}, err
	}
	return spherical(r, theta, phi), nil
}

func spherical(r, theta, phi float64) Spherical {
	theta, phi = normalizeInclination(theta, phi)
	return Spherical{r: r, theta: theta, phi: phi}
}

func (s Spherical) Radius() float64 { return s.r }
func (s Spherical) Theta() float64  { return s.theta }
func (s Spherical) Phi() float64    { return s.phi }

func (s Spherical) String() string {
	return fmt.Sprintf("Spherical(r=%g, theta=%g, phi=%g)", s.r, s.theta, s.phi)
}

func (s Spherical) AsCartesian() Cartesian {
	sinT, cosT := math.Sincos(s.theta)
	sinP, cosP := math.Sincos(s.phi)
	return cartesian(s.r*sinT*cosP, s.r*sinT*sinP, s.r*cosT)
}

// AsSpherical returns s.
func (s Spherical) AsSpherical() Spherical { return s }

func (s Spherical) AsCylindrical() Cylindrical {
	sinT, cosT := math.Sincos(s.theta)
	return cylindrical(s.r*sinT, s.phi, s.r*cosT)
}

// haversine returns sin²(γ/2) for the central angle γ between s and o.
func (s Spherical) haversine(o Spherical) float64 {
	st := math.Sin((s.theta - o.theta) / 2)
	sp := math.Sin((s.phi - o.phi) / 2)
	h := st*st + math.Sin(s.theta)*math.Sin(o.theta)*sp*sp
	return math.Min(math.Max(h, 0), 1)
}

// Distance is the Euclidean distance between s and o, computed without
// going through Cartesian components.
func (s Spherical) Distance(o Spherical) (float64, error) {
	dr := s.r - o.r
	d := math.Sqrt(dr*dr + 4*s.r*o.r*s.haversine(o))
	if err := checkResult("distance", d); err != nil {
		return 0, err
	}
	return d, nil
}

// CartesianDistance implements Coordinate.
func (s Spherical) CartesianDistance(other Coordinate) (float64, error) {
	if isNil(other) {
		return 0, fmt.Errorf("distance to nil coordinate: %w", ErrInvalidInput)
	}
	return s.Distance(other.AsSpherical())
}

// CentralAngle implements Coordinate. The result does not depend on radii.
func (s Spherical) CentralAngle(other Coordinate) (s1.Angle, error) {
	if isNil(other) {
		return 0, fmt.Errorf("angle to nil coordinate: %w", ErrInvalidInput)
	}
	return s.angle(other.AsSpherical())
}

func (s Spherical) angle(o Spherical) (s1.Angle, error) {
	if DefaultTolerance.IsZero(s.r) || DefaultTolerance.IsZero(o.r) {
		return 0, fmt.Errorf("central angle at the origin: %w", ErrInvalidResult)
	}
	h := s.haversine(o)
	a := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	if err := checkResult("central angle", a); err != nil {
		return 0, err
	}
	return s1.Angle(a), nil
}

// QuasiEquals implements Coordinate.
func (s Spherical) QuasiEquals(other Coordinate) bool {
	return EqualWithin(s, other, DefaultTolerance)
}

func (s Spherical) equalWithin(o Spherical, tol Tolerance) bool {
	if !tol.Equal(s.r, o.r) {
		return false
	}
	// angles are meaningless at the origin
	if tol.Equal(s.r, 0) && tol.Equal(o.r, 0) {
		return true
	}
	if !tol.Equal(s.theta, o.theta) {
		return false
	}
	// on the polar axis the azimuth is arbitrary
	if tol.Equal(s.theta, 0) && tol.Equal(o.theta, 0) {
		return true
	}
	if tol.Equal(s.theta, math.Pi) && tol.Equal(o.theta, math.Pi) {
		return true
	}
	return tol.Equal(angleDiff(s.phi, o.phi), 0)
}

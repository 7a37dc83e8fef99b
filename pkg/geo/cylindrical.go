package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Cylindrical is a point (ρ, φ, z) with φ in [0, 2π).
type Cylindrical struct {
	rho float64
	phi float64
	z   float64
}

// NewCylindrical validates ρ ≥ 0 and finite φ and z.
func NewCylindrical(rho, phi, z float64) (Cylindrical, error) {
	if err := checkRadius("rho", rho); err != nil {
		return Cylindrical{}, err
	}
	if err := checkFinite("phi", phi); err != nil {
		return Cylindrical{}, err
	}
	if err := checkFinite("z", z); err != nil {
		return Cylindrical{}, err
	}
	return cylindrical(rho, phi, z), nil
}

func cylindrical(rho, phi, z float64) Cylindrical {
	return Cylindrical{rho: rho, phi: normalizeAzimuth(phi), z: z}
}

// CylindricalFromCartesian is c.AsCylindrical().
func CylindricalFromCartesian(c Cartesian) Cylindrical { return c.AsCylindrical() }

// CylindricalFromSpherical is s.AsCylindrical().
func CylindricalFromSpherical(s Spherical) Cylindrical { return s.AsCylindrical() }

func (c Cylindrical) Rho() float64 { return c.rho }
func (c Cylindrical) Phi() float64 { return c.phi }
func (c Cylindrical) Z() float64   { return c.z }

func (c Cylindrical) String() string {
	return fmt.Sprintf("Cylindrical(rho=%g, phi=%g, z=%g)", c.rho, c.phi, c.z)
}

func (c Cylindrical) AsCartesian() Cartesian {
	sinP, cosP := math.Sincos(c.phi)
	return cartesian(c.rho*cosP, c.rho*sinP, c.z)
}

func (c Cylindrical) AsSpherical() Spherical {
	r := math.Hypot(c.rho, c.z)
	theta := 0.0
	if r >= EpsilonZero {
		theta = math.Atan2(c.rho, c.z)
	}
	return spherical(r, theta, c.phi)
}

// AsCylindrical returns c.
func (c Cylindrical) AsCylindrical() Cylindrical { return c }

func (c Cylindrical) CartesianDistance(other Coordinate) (float64, error) {
	return defaultDistance(c, other)
}

func (c Cylindrical) CentralAngle(other Coordinate) (s1.Angle, error) {
	return defaultCentralAngle(c, other)
}

func (c Cylindrical) QuasiEquals(other Coordinate) bool {
	return EqualWithin(c, other, DefaultTolerance)
}

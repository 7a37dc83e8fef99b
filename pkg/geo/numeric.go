package geo

import (
	"fmt"
	"math"
)

const (
	// EpsilonZero is the magnitude below which a scalar counts as zero.
	EpsilonZero = 1e-14

	// EpsilonSignificant is the largest absolute difference between two
	// quasi-equal scalars.
	EpsilonSignificant = 1e-10
)

const twoPi = 2 * math.Pi

// Tolerance is a pair of thresholds for quasi-equality.
type Tolerance struct {
	Zero        float64
	Significant float64
}

// DefaultTolerance is used by QuasiEquals and Equal.
var DefaultTolerance = Tolerance{Zero: EpsilonZero, Significant: EpsilonSignificant}

// Equal reports whether a and b are quasi-equal: both below the zero
// threshold, or no further apart than the significant threshold.
// Not transitive.
func (t Tolerance) Equal(a, b float64) bool {
	if math.Abs(a) < t.Zero && math.Abs(b) < t.Zero {
		return true
	}
	return math.Abs(a-b) <= t.Significant
}

// IsZero reports whether |a| is below the zero threshold.
func (t Tolerance) IsZero(a float64) bool {
	return math.Abs(a) < t.Zero
}

// Validate checks that both thresholds are finite, non-negative and ordered.
func (t Tolerance) Validate() error {
	if err := checkRadius("zero threshold", t.Zero); err != nil {
		return err
	}
	if err := checkRadius("significant threshold", t.Significant); err != nil {
		return err
	}
	if t.Zero > t.Significant {
		return fmt.Errorf("zero threshold %g exceeds significant threshold %g: %w",
			t.Zero, t.Significant, ErrInvalidInput)
	}
	return nil
}

// QuasiEqual compares a and b with DefaultTolerance.
func QuasiEqual(a, b float64) bool {
	return DefaultTolerance.Equal(a, b)
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v: %w", name, v, ErrInvalidInput)
	}
	return nil
}

func checkRadius(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v: %w", name, v, ErrInvalidInput)
	}
	return nil
}

func checkResult(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s is not finite (%v): %w", what, v, ErrInvalidResult)
	}
	return nil
}

// normalizeAzimuth reduces phi into [0, 2π) with a floored modulo.
func normalizeAzimuth(phi float64) float64 {
	phi = math.Mod(phi, twoPi)
	if phi < 0 {
		phi += twoPi
	}
	// -tiny + 2π rounds to 2π
	if phi >= twoPi {
		phi = 0
	}
	return phi + 0 // drops the sign of -0
}

// normalizeInclination reduces theta into [0, π]. A polar angle past π
// describes the same point as 2π-θ on the opposite meridian, so phi is
// rotated by π in that case.
func normalizeInclination(theta, phi float64) (float64, float64) {
	theta = normalizeAzimuth(theta)
	if theta > math.Pi {
		theta = twoPi - theta
		phi += math.Pi
	}
	return theta, normalizeAzimuth(phi)
}

// angleDiff returns a-b wrapped into [-π, π].
func angleDiff(a, b float64) float64 {
	return math.Remainder(a-b, twoPi)
}

// hypot3 is |(x, y, z)| without intermediate overflow.
func hypot3(x, y, z float64) float64 {
	return math.Hypot(math.Hypot(x, y), z)
}

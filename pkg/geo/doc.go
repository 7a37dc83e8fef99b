// Package geo represents a single point in 3-D space under three
// interchangeable coordinate systems and compares points independently of
// the system they are expressed in.
//
// # Representations
//
//   - Cartesian   (x, y, z)
//   - Spherical   (r, θ, φ) per ISO 80000-2: θ is the polar angle from the
//     zenith (+z), φ the azimuth in the xy reference plane
//   - Cylindrical (ρ, φ, z)
//
// All three are immutable values. Constructors validate and normalize their
// scalars; conversions always return fresh values.
//
//	p, _ := geo.NewCartesian(1, 1, 1)
//	s, _ := geo.NewSpherical(2, math.Pi/2, 0)
//	d, _ := geo.Distance(p, s)        // Euclidean distance
//	a, _ := geo.CentralAngle(p, s)    // angle at the origin
//	ok := geo.Equal(p, s.AsCartesian()) // epsilon based similarity
//
// # Equality
//
// Quasi-equality compares scalars against two thresholds (EpsilonZero and
// EpsilonSignificant). It is reflexive and symmetric but not transitive, so
// it must not be used as a map key or an equivalence relation.
//
// # Errors
//
// ErrInvalidInput is returned for non-finite scalars, negative radii and nil
// operands to distance or angle. ErrInvalidResult is returned when a
// computation cannot produce a finite value. Comparing against nil is not an
// error: QuasiEquals(nil) is false.
package geo

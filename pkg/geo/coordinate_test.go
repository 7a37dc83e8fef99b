package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRepresentations(c Cartesian) []Coordinate {
	return []Coordinate{c, c.AsSpherical(), c.AsCylindrical()}
}

func TestNew(t *testing.T) {
	c, err := New(SystemCartesian, 1, 2, 3)
	require.NoError(t, err)
	assert.IsType(t, Cartesian{}, c)

	s, err := New(SystemSpherical, 1, 0.5, 0.25)
	require.NoError(t, err)
	assert.IsType(t, Spherical{}, s)

	y, err := New(SystemCylindrical, 1, 0.5, -2)
	require.NoError(t, err)
	assert.IsType(t, Cylindrical{}, y)

	_, err = New("polar", 1, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(SystemSpherical, -1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSystem(t *testing.T) {
	assert.True(t, SystemCartesian.IsValid())
	assert.True(t, SystemSpherical.IsValid())
	assert.True(t, SystemCylindrical.IsValid())
	assert.False(t, System("").IsValid())

	assert.Equal(t, SystemCartesian, SystemOf(UnitX))
	assert.Equal(t, SystemSpherical, SystemOf(Zenith))
	assert.Equal(t, SystemCylindrical, SystemOf(UnitX.AsCylindrical()))
	assert.Equal(t, SystemSpherical, SystemOf(&Zenith))
}

func TestConvert(t *testing.T) {
	p := cartesian(1, 1, 0)
	for _, sys := range []System{SystemCartesian, SystemSpherical, SystemCylindrical} {
		c, err := Convert(p, sys)
		require.NoError(t, err)
		assert.Equal(t, sys, SystemOf(c))
		assert.True(t, Equal(p, c))
	}

	_, err := Convert(p, "polar")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Convert(nil, SystemCartesian)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComponents_RoundTrip(t *testing.T) {
	for _, c := range allRepresentations(cartesian(-3, 2, 7)) {
		sys, v := Components(c)
		back, err := New(sys, v[0], v[1], v[2])
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestDistance_RepresentationIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		a, b := randomCartesian(rng), randomCartesian(rng)
		want, err := a.Distance(b)
		require.NoError(t, err)

		for _, ra := range allRepresentations(a) {
			for _, rb := range allRepresentations(b) {
				got, err := Distance(ra, rb)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 1e-9)
			}
		}
	}
}

func TestCentralAngle_RepresentationIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a, b := randomCartesian(rng), randomCartesian(rng)
		want, err := a.CentralAngle(b)
		require.NoError(t, err)

		for _, ra := range allRepresentations(a) {
			for _, rb := range allRepresentations(b) {
				got, err := CentralAngle(ra, rb)
				require.NoError(t, err)
				assert.InDelta(t, want.Radians(), got.Radians(), 1e-9)

				back, err := CentralAngle(rb, ra)
				require.NoError(t, err)
				assert.InDelta(t, got.Radians(), back.Radians(), 1e-12)
			}
		}
	}
}

func TestEqual_MixedRepresentations(t *testing.T) {
	p := cartesian(0.3, -4, 12)
	for _, a := range allRepresentations(p) {
		for _, b := range allRepresentations(p) {
			assert.True(t, Equal(a, b), "%v vs %v", a, b)
		}
	}

	q := cartesian(0.3, -4, 12.001)
	for _, a := range allRepresentations(p) {
		for _, b := range allRepresentations(q) {
			assert.False(t, Equal(a, b), "%v vs %v", a, b)
			assert.False(t, Equal(b, a), "%v vs %v", b, a)
		}
	}
}

func TestEqualWithin(t *testing.T) {
	loose := Tolerance{Zero: EpsilonZero, Significant: 0.01}
	assert.True(t, EqualWithin(cartesian(1, 1, 1), cartesian(1.005, 1, 1), loose))
	assert.False(t, EqualWithin(cartesian(1, 1, 1), cartesian(1.005, 1, 1), DefaultTolerance))

	c := cartesian(1, 2, 3)
	assert.True(t, EqualWithin(&c, c, DefaultTolerance))
}

func TestNilOperands(t *testing.T) {
	var (
		nilCartesian   *Cartesian
		nilSpherical   *Spherical
		nilCylindrical *Cylindrical
	)
	for _, n := range []Coordinate{nil, nilCartesian, nilSpherical, nilCylindrical} {
		for _, c := range allRepresentations(UnitX) {
			assert.False(t, Equal(c, n))
			assert.False(t, Equal(n, c))
			assert.False(t, c.QuasiEquals(n))

			_, err := Distance(c, n)
			assert.ErrorIs(t, err, ErrInvalidInput)
			_, err = Distance(n, c)
			assert.ErrorIs(t, err, ErrInvalidInput)
			_, err = CentralAngle(c, n)
			assert.ErrorIs(t, err, ErrInvalidInput)
			_, err = CentralAngle(n, c)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	}
}

func TestPointerReceivers(t *testing.T) {
	s := spherical(2, math.Pi/2, 0)
	d, err := Distance(&s, UnitX)
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-15)
}

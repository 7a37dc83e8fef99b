package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTolerance_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"both zero", 0, 0, true},
		{"both below zero threshold", 1e-15, -1e-15, true},
		{"within significant", 1, 1 + 1e-11, true},
		{"outside significant", 1, 1 + 1e-9, false},
		{"large values", 1e6, 1e6 + 1e-3, false},
		{"nan", math.NaN(), math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuasiEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, QuasiEqual(tt.b, tt.a), "symmetry")
		})
	}
}

func TestTolerance_NotTransitive(t *testing.T) {
	a, b, c := 0.0, 0.6e-10, 1.2e-10
	assert.True(t, QuasiEqual(a, b))
	assert.True(t, QuasiEqual(b, c))
	assert.False(t, QuasiEqual(a, c))
}

func TestTolerance_IsZero(t *testing.T) {
	assert.True(t, DefaultTolerance.IsZero(0))
	assert.True(t, DefaultTolerance.IsZero(-1e-15))
	assert.False(t, DefaultTolerance.IsZero(1e-13))
}

func TestTolerance_Validate(t *testing.T) {
	require.NoError(t, DefaultTolerance.Validate())
	require.NoError(t, Tolerance{}.Validate())

	bad := []Tolerance{
		{Zero: -1, Significant: 1},
		{Zero: 0, Significant: math.NaN()},
		{Zero: math.Inf(1), Significant: math.Inf(1)},
		{Zero: 1, Significant: 0.1},
	}
	for _, tol := range bad {
		assert.ErrorIs(t, tol.Validate(), ErrInvalidInput, "%+v", tol)
	}
}

func TestNormalizeAzimuth(t *testing.T) {
	assert.InDelta(t, 3*math.Pi/2, normalizeAzimuth(-math.Pi/2), 1e-15)
	assert.Equal(t, 0.0, normalizeAzimuth(2*math.Pi))
	assert.Equal(t, 0.0, normalizeAzimuth(-1e-20))
	assert.InDelta(t, math.Pi, normalizeAzimuth(5*math.Pi), 1e-14)
	assert.False(t, math.Signbit(normalizeAzimuth(math.Copysign(0, -1))))
}

func TestNormalizeInclination(t *testing.T) {
	tests := []struct {
		name               string
		theta, phi         float64
		wantTheta, wantPhi float64
	}{
		{"in range", 1, 2, 1, 2},
		{"nadir kept", math.Pi, 0, math.Pi, 0},
		{"past nadir", 3 * math.Pi / 2, 0, math.Pi / 2, math.Pi},
		{"negative", -math.Pi / 2, 0, math.Pi / 2, math.Pi},
		{"full turn", 2*math.Pi + 0.5, 1, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta, phi := normalizeInclination(tt.theta, tt.phi)
			assert.InDelta(t, tt.wantTheta, theta, 1e-14)
			assert.InDelta(t, tt.wantPhi, phi, 1e-14)
		})
	}
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 0, angleDiff(0, 2*math.Pi-1e-12), 1e-11)
	assert.InDelta(t, -0.5, angleDiff(0.25, 0.75), 1e-15)
	assert.InDelta(t, 0.2, angleDiff(0.1, 2*math.Pi-0.1), 1e-14)
}

package geometry

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"go.uber.org/zap"

	"github.com/kailas-cloud/coordex/internal/logger"
	"github.com/kailas-cloud/coordex/internal/metrics"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// Operation names used for metrics and logs.
const (
	OpConvert  = "convert"
	OpDistance = "distance"
	OpAngle    = "angle"
	OpEqual    = "equal"
)

// Service runs stateless geometry operations with a configured tolerance.
type Service struct {
	tol geo.Tolerance
}

// New creates a geometry service. The tolerance must be valid.
func New(tol geo.Tolerance) (*Service, error) {
	if err := tol.Validate(); err != nil {
		return nil, fmt.Errorf("tolerance: %w", err)
	}
	return &Service{tol: tol}, nil
}

// Tolerance returns the thresholds used by Equal.
func (s *Service) Tolerance() geo.Tolerance { return s.tol }

// Convert re-expresses c in the target system.
func (s *Service) Convert(ctx context.Context, c geo.Coordinate, to geo.System) (geo.Coordinate, error) {
	out, err := geo.Convert(c, to)
	s.observe(ctx, OpConvert, err)
	if err != nil {
		return nil, fmt.Errorf("convert to %s: %w", to, err)
	}
	return out, nil
}

// Distance is the Euclidean distance between a and b.
func (s *Service) Distance(ctx context.Context, a, b geo.Coordinate) (float64, error) {
	d, err := geo.Distance(a, b)
	s.observe(ctx, OpDistance, err)
	if err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return d, nil
}

// Angle is the central angle between a and b.
func (s *Service) Angle(ctx context.Context, a, b geo.Coordinate) (s1.Angle, error) {
	angle, err := geo.CentralAngle(a, b)
	s.observe(ctx, OpAngle, err)
	if err != nil {
		return 0, fmt.Errorf("central angle: %w", err)
	}
	return angle, nil
}

// Equal reports quasi-equality under the configured tolerance.
func (s *Service) Equal(ctx context.Context, a, b geo.Coordinate) bool {
	eq := geo.EqualWithin(a, b, s.tol)
	s.observe(ctx, OpEqual, nil)
	return eq
}

// HealthCheck runs a fixed round trip through every representation and
// fails if the numeric core disagrees with itself.
func (s *Service) HealthCheck(_ context.Context) error {
	p, err := geo.NewCylindrical(1, math.Pi/4, 1)
	if err != nil {
		return fmt.Errorf("geometry self-check: %w", err)
	}
	back := p.AsSpherical().AsCartesian().AsCylindrical()
	if !geo.EqualWithin(p, back, s.tol) {
		return errors.New("geometry self-check: round trip drifted")
	}
	d, err := geo.Distance(geo.UnitX, geo.UnitZ)
	if err != nil {
		return fmt.Errorf("geometry self-check: %w", err)
	}
	if !s.tol.Equal(d, math.Sqrt2) {
		return fmt.Errorf("geometry self-check: distance %v, want √2", d)
	}
	return nil
}

func (s *Service) observe(ctx context.Context, op string, err error) {
	metrics.ObserveGeometry(op, err)
	if err != nil {
		logger.FromContext(ctx).Warn("geometry operation rejected",
			zap.String("operation", op),
			zap.String("status", metrics.GeometryStatus(err)),
			zap.Error(err),
		)
	}
}

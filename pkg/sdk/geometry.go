package coordex

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/geo/s1"

	"github.com/kailas-cloud/coordex/pkg/geo"
)

// GeometryService exposes stateless coordinate operations with the
// client's configured tolerance.
type GeometryService struct {
	svc geometryUseCase
	obs *observer
}

// Convert re-expresses c in the target system.
func (s *GeometryService) Convert(ctx context.Context, c geo.Coordinate, to geo.System) (_ geo.Coordinate, err error) {
	start := time.Now()
	defer func() { s.obs.observe("geometry.convert", start, err) }()

	out, err := s.svc.Convert(ctx, c, to)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	return out, nil
}

// Distance returns the Euclidean distance between a and b.
func (s *GeometryService) Distance(ctx context.Context, a, b geo.Coordinate) (_ float64, err error) {
	start := time.Now()
	defer func() { s.obs.observe("geometry.distance", start, err) }()

	d, err := s.svc.Distance(ctx, a, b)
	if err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return d, nil
}

// Angle returns the central angle between a and b.
// Fails with ErrInvalidResult when either point is at the origin.
func (s *GeometryService) Angle(ctx context.Context, a, b geo.Coordinate) (_ s1.Angle, err error) {
	start := time.Now()
	defer func() { s.obs.observe("geometry.angle", start, err) }()

	ang, err := s.svc.Angle(ctx, a, b)
	if err != nil {
		return 0, fmt.Errorf("angle: %w", err)
	}
	return ang, nil
}

// Equal reports whether a and b denote the same point within tolerance.
func (s *GeometryService) Equal(ctx context.Context, a, b geo.Coordinate) bool {
	start := time.Now()
	eq := s.svc.Equal(ctx, a, b)
	s.obs.observe("geometry.equal", start, nil)
	return eq
}

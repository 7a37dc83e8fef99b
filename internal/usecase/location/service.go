package location

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/golang/geo/s1"
	"go.uber.org/zap"

	"github.com/kailas-cloud/coordex/internal/domain"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	"github.com/kailas-cloud/coordex/internal/logger"
	"github.com/kailas-cloud/coordex/internal/metrics"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// NearbyQuery selects the closest stored locations to Origin.
type NearbyQuery struct {
	Origin      geo.Coordinate
	Category    string  // only this category and its subtypes; empty = any
	Limit       int     // 0 = service default
	MaxDistance float64 // 0 = unbounded
	ExcludeID   string
}

// Neighbor is a location with its distance to the query origin.
type Neighbor struct {
	Location domloc.Location
	Distance float64
	// Angle is set only when the central angle is defined (neither point at the origin).
	Angle        s1.Angle
	AngleDefined bool
}

// Service handles location CRUD and proximity queries.
type Service struct {
	repo            Repository
	cats            CategoryResolver
	defaultPageSize int
	maxPageSize     int
	defaultNearby   int
	maxNearby       int
}

// New creates a location service.
func New(repo Repository, cats CategoryResolver) *Service {
	return &Service{
		repo:            repo,
		cats:            cats,
		defaultPageSize: 20,
		maxPageSize:     100,
		defaultNearby:   10,
		maxNearby:       100,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// WithNearbyLimits configures the default and maximum neighbor count.
func (s *Service) WithNearbyLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultNearby = defaultLimit
	}
	if maxLimit > 0 {
		s.maxNearby = maxLimit
	}
	return s
}

// Upsert creates or replaces a location. The original creation time
// survives a replace. Returns the stored location and whether it was new.
func (s *Service) Upsert(ctx context.Context, loc domloc.Location) (domloc.Location, bool, error) {
	if err := s.checkCategory(loc.Category()); err != nil {
		return domloc.Location{}, false, err
	}

	existing, err := s.repo.Get(ctx, loc.ID())
	switch {
	case err == nil:
		loc = loc.WithCreatedAt(existing.CreatedAt())
	case errors.Is(err, domain.ErrNotFound):
	default:
		return domloc.Location{}, false, fmt.Errorf("get location: %w", err)
	}

	created, err := s.repo.Upsert(ctx, loc)
	if err != nil {
		return domloc.Location{}, false, fmt.Errorf("upsert location: %w", err)
	}
	logger.FromContext(ctx).Debug("location stored",
		zap.Bool("created", created),
		zap.String("system", string(geo.SystemOf(loc.Coordinate()))),
	)
	return loc, created, nil
}

// Get retrieves a location by id.
func (s *Service) Get(ctx context.Context, id string) (domloc.Location, error) {
	loc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domloc.Location{}, fmt.Errorf("get location: %w", err)
	}
	return loc, nil
}

// Delete removes a location by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// List returns one page of locations ordered by id. The cursor is an opaque
// offset; an empty next cursor means the last page.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]domloc.Location, string, error) {
	limit = s.clampPage(limit)

	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return nil, "", fmt.Errorf("invalid cursor %q: %w", cursor, domain.ErrInvalidQuery)
		}
		offset = parsed
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list locations: %w", err)
	}
	if offset >= len(all) {
		return []domloc.Location{}, "", nil
	}

	end := min(offset+limit, len(all))
	var next string
	if end < len(all) {
		next = strconv.Itoa(end)
	}
	return all[offset:end], next, nil
}

// Nearby returns up to q.Limit stored locations ordered by Euclidean
// distance to q.Origin, ties broken by id.
func (s *Service) Nearby(ctx context.Context, q NearbyQuery) ([]Neighbor, error) {
	if err := s.normalizeNearby(&q); err != nil {
		return nil, err
	}

	var match func(domloc.Location) bool
	if q.Category != "" {
		want, err := s.cats.Lookup(q.Category)
		if err != nil {
			return nil, fmt.Errorf("nearby filter: %w", err)
		}
		match = func(l domloc.Location) bool {
			c, err := s.cats.Lookup(l.Category())
			return err == nil && c.IsSubtypeOf(want)
		}
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	metrics.NearbyCandidates.Observe(float64(len(all)))

	log := logger.FromContext(ctx)
	out := make([]Neighbor, 0, min(q.Limit, len(all)))
	for _, l := range all {
		if l.ID() == q.ExcludeID || (match != nil && !match(l)) {
			continue
		}
		d, err := geo.Distance(q.Origin, l.Coordinate())
		if err != nil {
			log.Warn("skipping location with undefined distance",
				zap.String("id", l.ID()), zap.Error(err))
			continue
		}
		if q.MaxDistance > 0 && d > q.MaxDistance {
			continue
		}
		n := Neighbor{Location: l, Distance: d}
		if a, err := geo.CentralAngle(q.Origin, l.Coordinate()); err == nil {
			n.Angle, n.AngleDefined = a, true
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Location.ID() < out[j].Location.ID()
	})
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// NearbyLocation runs Nearby around a stored location, excluding it.
func (s *Service) NearbyLocation(ctx context.Context, id string, q NearbyQuery) ([]Neighbor, error) {
	origin, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	q.Origin = origin.Coordinate()
	q.ExcludeID = id
	return s.Nearby(ctx, q)
}

func (s *Service) normalizeNearby(q *NearbyQuery) error {
	if q.Origin == nil {
		return fmt.Errorf("origin is required: %w", domain.ErrInvalidQuery)
	}
	if q.Limit < 0 || q.Limit > s.maxNearby {
		return fmt.Errorf("limit must be between 1 and %d: %w", s.maxNearby, domain.ErrInvalidQuery)
	}
	if q.Limit == 0 {
		q.Limit = s.defaultNearby
	}
	if math.IsNaN(q.MaxDistance) || math.IsInf(q.MaxDistance, 0) || q.MaxDistance < 0 {
		return fmt.Errorf("max distance must be a finite non-negative number: %w", domain.ErrInvalidQuery)
	}
	return nil
}

func (s *Service) checkCategory(name string) error {
	if name == "" {
		return nil
	}
	if _, err := s.cats.Lookup(name); err != nil {
		return fmt.Errorf("location category: %w", err)
	}
	return nil
}

func (s *Service) clampPage(limit int) int {
	if limit <= 0 {
		return s.defaultPageSize
	}
	return min(limit, s.maxPageSize)
}

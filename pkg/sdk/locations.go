package coordex

import (
	"context"
	"fmt"
	"time"

	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// LocationService stores locations and answers proximity queries.
type LocationService struct {
	svc   locationUseCase
	batch batchUseCase
	obs   *observer
}

// Upsert creates or replaces a location. Returns true when it was created.
func (s *LocationService) Upsert(ctx context.Context, loc Location) (_ Location, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("location.upsert", start, err) }()

	d, err := domloc.New(loc.ID, loc.Name, loc.Category, loc.Coordinate)
	if err != nil {
		return Location{}, false, err
	}
	saved, created, err := s.svc.Upsert(ctx, d)
	if err != nil {
		return Location{}, false, fmt.Errorf("upsert location: %w", err)
	}
	return locationFromDomain(saved), created, nil
}

// Get returns a location by id.
func (s *LocationService) Get(ctx context.Context, id string) (_ Location, err error) {
	start := time.Now()
	defer func() { s.obs.observe("location.get", start, err) }()

	d, err := s.svc.Get(ctx, id)
	if err != nil {
		return Location{}, fmt.Errorf("get location: %w", err)
	}
	return locationFromDomain(d), nil
}

// Delete removes a location by id.
func (s *LocationService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("location.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// List returns one page of locations ordered by id.
// Pass the previous NextCursor to continue; empty starts from the beginning.
func (s *LocationService) List(ctx context.Context, cursor string, limit int) (_ ListResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("location.list", start, err) }()

	locs, next, err := s.svc.List(ctx, cursor, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("list locations: %w", err)
	}
	out := make([]Location, len(locs))
	for i := range locs {
		out[i] = locationFromDomain(locs[i])
	}
	return ListResult{Locations: out, NextCursor: next}, nil
}

// Nearby returns the stored locations closest to origin, nearest first.
func (s *LocationService) Nearby(
	ctx context.Context, origin geo.Coordinate, opts ...NearbyOption,
) (_ []Neighbor, err error) {
	start := time.Now()
	defer func() { s.obs.observe("location.nearby", start, err) }()

	q := nearbyQuery(opts)
	q.Origin = origin
	ns, err := s.svc.Nearby(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("nearby: %w", err)
	}
	return neighborsFromDomain(ns), nil
}

// NearbyLocation is Nearby anchored at a stored location, which is itself excluded.
func (s *LocationService) NearbyLocation(
	ctx context.Context, id string, opts ...NearbyOption,
) (_ []Neighbor, err error) {
	start := time.Now()
	defer func() { s.obs.observe("location.nearby_location", start, err) }()

	ns, err := s.svc.NearbyLocation(ctx, id, nearbyQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("nearby location: %w", err)
	}
	return neighborsFromDomain(ns), nil
}

// UpsertBatch stores many locations. Items fail independently.
func (s *LocationService) UpsertBatch(ctx context.Context, locs []Location) []BatchResult {
	start := time.Now()

	results := make([]BatchResult, len(locs))
	valid := make([]domloc.Location, 0, len(locs))
	idx := make([]int, 0, len(locs))
	for i := range locs {
		d, err := domloc.New(locs[i].ID, locs[i].Name, locs[i].Category, locs[i].Coordinate)
		if err != nil {
			results[i] = BatchResult{ID: locs[i].ID, Err: err}
			continue
		}
		valid = append(valid, d)
		idx = append(idx, i)
	}

	if len(valid) > 0 {
		for j, r := range s.batch.Upsert(ctx, valid) {
			results[idx[j]] = batchResultFromDomain(r)
		}
	}

	s.obs.observe("location.upsert_batch", start, firstBatchError(results))
	return results
}

// DeleteBatch removes many locations by id. Items fail independently.
func (s *LocationService) DeleteBatch(ctx context.Context, ids []string) []BatchResult {
	start := time.Now()

	raw := s.batch.Delete(ctx, ids)
	results := make([]BatchResult, len(raw))
	for i, r := range raw {
		results[i] = batchResultFromDomain(r)
	}

	s.obs.observe("location.delete_batch", start, firstBatchError(results))
	return results
}

func nearbyQuery(opts []NearbyOption) locationuc.NearbyQuery {
	var o nearbyOptions
	for _, fn := range opts {
		fn(&o)
	}
	return locationuc.NearbyQuery{
		Category:    o.category,
		Limit:       o.limit,
		MaxDistance: o.maxDistance,
	}
}

func locationFromDomain(d domloc.Location) Location {
	return Location{
		ID:         d.ID(),
		Name:       d.Name(),
		Category:   d.Category(),
		Coordinate: d.Coordinate(),
		CreatedAt:  time.UnixMilli(d.CreatedAt()),
		UpdatedAt:  time.UnixMilli(d.UpdatedAt()),
	}
}

func neighborsFromDomain(ns []locationuc.Neighbor) []Neighbor {
	out := make([]Neighbor, len(ns))
	for i, n := range ns {
		out[i] = Neighbor{
			Location:     locationFromDomain(n.Location),
			Distance:     n.Distance,
			Angle:        n.Angle,
			AngleDefined: n.AngleDefined,
		}
	}
	return out
}

func batchResultFromDomain(r dombatch.Result) BatchResult {
	return BatchResult{ID: r.ID(), OK: r.Status() == dombatch.StatusOK, Err: r.Err()}
}

func firstBatchError(results []BatchResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

package location

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/coordex/internal/db"
	"github.com/kailas-cloud/coordex/internal/domain"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
)

// store is the consumer interface for locations (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/location.Repository on top of Redis hashes.
type Repo struct {
	store  store
	prefix string
}

// New creates a location repository. keyPrefix namespaces every key.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// Upsert writes a location. Returns true if it did not exist before.
func (r *Repo) Upsert(ctx context.Context, loc domloc.Location) (bool, error) {
	key := r.key(loc.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}
	if err := r.store.HSet(ctx, key, locationToHash(loc)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	return !exists, nil
}

// UpsertMany writes all locations in one pipeline.
func (r *Repo) UpsertMany(ctx context.Context, locs []domloc.Location) error {
	items := make([]db.HashSetItem, len(locs))
	for i, loc := range locs {
		items[i] = db.HashSetItem{Key: r.key(loc.ID()), Fields: locationToHash(loc)}
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi (%d locations): %w", len(locs), err)
	}
	return nil
}

// Get returns a location by id.
func (r *Repo) Get(ctx context.Context, id string) (domloc.Location, error) {
	key := r.key(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domloc.Location{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domloc.Location{}, domain.ErrNotFound
	}
	return locationFromHash(m)
}

// GetMany returns the stored locations among ids, keyed by id. Missing ids
// are absent from the map.
func (r *Repo) GetMany(ctx context.Context, ids []string) (map[string]domloc.Location, error) {
	out := make(map[string]domloc.Location, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi (%d locations): %w", len(ids), err)
	}
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		loc, err := locationFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse location %s: %w", keys[i], err)
		}
		out[loc.ID()] = loc
	}
	return out, nil
}

// Delete removes a location.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)
	deleted, err := r.store.Del(ctx, key)
	if err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all locations sorted by id.
func (r *Repo) List(ctx context.Context) ([]domloc.Location, error) {
	keys, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan locations: %w", err)
	}
	if len(keys) == 0 {
		return []domloc.Location{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi locations: %w", err)
	}

	locs := make([]domloc.Location, 0, len(results))
	for i, m := range results {
		// deleted between SCAN and HGETALL
		if len(m) == 0 {
			continue
		}
		loc, err := locationFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse location %s: %w", keys[i], err)
		}
		locs = append(locs, loc)
	}

	sort.Slice(locs, func(i, j int) bool { return locs[i].ID() < locs[j].ID() })
	return locs, nil
}

// Key pattern: {prefix}location:{id}
func (r *Repo) key(id string) string {
	return fmt.Sprintf("%slocation:%s", r.prefix, id)
}

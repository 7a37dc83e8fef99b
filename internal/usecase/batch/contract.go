package batch

import (
	"context"

	"github.com/kailas-cloud/coordex/internal/domain/category"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
)

// BulkUpserter writes many locations in one round trip.
type BulkUpserter interface {
	UpsertMany(ctx context.Context, locs []domloc.Location) error
}

// BulkReader reads existing locations so a replace keeps its creation time.
type BulkReader interface {
	GetMany(ctx context.Context, ids []string) (map[string]domloc.Location, error)
}

// LocationDeleter deletes a location from storage.
type LocationDeleter interface {
	Delete(ctx context.Context, id string) error
}

// CategoryResolver looks up categories by name.
type CategoryResolver interface {
	Lookup(name string) (*category.Category, error)
}

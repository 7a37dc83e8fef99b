package location

import (
	"context"

	"github.com/kailas-cloud/coordex/internal/domain/category"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
)

// Repository defines the storage contract for locations.
type Repository interface {
	Upsert(ctx context.Context, loc domloc.Location) (created bool, err error)
	Get(ctx context.Context, id string) (domloc.Location, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domloc.Location, error)
}

// CategoryResolver looks up categories by name.
type CategoryResolver interface {
	Lookup(name string) (*category.Category, error)
}

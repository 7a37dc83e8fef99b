package coordex

import (
	"time"

	"github.com/golang/geo/s1"

	"github.com/kailas-cloud/coordex/pkg/geo"
)

// Location is a named, categorized point.
type Location struct {
	ID         string
	Name       string
	Category   string // empty = uncategorized
	Coordinate geo.Coordinate
	CreatedAt  time.Time // set by the store
	UpdatedAt  time.Time // set by the store
}

// Neighbor is a nearby location with its distance to the query origin.
type Neighbor struct {
	Location Location
	Distance float64
	// Angle is meaningful only when AngleDefined is true (neither point at the origin).
	Angle        s1.Angle
	AngleDefined bool
}

// BatchResult is the outcome of one item in a batch operation.
type BatchResult struct {
	ID  string
	OK  bool
	Err error
}

// ListResult is a paginated list of locations.
type ListResult struct {
	Locations  []Location
	NextCursor string
}

// NearbyOption narrows a proximity query.
type NearbyOption func(*nearbyOptions)

type nearbyOptions struct {
	category    string
	limit       int
	maxDistance float64
}

// InCategory keeps only locations of this category or one of its subtypes.
func InCategory(name string) NearbyOption {
	return func(o *nearbyOptions) { o.category = name }
}

// Limit caps the number of neighbors. Zero uses the service default.
func Limit(n int) NearbyOption {
	return func(o *nearbyOptions) { o.limit = n }
}

// Within drops neighbors farther than d (Euclidean, same units as the coordinates).
func Within(d float64) NearbyOption {
	return func(o *nearbyOptions) { o.maxDistance = d }
}

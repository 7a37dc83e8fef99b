package location

import (
	"fmt"
	"regexp"
	"time"

	"github.com/golang/geo/s1"

	"github.com/kailas-cloud/coordex/internal/domain"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	maxIDLen   = 64
	maxNameLen = 256
)

// Location is a named, categorized point (immutable value object). The
// coordinate is kept in whatever representation it was created with.
type Location struct {
	id         string
	name       string
	category   string
	coordinate geo.Coordinate
	createdAt  int64
	updatedAt  int64
}

// New validates and creates a Location stamped with the current time.
// ID: ^[a-zA-Z0-9_-]+$, 1-64 chars. Category may be empty.
func New(id, name, category string, coord geo.Coordinate) (Location, error) {
	if err := validateID(id); err != nil {
		return Location{}, err
	}
	if len(name) > maxNameLen {
		return Location{}, fmt.Errorf("%w: name too long (max %d)", domain.ErrInvalidLocation, maxNameLen)
	}
	if coord == nil {
		return Location{}, fmt.Errorf("%w: coordinate is required", domain.ErrInvalidLocation)
	}
	now := time.Now().UnixMilli()
	return Location{
		id:         id,
		name:       name,
		category:   category,
		coordinate: coord,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct creates a Location without validation (storage hydration).
func Reconstruct(id, name, category string, coord geo.Coordinate, createdAt, updatedAt int64) Location {
	return Location{
		id:         id,
		name:       name,
		category:   category,
		coordinate: coord,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidLocation)
	}
	if len(id) > maxIDLen {
		return fmt.Errorf("%w: id too long (max %d)", domain.ErrInvalidLocation, maxIDLen)
	}
	if !idRegex.MatchString(id) {
		return fmt.Errorf("%w: id must be alphanumeric with underscores and hyphens", domain.ErrInvalidLocation)
	}
	return nil
}

// ValidateID exposes the id rule for path parameters.
func ValidateID(id string) error { return validateID(id) }

func (l Location) ID() string                 { return l.id }
func (l Location) Name() string               { return l.name }
func (l Location) Category() string           { return l.category }
func (l Location) Coordinate() geo.Coordinate { return l.coordinate }

// CreatedAt returns the creation timestamp (unix millis).
func (l Location) CreatedAt() int64 { return l.createdAt }

// UpdatedAt returns the last modification timestamp (unix millis).
func (l Location) UpdatedAt() int64 { return l.updatedAt }

// DistanceTo is the Euclidean distance between the two coordinates.
func (l Location) DistanceTo(other Location) (float64, error) {
	return geo.Distance(l.coordinate, other.coordinate)
}

// AngleTo is the central angle between the two coordinates.
func (l Location) AngleTo(other Location) (s1.Angle, error) {
	return geo.CentralAngle(l.coordinate, other.coordinate)
}

// SamePlace reports whether both locations sit at quasi-equal coordinates.
func (l Location) SamePlace(other Location) bool {
	return geo.Equal(l.coordinate, other.coordinate)
}

// WithCoordinate returns a copy moved to c.
func (l Location) WithCoordinate(c geo.Coordinate) (Location, error) {
	if c == nil {
		return Location{}, fmt.Errorf("%w: coordinate is required", domain.ErrInvalidLocation)
	}
	l.coordinate = c
	l.updatedAt = time.Now().UnixMilli()
	return l, nil
}

// WithCreatedAt returns a copy carrying the original creation time, used
// when an upsert replaces an existing record.
func (l Location) WithCreatedAt(ts int64) Location {
	l.createdAt = ts
	return l
}

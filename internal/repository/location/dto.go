package location

import (
	"fmt"
	"strconv"

	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

const (
	fieldID        = "id"
	fieldName      = "name"
	fieldCategory  = "category"
	fieldSystem    = "system"
	fieldC1        = "c1"
	fieldC2        = "c2"
	fieldC3        = "c3"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// locationToHash flattens a Location for HSET. The coordinate keeps its
// own system; floats use the shortest exact decimal form.
func locationToHash(loc domloc.Location) map[string]string {
	sys, v := geo.Components(loc.Coordinate())
	return map[string]string{
		fieldID:        loc.ID(),
		fieldName:      loc.Name(),
		fieldCategory:  loc.Category(),
		fieldSystem:    string(sys),
		fieldC1:        formatFloat(v[0]),
		fieldC2:        formatFloat(v[1]),
		fieldC3:        formatFloat(v[2]),
		fieldCreatedAt: strconv.FormatInt(loc.CreatedAt(), 10),
		fieldUpdatedAt: strconv.FormatInt(loc.UpdatedAt(), 10),
	}
}

// locationFromHash hydrates a Location from an HGETALL result map. The
// scalars go back through geo.New so corrupted values are rejected.
func locationFromHash(m map[string]string) (domloc.Location, error) {
	var v [3]float64
	for i, f := range []string{fieldC1, fieldC2, fieldC3} {
		parsed, err := strconv.ParseFloat(m[f], 64)
		if err != nil {
			return domloc.Location{}, fmt.Errorf("invalid %s: %w", f, err)
		}
		v[i] = parsed
	}

	coord, err := geo.New(geo.System(m[fieldSystem]), v[0], v[1], v[2])
	if err != nil {
		return domloc.Location{}, fmt.Errorf("invalid coordinate: %w", err)
	}

	createdAt, err := strconv.ParseInt(m[fieldCreatedAt], 10, 64)
	if err != nil {
		return domloc.Location{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt := createdAt
	if s := m[fieldUpdatedAt]; s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			updatedAt = parsed
		}
	}

	return domloc.Reconstruct(m[fieldID], m[fieldName], m[fieldCategory], coord, createdAt, updatedAt), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

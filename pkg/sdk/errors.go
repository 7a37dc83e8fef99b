package coordex

import (
	"github.com/kailas-cloud/coordex/internal/domain"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// Sentinel errors re-exported from the domain and geometry layers.
// Use errors.Is() to check.
var (
	ErrNotFound        = domain.ErrNotFound
	ErrInvalidLocation = domain.ErrInvalidLocation
	ErrInvalidQuery    = domain.ErrInvalidQuery
	ErrUnknownCategory = domain.ErrUnknownCategory
	ErrInvalidInput    = geo.ErrInvalidInput
	ErrInvalidResult   = geo.ErrInvalidResult
)

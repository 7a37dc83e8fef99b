package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/coordex/pkg/geo"
)

// Geometry Prometheus metrics.
var (
	GeometryOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coordex",
			Name:      "geometry_operations_total",
			Help:      "Total number of geometry operations",
		},
		[]string{"operation", "status"}, // status: ok / invalid_input / invalid_result / error
	)

	NearbyCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "coordex",
			Name:      "nearby_candidates",
			Help:      "Number of stored locations scanned per nearby query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

var registerGeometryOnce sync.Once

// RegisterGeometryMetrics registers geometry metrics with the default
// registry. Safe to call more than once.
func RegisterGeometryMetrics() {
	registerGeometryOnce.Do(func() {
		prometheus.MustRegister(GeometryOperationsTotal)
		prometheus.MustRegister(NearbyCandidates)
	})
}

// GeometryStatus maps an operation error to a status label.
func GeometryStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, geo.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, geo.ErrInvalidResult):
		return "invalid_result"
	default:
		return "error"
	}
}

// ObserveGeometry counts one operation outcome.
func ObserveGeometry(op string, err error) {
	GeometryOperationsTotal.WithLabelValues(op, GeometryStatus(err)).Inc()
}

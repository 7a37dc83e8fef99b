package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/coordex/internal/domain"
	gen "github.com/kailas-cloud/coordex/internal/transport/generated"
	batchuc "github.com/kailas-cloud/coordex/internal/usecase/batch"
	geometryuc "github.com/kailas-cloud/coordex/internal/usecase/geometry"
	healthuc "github.com/kailas-cloud/coordex/internal/usecase/health"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
	"github.com/kailas-cloud/coordex/internal/version"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements generated.ServerInterface for the chi router.
type Server struct {
	gen.Unimplemented
	geometry      *geometryuc.Service
	locations     *locationuc.Service
	batch         *batchuc.Service
	health        *healthuc.Service
	earthRadius   float64
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	geometry *geometryuc.Service,
	locations *locationuc.Service,
	batch *batchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		geometry:    geometry,
		locations:   locations,
		batch:       batch,
		health:      health,
		earthRadius: geo.EarthRadiusMeters,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, gen.ErrorResponseCodeLocationNotFound),
		sentinelHandler(domain.ErrUnknownCategory, http.StatusBadRequest, gen.ErrorResponseCodeUnknownCategory),
		sentinelHandler(domain.ErrInvalidLocation, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(geo.ErrInvalidInput, http.StatusBadRequest, gen.ErrorResponseCodeInvalidCoordinate),
		sentinelHandler(geo.ErrInvalidResult, http.StatusUnprocessableEntity, gen.ErrorResponseCodeUndefinedResult),
	}
	return s
}

// WithEarthRadius sets the sphere radius used for lat/lon input.
func (s *Server) WithEarthRadius(meters float64) *Server {
	if meters > 0 {
		s.earthRadius = meters
	}
	return s
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	ver := version.Version
	writeJSON(w, httpStatus, gen.HealthResponse{
		Status:  gen.HealthResponseStatus(report.Status),
		Checks:  checks,
		Version: &ver,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// clientSentinels are caused by the request itself; their full message is safe to return.
var clientSentinels = []error{
	domain.ErrNotFound,
	domain.ErrInvalidLocation,
	domain.ErrInvalidQuery,
	domain.ErrUnknownCategory,
	geo.ErrInvalidInput,
	geo.ErrInvalidResult,
}

// safeDomainMessage returns an error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	for _, s := range clientSentinels {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}

// errorCode maps an error to its response code without writing anything.
func errorCode(err error) gen.ErrorResponseCode {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return gen.ErrorResponseCodeLocationNotFound
	case errors.Is(err, domain.ErrUnknownCategory):
		return gen.ErrorResponseCodeUnknownCategory
	case errors.Is(err, domain.ErrInvalidLocation), errors.Is(err, domain.ErrInvalidQuery):
		return gen.ErrorResponseCodeValidationFailed
	case errors.Is(err, geo.ErrInvalidInput):
		return gen.ErrorResponseCodeInvalidCoordinate
	case errors.Is(err, geo.ErrInvalidResult):
		return gen.ErrorResponseCodeUndefinedResult
	default:
		return gen.ErrorResponseCodeInternalError
	}
}

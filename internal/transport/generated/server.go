package generated

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Service health
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// Prometheus metrics
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
	// Central angle between two coordinates
	// (POST /v1/geometry/angle)
	ComputeAngle(w http.ResponseWriter, r *http.Request)
	// Convert a coordinate to another system
	// (POST /v1/geometry/convert)
	ConvertCoordinate(w http.ResponseWriter, r *http.Request)
	// Euclidean distance between two coordinates
	// (POST /v1/geometry/distance)
	ComputeDistance(w http.ResponseWriter, r *http.Request)
	// Quasi-equality of two coordinates
	// (POST /v1/geometry/equal)
	CompareCoordinates(w http.ResponseWriter, r *http.Request)
	// List locations
	// (GET /v1/locations)
	ListLocations(w http.ResponseWriter, r *http.Request, params ListLocationsParams)
	// Delete many locations
	// (POST /v1/locations/batch-delete)
	BatchDeleteLocations(w http.ResponseWriter, r *http.Request)
	// Create or replace many locations
	// (POST /v1/locations/batch-upsert)
	BatchUpsertLocations(w http.ResponseWriter, r *http.Request)
	// Nearest locations to a coordinate
	// (POST /v1/locations/nearby)
	NearbyLocations(w http.ResponseWriter, r *http.Request)
	// Delete a location
	// (DELETE /v1/locations/{id})
	DeleteLocation(w http.ResponseWriter, r *http.Request, id LocationId)
	// Get a location
	// (GET /v1/locations/{id})
	GetLocation(w http.ResponseWriter, r *http.Request, id LocationId)
	// Create or replace a location
	// (PUT /v1/locations/{id})
	UpsertLocation(w http.ResponseWriter, r *http.Request, id LocationId)
	// Nearest locations to a stored location
	// (GET /v1/locations/{id}/nearby)
	NearbyLocation(w http.ResponseWriter, r *http.Request, id LocationId, params NearbyLocationParams)
}

// Unimplemented server implementation that returns http.StatusNotImplemented for each endpoint.
type Unimplemented struct{}

// Service health
// (GET /health)
func (_ Unimplemented) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Prometheus metrics
// (GET /metrics)
func (_ Unimplemented) Metrics(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Central angle between two coordinates
// (POST /v1/geometry/angle)
func (_ Unimplemented) ComputeAngle(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Convert a coordinate to another system
// (POST /v1/geometry/convert)
func (_ Unimplemented) ConvertCoordinate(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Euclidean distance between two coordinates
// (POST /v1/geometry/distance)
func (_ Unimplemented) ComputeDistance(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Quasi-equality of two coordinates
// (POST /v1/geometry/equal)
func (_ Unimplemented) CompareCoordinates(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// List locations
// (GET /v1/locations)
func (_ Unimplemented) ListLocations(w http.ResponseWriter, r *http.Request, params ListLocationsParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Delete many locations
// (POST /v1/locations/batch-delete)
func (_ Unimplemented) BatchDeleteLocations(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Create or replace many locations
// (POST /v1/locations/batch-upsert)
func (_ Unimplemented) BatchUpsertLocations(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Nearest locations to a coordinate
// (POST /v1/locations/nearby)
func (_ Unimplemented) NearbyLocations(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Delete a location
// (DELETE /v1/locations/{id})
func (_ Unimplemented) DeleteLocation(w http.ResponseWriter, r *http.Request, id LocationId) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Get a location
// (GET /v1/locations/{id})
func (_ Unimplemented) GetLocation(w http.ResponseWriter, r *http.Request, id LocationId) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Create or replace a location
// (PUT /v1/locations/{id})
func (_ Unimplemented) UpsertLocation(w http.ResponseWriter, r *http.Request, id LocationId) {
	w.WriteHeader(http.StatusNotImplemented)
}

// Nearest locations to a stored location
// (GET /v1/locations/{id}/nearby)
func (_ Unimplemented) NearbyLocation(w http.ResponseWriter, r *http.Request, id LocationId, params NearbyLocationParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

// MiddlewareFunc wraps a handler.
type MiddlewareFunc func(http.Handler) http.Handler

// HealthCheck operation middleware
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.HealthCheck(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// Metrics operation middleware
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Metrics(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ComputeAngle operation middleware
func (siw *ServerInterfaceWrapper) ComputeAngle(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ComputeAngle(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ConvertCoordinate operation middleware
func (siw *ServerInterfaceWrapper) ConvertCoordinate(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ConvertCoordinate(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ComputeDistance operation middleware
func (siw *ServerInterfaceWrapper) ComputeDistance(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ComputeDistance(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CompareCoordinates operation middleware
func (siw *ServerInterfaceWrapper) CompareCoordinates(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CompareCoordinates(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListLocations operation middleware
func (siw *ServerInterfaceWrapper) ListLocations(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListLocationsParams

	// ------------- Optional query parameter "cursor" -------------

	err = runtime.BindQueryParameter("form", true, false, "cursor", r.URL.Query(), &params.Cursor)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "cursor", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListLocations(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// BatchDeleteLocations operation middleware
func (siw *ServerInterfaceWrapper) BatchDeleteLocations(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.BatchDeleteLocations(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// BatchUpsertLocations operation middleware
func (siw *ServerInterfaceWrapper) BatchUpsertLocations(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.BatchUpsertLocations(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// NearbyLocations operation middleware
func (siw *ServerInterfaceWrapper) NearbyLocations(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.NearbyLocations(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// DeleteLocation operation middleware
func (siw *ServerInterfaceWrapper) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	var err error
	// ------------- Path parameter "id" -------------
	var id LocationId

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteLocation(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetLocation operation middleware
func (siw *ServerInterfaceWrapper) GetLocation(w http.ResponseWriter, r *http.Request) {
	var err error
	// ------------- Path parameter "id" -------------
	var id LocationId

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetLocation(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// UpsertLocation operation middleware
func (siw *ServerInterfaceWrapper) UpsertLocation(w http.ResponseWriter, r *http.Request) {
	var err error
	// ------------- Path parameter "id" -------------
	var id LocationId

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpsertLocation(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// NearbyLocation operation middleware
func (siw *ServerInterfaceWrapper) NearbyLocation(w http.ResponseWriter, r *http.Request) {
	var err error
	// ------------- Path parameter "id" -------------
	var id LocationId

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params NearbyLocationParams

	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", r.URL.Query(), &params.Category)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "category", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "max_distance" -------------

	err = runtime.BindQueryParameter("form", true, false, "max_distance", r.URL.Query(), &params.MaxDistance)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "max_distance", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.NearbyLocation(w, r, id, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// InvalidParamFormatError is reported when a parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.HealthCheck)
	})

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/metrics", wrapper.Metrics)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/geometry/angle", wrapper.ComputeAngle)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/geometry/convert", wrapper.ConvertCoordinate)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/geometry/distance", wrapper.ComputeDistance)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/geometry/equal", wrapper.CompareCoordinates)
	})

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/v1/locations", wrapper.ListLocations)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/locations/batch-delete", wrapper.BatchDeleteLocations)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/locations/batch-upsert", wrapper.BatchUpsertLocations)
	})

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/locations/nearby", wrapper.NearbyLocations)
	})

	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/v1/locations/{id}", wrapper.DeleteLocation)
	})

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/v1/locations/{id}", wrapper.GetLocation)
	})

	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/v1/locations/{id}", wrapper.UpsertLocation)
	})

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/v1/locations/{id}/nearby", wrapper.NearbyLocation)
	})

	return r
}

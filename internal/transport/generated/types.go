// Package generated holds the HTTP API types and chi routing wrappers in the
// oapi-codegen chi-server layout, kept in sync with api/openapi.yaml.
package generated

import "encoding/json"

// Defines values for CoordinateSystem.
const (
	CoordinateSystemCartesian   CoordinateSystem = "cartesian"
	CoordinateSystemCylindrical CoordinateSystem = "cylindrical"
	CoordinateSystemSpherical   CoordinateSystem = "spherical"
)

// Defines values for ErrorResponseCode.
const (
	ErrorResponseCodeBadRequest        ErrorResponseCode = "bad_request"
	ErrorResponseCodeInternalError     ErrorResponseCode = "internal_error"
	ErrorResponseCodeInvalidCoordinate ErrorResponseCode = "invalid_coordinate"
	ErrorResponseCodeLocationNotFound  ErrorResponseCode = "location_not_found"
	ErrorResponseCodeUndefinedResult   ErrorResponseCode = "undefined_result"
	ErrorResponseCodeUnauthorized      ErrorResponseCode = "unauthorized"
	ErrorResponseCodeUnknownCategory   ErrorResponseCode = "unknown_category"
	ErrorResponseCodeValidationFailed  ErrorResponseCode = "validation_failed"
)

// Defines values for BatchResultItemStatus.
const (
	BatchResultItemStatusError BatchResultItemStatus = "error"
	BatchResultItemStatusOk    BatchResultItemStatus = "ok"
)

// Defines values for HealthResponseStatus.
const (
	HealthResponseStatusDegraded HealthResponseStatus = "degraded"
	HealthResponseStatusError    HealthResponseStatus = "error"
	HealthResponseStatusOk       HealthResponseStatus = "ok"
)

// AngleResponse defines model for AngleResponse.
type AngleResponse struct {
	Degrees float64 `json:"degrees"`
	Radians float64 `json:"radians"`
}

// BatchDeleteRequest defines model for BatchDeleteRequest.
type BatchDeleteRequest struct {
	Ids []LocationId `json:"ids"`
}

// BatchResponse defines model for BatchResponse.
type BatchResponse struct {
	Failed    int               `json:"failed"`
	Items     []BatchResultItem `json:"items"`
	Succeeded int               `json:"succeeded"`
}

// BatchResultItem defines model for BatchResultItem.
type BatchResultItem struct {
	Error  *ErrorResponse        `json:"error,omitempty"`
	Id     LocationId            `json:"id"`
	Status BatchResultItemStatus `json:"status"`
}

// BatchResultItemStatus defines model for BatchResultItem.Status.
type BatchResultItemStatus string

// BatchUpsertItem defines model for BatchUpsertItem.
type BatchUpsertItem struct {
	Category   *string     `json:"category,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Id         LocationId  `json:"id"`
	LatLon     *LatLon     `json:"lat_lon,omitempty"`
	Name       *string     `json:"name,omitempty"`
}

// BatchUpsertRequest defines model for BatchUpsertRequest.
type BatchUpsertRequest struct {
	Locations []BatchUpsertItem `json:"locations"`
}

// ConvertRequest defines model for ConvertRequest.
type ConvertRequest struct {
	Coordinate Coordinate       `json:"coordinate"`
	To         CoordinateSystem `json:"to"`
}

// Coordinate is a point in one of the three supported systems.
type Coordinate struct {
	System CoordinateSystem `json:"system"`
	Values []float64        `json:"values"`
}

// CoordinateResponse defines model for CoordinateResponse.
type CoordinateResponse struct {
	// Geometry is the Cartesian point as a GeoJSON Point with XYZ layout.
	Geometry json.RawMessage  `json:"geometry,omitempty"`
	System   CoordinateSystem `json:"system"`
	Values   []float64        `json:"values"`
}

// CoordinateSystem defines model for CoordinateSystem.
type CoordinateSystem string

// CoordinatePairRequest defines model for CoordinatePairRequest.
type CoordinatePairRequest struct {
	A Coordinate `json:"a"`
	B Coordinate `json:"b"`
}

// DistanceResponse defines model for DistanceResponse.
type DistanceResponse struct {
	Distance float64 `json:"distance"`
}

// EqualResponse defines model for EqualResponse.
type EqualResponse struct {
	Equal bool `json:"equal"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// ErrorResponseCode defines model for ErrorResponse.Code.
type ErrorResponseCode string

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Checks  map[string]string    `json:"checks"`
	Status  HealthResponseStatus `json:"status"`
	Version *string              `json:"version,omitempty"`
}

// HealthResponseStatus defines model for HealthResponse.Status.
type HealthResponseStatus string

// LatLon is a geographic position in degrees; Radius defaults to the
// configured Earth radius.
type LatLon struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Radius    *float64 `json:"radius,omitempty"`
}

// LocationCursorListResponse defines model for LocationCursorListResponse.
type LocationCursorListResponse struct {
	HasMore    bool               `json:"has_more"`
	Items      []LocationResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

// LocationId defines model for LocationId.
type LocationId = string

// LocationResponse defines model for LocationResponse.
type LocationResponse struct {
	Category   *string            `json:"category,omitempty"`
	Coordinate CoordinateResponse `json:"coordinate"`
	CreatedAt  int64              `json:"created_at"`
	Id         LocationId         `json:"id"`
	Name       *string            `json:"name,omitempty"`
	UpdatedAt  int64              `json:"updated_at"`
}

// NearbyRequest defines model for NearbyRequest.
type NearbyRequest struct {
	Category    *string    `json:"category,omitempty"`
	Limit       *int       `json:"limit,omitempty"`
	MaxDistance *float64   `json:"max_distance,omitempty"`
	Origin      Coordinate `json:"origin"`
}

// NeighborItem defines model for NeighborItem.
type NeighborItem struct {
	// AngleRadians is omitted when the central angle is undefined.
	AngleRadians *float64         `json:"angle_radians,omitempty"`
	Distance     float64          `json:"distance"`
	Location     LocationResponse `json:"location"`
}

// NeighborListResponse defines model for NeighborListResponse.
type NeighborListResponse struct {
	Items []NeighborItem `json:"items"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

// UpsertLocationRequest defines model for UpsertLocationRequest. Exactly one
// of Coordinate and LatLon must be set.
type UpsertLocationRequest struct {
	Category   *string     `json:"category,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	LatLon     *LatLon     `json:"lat_lon,omitempty"`
	Name       *string     `json:"name,omitempty"`
}

// ListLocationsParams defines parameters for ListLocations.
type ListLocationsParams struct {
	Cursor *string `form:"cursor,omitempty" json:"cursor,omitempty"`
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// NearbyLocationParams defines parameters for NearbyLocation.
type NearbyLocationParams struct {
	Category    *string  `form:"category,omitempty" json:"category,omitempty"`
	Limit       *int     `form:"limit,omitempty" json:"limit,omitempty"`
	MaxDistance *float64 `form:"max_distance,omitempty" json:"max_distance,omitempty"`
}

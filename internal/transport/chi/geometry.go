package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/coordex/internal/transport/generated"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// ConvertCoordinate handles POST /v1/geometry/convert.
func (s *Server) ConvertCoordinate(w http.ResponseWriter, r *http.Request) {
	var req gen.ConvertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := coordinateFromGen(req.Coordinate)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out, err := s.geometry.Convert(r.Context(), c, geo.System(req.To))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, coordinateToGen(out))
}

// ComputeDistance handles POST /v1/geometry/distance.
func (s *Server) ComputeDistance(w http.ResponseWriter, r *http.Request) {
	a, b, ok := s.decodePair(w, r)
	if !ok {
		return
	}

	d, err := s.geometry.Distance(r.Context(), a, b)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.DistanceResponse{Distance: d})
}

// ComputeAngle handles POST /v1/geometry/angle.
func (s *Server) ComputeAngle(w http.ResponseWriter, r *http.Request) {
	a, b, ok := s.decodePair(w, r)
	if !ok {
		return
	}

	angle, err := s.geometry.Angle(r.Context(), a, b)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.AngleResponse{
		Radians: angle.Radians(),
		Degrees: angle.Degrees(),
	})
}

// CompareCoordinates handles POST /v1/geometry/equal.
func (s *Server) CompareCoordinates(w http.ResponseWriter, r *http.Request) {
	a, b, ok := s.decodePair(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, gen.EqualResponse{Equal: s.geometry.Equal(r.Context(), a, b)})
}

func (s *Server) decodePair(w http.ResponseWriter, r *http.Request) (a, b geo.Coordinate, ok bool) {
	var req gen.CoordinatePairRequest
	if !decodeBody(w, r, &req) {
		return nil, nil, false
	}

	a, err := coordinateFromGen(req.A)
	if err != nil {
		s.handleDomainError(w, err)
		return nil, nil, false
	}
	b, err = coordinateFromGen(req.B)
	if err != nil {
		s.handleDomainError(w, err)
		return nil, nil, false
	}
	return a, b, true
}

package chi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	"github.com/kailas-cloud/coordex/internal/logger"
	gen "github.com/kailas-cloud/coordex/internal/transport/generated"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
)

// UpsertLocation handles PUT /v1/locations/{id}.
func (s *Server) UpsertLocation(w http.ResponseWriter, r *http.Request, id gen.LocationId) {
	var req gen.UpsertLocationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	loc, err := s.locationFromUpsert(id, req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	ctx := logger.With(r.Context(), zap.String("location_id", id))
	stored, created, err := s.locations.Upsert(ctx, loc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", fmt.Sprintf("/v1/locations/%s", id))
	}
	writeJSON(w, status, locationToGen(stored))
}

// GetLocation handles GET /v1/locations/{id}.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request, id gen.LocationId) {
	loc, err := s.locations.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, locationToGen(loc))
}

// DeleteLocation handles DELETE /v1/locations/{id}.
func (s *Server) DeleteLocation(w http.ResponseWriter, r *http.Request, id gen.LocationId) {
	ctx := logger.With(r.Context(), zap.String("location_id", id))
	if err := s.locations.Delete(ctx, id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLocations handles GET /v1/locations.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request, params gen.ListLocationsParams) {
	locs, nextCursor, err := s.locations.List(r.Context(), derefString(params.Cursor), derefInt(params.Limit))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]gen.LocationResponse, len(locs))
	for i, l := range locs {
		items[i] = locationToGen(l)
	}

	resp := gen.LocationCursorListResponse{
		Items:   items,
		HasMore: nextCursor != "",
	}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}

	writeJSON(w, http.StatusOK, resp)
}

// NearbyLocations handles POST /v1/locations/nearby.
func (s *Server) NearbyLocations(w http.ResponseWriter, r *http.Request) {
	var req gen.NearbyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	origin, err := coordinateFromGen(req.Origin)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	q := locationuc.NearbyQuery{
		Origin:      origin,
		Category:    derefString(req.Category),
		Limit:       derefInt(req.Limit),
		MaxDistance: derefFloat(req.MaxDistance),
	}
	neighbors, err := s.locations.Nearby(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, neighborsToGen(neighbors, q.Limit))
}

// NearbyLocation handles GET /v1/locations/{id}/nearby.
func (s *Server) NearbyLocation(
	w http.ResponseWriter,
	r *http.Request,
	id gen.LocationId,
	params gen.NearbyLocationParams,
) {
	q := locationuc.NearbyQuery{
		Category:    derefString(params.Category),
		Limit:       derefInt(params.Limit),
		MaxDistance: derefFloat(params.MaxDistance),
	}
	ctx := logger.With(r.Context(), zap.String("location_id", id))
	neighbors, err := s.locations.NearbyLocation(ctx, id, q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, neighborsToGen(neighbors, q.Limit))
}

// BatchUpsertLocations handles POST /v1/locations/batch-upsert.
func (s *Server) BatchUpsertLocations(w http.ResponseWriter, r *http.Request) {
	var req gen.BatchUpsertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Locations) == 0 || len(req.Locations) > s.batch.MaxSize() {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed,
			fmt.Sprintf("locations count must be between 1 and %d", s.batch.MaxSize()))
		return
	}

	// Items that fail to parse are reported in place; the rest go to the batch.
	results := make([]dombatch.Result, len(req.Locations))
	locs := make([]domloc.Location, 0, len(req.Locations))
	idx := make([]int, 0, len(req.Locations))
	for i, item := range req.Locations {
		loc, err := s.locationFromUpsert(item.Id, gen.UpsertLocationRequest{
			Category:   item.Category,
			Coordinate: item.Coordinate,
			LatLon:     item.LatLon,
			Name:       item.Name,
		})
		if err != nil {
			results[i] = dombatch.Failed(item.Id, err)
			continue
		}
		locs = append(locs, loc)
		idx = append(idx, i)
	}

	for j, res := range s.batch.Upsert(r.Context(), locs) {
		results[idx[j]] = res
	}

	writeJSON(w, http.StatusOK, batchResponse(results))
}

// BatchDeleteLocations handles POST /v1/locations/batch-delete.
func (s *Server) BatchDeleteLocations(w http.ResponseWriter, r *http.Request) {
	var req gen.BatchDeleteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Ids) == 0 || len(req.Ids) > s.batch.MaxSize() {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed,
			fmt.Sprintf("ids count must be between 1 and %d", s.batch.MaxSize()))
		return
	}

	writeJSON(w, http.StatusOK, batchResponse(s.batch.Delete(r.Context(), req.Ids)))
}

func batchResponse(results []dombatch.Result) gen.BatchResponse {
	items := make([]gen.BatchResultItem, len(results))
	for i, res := range results {
		items[i] = batchResultToGen(res)
	}
	succeeded, failed := dombatch.Count(results)
	return gen.BatchResponse{
		Items:     items,
		Succeeded: succeeded,
		Failed:    failed,
	}
}

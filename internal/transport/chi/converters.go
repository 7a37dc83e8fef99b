package chi

import (
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	gen "github.com/kailas-cloud/coordex/internal/transport/generated"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

func coordinateFromGen(c gen.Coordinate) (geo.Coordinate, error) {
	if len(c.Values) != 3 {
		return nil, fmt.Errorf("coordinate needs exactly 3 values, got %d: %w", len(c.Values), geo.ErrInvalidInput)
	}
	return geo.New(geo.System(c.System), c.Values[0], c.Values[1], c.Values[2])
}

func coordinateToGen(c geo.Coordinate) gen.CoordinateResponse {
	system, v := geo.Components(c)
	return gen.CoordinateResponse{
		System:   gen.CoordinateSystem(system),
		Values:   v[:],
		Geometry: cartesianGeoJSON(c.AsCartesian()),
	}
}

// cartesianGeoJSON encodes the point as a GeoJSON Point with XYZ layout.
// Returns nil if encoding fails; the field is optional.
func cartesianGeoJSON(c geo.Cartesian) json.RawMessage {
	p := geom.NewPointFlat(geom.XYZ, []float64{c.X(), c.Y(), c.Z()})
	g, err := geojson.Encode(p)
	if err != nil {
		return nil
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return nil
	}
	return raw
}

func (s *Server) locationFromUpsert(id string, req gen.UpsertLocationRequest) (domloc.Location, error) {
	var (
		coord geo.Coordinate
		err   error
	)
	switch {
	case req.Coordinate != nil && req.LatLon != nil:
		return domloc.Location{}, fmt.Errorf("coordinate and lat_lon are mutually exclusive: %w", geo.ErrInvalidInput)
	case req.Coordinate != nil:
		coord, err = coordinateFromGen(*req.Coordinate)
	case req.LatLon != nil:
		radius := s.earthRadius
		if req.LatLon.Radius != nil {
			radius = *req.LatLon.Radius
		}
		coord, err = geo.FromLatLon(req.LatLon.Latitude, req.LatLon.Longitude, radius)
	default:
		return domloc.Location{}, fmt.Errorf("coordinate or lat_lon is required: %w", geo.ErrInvalidInput)
	}
	if err != nil {
		return domloc.Location{}, err
	}
	return domloc.New(id, derefString(req.Name), derefString(req.Category), coord)
}

func locationToGen(l domloc.Location) gen.LocationResponse {
	resp := gen.LocationResponse{
		Id:         l.ID(),
		Coordinate: coordinateToGen(l.Coordinate()),
		CreatedAt:  l.CreatedAt(),
		UpdatedAt:  l.UpdatedAt(),
	}
	if name := l.Name(); name != "" {
		resp.Name = &name
	}
	if cat := l.Category(); cat != "" {
		resp.Category = &cat
	}
	return resp
}

func neighborsToGen(neighbors []locationuc.Neighbor, limit int) gen.NeighborListResponse {
	items := make([]gen.NeighborItem, len(neighbors))
	for i, n := range neighbors {
		items[i] = gen.NeighborItem{
			Location: locationToGen(n.Location),
			Distance: n.Distance,
		}
		if n.AngleDefined {
			rad := n.Angle.Radians()
			items[i].AngleRadians = &rad
		}
	}
	if limit == 0 {
		limit = len(items)
	}
	return gen.NeighborListResponse{
		Items: items,
		Limit: limit,
		Total: len(items),
	}
}

func batchResultToGen(r dombatch.Result) gen.BatchResultItem {
	item := gen.BatchResultItem{
		Id:     r.ID(),
		Status: gen.BatchResultItemStatus(r.Status()),
	}
	if r.Err() != nil {
		errResp := gen.ErrorResponse{
			Code:    errorCode(r.Err()),
			Message: safeDomainMessage(r.Err()),
		}
		item.Error = &errResp
	}
	return item
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

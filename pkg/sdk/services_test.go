package coordex

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s1"

	"github.com/kailas-cloud/coordex/internal/domain"
	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	healthuc "github.com/kailas-cloud/coordex/internal/usecase/health"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

func point(t *testing.T, x, y, z float64) geo.Coordinate {
	t.Helper()
	c, err := geo.NewCartesian(x, y, z)
	if err != nil {
		t.Fatalf("NewCartesian: %v", err)
	}
	return c
}

// --- LocationService ---

func TestLocationService_Upsert(t *testing.T) {
	mock := &mockLocationUC{
		upsertFn: func(_ context.Context, loc domloc.Location) (domloc.Location, bool, error) {
			if loc.ID() != "everest" {
				t.Errorf("id = %q, want everest", loc.ID())
			}
			return domloc.Reconstruct(loc.ID(), loc.Name(), loc.Category(), loc.Coordinate(), 1000, 2000), true, nil
		},
	}

	svc := &LocationService{svc: mock}
	got, created, err := svc.Upsert(context.Background(), Location{
		ID: "everest", Name: "Everest", Category: "peak", Coordinate: point(t, 1, 2, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created")
	}
	if got.CreatedAt.UnixMilli() != 1000 || got.UpdatedAt.UnixMilli() != 2000 {
		t.Errorf("timestamps = %v/%v", got.CreatedAt, got.UpdatedAt)
	}
	if got.Category != "peak" {
		t.Errorf("Category = %q, want peak", got.Category)
	}
}

func TestLocationService_Upsert_InvalidLocation(t *testing.T) {
	// Невалидный id отклоняется до обращения к use case.
	svc := &LocationService{svc: &mockLocationUC{}}
	_, _, err := svc.Upsert(context.Background(), Location{ID: "bad id!", Coordinate: point(t, 0, 0, 0)})
	if !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("expected ErrInvalidLocation, got %v", err)
	}

	_, _, err = svc.Upsert(context.Background(), Location{ID: "ok"})
	if !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("nil coordinate: expected ErrInvalidLocation, got %v", err)
	}
}

func TestLocationService_Get_NotFound(t *testing.T) {
	mock := &mockLocationUC{
		getFn: func(_ context.Context, _ string) (domloc.Location, error) {
			return domloc.Location{}, domain.ErrNotFound
		},
	}
	svc := &LocationService{svc: mock}
	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocationService_Delete(t *testing.T) {
	var deleted string
	mock := &mockLocationUC{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := &LocationService{svc: mock}
	if err := svc.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "a" {
		t.Errorf("deleted = %q, want a", deleted)
	}
}

func TestLocationService_List(t *testing.T) {
	mock := &mockLocationUC{
		listFn: func(_ context.Context, cursor string, limit int) ([]domloc.Location, string, error) {
			if cursor != "c1" || limit != 2 {
				t.Errorf("cursor=%q limit=%d", cursor, limit)
			}
			return []domloc.Location{
				domloc.Reconstruct("a", "", "", point(t, 1, 0, 0), 0, 0),
				domloc.Reconstruct("b", "", "", point(t, 0, 1, 0), 0, 0),
			}, "c2", nil
		},
	}
	svc := &LocationService{svc: mock}
	res, err := svc.List(context.Background(), "c1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Locations) != 2 || res.NextCursor != "c2" {
		t.Errorf("got %d locations, cursor %q", len(res.Locations), res.NextCursor)
	}
	if res.Locations[1].ID != "b" {
		t.Errorf("second = %q, want b", res.Locations[1].ID)
	}
}

func TestLocationService_Nearby_Options(t *testing.T) {
	origin := point(t, 0, 0, 0)
	mock := &mockLocationUC{
		nearbyFn: func(_ context.Context, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error) {
			if q.Origin != origin {
				t.Error("origin not forwarded")
			}
			if q.Category != "city" || q.Limit != 3 || q.MaxDistance != 5 {
				t.Errorf("query = %+v", q)
			}
			return []locationuc.Neighbor{{
				Location: domloc.Reconstruct("x", "", "city", point(t, 1, 0, 0), 0, 0),
				Distance: 1,
			}}, nil
		},
	}
	svc := &LocationService{svc: mock}
	ns, err := svc.Nearby(context.Background(), origin, InCategory("city"), Limit(3), Within(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ns) != 1 || ns[0].Location.ID != "x" || ns[0].Distance != 1 {
		t.Errorf("neighbors = %+v", ns)
	}
	if ns[0].AngleDefined {
		t.Error("angle must be undefined for the origin")
	}
}

func TestLocationService_NearbyLocation(t *testing.T) {
	mock := &mockLocationUC{
		nearbyLocationFn: func(_ context.Context, id string, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error) {
			if id != "anchor" {
				t.Errorf("id = %q, want anchor", id)
			}
			if q.Limit != 0 {
				t.Errorf("limit = %d, want default", q.Limit)
			}
			return []locationuc.Neighbor{{
				Location:     domloc.Reconstruct("y", "", "", point(t, 0, 1, 0), 0, 0),
				Distance:     math.Sqrt2,
				Angle:        s1.Angle(math.Pi / 2),
				AngleDefined: true,
			}}, nil
		},
	}
	svc := &LocationService{svc: mock}
	ns, err := svc.NearbyLocation(context.Background(), "anchor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ns[0].AngleDefined || ns[0].Angle != s1.Angle(math.Pi/2) {
		t.Errorf("angle = %v (defined=%v)", ns[0].Angle, ns[0].AngleDefined)
	}
}

func TestLocationService_NearbyLocation_Error(t *testing.T) {
	mock := &mockLocationUC{
		nearbyLocationFn: func(context.Context, string, locationuc.NearbyQuery) ([]locationuc.Neighbor, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := &LocationService{svc: mock}
	if _, err := svc.NearbyLocation(context.Background(), "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocationService_UpsertBatch(t *testing.T) {
	var forwarded []string
	mock := &mockBatchUC{
		upsertFn: func(_ context.Context, items []domloc.Location) []dombatch.Result {
			out := make([]dombatch.Result, len(items))
			for i, it := range items {
				forwarded = append(forwarded, it.ID())
				if it.ID() == "b" {
					out[i] = dombatch.Failed(it.ID(), domain.ErrUnknownCategory)
					continue
				}
				out[i] = dombatch.OK(it.ID())
			}
			return out
		},
	}
	svc := &LocationService{batch: mock}
	res := svc.UpsertBatch(context.Background(), []Location{
		{ID: "a", Coordinate: point(t, 1, 0, 0)},
		{ID: "bad id", Coordinate: point(t, 1, 0, 0)},
		{ID: "b", Category: "nope", Coordinate: point(t, 1, 0, 0)},
	})

	if len(res) != 3 {
		t.Fatalf("got %d results, want 3", len(res))
	}
	if len(forwarded) != 2 {
		t.Errorf("forwarded = %v, want only valid items", forwarded)
	}
	if !res[0].OK || res[0].ID != "a" {
		t.Errorf("res[0] = %+v", res[0])
	}
	if res[1].OK || !errors.Is(res[1].Err, ErrInvalidLocation) {
		t.Errorf("res[1] = %+v", res[1])
	}
	if res[2].OK || !errors.Is(res[2].Err, ErrUnknownCategory) {
		t.Errorf("res[2] = %+v", res[2])
	}
}

func TestLocationService_UpsertBatch_AllInvalid(t *testing.T) {
	// Use case не вызывается, если валидных элементов нет.
	svc := &LocationService{batch: &mockBatchUC{}}
	res := svc.UpsertBatch(context.Background(), []Location{{ID: "x"}})
	if len(res) != 1 || res[0].OK {
		t.Errorf("res = %+v", res)
	}
}

func TestLocationService_DeleteBatch(t *testing.T) {
	mock := &mockBatchUC{
		deleteFn: func(_ context.Context, ids []string) []dombatch.Result {
			return []dombatch.Result{dombatch.OK(ids[0]), dombatch.Failed(ids[1], domain.ErrNotFound)}
		},
	}
	svc := &LocationService{batch: mock}
	res := svc.DeleteBatch(context.Background(), []string{"a", "b"})
	if !res[0].OK || res[1].OK {
		t.Errorf("res = %+v", res)
	}
	if !errors.Is(res[1].Err, ErrNotFound) {
		t.Errorf("res[1].Err = %v, want ErrNotFound", res[1].Err)
	}
}

// --- GeometryService ---

func TestGeometryService_Distance(t *testing.T) {
	mock := &mockGeometryUC{
		distanceFn: func(_ context.Context, a, b geo.Coordinate) (float64, error) {
			return geo.Distance(a, b)
		},
	}
	svc := &GeometryService{svc: mock}
	d, err := svc.Distance(context.Background(), point(t, 0, 0, 0), point(t, 3, 4, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
}

func TestGeometryService_Angle_Undefined(t *testing.T) {
	mock := &mockGeometryUC{
		angleFn: func(_ context.Context, a, b geo.Coordinate) (s1.Angle, error) {
			return geo.CentralAngle(a, b)
		},
	}
	svc := &GeometryService{svc: mock}
	_, err := svc.Angle(context.Background(), point(t, 0, 0, 0), point(t, 1, 0, 0))
	if !errors.Is(err, ErrInvalidResult) {
		t.Errorf("expected ErrInvalidResult, got %v", err)
	}
}

func TestGeometryService_Convert(t *testing.T) {
	mock := &mockGeometryUC{
		convertFn: func(_ context.Context, c geo.Coordinate, to geo.System) (geo.Coordinate, error) {
			return geo.Convert(c, to)
		},
	}
	svc := &GeometryService{svc: mock}
	out, err := svc.Convert(context.Background(), point(t, 0, 0, 2), geo.SystemSpherical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geo.SystemOf(out) != geo.SystemSpherical {
		t.Errorf("system = %v, want spherical", geo.SystemOf(out))
	}

	if _, err := svc.Convert(context.Background(), point(t, 0, 0, 2), geo.System("polar")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown system: expected ErrInvalidInput, got %v", err)
	}
}

func TestGeometryService_Equal(t *testing.T) {
	mock := &mockGeometryUC{
		equalFn: func(_ context.Context, a, b geo.Coordinate) bool { return geo.Equal(a, b) },
	}
	svc := &GeometryService{svc: mock}
	if !svc.Equal(context.Background(), point(t, 1, 1, 1), point(t, 1, 1, 1)) {
		t.Error("expected equal")
	}
}

// --- Health ---

func TestClient_Health(t *testing.T) {
	c := &Client{healthSvc: &mockHealthUC{
		checkFn: func(context.Context) healthuc.Report {
			return healthuc.Report{
				Status: healthuc.Degraded,
				Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckError, "geometry": healthuc.CheckOK},
			}
		},
	}}
	h := c.Health(context.Background())
	if h.Status != "degraded" {
		t.Errorf("status = %q, want degraded", h.Status)
	}
	if h.Checks["database"] != "error" || h.Checks["geometry"] != "ok" {
		t.Errorf("checks = %v", h.Checks)
	}
}

func TestHealthStatus_Failed(t *testing.T) {
	h := HealthStatus{Status: "degraded", Checks: map[string]string{"geometry": "ok", "database": "error", "cache": "error"}}
	if h.Healthy() {
		t.Error("degraded must not be healthy")
	}
	got := h.Failed()
	if len(got) != 2 || got[0] != "cache" || got[1] != "database" {
		t.Errorf("Failed() = %v, want [cache database]", got)
	}
	if !(HealthStatus{Status: "ok"}).Healthy() {
		t.Error("ok must be healthy")
	}
}

package coordex

import (
	"context"

	"github.com/golang/geo/s1"

	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	healthuc "github.com/kailas-cloud/coordex/internal/usecase/health"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// --- locationUseCase mock ---

type mockLocationUC struct {
	upsertFn         func(ctx context.Context, loc domloc.Location) (domloc.Location, bool, error)
	getFn            func(ctx context.Context, id string) (domloc.Location, error)
	deleteFn         func(ctx context.Context, id string) error
	listFn           func(ctx context.Context, cursor string, limit int) ([]domloc.Location, string, error)
	nearbyFn         func(ctx context.Context, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error)
	nearbyLocationFn func(ctx context.Context, id string, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error)
}

func (m *mockLocationUC) Upsert(ctx context.Context, loc domloc.Location) (domloc.Location, bool, error) {
	return m.upsertFn(ctx, loc)
}

func (m *mockLocationUC) Get(ctx context.Context, id string) (domloc.Location, error) {
	return m.getFn(ctx, id)
}

func (m *mockLocationUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockLocationUC) List(ctx context.Context, cursor string, limit int) ([]domloc.Location, string, error) {
	return m.listFn(ctx, cursor, limit)
}

func (m *mockLocationUC) Nearby(ctx context.Context, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error) {
	return m.nearbyFn(ctx, q)
}

func (m *mockLocationUC) NearbyLocation(
	ctx context.Context, id string, q locationuc.NearbyQuery,
) ([]locationuc.Neighbor, error) {
	return m.nearbyLocationFn(ctx, id, q)
}

// --- batchUseCase mock ---

type mockBatchUC struct {
	upsertFn func(ctx context.Context, items []domloc.Location) []dombatch.Result
	deleteFn func(ctx context.Context, ids []string) []dombatch.Result
}

func (m *mockBatchUC) Upsert(ctx context.Context, items []domloc.Location) []dombatch.Result {
	return m.upsertFn(ctx, items)
}

func (m *mockBatchUC) Delete(ctx context.Context, ids []string) []dombatch.Result {
	return m.deleteFn(ctx, ids)
}

// --- geometryUseCase mock ---

type mockGeometryUC struct {
	convertFn  func(ctx context.Context, c geo.Coordinate, to geo.System) (geo.Coordinate, error)
	distanceFn func(ctx context.Context, a, b geo.Coordinate) (float64, error)
	angleFn    func(ctx context.Context, a, b geo.Coordinate) (s1.Angle, error)
	equalFn    func(ctx context.Context, a, b geo.Coordinate) bool
}

func (m *mockGeometryUC) Convert(ctx context.Context, c geo.Coordinate, to geo.System) (geo.Coordinate, error) {
	return m.convertFn(ctx, c, to)
}

func (m *mockGeometryUC) Distance(ctx context.Context, a, b geo.Coordinate) (float64, error) {
	return m.distanceFn(ctx, a, b)
}

func (m *mockGeometryUC) Angle(ctx context.Context, a, b geo.Coordinate) (s1.Angle, error) {
	return m.angleFn(ctx, a, b)
}

func (m *mockGeometryUC) Equal(ctx context.Context, a, b geo.Coordinate) bool {
	return m.equalFn(ctx, a, b)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

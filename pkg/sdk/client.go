package coordex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/geo/s1"

	"github.com/kailas-cloud/coordex/internal/db"
	dbRedis "github.com/kailas-cloud/coordex/internal/db/redis"
	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	"github.com/kailas-cloud/coordex/internal/domain/category"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	locationrepo "github.com/kailas-cloud/coordex/internal/repository/location"
	batchuc "github.com/kailas-cloud/coordex/internal/usecase/batch"
	geometryuc "github.com/kailas-cloud/coordex/internal/usecase/geometry"
	healthuc "github.com/kailas-cloud/coordex/internal/usecase/health"
	locationuc "github.com/kailas-cloud/coordex/internal/usecase/location"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "coordex:"
)

// Внутренние интерфейсы для подмены в тестах.
type locationUseCase interface {
	Upsert(ctx context.Context, loc domloc.Location) (domloc.Location, bool, error)
	Get(ctx context.Context, id string) (domloc.Location, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, cursor string, limit int) ([]domloc.Location, string, error)
	Nearby(ctx context.Context, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error)
	NearbyLocation(ctx context.Context, id string, q locationuc.NearbyQuery) ([]locationuc.Neighbor, error)
}

type batchUseCase interface {
	Upsert(ctx context.Context, items []domloc.Location) []dombatch.Result
	Delete(ctx context.Context, ids []string) []dombatch.Result
}

type geometryUseCase interface {
	Convert(ctx context.Context, c geo.Coordinate, to geo.System) (geo.Coordinate, error)
	Distance(ctx context.Context, a, b geo.Coordinate) (float64, error)
	Angle(ctx context.Context, a, b geo.Coordinate) (s1.Angle, error)
	Equal(ctx context.Context, a, b geo.Coordinate) bool
}

// Client is the coordex SDK entry point.
type Client struct {
	store     db.Store
	locSvc    locationUseCase
	batchSvc  batchUseCase
	geomSvc   geometryUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a coordex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:        defaultKeyPrefix,
		readinessTimeout: defaultReadinessTimeout,
		tolerance:        geo.DefaultTolerance,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("coordex: database address required (use WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("coordex: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("coordex: database not ready: %w", err)
	}

	c, err := wireClient(store, cfg, obs)
	if err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	cats, err := category.NewRegistry(cfg.categories)
	if err != nil {
		return nil, fmt.Errorf("coordex: categories: %w", err)
	}
	geomSvc, err := geometryuc.New(cfg.tolerance)
	if err != nil {
		return nil, fmt.Errorf("coordex: %w", err)
	}

	repo := locationrepo.New(store, cfg.keyPrefix)
	locSvc := locationuc.New(repo, cats)
	batchSvc := batchuc.New(repo, repo, repo, cats)
	if cfg.maxBatchSize > 0 {
		batchSvc = batchSvc.WithMaxBatchSize(cfg.maxBatchSize)
	}
	healthSvc := healthuc.New(store).WithCheck("geometry", geomSvc)

	return &Client{
		store:     store,
		locSvc:    locSvc,
		batchSvc:  batchSvc,
		geomSvc:   geomSvc,
		healthSvc: healthSvc,
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Locations returns the location store service.
func (c *Client) Locations() *LocationService {
	return &LocationService{svc: c.locSvc, batch: c.batchSvc, obs: c.obs}
}

// Geometry returns the stateless coordinate operations.
func (c *Client) Geometry() *GeometryService {
	return &GeometryService{svc: c.geomSvc, obs: c.obs}
}

package coordex

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/coordex/pkg/geo"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithRedis("localhost:6379", "secret").apply(cfg)
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithKeyPrefix("test:").apply(cfg)
	if cfg.keyPrefix != "test:" {
		t.Errorf("keyPrefix = %q, want test:", cfg.keyPrefix)
	}

	WithReadinessTimeout(3 * time.Second).apply(cfg)
	if cfg.readinessTimeout != 3*time.Second {
		t.Errorf("readinessTimeout = %v, want 3s", cfg.readinessTimeout)
	}

	tol := geo.Tolerance{Zero: 1e-9, Significant: 1e-6}
	WithTolerance(tol).apply(cfg)
	if cfg.tolerance != tol {
		t.Errorf("tolerance = %+v, want %+v", cfg.tolerance, tol)
	}

	WithCategories(map[string]string{"place": "", "city": "place"}).apply(cfg)
	if cfg.categories["city"] != "place" {
		t.Errorf("categories = %v", cfg.categories)
	}

	WithMaxBatchSize(500).apply(cfg)
	if cfg.maxBatchSize != 500 {
		t.Errorf("maxBatchSize = %d, want 500", cfg.maxBatchSize)
	}

	logger := zap.NewNop()
	WithLogger(logger).apply(cfg)
	if cfg.logger != logger {
		t.Error("expected logger to be set")
	}

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg)
	if cfg.metricsReg != reg {
		t.Error("expected metricsReg to be set")
	}
}

func TestWireClient(t *testing.T) {
	cfg := &clientConfig{
		keyPrefix:    defaultKeyPrefix,
		tolerance:    geo.DefaultTolerance,
		categories:   map[string]string{"place": "", "city": "place"},
		maxBatchSize: 10,
	}
	c, err := wireClient(nil, cfg, nil)
	if err != nil {
		t.Fatalf("wireClient: %v", err)
	}
	if c.Locations() == nil || c.Geometry() == nil {
		t.Fatal("expected services")
	}

	// Геометрия работает без базы.
	d, err := c.Geometry().Distance(context.Background(), geo.UnitX, geo.UnitZ)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d < 1.414 || d > 1.415 {
		t.Errorf("distance = %v, want sqrt(2)", d)
	}
}

func TestWireClient_BadCategories(t *testing.T) {
	cfg := &clientConfig{
		tolerance:  geo.DefaultTolerance,
		categories: map[string]string{"city": "missing"},
	}
	_, err := wireClient(nil, cfg, nil)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestWireClient_BadTolerance(t *testing.T) {
	cfg := &clientConfig{tolerance: geo.Tolerance{Zero: -1, Significant: 1e-4}}
	_, err := wireClient(nil, cfg, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{}
	c.Close()
}

func TestObserver_NilSafe(t *testing.T) {
	// nil observer should not panic.
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observe("test", time.Now(), errors.New("err"))
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("location.get", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("location.get", time.Now(), fmt.Errorf("get: %w", ErrNotFound))
	obs.observe("location.get", time.Now(), errors.New("connection reset"))

	for _, status := range []string{"ok", "rejected", "error"} {
		got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("location.get", status))
		if got != 1 {
			t.Errorf("operations{status=%q} = %v, want 1", status, got)
		}
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "coordex_sdk_operations_total" {
			found = true
		}
	}
	if !found {
		t.Error("coordex_sdk_operations_total not found")
	}
}

func TestObserver_ReuseRegistered(t *testing.T) {
	// Второй клиент на том же registry переиспользует коллекторы.
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.metrics.operations != second.metrics.operations {
		t.Error("expected shared counter")
	}
}

func TestObserver_WithLogger(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	obs, err := newObserver(zap.New(core), nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("test.op", time.Now(), nil)
	obs.observe("test.op", time.Now(), errors.New("test error"))

	if logs.Len() != 2 {
		t.Fatalf("got %d log entries, want 2", logs.Len())
	}
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warn) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warn))
	}
	if warn[0].ContextMap()["status"] != "error" {
		t.Errorf("status = %v, want error", warn[0].ContextMap()["status"])
	}
}

func TestObserver_NoMetricsNoLogger(t *testing.T) {
	obs, err := newObserver(nil, nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	// Не должно паниковать.
	obs.observe("noop", time.Now(), nil)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{ErrNotFound, "rejected"},
		{fmt.Errorf("wrap: %w", ErrInvalidResult), "rejected"},
		{ErrUnknownCategory, "rejected"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := errorStatus(tt.err); got != tt.want {
			t.Errorf("errorStatus(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

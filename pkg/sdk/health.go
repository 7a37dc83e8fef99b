package coordex

import (
	"context"
	"sort"

	healthuc "github.com/kailas-cloud/coordex/internal/usecase/health"
)

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// HealthStatus is the aggregated health of the database and the geometry
// self-check.
type HealthStatus struct {
	Status string            // "ok", "degraded" or "error"
	Checks map[string]string // component -> "ok" | "error"
}

// Healthy reports whether every component passed.
func (h HealthStatus) Healthy() bool { return h.Status == string(healthuc.Healthy) }

// Failed lists the components whose check failed, sorted.
func (h HealthStatus) Failed() []string {
	var out []string
	for name, res := range h.Checks {
		if res != string(healthuc.CheckOK) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Health runs every component check.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	return HealthStatus{Status: string(report.Status), Checks: checks}
}

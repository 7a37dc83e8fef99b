package health

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/kailas-cloud/coordex/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

type namedChecker struct {
	name    string
	checker Checker
}

// Service coordinates health checks.
type Service struct {
	db     DBPinger
	extras []namedChecker
}

// New creates a Service with the database check.
func New(db DBPinger) *Service {
	return &Service{db: db}
}

// WithCheck registers an extra component check under name.
func (s *Service) WithCheck(name string, c Checker) *Service {
	if c != nil {
		s.extras = append(s.extras, namedChecker{name: name, checker: c})
	}
	return s
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	log := logger.FromContext(ctx)
	checks := make(map[string]CheckResult, 1+len(s.extras))

	if err := s.db.Ping(ctx); err != nil {
		log.Warn("health check failed", zap.String("component", "database"), zap.Error(err))
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	for _, e := range s.extras {
		if err := e.checker.HealthCheck(ctx); err != nil {
			log.Warn("health check failed", zap.String("component", e.name), zap.Error(err))
			checks[e.name] = CheckError
		} else {
			checks[e.name] = CheckOK
		}
	}

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}

// Components returns the checked component names in stable order.
func (r Report) Components() []string {
	names := make([]string, 0, len(r.Checks))
	for n := range r.Checks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// Checker is an additional named component check (e.g. geometry self-test).
type Checker interface {
	HealthCheck(ctx context.Context) error
}

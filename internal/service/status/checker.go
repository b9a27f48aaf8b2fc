// Package status defines the dependency contract for readiness checks.
package status

import "context"

// ReadinessChecker is the interface for downstream dependency probes.
// Satisfied by *pgxpool.Pool.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// Package status provides the service behind the probe endpoints.
package status

import (
	"context"

	"go.uber.org/multierr"
)

// Greeting is returned verbatim by the root route.
const Greeting = "Hello, from Fincra!"

// StatusService answers the liveness and readiness questions for the process.
type StatusService struct {
	checkers []ReadinessChecker
}

// NewStatusService creates a StatusService. Checkers are optional: with
// none configured the service is trivially ready.
func NewStatusService(checkers ...ReadinessChecker) *StatusService {
	return &StatusService{checkers: checkers}
}

// Health reports process liveness. It never consults dependencies:
// if this code is running, the process is alive.
func (s *StatusService) Health() Report {
	return Report{Status: StatusHealthy}
}

// Ready reports whether the service can accept traffic. Every configured
// checker is pinged; failures are collected so a single unreachable
// dependency does not mask the others.
func (s *StatusService) Ready(ctx context.Context) (Report, error) {
	var errs error
	for _, c := range s.checkers {
		errs = multierr.Append(errs, c.Ping(ctx))
	}
	if errs != nil {
		return Report{Status: StatusUnavailable}, multierr.Append(ErrNotReady, errs)
	}
	return Report{Status: StatusReady}, nil
}

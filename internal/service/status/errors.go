// Package status defines status service errors.
package status

import "errors"

var (
	ErrNotReady = errors.New("service is not ready")
)

package probe

import (
	"errors"
	"fmt"
)

// ErrPortUnavailable is returned when every port in the probed window is occupied.
var ErrPortUnavailable = errors.New("port unavailable")

// PortUnavailableError carries the exhausted port window.
type PortUnavailableError struct {
	StartedAt    int
	TriedThrough int
}

func (e *PortUnavailableError) Error() string {
	return fmt.Sprintf("ports from %d to %d are not available", e.StartedAt, e.TriedThrough)
}

func (e *PortUnavailableError) Unwrap() error {
	return ErrPortUnavailable
}

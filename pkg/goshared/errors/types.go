package errors

import (
	"fmt"
	"time"
)

// TimeoutError reports a command killed because it ran past its per-attempt
// timeout. It is transient.
type TimeoutError struct {
	// Operation is the command line as run.
	Operation string
	Timeout   time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %s: %s", e.Timeout, e.Operation)
}

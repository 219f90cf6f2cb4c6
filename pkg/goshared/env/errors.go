package env

import (
	"errors"
	"fmt"
)

// ErrMissingName is returned when a lookup is attempted without a name.
var ErrMissingName = errors.New("env: variable name cannot be empty")

// InvalidBooleanError reports text that is in neither the truthy nor the
// falsy token set while a boolean was required.
type InvalidBooleanError struct {
	Name  string
	Value string
}

// Error implements the error interface.
func (e *InvalidBooleanError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("env: invalid boolean value for %s: %q", e.Name, e.Value)
	}
	return fmt.Sprintf("env: invalid boolean value: %q", e.Value)
}

// CoercionError reports a failed conversion of raw text into a target type.
type CoercionError struct {
	// Name is the variable being resolved.
	Name string

	// Value is the raw text that failed to convert.
	Value string

	// Target describes the type the value was converted to.
	Target string

	// Err is the underlying parse or construction error.
	Err error
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("env: cannot convert %s=%q to %s: %v", e.Name, e.Value, e.Target, e.Err)
}

// Unwrap returns the underlying error.
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// errUnsupportedTarget is wrapped in a CoercionError when a default's type
// has no known conversion from text.
var errUnsupportedTarget = errors.New("unsupported target type")

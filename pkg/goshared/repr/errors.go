package repr

import (
	"errors"
	"fmt"
)

// NotPrintableError reports a value for which both the developer and the
// display representation failed.
type NotPrintableError struct {
	// Type is the value's type name, pointers dereferenced.
	Type string

	// ID identifies the value: its address when it has one, otherwise a
	// process-wide counter.
	ID string

	// ReprErr is why the developer representation failed.
	ReprErr error

	// StrErr is why the display representation failed.
	StrErr error
}

// Error returns the failure descriptor.
func (e *NotPrintableError) Error() string {
	return fmt.Sprintf("<NotPrintable %s object id=%s repr_error=\"%v\" str_error=\"%v\">",
		e.Type, e.ID, e.ReprErr, e.StrErr)
}

// Unwrap returns both stage errors.
func (e *NotPrintableError) Unwrap() []error {
	return []error{e.ReprErr, e.StrErr}
}

// errDisplayOnly marks values whose only text form is their String or Error
// method, so the developer stage hands them to the display stage.
var errDisplayOnly = errors.New("no developer representation")

// panicError converts a recovered panic value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}

// Package errors classifies command failures and re-runs commands that may
// succeed on another attempt.
//
// A command killed by its deadline is transient: the same invocation may
// finish next time. A non-zero exit status, a missing executable or a
// cancelled context is permanent. The shell package runs each attempt
// through WithRetryContext, which consults Categorize unless the caller
// supplies its own RetryableFunc.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Category says whether re-running the failed command can help.
type Category int

const (
	// CategoryTransient marks a run that hit its deadline or a
	// context.DeadlineExceeded.
	CategoryTransient Category = iota

	// CategoryPermanent marks everything else, including exit statuses,
	// start failures and cancellation.
	CategoryPermanent
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryTransient:
		return "transient"
	case CategoryPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// CategorizedError is the error a retried command returns: the last
// attempt's error, its category and how many attempts ran.
type CategorizedError struct {
	Err      error
	Category Category

	// Retries counts attempts made, the first included.
	Retries int

	// Context names the command or the reason attempts stopped.
	Context string
}

// Error implements the error interface.
func (e *CategorizedError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s (category: %s, attempts: %d)",
			e.Context, e.Err, e.Category, e.Retries)
	}
	return fmt.Sprintf("%s (category: %s, attempts: %d)",
		e.Err, e.Category, e.Retries)
}

// Unwrap returns the underlying error.
func (e *CategorizedError) Unwrap() error {
	return e.Err
}

// NewCategorized wraps err for the command described by context.
func NewCategorized(err error, category Category, context string) *CategorizedError {
	return &CategorizedError{
		Err:      err,
		Category: category,
		Context:  context,
	}
}

// Transient marks err as worth another attempt.
func Transient(err error, context string) *CategorizedError {
	return NewCategorized(err, CategoryTransient, context)
}

// Permanent marks err as final, overriding what Categorize would infer.
func Permanent(err error, context string) *CategorizedError {
	return NewCategorized(err, CategoryPermanent, context)
}

// Categorize reports the category of a command failure. An explicit
// CategorizedError wins, then a TimeoutError or deadline is transient.
func Categorize(err error) Category {
	if err == nil {
		return CategoryPermanent
	}

	var catErr *CategorizedError
	if errors.As(err, &catErr) {
		return catErr.Category
	}

	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return CategoryTransient
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}

	// Exit statuses, start failures and context.Canceled.
	return CategoryPermanent
}

// IsRetryable is the default RetryableFunc.
func IsRetryable(err error) bool {
	return Categorize(err) == CategoryTransient
}

package env

import (
	"errors"
	"fmt"
)

// Option configures a single lookup.
type Option func(*request)

type request struct {
	def     any
	coercer Coercer
}

// WithDefault sets the value returned when the variable is absent. A non-nil
// default also fixes the target type for a present variable.
func WithDefault(v any) Option {
	return func(r *request) { r.def = v }
}

// WithType overrides type selection: a present variable is always converted
// with c. A nil coercer is ignored.
func WithType(c Coercer) Option {
	return func(r *request) { r.coercer = c }
}

// Lookup resolves variables from a Source. The zero value reads the process
// environment.
type Lookup struct {
	src Source
}

// New returns a Lookup reading from src. A nil src reads the process
// environment.
func New(src Source) *Lookup {
	return &Lookup{src: src}
}

func (l *Lookup) source() Source {
	if l == nil || l.src == nil {
		return OSSource{}
	}
	return l.src
}

// Resolve returns the variable called name as a typed value.
//
// Priority, first match wins:
//  1. variable absent: the default, unchanged (nil when none was given)
//  2. WithType given: the coercer's result
//  3. non-nil default given: raw text converted to the default's type
//  4. otherwise: Infer(raw)
//
// A conversion failure is returned as an error; the default is never used as
// a fallback for a present variable.
func (l *Lookup) Resolve(name string, opts ...Option) (any, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	var req request
	for _, opt := range opts {
		opt(&req)
	}

	raw, ok := l.source().Lookup(name)
	if !ok {
		return req.def, nil
	}

	if req.coercer != nil {
		v, err := req.coercer.Coerce(raw)
		if err != nil {
			return nil, wrapCoercion(name, raw, targetName(req.coercer), err)
		}
		return v, nil
	}

	if req.def != nil {
		v, err := coerceLike(req.def, raw)
		if err != nil {
			return nil, wrapCoercion(name, raw, fmt.Sprintf("%T", req.def), err)
		}
		return v, nil
	}

	return Infer(raw), nil
}

// wrapCoercion names the variable in err. Boolean token errors keep their own
// type so callers can match on *InvalidBooleanError directly.
func wrapCoercion(name, raw, target string, err error) error {
	var boolErr *InvalidBooleanError
	if errors.As(err, &boolErr) {
		return &InvalidBooleanError{Name: name, Value: boolErr.Value}
	}
	return &CoercionError{Name: name, Value: raw, Target: target, Err: err}
}

// GetFrom resolves name from src using def as both the default and the
// target type.
func GetFrom[T any](src Source, name string, def T) (T, error) {
	v, err := New(src).Resolve(name, WithDefault(def))
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		// Only reachable when T is an interface type and the raw value was
		// inferred or the default was nil.
		var zero T
		if v == nil {
			return zero, nil
		}
		return zero, &CoercionError{Name: name, Target: fmt.Sprintf("%T", zero), Err: fmt.Errorf("resolved %T", v)}
	}
	return t, nil
}

var defaultLookup = New(OSSource{})

// Resolve resolves name from the process environment. See Lookup.Resolve.
func Resolve(name string, opts ...Option) (any, error) {
	return defaultLookup.Resolve(name, opts...)
}

// Get resolves name from the process environment as a T, using def as the
// default and target type.
//
//	port, err := env.Get("PORT", 8080)
//	debug, err := env.Get("DEBUG", false)
func Get[T any](name string, def T) (T, error) {
	return GetFrom(OSSource{}, name, def)
}

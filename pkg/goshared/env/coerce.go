package env

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Coercer converts raw text into a typed value.
type Coercer interface {
	Coerce(raw string) (any, error)
}

// CoercerFunc adapts a function to a Coercer.
type CoercerFunc func(raw string) (any, error)

// Coerce implements Coercer.
func (f CoercerFunc) Coerce(raw string) (any, error) {
	return f(raw)
}

// namedCoercer is a Coercer that knows the name of the type it produces.
type namedCoercer struct {
	name string
	fn   func(string) (any, error)
}

func (c namedCoercer) Coerce(raw string) (any, error) { return c.fn(raw) }

func (c namedCoercer) String() string { return c.name }

// Built-in coercers for WithType.
var (
	// Bool accepts the truthy and falsy token sets, case-insensitively.
	Bool Coercer = namedCoercer{"bool", func(raw string) (any, error) { return ParseBool(raw) }}

	// Int parses a base-10 int.
	Int Coercer = namedCoercer{"int", func(raw string) (any, error) { return strconv.Atoi(raw) }}

	// Float parses a float64.
	Float Coercer = namedCoercer{"float64", func(raw string) (any, error) { return strconv.ParseFloat(raw, 64) }}

	// String returns the raw text.
	String Coercer = namedCoercer{"string", func(raw string) (any, error) { return raw, nil }}

	// Duration parses a time.Duration such as "1m30s".
	Duration Coercer = namedCoercer{"time.Duration", func(raw string) (any, error) { return time.ParseDuration(raw) }}
)

// As adapts a typed parse function, such as strconv.ParseBool or
// netip.ParseAddr, into a Coercer.
func As[T any](parse func(string) (T, error)) Coercer {
	return namedCoercer{
		name: reflect.TypeFor[T]().String(),
		fn: func(raw string) (any, error) {
			v, err := parse(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// ParseBool matches raw, case-insensitively, against the truthy set
// {1, true, yes, on} and the falsy set {0, false, no, off}.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, &InvalidBooleanError{Value: raw}
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// coerceLike converts raw into a value with the same dynamic type as def.
func coerceLike(def any, raw string) (any, error) {
	switch def.(type) {
	case bool:
		return ParseBool(raw)
	case string:
		return raw, nil
	case time.Duration:
		return time.ParseDuration(raw)
	}

	t := reflect.TypeOf(def)
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		p := reflect.New(t)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return nil, err
		}
		return p.Elem().Interface(), nil
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		b, err := ParseBool(raw)
		if err != nil {
			return nil, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return nil, err
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return nil, err
		}
		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return nil, err
		}
		out.SetFloat(f)
	case reflect.String:
		out.SetString(raw)
	default:
		return nil, errUnsupportedTarget
	}
	return out.Interface(), nil
}

// targetName names the type a coercer produces, for error messages.
func targetName(c Coercer) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return "override type"
}

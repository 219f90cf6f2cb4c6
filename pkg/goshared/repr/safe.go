package repr

import (
	"fmt"
	"reflect"
	"strconv"
	"sync/atomic"
)

// Reprer is implemented by values that provide their own developer
// representation. An error moves rendering on to the display stage.
type Reprer interface {
	Repr() (string, error)
}

var defaultWalker = walker{max: DefaultMaxDepth}

// SafeText returns a human-readable rendering of v and never panics.
//
// The developer form is tried first: Repr, GoString, the literal form for
// nil, scalars and containers, then Describe for structured values. When
// that fails the display form is used: Error, String, then fmt.Sprint. When
// both fail the result is the NotPrintableError descriptor.
func SafeText(v any) string {
	return defaultWalker.safeText(v, 0)
}

// SafeTextStrict is SafeText for callers that need to know when both
// representations failed.
func SafeTextStrict(v any) (string, error) {
	s, err := defaultWalker.text(v, 0)
	if err != nil {
		return "", err
	}
	return s, nil
}

func (w walker) safeText(v any, depth int) string {
	s, err := w.text(v, depth)
	if err != nil {
		return err.Error()
	}
	return s
}

func (w walker) text(v any, depth int) (string, error) {
	if depth > w.max {
		return truncatedValueText, nil
	}

	leave, ok := enter(v)
	if !ok {
		return truncatedValueText, nil
	}
	defer leave()

	s, reprErr := w.developer(v, depth)
	if reprErr == nil {
		return s, nil
	}

	s, strErr := display(v)
	if strErr == nil {
		return s, nil
	}

	return "", &NotPrintableError{
		Type:    typeName(v),
		ID:      identity(v),
		ReprErr: reprErr,
		StrErr:  strErr,
	}
}

func (w walker) developer(v any, depth int) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if isNilPointer(v) {
				s, err = "nil", nil
				return
			}
			s, err = "", panicError(r)
		}
	}()

	switch x := v.(type) {
	case Reprer:
		return x.Repr()
	case fmt.GoStringer:
		return x.GoString(), nil
	}

	if s, ok := w.literal(v, depth); ok {
		return s, nil
	}

	if fields, ok := registeredFields(v); ok {
		return w.render(v, fields, newConfig(nil), depth)
	}
	if d, ok := v.(Describable); ok {
		return w.render(v, d.DescribeFields(), newConfig(nil), depth)
	}
	if hasTextMethod(v) {
		return "", errDisplayOnly
	}
	if fields, ok := fieldsOf(v); ok {
		return w.render(v, fields, newConfig(nil), depth)
	}
	return fmt.Sprintf("%+v", v), nil
}

func display(v any) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = "", panicError(r)
		}
	}()

	switch x := v.(type) {
	case error:
		return x.Error(), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return fmt.Sprint(v), nil
}

var nextID atomic.Uint64

// identity returns the address of v when it has one, otherwise the next
// value of a process-wide counter.
func identity(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if p := rv.Pointer(); p != 0 {
			return fmt.Sprintf("0x%x", p)
		}
	}
	return strconv.FormatUint(nextID.Add(1), 10)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

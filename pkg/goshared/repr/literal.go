package repr

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// walker carries the depth bound through one rendering.
type walker struct {
	max int
}

// literal renders nil, scalars, strings, slices, arrays and maps. Values
// with a String or Error method are left to the caller, except nil pointers.
func (w walker) literal(v any, depth int) (string, bool) {
	if v == nil {
		return "nil", true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "nil", true
		}
		return "", false
	}
	if hasTextMethod(v) {
		return "", false
	}

	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), true
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits()), true
	case reflect.String:
		return strconv.Quote(rv.String()), true
	case reflect.Slice, reflect.Array:
		return w.sequence(rv, depth), true
	case reflect.Map:
		return w.mapping(rv, depth), true
	}
	return "", false
}

func (w walker) sequence(rv reflect.Value, depth int) string {
	if rv.Len() == 0 {
		return "[]"
	}
	if depth >= w.max {
		return "[" + truncatedValueText + "]"
	}

	parts := make([]string, rv.Len())
	for i := range rv.Len() {
		parts[i] = w.safeText(elemInterface(rv.Index(i)), depth+1)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (w walker) mapping(rv reflect.Value, depth int) string {
	if rv.Len() == 0 {
		return "{}"
	}
	if depth >= w.max {
		return "{" + truncatedValueText + "}"
	}

	type entry struct{ key, value string }
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   w.safeText(elemInterface(iter.Key()), depth+1),
			value: w.safeText(elemInterface(iter.Value()), depth+1),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		b.WriteString(e.value)
	}
	b.WriteByte('}')
	return b.String()
}

// elemInterface returns the element as an interface value. Elements that
// cannot be exported through reflection (unexported struct fields reached
// through an array) are rendered by fmt instead.
func elemInterface(v reflect.Value) any {
	if !v.CanInterface() {
		return opaque(fmt.Sprint(v))
	}
	return v.Interface()
}

// opaque is pre-rendered text that must not be quoted again.
type opaque string

func (o opaque) GoString() string { return string(o) }

func hasTextMethod(v any) bool {
	switch v.(type) {
	case fmt.Stringer, error:
		return true
	}
	return false
}

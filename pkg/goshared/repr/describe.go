package repr

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/randalmurphal/goshared/pkg/goshared/registry"
	"github.com/randalmurphal/goshared/pkg/goshared/template"
)

// Field is one named attribute of a described value.
type Field struct {
	Name  string
	Value any
}

// Describable is implemented by values that choose their own attributes.
// Fields are rendered in the returned order.
type Describable interface {
	DescribeFields() []Field
}

// Namer is implemented by values that carry a name in addition to their
// type. The name follows the type name in the rendered output.
type Namer interface {
	ReprName() string
}

// describers maps a concrete type to the function listing its fields.
var describers = registry.New[reflect.Type, func(any) []Field]()

// Register installs fn as the attribute source for values of type T. It
// takes priority over Describable and struct fields. T must be a concrete
// type; registering again replaces the previous function.
func Register[T any](fn func(T) []Field) {
	describers.Register(reflect.TypeFor[T](), func(v any) []Field {
		return fn(v.(T))
	})
}

// Unregister removes the describer for T, if any.
func Unregister[T any]() {
	describers.Delete(reflect.TypeFor[T]())
}

var formatter = template.NewFormatter()

// Describe renders v structurally.
//
// nil, scalars, strings, slices and maps render in literal form. Structured
// values (registered types, Describable values, structs and funcs) render
// through the object template, default "<{obj_name} {attributes}>", with
// each attribute rendered through the attribute template using SafeText
// for the value. Anything else renders as SafeText(v).
//
// Attributes whose names begin with "_", attributes named by WithExclude,
// func-valued attributes and struct fields tagged `repr:"-"` are omitted.
//
// The only errors are template errors: an unknown placeholder or an
// unbalanced brace.
func Describe(v any, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	w := walker{max: cfg.maxDepth}

	if s, ok := w.literal(v, 0); ok {
		return s, nil
	}
	fields, ok := fieldsOf(v)
	if !ok {
		return w.safeText(v, 0), nil
	}
	return w.render(v, fields, cfg, 0)
}

// String is Describe with template errors replaced by SafeText(v).
func String(v any, opts ...Option) string {
	s, err := Describe(v, opts...)
	if err != nil {
		return SafeText(v)
	}
	return s
}

func (w walker) render(v any, fields []Field, cfg *config, depth int) (string, error) {
	attrs := make([]string, 0, len(fields))
	for _, f := range fields {
		if !cfg.keep(f) {
			continue
		}
		attr, err := formatter.Expand(cfg.attrFormat, map[string]any{
			"attr_name": f.Name,
			"attr_repr": w.safeText(f.Value, depth+1),
		})
		if err != nil {
			return "", err
		}
		attrs = append(attrs, attr)
	}

	return formatter.Expand(cfg.format, map[string]any{
		"obj_name":   objName(v),
		"attributes": strings.Join(attrs, cfg.join),
	})
}

func (c *config) keep(f Field) bool {
	if strings.HasPrefix(f.Name, "_") {
		return false
	}
	if _, ok := c.exclude[f.Name]; ok {
		return false
	}
	if f.Value != nil && reflect.TypeOf(f.Value).Kind() == reflect.Func {
		return false
	}
	return true
}

// fieldsOf lists the attributes of a structured value. ok is false for
// values that are not structured, and for values whose describer panics.
func fieldsOf(v any) (fields []Field, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fields, ok = nil, false
		}
	}()

	if v == nil {
		return nil, false
	}
	if fields, ok := registeredFields(v); ok {
		return fields, true
	}
	if d, ok := v.(Describable); ok {
		return d.DescribeFields(), true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structFields(rv), true
	case reflect.Func:
		return nil, true
	}
	return nil, false
}

// registeredFields consults the describer registry for the dynamic type,
// then for the pointed-to type.
func registeredFields(v any) ([]Field, bool) {
	t := reflect.TypeOf(v)
	if t == nil || describers.Len() == 0 {
		return nil, false
	}
	if fn, ok := describers.Get(t); ok {
		return fn(v), true
	}
	if t.Kind() == reflect.Pointer {
		rv := reflect.ValueOf(v)
		if rv.IsNil() {
			return nil, false
		}
		if fn, ok := describers.Get(t.Elem()); ok {
			return fn(rv.Elem().Interface()), true
		}
	}
	return nil, false
}

func structFields(rv reflect.Value) []Field {
	t := rv.Type()
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("repr"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, Field{Name: name, Value: rv.Field(i).Interface()})
	}
	return fields
}

// typeName is the name of v's type with pointers dereferenced. Unnamed
// types use their kind.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.Kind().String()
}

// objName is typeName followed by the value's own name, if it has one. A
// ReprName that panics leaves the bare type name.
func objName(v any) (name string) {
	name = typeName(v)
	defer func() {
		if r := recover(); r != nil {
			name = typeName(v)
		}
	}()

	if n, ok := v.(Namer); ok {
		if own := n.ReprName(); own != "" {
			return name + " " + own
		}
		return name
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func && !rv.IsNil() {
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return name + " " + fn.Name()
		}
	}
	return name
}

package template

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// bracePattern matches ${varname}.
	bracePattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

	// dollarPattern matches $varname up to a word boundary, so $port does not
	// match inside $portNumber.
	dollarPattern = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)(?:\b|$)`)
)

// Expander expands variable patterns in strings.
//
// Create with NewExpander or NewFormatter. An Expander is safe for concurrent
// use after construction.
type Expander struct {
	missingAction MissingAction
	braceStyle    bool
	dollarStyle   bool
	formatStyle   bool
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - MissingAction: MissingKeep
//   - BraceStyle: enabled (${var})
//   - DollarStyle: enabled ($var)
//   - FormatStyle: disabled ({var})
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		missingAction: MissingKeep,
		braceStyle:    true,
		dollarStyle:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFormatter creates an Expander for format-style templates such as
// "<{obj_name} {attributes}>". Only {var} placeholders are recognised and a
// missing variable is an error.
func NewFormatter(opts ...Option) *Expander {
	base := []Option{
		WithBraceStyle(false),
		WithDollarStyle(false),
		WithFormatStyle(true),
		WithMissingAction(MissingError),
	}
	return NewExpander(append(base, opts...)...)
}

// Expand expands variable patterns in s using vars.
//
// Errors are returned for missing variables under MissingError and for
// malformed format-style templates.
func (e *Expander) Expand(s string, vars map[string]any) (string, error) {
	if s == "" {
		return "", nil
	}

	result := s
	var missingVars []string

	// Format style runs first so substituted values are never re-scanned
	// for braces.
	if e.formatStyle {
		var err error
		result, err = e.expandFormat(result, vars, &missingVars)
		if err != nil {
			return "", err
		}
	}

	if e.braceStyle {
		result = bracePattern.ReplaceAllStringFunc(result, func(match string) string {
			return e.lookup(match, match[2:len(match)-1], vars, &missingVars)
		})
	}

	if e.dollarStyle {
		result = dollarPattern.ReplaceAllStringFunc(result, func(match string) string {
			return e.lookup(match, match[1:], vars, &missingVars)
		})
	}

	if len(missingVars) > 0 {
		return result, &UndefinedVariableError{Names: missingVars}
	}
	return result, nil
}

// lookup resolves one placeholder, applying the missing-variable policy.
func (e *Expander) lookup(match, name string, vars map[string]any, missing *[]string) string {
	if val, ok := vars[name]; ok {
		return fmt.Sprintf("%v", val)
	}
	switch e.missingAction {
	case MissingEmpty:
		return ""
	case MissingError:
		*missing = append(*missing, name)
		return match
	default: // MissingKeep
		return match
	}
}

// MustExpand expands variable patterns in s and panics on error.
func (e *Expander) MustExpand(s string, vars map[string]any) string {
	result, err := e.Expand(s, vars)
	if err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return result
}

// ExpandAll expands variable patterns in all strings.
// On error, returns nil and the first error.
func (e *Expander) ExpandAll(ss []string, vars map[string]any) ([]string, error) {
	if ss == nil {
		return nil, nil
	}

	results := make([]string, len(ss))
	for i, s := range ss {
		expanded, err := e.Expand(s, vars)
		if err != nil {
			return nil, err
		}
		results[i] = expanded
	}
	return results, nil
}

// ExpandMap expands variable patterns in all string values of a map,
// recursing into nested maps and string slices. Other values are copied as-is.
// On error, returns nil and the first error.
func (e *Expander) ExpandMap(m map[string]any, vars map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		expanded, err := e.expandValue(v, vars)
		if err != nil {
			return nil, err
		}
		result[k] = expanded
	}
	return result, nil
}

func (e *Expander) expandValue(v any, vars map[string]any) (any, error) {
	switch val := v.(type) {
	case string:
		return e.Expand(val, vars)
	case map[string]any:
		return e.ExpandMap(val, vars)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			expanded, err := e.expandValue(item, vars)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	default:
		return v, nil
	}
}

// UndefinedVariableError is returned when MissingError is set and
// one or more variables are not found.
type UndefinedVariableError struct {
	// Names is the list of undefined variable names.
	Names []string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined variable: %s", e.Names[0])
	}
	return fmt.Sprintf("undefined variables: %s", strings.Join(e.Names, ", "))
}

var defaultExpander = NewExpander()

// Expand expands ${var} and $var in s using the default expander.
// Missing variables stay as-is.
func Expand(s string, vars map[string]any) string {
	result, _ := defaultExpander.Expand(s, vars)
	return result
}

// ExpandMap expands all string values using the default expander.
func ExpandMap(m map[string]any, vars map[string]any) map[string]any {
	result, _ := defaultExpander.ExpandMap(m, vars)
	return result
}

var defaultFormatter = NewFormatter()

// Format expands a format-style template such as "{attr_name}={attr_repr}".
// Unknown placeholders and malformed braces are errors.
func Format(tmpl string, vars map[string]any) (string, error) {
	return defaultFormatter.Expand(tmpl, vars)
}

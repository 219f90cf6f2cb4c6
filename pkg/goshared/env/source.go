package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Source is a read-only view of a name to value store.
type Source interface {
	Lookup(name string) (string, bool)
}

// Lister is a Source that can enumerate its variable names.
type Lister interface {
	Source
	Names() []string
}

// OSSource reads the process environment.
type OSSource struct{}

// Lookup implements Source.
func (OSSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Names returns the sorted names of the process environment.
func (OSSource) Names() []string {
	environ := os.Environ()
	names := make([]string, 0, len(environ))
	for _, kv := range environ {
		if name, _, ok := strings.Cut(kv, "="); ok && name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// MapSource is a fixed snapshot of variables.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Names returns the sorted variable names.
func (m MapSource) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(name string) (string, bool)

// Lookup implements Source.
func (f SourceFunc) Lookup(name string) (string, bool) {
	return f(name)
}

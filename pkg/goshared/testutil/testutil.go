// Package testutil provides test fixtures: collision-free environment
// variable names, throwaway directories and random data.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/randalmurphal/goshared/pkg/goshared/strutil"
)

const envNameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UniqueEnvName returns prefix followed by a random upper-case suffix, e.g.
// "GOSHARED_TEST_4QZ0K7M2XW1B". The name is not checked against the
// environment; use UnsetEnvName for that.
func UniqueEnvName(prefix string) string {
	if prefix == "" {
		prefix = "GOSHARED_TEST"
	}
	return strings.ToUpper(prefix) + "_" + strutil.RanStr(12, strutil.WithChars(envNameChars))
}

// UnsetEnvName returns a unique name that is not set in the environment.
func UnsetEnvName(t testing.TB, prefix string) string {
	t.Helper()
	for range 100 {
		name := UniqueEnvName(prefix)
		if _, ok := os.LookupEnv(name); !ok {
			return name
		}
	}
	t.Fatalf("testutil: no unset environment name with prefix %q", prefix)
	return ""
}

// SetEnv sets a fresh, unique variable to value for the duration of the test
// and returns its name. Like t.Setenv it cannot be used in parallel tests.
func SetEnv(t testing.TB, prefix, value string) string {
	t.Helper()
	name := UnsetEnvName(t, prefix)
	t.Setenv(name, value)
	return name
}

// TempDir creates a directory with a random name under the OS temp
// directory and removes it when the test finishes.
func TempDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(os.TempDir(), "goshared-"+strutil.RanStr(15))
	if err := os.Mkdir(dir, 0o750); err != nil {
		t.Fatalf("testutil: create temp dir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})
	return dir
}

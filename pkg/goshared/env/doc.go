/*
Package env resolves environment variables to typed values.

# Resolution Order

Resolve looks the variable up once and picks a type, first match wins:

 1. Absent: the default is returned unchanged, including a nil default.
 2. WithType: the override Coercer converts the raw text.
 3. Non-nil WithDefault: the raw text is converted to the default's dynamic
    type (bool, integer and float kinds, string kinds, time.Duration, or any
    type whose pointer implements encoding.TextUnmarshaler).
 4. Otherwise Infer guesses bool, int, float64, then string.

	port, _ := env.Resolve("PORT", env.WithDefault(8080))      // int
	ratio, _ := env.Resolve("RATIO", env.WithType(env.Float))  // float64
	anything, _ := env.Resolve("MODE")                         // inferred

	timeout, err := env.Get("TIMEOUT", 30*time.Second)         // time.Duration

# Booleans

Boolean conversion accepts the truthy set {1, true, yes, on} and the falsy
set {0, false, no, off}, case-insensitively. Anything else is an
*InvalidBooleanError. Inference without a default is narrower: only "true"
and "false" become booleans, so "1" infers as the integer 1.

# Numbers

Inference treats a non-empty run of ASCII digits as an int. A decimal needs
exactly one dot with digits after it and digits or nothing before it: "1.5"
and ".5" are floats, "123." and "1.2.3" stay strings. Signs are not
inferred; "-5" stays a string unless a default or override asks for a number.

# Errors

ErrMissingName, *InvalidBooleanError and *CoercionError are returned as soon
as they happen. A default is only ever used for an absent variable.

# Sources

Lookup reads from a Source. OSSource reads the process environment and
MapSource a fixed snapshot, which keeps tests independent of the real
environment. Each Resolve performs a single read.
*/
package env

/*
Package goshared is a collection of small helpers shared across services
and command-line tools.

# Overview

The two core packages are:

  - env: typed environment variable lookups with inference, typed
    defaults and explicit coercers
  - repr: text for arbitrary values that never fails, plus structured
    descriptions of objects

Around them sit supporting packages:

  - config: typed access to map-shaped configuration from YAML, JSON or
    prefixed environment variables
  - logging: named slog loggers writing to stderr and a rotated file
  - shell: observed command runs with timeouts and retries
  - terminal: centred lines and column layout for the terminal width
  - jwt: JWT shape checks
  - strutil, ulist, template, registry, errors, observability, testutil

# Environment Lookups

	port, err := env.Get("PORT", 8080)              // int, from the default
	debug, err := env.Resolve("DEBUG")              // true, 1, 0.5 or "text"
	addr, err := env.Resolve("BIND", env.WithType(env.As(netip.ParseAddr)))

A variable that is present but cannot be converted is an error; the
default only applies when the variable is absent.

# Safe Text

	repr.SafeText(v)        // developer form, then display form, then a descriptor
	repr.Describe(server)   // <Server Name="api", Port=8080>

Panics raised by a value's own text methods are recovered.
*/
package goshared

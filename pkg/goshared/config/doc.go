/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches by returning default values. Values usually
come from a YAML or JSON file, from prefixed environment variables, or from a
merge of both.

	cfg := config.New(map[string]any{
	    "timeout": "30s",
	    "retries": 3,
	    "enabled": "yes",
	})

	timeout := cfg.Duration("timeout", 10*time.Second) // 30s
	retries := cfg.Int("retries", 5)                   // 3
	enabled := cfg.Bool("enabled", false)              // true
	missing := cfg.String("missing", "default")        // "default"

# Sources

	file, err := config.FromFile("goshared.yaml")     // .yaml, .yml or .json
	fromEnv := config.FromEnv("GOSHARED_LOG_", nil)   // process environment
	cfg := config.Merge(fromEnv, file.Sub("log"))     // file wins

FromEnv strips the prefix, lower-cases the rest and types each value with
env.Infer.

# Thread Safety

Config is safe for concurrent read access. Merge and Expand return new
maps and never modify their inputs.
*/
package config

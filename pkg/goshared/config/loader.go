package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/goshared/pkg/goshared/env"
)

// FromFile loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}

// FromEnv collects the variables of src whose names start with prefix.
// Keys are the lower-cased names without the prefix; values are typed by
// env inference, so "8080" becomes an int and "true" a bool.
//
//	// GOSHARED_LOG_LEVEL=INFO GOSHARED_LOG_JSON=true
//	cfg := config.FromEnv("GOSHARED_LOG_", env.OSSource{})
//	cfg.String("level", "DEBUG") // "INFO"
//	cfg.Bool("json", false)      // true
//
// A nil src reads the process environment.
func FromEnv(prefix string, src env.Lister) Config {
	if src == nil {
		src = env.OSSource{}
	}

	data := make(map[string]any)
	for _, name := range src.Names() {
		if !strings.HasPrefix(name, prefix) || name == prefix {
			continue
		}
		raw, ok := src.Lookup(name)
		if !ok {
			continue
		}
		data[strings.ToLower(strings.TrimPrefix(name, prefix))] = env.Infer(raw)
	}
	return New(data)
}

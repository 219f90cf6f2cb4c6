package logging

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/randalmurphal/goshared/pkg/goshared/config"
)

// EnvPrefix is the prefix of the environment variables read by ConfigFromEnv.
const EnvPrefix = "GOSHARED_"

// Defaults used when neither the environment nor a config file sets a value.
const (
	DefaultName      = "goshared"
	DefaultFile      = "/tmp/goshared.log"
	DefaultLevel     = "DEBUG"
	DefaultMaxSizeMB = 10
	DefaultMaxFiles  = 5
)

const mib = 1024 * 1024

// Config describes how loggers are built.
type Config struct {
	// Name is the name of the default logger.
	Name string `validate:"required"`

	// Level is a level name such as DEBUG, INFO, WARNING or ERROR.
	Level string `validate:"required,loglevel"`

	// File is the rotated log file. Required when FileEnabled is set.
	File string `validate:"required_if=FileEnabled true"`

	// FileEnabled adds the rotated file next to stderr.
	FileEnabled bool

	// JSON selects JSON records instead of key=value text.
	JSON bool

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `validate:"gte=1"`

	// MaxFiles is the number of rotated files kept. Zero keeps all of them.
	MaxFiles int `validate:"gte=0"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Name:        DefaultName,
		Level:       DefaultLevel,
		File:        DefaultFile,
		FileEnabled: true,
		MaxSizeMB:   DefaultMaxSizeMB,
		MaxFiles:    DefaultMaxFiles,
	}
}

// ConfigFrom reads a Config from c, falling back to DefaultConfig for
// missing keys. Keys match the environment variable names without the
// GOSHARED_ prefix, lower-cased:
//
//	log_name, log_file, log_level, log_json,
//	max_log_size (bytes), max_log_files, file_logging_enabled
func ConfigFrom(c config.Config) Config {
	d := DefaultConfig()
	return Config{
		Name:        c.String("log_name", d.Name),
		Level:       strings.ToUpper(c.String("log_level", d.Level)),
		File:        c.String("log_file", d.File),
		FileEnabled: c.Bool("file_logging_enabled", d.FileEnabled),
		JSON:        c.Bool("log_json", d.JSON),
		MaxSizeMB:   megabytes(c.Int("max_log_size", d.MaxSizeMB*mib)),
		MaxFiles:    c.Int("max_log_files", d.MaxFiles),
	}
}

// ConfigFromEnv reads a Config from the GOSHARED_* process environment.
func ConfigFromEnv() Config {
	return ConfigFrom(config.FromEnv(EnvPrefix, nil))
}

// megabytes rounds a byte count up to whole MiB.
func megabytes(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + mib - 1) / mib
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level. Names are matched
// without regard to case; WARNING and CRITICAL are accepted next to the
// slog names, and slog offsets such as "INFO+2" work too.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WARNING":
		return slog.LevelWarn, nil
	case "CRITICAL":
		return slog.LevelError + 4, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/randalmurphal/goshared/pkg/goshared/registry"
)

var (
	mu            sync.Mutex
	base          Config
	defaultLogger *slog.Logger

	loggers = registry.New[string, *slog.Logger]()
	files   = registry.New[string, *lumberjack.Logger]()

	// stderr is the console destination of every logger.
	stderr io.Writer = os.Stderr
)

// Option adjusts the Config of a named logger.
type Option func(*Config)

// WithLevel sets the logger's level.
func WithLevel(level string) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithFile sets the logger's rotated file and enables file logging.
func WithFile(path string) Option {
	return func(c *Config) {
		c.File = path
		c.FileEnabled = true
	}
}

// WithFileLogging turns the rotated file on or off.
func WithFileLogging(enabled bool) Option {
	return func(c *Config) {
		c.FileEnabled = enabled
	}
}

// WithJSON selects JSON output.
func WithJSON(enabled bool) Option {
	return func(c *Config) {
		c.JSON = enabled
	}
}

// Init builds the default logger from cfg and installs it as the slog
// default. Only the first successful call configures anything; later calls
// return the existing logger.
func Init(cfg Config) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(cfg)
}

func initLocked(cfg Config) (*slog.Logger, error) {
	if defaultLogger != nil {
		return defaultLogger, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := build(cfg)
	if err != nil {
		return nil, err
	}

	base = cfg
	defaultLogger = logger
	loggers.Register(cfg.Name, logger)
	slog.SetDefault(logger)
	return logger, nil
}

// Default returns the default logger, initialising it from the environment
// on first use. An invalid environment falls back to a stderr-only logger
// and records why.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if defaultLogger != nil {
		return defaultLogger
	}

	cfg := ConfigFromEnv()
	logger, err := initLocked(cfg)
	if err == nil {
		return logger
	}

	fallback := DefaultConfig()
	fallback.FileEnabled = false
	logger = consoleOnly(fallback)
	logger.Warn("logging config rejected, using stderr only", "error", err)

	base = fallback
	defaultLogger = logger
	loggers.Register(fallback.Name, logger)
	slog.SetDefault(logger)
	return logger
}

// Get returns the logger called name, creating it on first use from the
// default configuration plus opts. Options are ignored once the logger
// exists. An empty name, or the default logger's name, returns Default().
func Get(name string, opts ...Option) *slog.Logger {
	def := Default()

	mu.Lock()
	cfg := base
	mu.Unlock()

	if name == "" || name == cfg.Name {
		return def
	}

	return loggers.GetOrCreate(name, func() *slog.Logger {
		cfg.Name = name
		for _, opt := range opts {
			opt(&cfg)
		}
		if err := cfg.Validate(); err != nil {
			logger := consoleOnly(cfg)
			logger.Warn("logging options rejected, using stderr only", "error", err)
			return logger
		}
		logger, err := build(cfg)
		if err != nil {
			logger = consoleOnly(cfg)
			logger.Warn("file logging unavailable", "file", cfg.File, "error", err)
		}
		return logger
	})
}

// Reset closes every rotated file and forgets all loggers, so the next
// Init or Default starts over.
func Reset() error {
	mu.Lock()
	defer mu.Unlock()

	var errs []error
	files.Range(func(path string, f *lumberjack.Logger) bool {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", path, err))
		}
		return true
	})
	for _, path := range files.Keys() {
		files.Delete(path)
	}
	for _, name := range loggers.Keys() {
		loggers.Delete(name)
	}

	base = Config{}
	defaultLogger = nil
	return errors.Join(errs...)
}

func build(cfg Config) (*slog.Logger, error) {
	if !cfg.FileEnabled {
		return consoleOnly(cfg), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file := files.GetOrCreate(cfg.File, func() *lumberjack.Logger {
		return &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxFiles,
		}
	})
	return newLogger(cfg, io.MultiWriter(stderr, file)), nil
}

func consoleOnly(cfg Config) *slog.Logger {
	return newLogger(cfg, stderr)
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("logger", cfg.Name)
}

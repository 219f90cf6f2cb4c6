package shell

import (
	"io"
	"log/slog"
	"time"

	gerrors "github.com/randalmurphal/goshared/pkg/goshared/errors"
	"github.com/randalmurphal/goshared/pkg/goshared/observability"
)

// runConfig holds the settings shared by every run of a Runner.
type runConfig struct {
	dir         string
	env         []string
	timeout     time.Duration
	retry       gerrors.RetryConfig
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	tracing     bool
	stdout      io.Writer
	stderr      io.Writer
	passthrough bool
}

func defaultRunConfig() runConfig {
	return runConfig{
		retry:   gerrors.NoRetry,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a Runner.
type Option func(*runConfig)

// WithDir sets the working directory of commands.
func WithDir(dir string) Option {
	return func(c *runConfig) {
		c.dir = dir
	}
}

// WithEnv adds KEY=value pairs on top of the process environment.
func WithEnv(kv ...string) Option {
	return func(c *runConfig) {
		c.env = append(c.env, kv...)
	}
}

// WithTimeout limits each attempt. A command still running when the
// timeout fires is killed and reported as *errors.TimeoutError.
func WithTimeout(d time.Duration) Option {
	return func(c *runConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetry retries failed attempts. Timeouts are retryable by default;
// non-zero exits are not unless cfg.RetryableFunc says so.
//
// Example:
//
//	r := shell.NewRunner(
//	    shell.WithTimeout(5*time.Second),
//	    shell.WithRetry(errors.NewRetryConfig(errors.WithMaxAttempts(3))),
//	)
func WithRetry(cfg gerrors.RetryConfig) Option {
	return func(c *runConfig) {
		c.retry = cfg
	}
}

// WithLogger sets the logger. Default: slog.Default() at run time.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics records one command metric per run. A nil recorder records
// nothing.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *runConfig) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		c.metrics = m
	}
}

// WithTracing starts a span per run using the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(c *runConfig) {
		c.tracing = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager starts spans through sm. A nil sm disables tracing.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(c *runConfig) {
		c.tracing = sm != nil
		if sm == nil {
			sm = observability.NoopSpanManager{}
		}
		c.spans = sm
	}
}

// WithStdout sets where passthrough output goes. Default: os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *runConfig) {
		c.stdout = w
	}
}

// WithStderr sets where passthrough errors go. Default: os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(c *runConfig) {
		c.stderr = w
	}
}

// WithPassthrough streams output instead of capturing it. The exit status
// is not checked and Run returns a nil Result.
func WithPassthrough() Option {
	return func(c *runConfig) {
		c.passthrough = true
	}
}

// Package shell runs external commands with captured output, timeouts,
// retries and run-level observability.
//
// Commands given as a single string are split with POSIX shell word rules
// and executed directly, without a shell:
//
//	res, err := shell.Run(ctx, `git log -1 --format="%H %s"`)
//	if err != nil {
//	    var exitErr *shell.ExitError
//	    if errors.As(err, &exitErr) {
//	        fmt.Println(exitErr.ExitCode, exitErr.Stderr)
//	    }
//	}
//	fmt.Print(res.Stdout)
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	gerrors "github.com/randalmurphal/goshared/pkg/goshared/errors"
	"github.com/randalmurphal/goshared/pkg/goshared/observability"
)

// ErrEmptyCommand is returned when there is nothing to run.
var ErrEmptyCommand = errors.New("empty command")

// waitDelay bounds how long Wait blocks on output pipes after a timed-out
// process is killed, since its children may still hold them open.
const waitDelay = 500 * time.Millisecond

// Result is the outcome of a captured run.
type Result struct {
	// RunID identifies the run in logs, spans and errors.
	RunID string

	Args   []string
	Stdout string
	Stderr string

	// ExitCode is -1 when the process never exited normally.
	ExitCode int

	// Duration covers all attempts, backoff included.
	Duration time.Duration

	Attempts int
}

// ExitError reports a captured command that exited with a non-zero status.
type ExitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Runner executes commands with a fixed configuration. It is safe for
// concurrent use.
type Runner struct {
	cfg runConfig
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{cfg: cfg}
}

// Run splits command into words and runs it.
func (r *Runner) Run(ctx context.Context, command string) (*Result, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("split command: %w", err)
	}
	return r.RunArgs(ctx, args)
}

// RunArgs runs args[0] with the remaining arguments.
//
// In capture mode a non-zero exit returns the Result together with an
// *ExitError. With retries configured, the final error is an
// *errors.CategorizedError wrapping the last attempt's error. The Result
// is returned whenever the process ran, even on failure.
func (r *Runner) RunArgs(ctx context.Context, args []string) (result *Result, runErr error) {
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	args = slices.Clone(args)

	runID := uuid.NewString()
	logger := r.logger()
	elapsed := observability.TimedOperation()
	start := time.Now()

	observability.LogCommandStart(logger, runID, args)

	var span trace.Span
	if r.cfg.tracing {
		ctx, span = r.cfg.spans.StartCommandSpan(ctx, runID, args)
		defer func() {
			r.cfg.spans.EndSpanWithError(span, runErr)
		}()
	}

	result, attempts, runErr := r.runAttempts(ctx, args, runID, logger)
	if result != nil {
		result.Duration = time.Since(start)
		result.Attempts = attempts
	}

	r.cfg.metrics.RecordCommand(ctx, observability.CommandName(args), time.Since(start), runErr)

	exitCode := -1
	if result != nil {
		exitCode = result.ExitCode
	}
	if runErr != nil {
		observability.LogCommandError(logger, runID, runErr, exitCode, elapsed())
	} else {
		observability.LogCommandComplete(logger, runID, exitCode, elapsed())
	}

	if r.cfg.passthrough {
		return nil, runErr
	}
	return result, runErr
}

func (r *Runner) runAttempts(ctx context.Context, args []string, runID string, logger *slog.Logger) (*Result, int, error) {
	attempt := 0
	once := func(ctx context.Context) (*Result, error) {
		attempt++
		res, err := r.attempt(ctx, args, runID)
		observability.EnrichLogger(logger, runID, observability.CommandName(args), attempt).
			Debug("command attempt finished", slog.Int("exit_code", res.ExitCode), slog.Bool("ok", err == nil))
		return res, err
	}

	if r.cfg.retry.MaxAttempts <= 1 {
		res, err := once(ctx)
		return res, 1, err
	}

	cfg := r.cfg.retry
	onRetry := cfg.OnRetry
	cfg.OnRetry = func(n int, err error, backoff time.Duration) {
		observability.LogRetry(logger, runID, n, err, backoff)
		r.cfg.spans.AddSpanEvent(ctx, "retry",
			attribute.Int("attempt", n),
			attribute.String("error", err.Error()),
		)
		if onRetry != nil {
			onRetry(n, err, backoff)
		}
	}

	out := gerrors.WithRetryContext(ctx, cfg, once)
	return out.Value, out.Attempts, out.Err
}

// attempt runs the command once. The returned Result is non-nil.
func (r *Runner) attempt(ctx context.Context, args []string, runID string) (*Result, error) {
	runCtx := ctx
	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, args[0], args[1:]...)
	cmd.Dir = r.cfg.dir
	cmd.WaitDelay = waitDelay
	if len(r.cfg.env) > 0 {
		cmd.Env = append(os.Environ(), r.cfg.env...)
	}

	var stdout, stderr bytes.Buffer
	if r.cfg.passthrough {
		cmd.Stdout = writerOr(r.cfg.stdout, os.Stdout)
		cmd.Stderr = writerOr(r.cfg.stderr, os.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()

	res := &Result{
		RunID:    runID,
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return res, &gerrors.TimeoutError{Operation: strings.Join(args, " "), Timeout: r.cfg.timeout}
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		if r.cfg.passthrough {
			return res, nil
		}
		return res, &ExitError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	case ctx.Err() != nil:
		return res, ctx.Err()
	default:
		return res, fmt.Errorf("start %s: %w", args[0], err)
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.cfg.logger != nil {
		return r.cfg.logger
	}
	return slog.Default()
}

func writerOr(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}

var defaultRunner = NewRunner()

// Run runs command with the default Runner.
func Run(ctx context.Context, command string) (*Result, error) {
	return defaultRunner.Run(ctx, command)
}

// RunArgs runs args with the default Runner.
func RunArgs(ctx context.Context, args []string) (*Result, error) {
	return defaultRunner.RunArgs(ctx, args)
}

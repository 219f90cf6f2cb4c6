package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	gerrors "github.com/randalmurphal/goshared/pkg/goshared/errors"
	"github.com/randalmurphal/goshared/pkg/goshared/shell"
	"github.com/randalmurphal/goshared/pkg/goshared/strutil"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		timeout  time.Duration
		attempts int
		stream   bool
		showTime bool
		trace    bool
		dir      string
	)

	cmd := &cobra.Command{
		Use:   "run -- COMMAND [ARG...]",
		Short: "Run a command with logging, timeouts and retries",
		Long: `Run a command with logging, timeouts and retries.

A single argument is split with shell word rules; several arguments are
used as given. Captured output is printed after the command finishes;
--stream passes it through live and ignores the exit status.`,
		Example: `  goshared run --timeout 5s --attempts 3 -- curl -fsS https://example.com
  goshared run "ls -la /tmp"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []shell.Option{
				shell.WithLogger(a.logger),
				shell.WithTimeout(timeout),
				shell.WithDir(dir),
				shell.WithTracing(trace),
			}
			if trace {
				shutdown, err := installTracer(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer shutdown()
			}
			if attempts > 1 {
				opts = append(opts, shell.WithRetry(gerrors.NewRetryConfig(gerrors.WithMaxAttempts(attempts))))
			}
			if stream {
				opts = append(opts,
					shell.WithPassthrough(),
					shell.WithStdout(cmd.OutOrStdout()),
					shell.WithStderr(cmd.ErrOrStderr()),
				)
			}
			runner := shell.NewRunner(opts...)

			start := time.Now()
			var (
				res *shell.Result
				err error
			)
			if len(args) == 1 {
				res, err = runner.Run(cmd.Context(), args[0])
			} else {
				res, err = runner.RunArgs(cmd.Context(), args)
			}

			if res != nil {
				fmt.Fprint(cmd.OutOrStdout(), res.Stdout)
				fmt.Fprint(cmd.ErrOrStderr(), res.Stderr)
			}
			if showTime {
				fmt.Fprintf(cmd.ErrOrStderr(), "took %s\n", strutil.HumanDuration(time.Since(start)))
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "kill each attempt after this long")
	cmd.Flags().IntVar(&attempts, "attempts", 1, "maximum attempts; timeouts are retried")
	cmd.Flags().BoolVar(&stream, "stream", false, "stream output instead of capturing it")
	cmd.Flags().BoolVar(&showTime, "time", false, "print the elapsed time to stderr")
	cmd.Flags().BoolVar(&trace, "trace", false, "print an OpenTelemetry span for the run to stderr")
	cmd.Flags().StringVar(&dir, "dir", "", "working directory")
	return cmd
}

// installTracer sends spans to w through the global tracer provider. The
// returned function flushes and stops the provider.
func installTracer(w io.Writer) (func(), error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(provider)

	return func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}

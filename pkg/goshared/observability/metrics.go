package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScopeName is the instrumentation scope for goshared meters and tracers.
const ScopeName = "goshared"

// MetricsRecorder records command metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCommand records one command attempt with its duration and
	// error status.
	RecordCommand(ctx context.Context, command string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	executions metric.Int64Counter
	latency    metric.Float64Histogram
	errors     metric.Int64Counter
}

// newOtelMetrics creates the command instruments on meter.
func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	executions, err := meter.Int64Counter("goshared.command.executions",
		metric.WithDescription("Number of command executions"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("goshared.command.latency_ms",
		metric.WithDescription("Command execution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	errCounter, err := meter.Int64Counter("goshared.command.errors",
		metric.WithDescription("Number of failed command executions"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		executions: executions,
		latency:    latency,
		errors:     errCounter,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses the global OTel
// meter provider. Configure the provider before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	return NewMetricsRecorderWithMeter(otel.Meter(ScopeName))
}

// NewMetricsRecorderWithMeter returns a MetricsRecorder using meter.
// If instrument creation fails, returns a no-op recorder.
func NewMetricsRecorderWithMeter(meter metric.Meter) MetricsRecorder {
	m, err := newOtelMetrics(meter)
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCommand records a command attempt.
func (m *otelMetrics) RecordCommand(ctx context.Context, command string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("command", command),
		attribute.Bool("success", err == nil),
	)

	m.executions.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if err != nil {
		m.errors.Add(ctx, 1, attrs)
	}
}

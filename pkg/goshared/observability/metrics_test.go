package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns its reader.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	})
	return reader, provider
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumFor returns the counter value for the given command attribute.
func sumFor(t *testing.T, m *metricdata.Metrics, command string) int64 {
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")

	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value("command"); ok && v.AsString() == command {
			total += dp.Value
		}
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	_, provider := setupMetricsTest(t)

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { otel.SetMeterProvider(original) })

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordCommand(t *testing.T) {
	reader, provider := setupMetricsTest(t)
	recorder := NewMetricsRecorderWithMeter(provider.Meter(ScopeName))
	ctx := context.Background()

	t.Run("records execution count", func(t *testing.T) {
		recorder.RecordCommand(ctx, "echo", 50*time.Millisecond, nil)
		recorder.RecordCommand(ctx, "echo", 10*time.Millisecond, nil)

		metric := findMetric(collectMetrics(t, reader), "goshared.command.executions")
		require.NotNil(t, metric)
		assert.Equal(t, int64(2), sumFor(t, metric, "echo"))
	})

	t.Run("records latency", func(t *testing.T) {
		recorder.RecordCommand(ctx, "sleep", 100*time.Millisecond, nil)

		metric := findMetric(collectMetrics(t, reader), "goshared.command.latency_ms")
		require.NotNil(t, metric)

		hist, ok := metric.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		require.NotEmpty(t, hist.DataPoints)
		assert.Equal(t, "ms", metric.Unit)
	})

	t.Run("records errors when present", func(t *testing.T) {
		recorder.RecordCommand(ctx, "false", 10*time.Millisecond, errors.New("exit status 1"))

		metric := findMetric(collectMetrics(t, reader), "goshared.command.errors")
		require.NotNil(t, metric)
		assert.Equal(t, int64(1), sumFor(t, metric, "false"))
		assert.Equal(t, int64(0), sumFor(t, metric, "echo"))
	})
}

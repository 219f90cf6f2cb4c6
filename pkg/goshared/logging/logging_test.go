package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr redirects console output to a buffer and restores package
// state after the test.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	require.NoError(t, Reset())

	var buf bytes.Buffer
	prevStderr, prevDefault := stderr, slog.Default()
	stderr = &buf
	t.Cleanup(func() {
		assert.NoError(t, Reset())
		stderr = prevStderr
		slog.SetDefault(prevDefault)
	})
	return &buf
}

func consoleConfig() Config {
	cfg := DefaultConfig()
	cfg.FileEnabled = false
	return cfg
}

func TestInit_ConsoleOnly(t *testing.T) {
	buf := captureStderr(t)

	logger, err := Init(consoleConfig())
	require.NoError(t, err)

	logger.Info("hello", "k", 1)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "logger=goshared")
	assert.Contains(t, out, "k=1")
	assert.Same(t, logger, slog.Default())
}

func TestInit_Idempotent(t *testing.T) {
	captureStderr(t)

	first, err := Init(consoleConfig())
	require.NoError(t, err)

	other := consoleConfig()
	other.Name = "ignored"
	second, err := Init(other)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, Default())
}

func TestInit_Invalid(t *testing.T) {
	captureStderr(t)

	cfg := consoleConfig()
	cfg.Level = "LOUD"
	_, err := Init(cfg)
	require.Error(t, err)

	// A failed Init leaves the package uninitialised.
	logger, err := Init(consoleConfig())
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureStderr(t)

	cfg := consoleConfig()
	cfg.Level = "WARNING"
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestInit_JSON(t *testing.T) {
	buf := captureStderr(t)

	cfg := consoleConfig()
	cfg.JSON = true
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Error("boom", "code", 7)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["msg"])
	assert.Equal(t, "goshared", record["logger"])
	assert.Equal(t, 7.0, record["code"])
}

func TestInit_RotatedFile(t *testing.T) {
	buf := captureStderr(t)

	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "nested", "app.log")
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("to both")
	require.NoError(t, Reset())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to both\"")
	assert.Contains(t, buf.String(), "msg=\"to both\"")
}

func TestDefault_FromEnvironment(t *testing.T) {
	buf := captureStderr(t)
	t.Setenv("GOSHARED_LOG_NAME", "envlogger")
	t.Setenv("GOSHARED_LOG_LEVEL", "INFO")
	t.Setenv("GOSHARED_FILE_LOGGING_ENABLED", "false")

	logger := Default()
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "logger=envlogger")
	assert.Same(t, logger, Get("envlogger"))
	assert.Same(t, logger, Get(""))
}

func TestDefault_InvalidEnvironmentFallsBack(t *testing.T) {
	buf := captureStderr(t)
	t.Setenv("GOSHARED_LOG_LEVEL", "LOUD")
	t.Setenv("GOSHARED_FILE_LOGGING_ENABLED", "false")

	logger := Default()
	require.NotNil(t, logger)

	assert.Contains(t, buf.String(), "logging config rejected")
	assert.Same(t, logger, Default())
	assert.Same(t, logger, slog.Default())
}

func TestGet_Named(t *testing.T) {
	buf := captureStderr(t)
	_, err := Init(consoleConfig())
	require.NoError(t, err)

	worker := Get("worker", WithLevel("ERROR"))
	assert.Same(t, worker, Get("worker"))
	assert.NotSame(t, worker, Default())

	worker.Warn("filtered")
	worker.Error("kept")

	out := buf.String()
	assert.NotContains(t, out, "filtered")
	assert.Contains(t, out, "logger=worker")
}

func TestGet_InvalidOptionFallsBack(t *testing.T) {
	buf := captureStderr(t)
	_, err := Init(consoleConfig())
	require.NoError(t, err)

	logger := Get("odd", WithLevel("LOUD"))
	require.NotNil(t, logger)
	assert.Contains(t, buf.String(), "logging options rejected")
}

func TestGet_SharedFile(t *testing.T) {
	captureStderr(t)
	_, err := Init(consoleConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "shared.log")
	a := Get("a", WithFile(path))
	b := Get("b", WithFile(path), WithJSON(true))

	a.Info("from a")
	b.Info("from b")

	assert.Equal(t, 1, files.Len())
	require.NoError(t, Reset())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger=a")
	assert.Contains(t, string(data), `"logger":"b"`)
}

func TestGet_Concurrent(t *testing.T) {
	captureStderr(t)
	_, err := Init(consoleConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*slog.Logger, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Get("same", WithFileLogging(false))
		}()
	}
	wg.Wait()

	for _, l := range got {
		assert.Same(t, got[0], l)
	}
}

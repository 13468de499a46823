package observability

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func readLogLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestNewLoggerWritesCombinedAndErrorFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeLogger, err := NewLogger(LogConfig{Level: "info", Format: "json", Dir: dir}, "calculator-microservice")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("addition operation requested")
	logger.Error("Cannot divide by zero")
	closeLogger()

	combined := readLogLines(t, filepath.Join(dir, CombinedLogFile))
	require.Len(t, combined, 2)
	assert.Equal(t, "addition operation requested", combined[0]["message"])
	assert.Equal(t, "info", combined[0]["level"])
	assert.Equal(t, "calculator-microservice", combined[0]["service"])
	assert.Equal(t, "Cannot divide by zero", combined[1]["message"])

	errorsOnly := readLogLines(t, filepath.Join(dir, ErrorLogFile))
	require.Len(t, errorsOnly, 1)
	assert.Equal(t, "error", errorsOnly[0]["level"])
	assert.Equal(t, "Cannot divide by zero", errorsOnly[0]["message"])
}

func TestNewLoggerAppendsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	cfg := LogConfig{Level: "info", Format: "console", Dir: dir}

	for i := 0; i < 2; i++ {
		logger, closeLogger, err := NewLogger(cfg, "svc")
		require.NoError(t, err)
		logger.Info("started")
		closeLogger()
	}

	assert.Len(t, readLogLines(t, filepath.Join(dir, CombinedLogFile)), 2)
}

func TestNewLoggerWithoutDirSkipsFiles(t *testing.T) {
	logger, closeLogger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, "svc")
	require.NoError(t, err)
	defer closeLogger()

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLoggerRejectsBadConfig(t *testing.T) {
	_, _, err := NewLogger(LogConfig{Level: "loud", Format: "json"}, "svc")
	assert.Error(t, err)

	_, _, err = NewLogger(LogConfig{Level: "info", Format: "xml"}, "svc")
	assert.Error(t, err)
}

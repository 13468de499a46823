package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "calculator-microservice", cfg.Telemetry.ServiceName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_DIR", "")
	t.Setenv("TELEMETRY_ENABLED", "true")

	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.Dir)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=4000\nLOG_LEVEL=warn\n"), 0o600))

	t.Setenv("SERVER_PORT", "5000")
	// Registered so t.Setenv restores it after loadDotEnv sets it.
	t.Setenv("LOG_LEVEL", "info")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("port", "", "")
	flags.String("log-dir", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "9090"}))

	cfg, err := Load(t.TempDir(), flags)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "logs", cfg.Log.Dir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"SERVER_PORT":         "http",
		"SERVER_READ_TIMEOUT": "0s",
		"LOG_LEVEL":           "chatty",
		"LOG_FORMAT":          "xml",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load(t.TempDir(), nil)
			assert.Error(t, err)
		})
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	cfg.Server.Port = "70000"
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = "0"
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = "65535"
	assert.NoError(t, cfg.Validate())
}

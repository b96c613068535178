package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvDataPath, EnvListen, EnvLogLevel, EnvCORSOrigins, EnvShutdownTimeout} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Empty(t, cfg.DataPath)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, ":8000", cfg.HTTPConfig.Listen)
	assert.Equal(t, "/api/nas", cfg.HTTPConfig.APIPrefix)
	assert.Equal(t, defaultCORSOrigins, cfg.HTTPConfig.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTPConfig.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfgPath := writeFile(t, "config.yml", `
data_path: /srv/weather
log_level: debug
http:
  listen: ":9000"
  cors_origins:
    - https://weather.example.com
  shutdown_timeout: 10s
`)

	cfg, err := Load(cfgPath, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "/srv/weather", cfg.DataPath)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.HTTPConfig.Listen)
	assert.Equal(t, "/api/nas", cfg.HTTPConfig.APIPrefix)
	assert.Equal(t, []string{"https://weather.example.com"}, cfg.HTTPConfig.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.HTTPConfig.ShutdownTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	cfgPath := writeFile(t, "config.yml", "data_path: /srv/weather\nlog_level: debug\n")

	t.Setenv(EnvDataPath, "/mnt/nas")
	t.Setenv(EnvListen, ":7000")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvCORSOrigins, "http://a.example, http://b.example ,")
	t.Setenv(EnvShutdownTimeout, "30s")

	cfg, err := Load(cfgPath, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "/mnt/nas", cfg.DataPath)
	assert.Equal(t, ":7000", cfg.HTTPConfig.Listen)
	assert.Equal(t, LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.HTTPConfig.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.HTTPConfig.ShutdownTimeout)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvDataPath))

	envPath := writeFile(t, ".env", EnvDataPath+"=/from/dotenv\n")

	cfg, err := Load("", envPath)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.DataPath)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		env         map[string]string
		file        string
		errContains string
	}{
		{
			name:        "unknown log level",
			env:         map[string]string{EnvLogLevel: "verbose"},
			errContains: "log level",
		},
		{
			name:        "bad shutdown timeout",
			env:         map[string]string{EnvShutdownTimeout: "soon"},
			errContains: EnvShutdownTimeout,
		},
		{
			name:        "negative shutdown timeout",
			env:         map[string]string{EnvShutdownTimeout: "-1s"},
			errContains: EnvShutdownTimeout,
		},
		{
			name:        "broken yaml",
			file:        "http: [",
			errContains: "cannot parse config file",
		},
		{
			name:        "relative api prefix",
			file:        "http:\n  api_prefix: api\n",
			errContains: "api prefix",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			var cfgPath string
			if tc.file != "" {
				cfgPath = writeFile(t, "config.yml", tc.file)
			}

			_, err := Load(cfgPath, filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestMustLoadPanics(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "verbose")

	require.Panics(t, func() {
		MustLoad("", filepath.Join(t.TempDir(), "missing.env"))
	})
}

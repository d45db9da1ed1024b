package dispatch

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvNoColor, "")
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)

		cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
	t.Run("from file", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvNoColor, "")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nno_color: true\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", NoColor: true}, cfg)
		level, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})
	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "error")
		t.Setenv(EnvNoColor, "1")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "error", NoColor: true}, cfg)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: [debug\n"), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse config")
	})
	t.Run("invalid level", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "loud")

		_, err := LoadConfig("")
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid log level "loud"`)
	})
	t.Run("empty level", func(t *testing.T) {
		level, err := (&Config{}).Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, level)
	})
}

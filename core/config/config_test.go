package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"devserver/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "php", cfg.Launcher.Binary)
		assert.Equal(t, "127.0.0.1", cfg.Launcher.Host)
		assert.Equal(t, 8000, cfg.Launcher.Port)
		assert.Empty(t, cfg.Launcher.Directory)
		assert.True(t, cfg.Launcher.Banner)
		assert.Equal(t, 100, cfg.Probe.MaxRetries)
		assert.Equal(t, 1000, cfg.Probe.TimeoutMillis)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		t.Setenv("LAUNCHER_BINARY", "/usr/local/bin/php8")
		t.Setenv("LAUNCHER_PORT", "9090")
		t.Setenv("PROBE_MAX_RETRIES", "5")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "/usr/local/bin/php8", cfg.Launcher.Binary)
		assert.Equal(t, 9090, cfg.Launcher.Port)
		assert.Equal(t, 5, cfg.Probe.MaxRetries)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		dir := t.TempDir()
		content := "LAUNCHER_HOST=0.0.0.0\nLAUNCHER_BANNER=false\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))
		t.Cleanup(func() {
			os.Unsetenv("LAUNCHER_HOST")
			os.Unsetenv("LAUNCHER_BANNER")
		})

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Launcher.Host)
		assert.False(t, cfg.Launcher.Banner)
	})
}

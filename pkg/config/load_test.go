package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/pkg/config"
)

type sampleConfig struct {
	Name string `env:"SAMPLE_NAME" env-default:"default-name"`
	Port int    `env:"SAMPLE_PORT" env-default:"3000"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when file is missing", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "test", filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "default-name", cfg.Name)
		assert.Equal(t, 3000, cfg.Port)
	})

	t.Run("values from env file", func(t *testing.T) {
		// cleanenv переносит значения из файла в окружение процесса.
		t.Cleanup(func() {
			_ = os.Unsetenv("SAMPLE_NAME")
			_ = os.Unsetenv("SAMPLE_PORT")
		})

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SAMPLE_NAME=from-file\nSAMPLE_PORT=4000\n"), 0o600))

		cfg, err := config.Load[sampleConfig](ctx, "test", path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 4000, cfg.Port)
	})

	t.Run("directory path falls back to environment", func(t *testing.T) {
		t.Setenv("SAMPLE_PORT", "5000")

		cfg, err := config.Load[sampleConfig](ctx, "test", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 5000, cfg.Port)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("SAMPLE_PORT", "not_a_number")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

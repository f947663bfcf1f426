package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hookfix/internal/configloader"
	"github.com/yaklabco/hookfix/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults when no config exists", func(t *testing.T) {
		t.Parallel()

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: t.TempDir(),
			IgnoreEnv:  true,
		})
		require.NoError(t, err)

		assert.Empty(t, result.LoadedFrom)
		assert.Equal(t, "colors", result.Config.Bindings.Theme)
		assert.NotEmpty(t, result.Warnings, "empty file list should warn")
	})

	t.Run("discovers project config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, ".hookfix.yaml")
		require.NoError(t, os.WriteFile(path, []byte("files:\n  - src/App.tsx\n"), 0644))

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.NoError(t, err)

		assert.Equal(t, path, result.LoadedFrom)
		assert.Equal(t, []string{"src/App.tsx"}, result.Config.Files)
		assert.Empty(t, result.Warnings)
	})

	t.Run("explicit path wins over discovery", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hookfix.yaml"),
			[]byte("files:\n  - discovered.tsx\n"), 0644))
		explicit := filepath.Join(dir, "other.yaml")
		require.NoError(t, os.WriteFile(explicit, []byte("files:\n  - explicit.tsx\n"), 0644))

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			ExplicitPath: explicit,
			IgnoreEnv:    true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"explicit.tsx"}, result.Config.Files)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   t.TempDir(),
			ExplicitPath: "/nonexistent/hookfix.yaml",
			IgnoreEnv:    true,
		})
		require.Error(t, err)
	})

	t.Run("CLI flags take highest precedence", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hookfix.yaml"),
			[]byte("files:\n  - from-config.tsx\n"), 0644))

		cli := config.New()
		cli.Files = []string{"from-cli.tsx"}
		cli.DryRun = true

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
			CLIConfig:  cli,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"from-cli.tsx"}, result.Config.Files)
		assert.True(t, result.Config.DryRun)
	})

	t.Run("invalid binding is rejected", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hookfix.yaml"),
			[]byte("bindings:\n  theme: \"not an identifier\"\n"), 0644))

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bindings.theme")
	})
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel: mutates process environment.

	t.Setenv("HOOKFIX_THEME_BINDING", "palette")
	t.Setenv("HOOKFIX_FILES", "a.tsx, b.tsx,")
	t.Setenv("HOOKFIX_BACKUPS_ENABLED", "true")

	cfg := config.New()
	require.NoError(t, configloader.LoadFromEnv(cfg))

	assert.Equal(t, "palette", cfg.Bindings.Theme)
	assert.Equal(t, []string{"a.tsx", "b.tsx"}, cfg.Files)
	assert.True(t, cfg.Backups.Enabled)
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	// Not parallel: mutates process environment.

	t.Setenv("HOOKFIX_BACKUPS_ENABLED", "maybe")

	err := configloader.LoadFromEnv(config.New())
	require.Error(t, err)
}

package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/hookfix/pkg/runner"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("literals keep list order and survive when missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "z/Last.tsx", cleanSource)

		files, err := runner.Resolve(context.Background(), runner.Options{
			Files:      []string{"z/Last.tsx", "missing/Gone.tsx"},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"z/Last.tsx", "missing/Gone.tsx"}, files)
	})

	t.Run("glob entries expand sorted in place", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "src/b.tsx", cleanSource)
		writeFile(t, dir, "src/a.tsx", cleanSource)
		writeFile(t, dir, "src/nested/c.tsx", cleanSource)

		files, err := runner.Resolve(context.Background(), runner.Options{
			Files:      []string{"src/**/*.tsx"},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"src/a.tsx", "src/b.tsx", "src/nested/c.tsx"}, files)
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "src/a.tsx", cleanSource)

		files, err := runner.Resolve(context.Background(), runner.Options{
			Files:      []string{"src/a.tsx", "src/*.tsx"},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"src/a.tsx"}, files)
	})

	t.Run("exclude patterns filter the list", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "src/a.tsx", cleanSource)
		writeFile(t, dir, "src/a.test.tsx", cleanSource)

		files, err := runner.Resolve(context.Background(), runner.Options{
			Files:      []string{"src/**/*.tsx"},
			Exclude:    []string{"**/*.test.tsx"},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"src/a.tsx"}, files)
	})

	t.Run("pattern with no matches yields nothing", func(t *testing.T) {
		t.Parallel()

		files, err := runner.Resolve(context.Background(), runner.Options{
			Files:      []string{"nowhere/**/*.tsx"},
			WorkingDir: t.TempDir(),
		})
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

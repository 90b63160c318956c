package appdir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/pake/internal/appdir"
)

func TestLocateIn(t *testing.T) {
	t.Parallel()

	t.Run("does not create the directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		dir, err := appdir.LocateIn(base, " WeRead ")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "WeRead"), dir)
		assert.NoDirExists(t, dir)
	})

	t.Run("rejects unusable names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
			_, err := appdir.LocateIn(t.TempDir(), name)
			assert.ErrorIs(t, err, appdir.ErrInvalidName, name)
		}
	})
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "WeRead")
		require.NoError(t, appdir.Ensure(dir))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("reuses existing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "App")
		require.NoError(t, os.Mkdir(dir, 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "keep"), []byte("x"), 0o600))

		require.NoError(t, appdir.Ensure(dir))
		assert.FileExists(t, filepath.Join(dir, "keep"))
	})

	t.Run("fails when parent is a file", func(t *testing.T) {
		t.Parallel()

		base := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(base, nil, 0o600))

		err := appdir.Ensure(filepath.Join(base, "App"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create data directory")
	})
}

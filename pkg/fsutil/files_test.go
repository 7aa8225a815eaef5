package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	t.Run("moves a file within the same directory", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "staged.nc")
		dst := filepath.Join(dir, "final.nc")
		require.NoError(t, os.WriteFile(src, []byte("granule data"), 0o644))

		require.NoError(t, Move(src, dst))

		_, err := os.Stat(src)
		assert.True(t, os.IsNotExist(err), "source should be gone after move")
		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "granule data", string(content))
	})

	t.Run("creates destination directories", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "staged.nc")
		dst := filepath.Join(dir, "2024", "01", "01", "final.nc")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

		require.NoError(t, Move(src, dst))

		_, err := os.Stat(dst)
		assert.NoError(t, err)
	})

	t.Run("fails on missing source", func(t *testing.T) {
		dir := t.TempDir()
		err := Move(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
		assert.Error(t, err)
	})

	t.Run("fails on empty paths", func(t *testing.T) {
		assert.Error(t, Move("", "dst"))
		assert.Error(t, Move("src", ""))
	})
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.dat")
	dst := filepath.Join(dir, "b.dat")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, Copy(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	// Source remains after a copy.
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	require.NoError(t, EnsureDir(nested))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	assert.NoError(t, EnsureDir(nested))
}

func TestEnsureFileDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x", "y", "file.nc")

	require.NoError(t, EnsureFileDir(file))

	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScenePath(t *testing.T) {
	createDir := func(t *testing.T, files []string) string {
		dir := t.TempDir()
		for _, f := range files {
			err := os.WriteFile(filepath.Join(dir, f), []byte("nodes: []"), 0644)
			require.NoError(t, err)
		}
		return dir
	}

	t.Run("File is used as is", func(t *testing.T) {
		dir := createDir(t, []string{"intro.yaml"})
		path := filepath.Join(dir, "intro.yaml")

		got, err := ResolveScenePath(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("Prefer scene.yaml", func(t *testing.T) {
		dir := createDir(t, []string{"landing.yaml", "scene.yaml"})

		got, err := ResolveScenePath(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "scene.yaml"), got)
	})

	t.Run("Fallback to landing", func(t *testing.T) {
		dir := createDir(t, []string{"landing.yaml", "other.yaml"})

		got, err := ResolveScenePath(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "landing.yaml"), got)
	})

	t.Run("Fallback to DirectoryName", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, "hero")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.yaml"), []byte("nodes: []"), 0644))

		got, err := ResolveScenePath(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "hero.yaml"), got)
	})

	t.Run("Empty directory", func(t *testing.T) {
		_, err := ResolveScenePath(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("Missing path", func(t *testing.T) {
		_, err := ResolveScenePath(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

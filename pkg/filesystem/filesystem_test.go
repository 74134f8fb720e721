package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploygen/deploygen/pkg/filesystem"
	"github.com/deploygen/deploygen/pkg/types"
)

func TestOSFS_RoundTrip(t *testing.T) {
	osfs := filesystem.NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "file.txt")

	require.NoError(t, osfs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, osfs.WriteFile(path, []byte("content"), 0644))

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	entries, err := osfs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sub", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	require.NoError(t, osfs.Remove(path))
	_, err = osfs.Stat(path)
	assert.Error(t, err)
}

func TestAferoFS_RoundTrip(t *testing.T) {
	memfs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, memfs.MkdirAll("a/b", 0755))
	require.NoError(t, memfs.WriteFile("a/b/file.txt", []byte("content"), 0644))

	data, err := memfs.ReadFile("a/b/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	entries, err := memfs.ReadDir("a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	memfs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, memfs.MkdirAll("somedir", 0755))

	_, err := memfs.ReadFile("somedir")
	assert.Error(t, err)
}

func TestIOFS(t *testing.T) {
	t.Run("afero", func(t *testing.T) {
		memfs := filesystem.NewAferoFS(afero.NewMemMapFs())
		require.NoError(t, memfs.MkdirAll("dest/app", 0755))
		require.NoError(t, memfs.WriteFile("dest/app/x.j2", []byte("tpl"), 0644))

		tfs, ok := memfs.(types.TemplateFS)
		require.True(t, ok)

		root, err := tfs.IOFS("dest/app")
		require.NoError(t, err)

		data, err := fs.ReadFile(root, "x.j2")
		require.NoError(t, err)
		assert.Equal(t, "tpl", string(data))
	})

	t.Run("os", func(t *testing.T) {
		osfs := filesystem.NewOS()
		dir := t.TempDir()
		require.NoError(t, osfs.WriteFile(filepath.Join(dir, "x.j2"), []byte("tpl"), 0644))

		tfs, ok := osfs.(types.TemplateFS)
		require.True(t, ok)

		root, err := tfs.IOFS(dir)
		require.NoError(t, err)

		data, err := fs.ReadFile(root, "x.j2")
		require.NoError(t, err)
		assert.Equal(t, "tpl", string(data))
	})

	t.Run("os missing dir", func(t *testing.T) {
		tfs := filesystem.NewOS().(types.TemplateFS)
		_, err := tfs.IOFS(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

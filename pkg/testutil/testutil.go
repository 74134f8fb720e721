// Package testutil provides shared test helpers: in-memory filesystems,
// fixture tree builders, and file assertions.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploygen/deploygen/pkg/filesystem"
	"github.com/deploygen/deploygen/pkg/types"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// CreateTree writes the given files under root, creating parent
// directories as needed. Keys are slash-separated paths relative to root.
func CreateTree(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
}

// AssertFileContent asserts that path exists with exactly the given content
func AssertFileContent(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err, "expected file %s to exist", path)
	assert.Equal(t, content, string(data), "unexpected content in %s", path)
}

// AssertFileExists asserts that path exists
func AssertFileExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.NoError(t, err, "expected file %s to exist", path)
}

// AssertFileNotExists asserts that path does not exist
func AssertFileNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.Error(t, err, "expected file %s to not exist", path)
}

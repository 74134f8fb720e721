package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploygen/deploygen/internal/cli"
	"github.com/deploygen/deploygen/pkg/errors"
)

// chdir switches into dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCmd_SingleApp(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"templates/lambda/greeting.txt.j2": "Hello, {{ name }}!",
		"templates/lambda/config.yaml":     "key: value\n",
		"input.json":                       `{"name": "Ada"}`,
	})
	chdir(t, dir)

	err := execute(t, "-t", "templates", "-a", "lambda", "-i", "input.json", "-d", "deployments")
	require.NoError(t, err)

	rendered, err := os.ReadFile(filepath.Join(dir, "deployments", "lambda", "greeting.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!", string(rendered))

	_, err = os.Stat(filepath.Join(dir, "deployments", "lambda", "greeting.txt.j2"))
	assert.True(t, os.IsNotExist(err))

	plain, err := os.ReadFile(filepath.Join(dir, "deployments", "lambda", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", string(plain))
}

func TestRootCmd_MissingApp(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"templates/.keep": "",
		"input.json":      `{}`,
	})
	chdir(t, dir)

	err := execute(t, "-t", "templates", "-a", "missingApp", "-i", "input.json", "-d", "deployments")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSourceMissing))

	_, statErr := os.Stat(filepath.Join(dir, "deployments"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCmd_FullStack(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"templates/lambda/out.txt.j2": "deployed {{ name }}",
		"input.json":                  `{"name": "Ada"}`,
	})
	chdir(t, dir)

	err := execute(t, "--fullStack", "-t", "templates", "-i", "input.json", "-d", "deployments")
	require.NoError(t, err)

	rendered, err := os.ReadFile(filepath.Join(dir, "deployments", "lambda", "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deployed Ada", string(rendered))
}

func TestRootCmd_FullStack_MissingComponent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"templates/.keep": "",
		"input.json":      `{}`,
	})
	chdir(t, dir)

	err := execute(t, "--fullStack", "-t", "templates", "-i", "input.json", "-d", "deployments")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSourceMissing))

	_, statErr := os.Stat(filepath.Join(dir, "deployments"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCmd_FullStack_ConfiguredComponents(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"deploygen.toml":              `components = ["api", "worker"]`,
		"templates/api/out.txt.j2":    "api {{ name }}",
		"templates/worker/out.txt.j2": "worker {{ name }}",
		"input.json":                  `{"name": "Ada"}`,
	})
	chdir(t, dir)

	err := execute(t, "--fullStack", "-t", "templates", "-i", "input.json", "-d", "deployments")
	require.NoError(t, err)

	for _, app := range []string{"api", "worker"} {
		rendered, err := os.ReadFile(filepath.Join(dir, "deployments", app, "out.txt"))
		require.NoError(t, err)
		assert.Equal(t, app+" Ada", string(rendered))
	}
}

func TestRootCmd_FlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"app required without fullStack", []string{"-t", "templates", "-i", "input.json", "-d", "out"}},
		{"template required", []string{"-a", "lambda", "-i", "input.json", "-d", "out"}},
		{"input required", []string{"-t", "templates", "-a", "lambda", "-d", "out"}},
		{"destination required", []string{"-t", "templates", "-a", "lambda", "-i", "input.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, execute(t, "init"))

	raw, err := os.ReadFile(filepath.Join(dir, "deploygen.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "components")
	assert.Contains(t, string(raw), "marker_suffix")

	// A second init refuses to overwrite
	err = execute(t, "init")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAlreadyExists))
}

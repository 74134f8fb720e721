package materialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploygen/deploygen/pkg/materialize"
	"github.com/deploygen/deploygen/pkg/testutil"
)

func TestCopyTree(t *testing.T) {
	tests := []struct {
		name   string
		source map[string]string
		dest   map[string]string // pre-existing destination files
	}{
		{
			name: "flat directory",
			source: map[string]string{
				"config.yaml":     "key: value\n",
				"greeting.txt.j2": "Hello, {{ name }}!",
			},
		},
		{
			name: "nested directories",
			source: map[string]string{
				"top.txt":                "top",
				"sub/inner.txt":          "inner",
				"sub/deeper/leaf.txt.j2": "{{ leaf }}",
			},
		},
		{
			name: "overwrites existing destination files",
			source: map[string]string{
				"config.yaml": "new content",
			},
			dest: map[string]string{
				"config.yaml": "old content",
				"extra.txt":   "left alone",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewTestFS()
			testutil.CreateTree(t, fs, "src", tt.source)
			if tt.dest != nil {
				testutil.CreateTree(t, fs, "dest", tt.dest)
			}

			require.NoError(t, materialize.CopyTree(fs, "src", "dest"))

			for name, content := range tt.source {
				testutil.AssertFileContent(t, fs, "dest/"+name, content)
			}
			// Files already at the destination but absent from the source survive
			for name, content := range tt.dest {
				if _, copied := tt.source[name]; !copied {
					testutil.AssertFileContent(t, fs, "dest/"+name, content)
				}
			}
		})
	}
}

func TestCopyTree_MissingSource(t *testing.T) {
	fs := testutil.NewTestFS()

	err := materialize.CopyTree(fs, "missing", "dest")
	require.Error(t, err)
	testutil.AssertFileNotExists(t, fs, "dest")
}

func TestCopyTree_NoFilters(t *testing.T) {
	// Every file is copied regardless of name, dotfiles included
	fs := testutil.NewTestFS()
	testutil.CreateTree(t, fs, "src", map[string]string{
		".hidden":       "secret",
		"binary.bin":    "\x00\x01\x02",
		"template.j2":   "{{ x }}",
		"sub/.alsohere": "yes",
	})

	require.NoError(t, materialize.CopyTree(fs, "src", "dest"))

	testutil.AssertFileContent(t, fs, "dest/.hidden", "secret")
	testutil.AssertFileContent(t, fs, "dest/binary.bin", "\x00\x01\x02")
	testutil.AssertFileContent(t, fs, "dest/template.j2", "{{ x }}")
	testutil.AssertFileContent(t, fs, "dest/sub/.alsohere", "yes")
}

func TestCopyTree_EmptySource(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll("src", 0755))

	require.NoError(t, materialize.CopyTree(fs, "src", "dest"))

	info, err := fs.Stat("dest")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

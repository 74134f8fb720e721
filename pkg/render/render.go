// Package render performs the template-rendering pass over a materialized
// destination directory. Only the directory's immediate entries are
// scanned; nested directories are deliberately left untouched, mirroring
// the recursive copy / non-recursive render split of the deployment
// procedure.
package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/deploygen/deploygen/pkg/errors"
	"github.com/deploygen/deploygen/pkg/logging"
	"github.com/deploygen/deploygen/pkg/types"
)

// DefaultMarkerSuffix identifies template files awaiting rendering
const DefaultMarkerSuffix = ".j2"

// Renderer renders marker-suffixed files in place against a data mapping
type Renderer struct {
	fs           types.FS
	markerSuffix string
}

// New creates a Renderer over fs. An empty markerSuffix selects the
// default ".j2".
func New(fs types.FS, markerSuffix string) *Renderer {
	if markerSuffix == "" {
		markerSuffix = DefaultMarkerSuffix
	}
	return &Renderer{fs: fs, markerSuffix: markerSuffix}
}

// MarkerSuffix returns the suffix this renderer strips
func (r *Renderer) MarkerSuffix() string {
	return r.markerSuffix
}

// RenderDir renders every marker-suffixed file directly inside dir against
// data, writes each result under the name with the suffix stripped, and
// removes the original. Files without the suffix and entries in nested
// directories are untouched. A template file that vanished between the
// directory listing and the render is skipped, not an error.
func (r *Renderer) RenderDir(dir string, data map[string]interface{}) error {
	logger := logging.GetLogger("render")

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), r.markerSuffix) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		logger.Debug().Str("dir", dir).Msg("no template files to render")
		return nil
	}

	set, err := r.newTemplateSet(dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := r.renderTemplate(set, dir, name, data); err != nil {
			return err
		}
	}

	return nil
}

// newTemplateSet builds a pongo2 set whose loader is rooted at dir, with
// whitespace handling matching the deployment templates' expectations:
// block tags consume their trailing newline and leading indentation.
func (r *Renderer) newTemplateSet(dir string) (*pongo2.TemplateSet, error) {
	tfs, ok := r.fs.(types.TemplateFS)
	if !ok {
		return nil, errors.New(errors.ErrInternal, "filesystem does not support template loading")
	}

	root, err := tfs.IOFS(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to open template root %s", dir)
	}

	set := pongo2.NewSet("deploygen", pongo2.NewFSLoader(root))
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true
	return set, nil
}

// renderTemplate renders a single marker-suffixed file and replaces it
// with its rendered, unmarked counterpart.
func (r *Renderer) renderTemplate(set *pongo2.TemplateSet, dir, name string, data map[string]interface{}) error {
	logger := logging.GetLogger("render")
	templatePath := filepath.Join(dir, name)

	// A stale listing can reference a file already gone. Deliberate no-op.
	if _, err := r.fs.Stat(templatePath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", templatePath).Msg("template file missing at render time, skipping")
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", templatePath)
	}

	tmpl, err := set.FromFile(name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateLoad, "failed to load template %s", templatePath)
	}

	rendered, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return errors.Wrapf(err, errors.ErrRenderFailure, "failed to render template %s", templatePath)
	}

	outPath := filepath.Join(dir, strings.TrimSuffix(name, r.markerSuffix))
	if err := r.fs.WriteFile(outPath, []byte(rendered), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write rendered file %s", outPath)
	}

	if err := r.fs.Remove(templatePath); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove template %s", templatePath)
	}

	logger.Debug().
		Str("template", templatePath).
		Str("output", outPath).
		Msg("rendered template")

	return nil
}

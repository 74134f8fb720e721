// Package materialize copies a template source tree to a destination,
// preserving structure and file contents verbatim.
package materialize

import (
	"path/filepath"

	"github.com/deploygen/deploygen/pkg/errors"
	"github.com/deploygen/deploygen/pkg/logging"
	"github.com/deploygen/deploygen/pkg/types"
)

// CopyTree recursively copies every file and subdirectory from src to dest,
// creating dest and any intermediate directories, overwriting existing
// files. Nothing is filtered or excluded. The first I/O error aborts the
// copy; no partial-failure recovery is attempted.
func CopyTree(fs types.FS, src, dest string) error {
	logger := logging.GetLogger("materialize")

	entries, err := fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read source directory %s", src)
	}

	if err := fs.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create destination directory %s", dest)
	}

	files := 0
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := CopyTree(fs, srcPath, destPath); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(fs, srcPath, destPath); err != nil {
			return err
		}
		files++
	}

	logger.Debug().
		Str("src", src).
		Str("dest", dest).
		Int("files", files).
		Msg("copied directory")

	return nil
}

func copyFile(fs types.FS, src, dest string) error {
	data, err := fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read %s", src)
	}

	info, err := fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to stat %s", src)
	}

	if err := fs.WriteFile(dest, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}

	return nil
}

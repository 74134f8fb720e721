package types

import "io/fs"

// FS abstracts filesystem operations for deployment runs.
// Implementations live in pkg/filesystem; tests use an in-memory one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// TemplateFS is an optional capability of an FS: exposing a directory as an
// io/fs.FS so the template engine can use it as a loader root.
type TemplateFS interface {
	IOFS(dir string) (fs.FS, error)
}

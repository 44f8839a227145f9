package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for reconciliation and persistence
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// CreateTemp creates a new temporary file in dir, as os.CreateTemp.
	CreateTemp(dir, pattern string) (File, error)
}

// File is the writable handle returned by FS.CreateTemp
type File interface {
	io.Writer
	Name() string
	Sync() error
	Close() error
}

// Translator maps a label key to its localized form. Unknown labels are
// returned unchanged.
type Translator interface {
	Translate(label string) string
}

// Encoder converts UTF-8 text to the filesystem's filename encoding
type Encoder interface {
	Encode(utf8 string) (string, error)
}

// Collator compares two strings in the active locale's collation order
type Collator interface {
	Compare(a, b string) int
}

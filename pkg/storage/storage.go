// Package storage defines the FileStore interface generated recordings are
// written to. It abstracts the backend so the library generator can target a
// local directory tree or an S3-compatible bucket without changing code.
package storage

import (
	"context"
	"io"
)

// FileStore is a minimal interface for file-oriented storage.
//
// Paths are forward-slash separated and relative to the store root
// (e.g. "notes/C4.wav"). Implementations must be safe for concurrent use.
type FileStore interface {
	// Put stores data at path, replacing any existing file. Parent
	// directories are created as needed. A reader never observes a
	// partially written file.
	Put(ctx context.Context, path string, data []byte) error

	// Read opens the named file for reading.
	// The caller must close the returned ReadCloser when done.
	// If the file does not exist, an error wrapping os.ErrNotExist is returned.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the named file.
	// If the file does not exist, Delete returns nil (idempotent).
	Delete(ctx context.Context, path string) error

	// Exists reports whether the named file exists.
	Exists(ctx context.Context, path string) (bool, error)

	// Location returns a human-readable address for path, such as an
	// absolute file name or an s3:// URL.
	Location(path string) string
}

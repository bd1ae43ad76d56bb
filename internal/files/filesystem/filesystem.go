package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This keeps the abstraction compatible with the fs.FS ecosystem while
// giving the package a stable local name.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor.
type File interface {
	// Path returns the absolute path to the file.
	Path() string

	// RelativePath returns the path relative to the scan root.
	RelativePath() string

	// Info returns file metadata.
	Info() FileInfo

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory represents a directory tree that can be traversed to discover
// manifest files.
type Directory interface {
	// Path returns the absolute path to the directory.
	Path() string

	// Walk traverses the directory tree in lexicographic order, calling fn
	// for each file and directory. fn receives the entry and any error
	// encountered reaching it. If fn returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// Provider is a factory for opening directories to scan.
type Provider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)
}

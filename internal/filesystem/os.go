// Package filesystem exposes the operating system filesystem behind the narrow
// interfaces consumed by the audit services and report writers.
package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements the audit and report filesystem interfaces using operating system primitives.
type OSFileSystem struct{}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// WriteFile writes data to a file with the supplied permissions, replacing existing content.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

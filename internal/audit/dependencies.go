package audit

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/discovery"
	"github.com/temirov/codeaudit/internal/filesystem"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// SourceDiscoverer lists the source files below a root.
type SourceDiscoverer interface {
	DiscoverSources(root string, options discovery.Options) ([]discovery.SourceFile, error)
}

// FileSystem provides the filesystem operations audits need to read sources and write reports.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// ResolveLogger returns the provider's logger or a no-op logger.
func ResolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// ResolveSourceDiscoverer returns the provided discoverer or the filesystem walker.
func ResolveSourceDiscoverer(existing SourceDiscoverer) SourceDiscoverer {
	if existing != nil {
		return existing
	}
	return discovery.NewFilesystemSourceDiscoverer()
}

// ResolveFileSystem returns the provided filesystem or the operating system one.
func ResolveFileSystem(existing FileSystem) FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

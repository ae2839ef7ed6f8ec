// Package pathutils resolves user-supplied filesystem paths.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts leading tilde shortcuts in configured scan roots and report paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	lookupGuard           sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand replaces "~" and "~/" prefixes with the home directory. Other paths,
// including "~user" forms, are returned unchanged, as are all paths when the
// home directory cannot be resolved.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory := expander.lookupHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	switch {
	case candidatePath == tildeSymbolConstant:
		return homeDirectory
	case strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant))
	case strings.HasPrefix(candidatePath, tildeWithPathSeparatorPrefix):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeWithPathSeparatorPrefix))
	default:
		return candidatePath
	}
}

func (expander *HomeExpander) lookupHomeDirectory() string {
	expander.lookupGuard.Do(func() {
		resolvedDirectory, lookupError := expander.homeDirectoryProvider()
		if lookupError == nil {
			expander.homeDirectory = resolvedDirectory
		}
	})
	return expander.homeDirectory
}

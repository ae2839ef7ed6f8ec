package discovery

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

const gitIgnoreFileNameConstant = ".gitignore"

// Options controls which files a discovery walk returns.
type Options struct {
	Extensions          []string
	ExcludedDirectories []string
	RespectGitIgnore    bool
}

// SourceFile identifies one discovered file.
type SourceFile struct {
	// Path is the operating system path used for reading.
	Path string
	// DisplayPath is the slash-separated path shown in reports.
	DisplayPath string
}

// FilesystemSourceDiscoverer locates source files on disk.
type FilesystemSourceDiscoverer struct{}

// NewFilesystemSourceDiscoverer constructs a source discoverer backed by filepath.WalkDir.
func NewFilesystemSourceDiscoverer() *FilesystemSourceDiscoverer {
	return &FilesystemSourceDiscoverer{}
}

// DiscoverSources walks root and returns the files matching options, sorted by display path.
func (discoverer *FilesystemSourceDiscoverer) DiscoverSources(root string, options Options) ([]SourceFile, error) {
	allowedExtensions := make(map[string]struct{}, len(options.Extensions))
	for _, extension := range options.Extensions {
		allowedExtensions[extension] = struct{}{}
	}

	excludedDirectories := make(map[string]struct{}, len(options.ExcludedDirectories))
	for _, directoryName := range options.ExcludedDirectories {
		excludedDirectories[directoryName] = struct{}{}
	}

	ignoreMatcher := loadGitIgnore(root, options.RespectGitIgnore)

	var sourceFiles []SourceFile
	walkError := filepath.WalkDir(root, func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			if directoryEntry != nil && directoryEntry.IsDir() && currentPath != root {
				return fs.SkipDir
			}
			return nil
		}

		relativePath, relativeError := filepath.Rel(root, currentPath)
		if relativeError != nil {
			return nil
		}
		relativeSlashPath := filepath.ToSlash(relativePath)

		if directoryEntry.IsDir() {
			if currentPath == root {
				return nil
			}
			if _, excluded := excludedDirectories[directoryEntry.Name()]; excluded {
				return fs.SkipDir
			}
			return nil
		}

		if !isRegularFile(currentPath, directoryEntry) {
			return nil
		}

		if _, allowed := allowedExtensions[filepath.Ext(directoryEntry.Name())]; !allowed {
			return nil
		}

		if ignoreMatcher != nil && ignoreMatcher.MatchesPath(relativeSlashPath) {
			return nil
		}

		sourceFiles = append(sourceFiles, SourceFile{
			Path:        currentPath,
			DisplayPath: displayPath(root, relativeSlashPath),
		})
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}

	sort.Slice(sourceFiles, func(first int, second int) bool {
		return sourceFiles[first].DisplayPath < sourceFiles[second].DisplayPath
	})
	return sourceFiles, nil
}

// isRegularFile accepts regular files and symbolic links that resolve to one.
func isRegularFile(currentPath string, directoryEntry fs.DirEntry) bool {
	if directoryEntry.Type().IsRegular() {
		return true
	}
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	targetInfo, statError := os.Stat(currentPath)
	if statError != nil {
		return false
	}
	return targetInfo.Mode().IsRegular()
}

func loadGitIgnore(root string, enabled bool) *gitignore.GitIgnore {
	if !enabled {
		return nil
	}
	gitIgnorePath := filepath.Join(root, gitIgnoreFileNameConstant)
	if _, statError := os.Stat(gitIgnorePath); statError != nil {
		return nil
	}
	ignoreMatcher, compileError := gitignore.CompileIgnoreFile(gitIgnorePath)
	if compileError != nil {
		return nil
	}
	return ignoreMatcher
}

func displayPath(root string, relativeSlashPath string) string {
	slashRoot := strings.TrimSuffix(filepath.ToSlash(root), "/")
	if len(slashRoot) == 0 || slashRoot == "." {
		return relativeSlashPath
	}
	return path.Join(slashRoot, relativeSlashPath)
}

package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/discovery"
	"github.com/temirov/codeaudit/internal/textscan"
)

const (
	discoveryErrorTemplateConstant    = "failed to discover sources under %s: %w"
	skippedUnreadableMessageConstant  = "skipping unreadable source"
	skippedUndecodableMessageConstant = "skipping source with invalid UTF-8"
	skippedPrefilterMessageConstant   = "source contains no audit keywords"
	discoveredSourcesMessageConstant  = "discovered sources"
	logFieldPathConstant              = "path"
	logFieldRootConstant              = "root"
	logFieldCountConstant             = "count"
	logFieldErrorConstant             = "error"
	logFieldKeywordsConstant          = "keywords"
)

// Document is one decoded source file.
type Document struct {
	Path  string
	Text  string
	Lines []string
}

// LoadOptions controls which files the loader yields and how they are decoded.
type LoadOptions struct {
	Scan           ScanConfiguration
	Prefilter      *textscan.Prefilter
	StrictDecoding bool
}

// DocumentVisitor receives each loaded document; returning an error stops loading.
type DocumentVisitor func(document Document) error

// SourceLoader discovers, reads and decodes the sources of a scan.
type SourceLoader struct {
	discoverer SourceDiscoverer
	fileSystem FileSystem
	logger     *zap.Logger
}

// NewSourceLoader constructs a SourceLoader from its collaborators.
func NewSourceLoader(discoverer SourceDiscoverer, fileSystem FileSystem, logger *zap.Logger) *SourceLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SourceLoader{
		discoverer: ResolveSourceDiscoverer(discoverer),
		fileSystem: ResolveFileSystem(fileSystem),
		logger:     logger,
	}
}

// Load visits every decodable source in display-path order and returns the
// number of files scanned. Unreadable and undecodable files are skipped.
// Files rejected by the prefilter count as scanned but are not visited.
func (loader *SourceLoader) Load(executionContext context.Context, options LoadOptions, visit DocumentVisitor) (int, error) {
	sourceFiles, discoveryError := loader.discoverer.DiscoverSources(options.Scan.Root, discovery.Options{
		Extensions:          options.Scan.Extensions,
		ExcludedDirectories: options.Scan.ExcludedDirectories,
		RespectGitIgnore:    options.Scan.RespectGitIgnore,
	})
	if discoveryError != nil {
		return 0, fmt.Errorf(discoveryErrorTemplateConstant, options.Scan.Root, discoveryError)
	}
	loader.logger.Debug(discoveredSourcesMessageConstant, zap.String(logFieldRootConstant, options.Scan.Root), zap.Int(logFieldCountConstant, len(sourceFiles)))

	filesScanned := 0
	for _, sourceFile := range sourceFiles {
		if executionContext != nil {
			if contextError := executionContext.Err(); contextError != nil {
				return filesScanned, contextError
			}
		}

		content, readError := loader.fileSystem.ReadFile(sourceFile.Path)
		if readError != nil {
			loader.logger.Debug(skippedUnreadableMessageConstant, zap.String(logFieldPathConstant, sourceFile.DisplayPath), zap.String(logFieldErrorConstant, readError.Error()))
			continue
		}

		text, decoded := textscan.DecodeText(content, options.StrictDecoding)
		if !decoded {
			loader.logger.Debug(skippedUndecodableMessageConstant, zap.String(logFieldPathConstant, sourceFile.DisplayPath))
			continue
		}
		filesScanned++

		if !options.Prefilter.Admits(content) {
			loader.logger.Debug(skippedPrefilterMessageConstant, zap.String(logFieldPathConstant, sourceFile.DisplayPath), zap.Strings(logFieldKeywordsConstant, options.Prefilter.Keywords()))
			continue
		}

		if visitError := visit(Document{
			Path:  sourceFile.DisplayPath,
			Text:  text,
			Lines: textscan.SplitLines(text),
		}); visitError != nil {
			return filesScanned, visitError
		}
	}

	return filesScanned, nil
}

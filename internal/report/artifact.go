package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	artifactDirectoryPermissionsConstant   = 0o755
	artifactFilePermissionsConstant        = 0o644
	artifactPathRequiredMessageConstant    = "report output path must be provided"
	artifactDirectoryErrorTemplateConstant = "unable to create report directory %s: %w"
	artifactWriteErrorTemplateConstant     = "unable to write report %s: %w"
	artifactRenderErrorTemplateConstant    = "unable to render report %s: %w"
)

// FileSystem exposes the filesystem operations needed to persist artifacts.
type FileSystem interface {
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// ArtifactWriter persists rendered reports.
type ArtifactWriter struct {
	fileSystem FileSystem
}

// NewArtifactWriter constructs an ArtifactWriter backed by the provided filesystem.
func NewArtifactWriter(fileSystem FileSystem) *ArtifactWriter {
	return &ArtifactWriter{fileSystem: fileSystem}
}

// WriteString writes content to outputPath, creating parent directories and
// replacing existing content.
func (artifactWriter *ArtifactWriter) WriteString(outputPath string, content string) error {
	return artifactWriter.WriteBytes(outputPath, []byte(content))
}

// WriteBytes writes data to outputPath, creating parent directories and replacing existing content.
func (artifactWriter *ArtifactWriter) WriteBytes(outputPath string, data []byte) error {
	trimmedPath := strings.TrimSpace(outputPath)
	if len(trimmedPath) == 0 {
		return errors.New(artifactPathRequiredMessageConstant)
	}

	parentDirectory := filepath.Dir(trimmedPath)
	if directoryError := artifactWriter.fileSystem.MkdirAll(parentDirectory, artifactDirectoryPermissionsConstant); directoryError != nil {
		return fmt.Errorf(artifactDirectoryErrorTemplateConstant, parentDirectory, directoryError)
	}

	if writeError := artifactWriter.fileSystem.WriteFile(trimmedPath, data, artifactFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(artifactWriteErrorTemplateConstant, trimmedPath, writeError)
	}
	return nil
}

// WriteRendered renders through render into memory and writes the result to outputPath.
func (artifactWriter *ArtifactWriter) WriteRendered(outputPath string, render func(io.Writer) error) error {
	var buffer bytes.Buffer
	if renderError := render(&buffer); renderError != nil {
		return fmt.Errorf(artifactRenderErrorTemplateConstant, outputPath, renderError)
	}
	return artifactWriter.WriteBytes(outputPath, buffer.Bytes())
}

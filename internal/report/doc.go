// Package report renders audit results as Markdown documents and SARIF logs
// and writes them to their output artifacts.
//
// Document collects Markdown lines in order. GroupedSection groups entries by
// file path, orders the groups alphabetically and truncates long snippets.
// ArtifactWriter persists a rendered report, creating parent directories and
// replacing any previous artifact.
package report

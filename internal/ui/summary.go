package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/temirov/codeaudit/internal/audit"
)

const (
	summaryTemplateConstant        = "%s: %s files scanned, %s findings -> %s\n"
	planTemplateConstant           = "%s: would write %s\n"
	artifactSeparatorConstant      = ", "
	noArtifactsPlaceholderConstant = "(no artifacts)"
)

// SummaryPrinter writes one-line audit summaries.
type SummaryPrinter struct {
	writer    io.Writer
	operation *color.Color
	count     *color.Color
	findings  *color.Color
	clean     *color.Color
	artifact  *color.Color
}

// NewSummaryPrinter constructs a SummaryPrinter; colorEnabled controls ANSI styling.
func NewSummaryPrinter(writer io.Writer, colorEnabled bool) *SummaryPrinter {
	printer := &SummaryPrinter{
		writer:    writer,
		operation: color.New(color.Bold),
		count:     color.New(color.FgHiWhite),
		findings:  color.New(color.FgYellow),
		clean:     color.New(color.FgGreen),
		artifact:  color.New(color.FgCyan),
	}
	for _, style := range []*color.Color{printer.operation, printer.count, printer.findings, printer.clean, printer.artifact} {
		if colorEnabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return printer
}

// PrintResult writes the summary of a completed audit run.
func (printer *SummaryPrinter) PrintResult(result audit.Result) error {
	if printer == nil || printer.writer == nil {
		return nil
	}
	findingsStyle := printer.clean
	if result.Findings > 0 {
		findingsStyle = printer.findings
	}
	_, writeError := fmt.Fprintf(
		printer.writer,
		summaryTemplateConstant,
		printer.operation.Sprint(result.Operation),
		printer.count.Sprint(result.FilesScanned),
		findingsStyle.Sprint(result.Findings),
		printer.formatArtifacts(result.Artifacts()),
	)
	return writeError
}

// PrintPlan writes the artifacts a dry run would produce for operation.
func (printer *SummaryPrinter) PrintPlan(operation string, artifacts []string) error {
	if printer == nil || printer.writer == nil {
		return nil
	}
	_, writeError := fmt.Fprintf(printer.writer, planTemplateConstant, printer.operation.Sprint(operation), printer.formatArtifacts(artifacts))
	return writeError
}

func (printer *SummaryPrinter) formatArtifacts(artifacts []string) string {
	if len(artifacts) == 0 {
		return noArtifactsPlaceholderConstant
	}
	styled := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		styled = append(styled, printer.artifact.Sprint(artifact))
	}
	return strings.Join(styled, artifactSeparatorConstant)
}

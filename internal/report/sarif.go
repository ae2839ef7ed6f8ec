package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	sarifCreateErrorTemplateConstant = "failed to create SARIF report: %w"
	sarifWriteErrorTemplateConstant  = "failed to write SARIF report: %w"
	sarifLevelWarningConstant        = "warning"
)

// Finding is a single reportable issue for machine-readable output.
type Finding struct {
	RuleID          string
	RuleDescription string
	Level           string
	File            string
	Line            int
	Message         string
}

// Tool identifies the producer of a SARIF log.
type Tool struct {
	Name           string
	InformationURI string
}

// WriteSARIF renders findings as a SARIF 2.1.0 log with one rule per distinct rule identifier.
func WriteSARIF(writer io.Writer, tool Tool, findings []Finding) error {
	sarifReport, createError := sarif.New(sarif.Version210)
	if createError != nil {
		return fmt.Errorf(sarifCreateErrorTemplateConstant, createError)
	}

	run := sarif.NewRunWithInformationURI(tool.Name, tool.InformationURI)
	for _, finding := range findings {
		level := strings.TrimSpace(finding.Level)
		if len(level) == 0 {
			level = sarifLevelWarningConstant
		}

		rule := run.AddRule(finding.RuleID).
			WithDescription(finding.RuleDescription).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: level})

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(finding.File)).
				WithRegion(sarif.NewRegion().WithStartLine(finding.Line)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLevel(level).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	sarifReport.AddRun(run)

	if writeError := sarifReport.PrettyWrite(writer); writeError != nil {
		return fmt.Errorf(sarifWriteErrorTemplateConstant, writeError)
	}
	return nil
}

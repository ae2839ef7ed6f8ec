package nullability

import (
	"fmt"

	"github.com/temirov/codeaudit/internal/report"
)

const (
	reportTitleConstant            = "Optional vs. Null Usage Check"
	reportIntroductionConstant     = "Scan looks for `undefined` assignments inside objects typed as `TablesInsert<T>` or `TablesUpdate<T>`, which may violate Supabase optional/null expectations."
	insertPayloadsTemplateConstant = "Insert payloads checked: %d"
	updatePayloadsTemplateConstant = "Update payloads checked: %d"
	insertFindingsTemplateConstant = "Insert issues flagged: %d"
	updateFindingsTemplateConstant = "Update issues flagged: %d"
	insertSectionTitleConstant     = "TablesInsert Findings"
	updateSectionTitleConstant     = "TablesUpdate Findings"
	emptySectionMessageConstant    = "_No `undefined` assignments detected._"
	notesTitleConstant             = "Notes"
	reviewNoteConstant             = "Review each flagged line to ensure nullability matches Supabase schema. If the column allows nulls, prefer explicit `null` over `undefined`."
	findingEntryTemplateConstant   = "L%d · table `%s` · %s"
	snippetLimitConstant           = 160
	sarifToolNameConstant          = "codeaudit optional-null"
	sarifInformationURIConstant    = "https://github.com/temirov/codeaudit"
	sarifInsertRuleIdentifier      = "optional-null/insert-undefined"
	sarifUpdateRuleIdentifier      = "optional-null/update-undefined"
	sarifInsertRuleDescription     = "TablesInsert payload assigns undefined"
	sarifUpdateRuleDescription     = "TablesUpdate payload assigns undefined"
	sarifMessageTemplateConstant   = "table %s: %s"
	notesHeadingLevelConstant      = 2
)

// RenderMarkdown renders the optional-null report for summary.
func RenderMarkdown(summary Summary) string {
	document := report.NewDocument(reportTitleConstant).
		Paragraph(reportIntroductionConstant).
		Bullets(
			fmt.Sprintf(insertPayloadsTemplateConstant, summary.InsertPayloads),
			fmt.Sprintf(updatePayloadsTemplateConstant, summary.UpdatePayloads),
			fmt.Sprintf(insertFindingsTemplateConstant, len(summary.InsertFindings)),
			fmt.Sprintf(updateFindingsTemplateConstant, len(summary.UpdateFindings)),
		).
		Section(findingSection(insertSectionTitleConstant, summary.InsertFindings)).
		Section(findingSection(updateSectionTitleConstant, summary.UpdateFindings)).
		CompactList(notesHeadingLevelConstant, notesTitleConstant, reviewNoteConstant)
	return document.String()
}

func findingSection(title string, findings []Finding) report.GroupedSection {
	entries := make([]report.Entry, 0, len(findings))
	for _, finding := range findings {
		entries = append(entries, report.Entry{
			File:  finding.File,
			Line:  finding.Line,
			Label: finding.Table,
			Code:  finding.Code,
		})
	}
	return report.GroupedSection{
		Title:        title,
		EmptyMessage: emptySectionMessageConstant,
		SnippetLimit: snippetLimitConstant,
		Format:       formatFindingEntry,
		Entries:      entries,
	}
}

func formatFindingEntry(entry report.Entry, snippet string) string {
	return fmt.Sprintf(findingEntryTemplateConstant, entry.Line, entry.Label, snippet)
}

// SARIFFindings converts summary findings into SARIF results.
func SARIFFindings(summary Summary) []report.Finding {
	sarifFindings := make([]report.Finding, 0, summary.FindingCount())
	for _, finding := range append(append([]Finding{}, summary.InsertFindings...), summary.UpdateFindings...) {
		ruleIdentifier, ruleDescription := sarifInsertRuleIdentifier, sarifInsertRuleDescription
		if finding.Kind == PayloadKindUpdate {
			ruleIdentifier, ruleDescription = sarifUpdateRuleIdentifier, sarifUpdateRuleDescription
		}
		sarifFindings = append(sarifFindings, report.Finding{
			RuleID:          ruleIdentifier,
			RuleDescription: ruleDescription,
			File:            finding.File,
			Line:            finding.Line,
			Message:         fmt.Sprintf(sarifMessageTemplateConstant, finding.Table, finding.Code),
		})
	}
	return sarifFindings
}

// SARIFTool identifies this audit in SARIF output.
func SARIFTool() report.Tool {
	return report.Tool{Name: sarifToolNameConstant, InformationURI: sarifInformationURIConstant}
}

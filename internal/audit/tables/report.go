package tables

import (
	"fmt"
	"strings"

	"github.com/temirov/codeaudit/internal/report"
)

const (
	reportTitleConstant         = "Typed Table Inventory"
	reportIntroductionConstant  = "Distinct generated table types referenced as `Tables<'name'>`."
	filesScannedTemplate        = "Files scanned: %d"
	distinctTablesTemplate      = "Distinct tables: %d"
	totalReferencesTemplate     = "Total references: %d"
	tablesSectionTitleConstant  = "Tables"
	tableEntryTemplate          = "%s: %s in %s"
	emptySectionMessageConstant = "_No table types referenced._"
	sectionHeadingLevelConstant = 2
	textSeparatorConstant       = "\n"
	singularReferenceConstant   = "reference"
	pluralReferencesConstant    = "references"
	singularFileConstant        = "file"
	pluralFilesConstant         = "files"
)

// Render renders inventory in the requested format.
func Render(inventory Inventory, filesScanned int, format Format) string {
	if format == FormatText {
		return RenderText(inventory)
	}
	return RenderMarkdown(inventory, filesScanned)
}

// RenderText renders the sorted table names one per line without a trailing line feed.
func RenderText(inventory Inventory) string {
	return strings.Join(inventory.Names(), textSeparatorConstant)
}

// RenderMarkdown renders a summary and one bullet per table.
func RenderMarkdown(inventory Inventory, filesScanned int) string {
	usages := inventory.Usages()
	document := report.NewDocument(reportTitleConstant).
		Paragraph(reportIntroductionConstant).
		Bullets(
			fmt.Sprintf(filesScannedTemplate, filesScanned),
			fmt.Sprintf(distinctTablesTemplate, len(usages)),
			fmt.Sprintf(totalReferencesTemplate, inventory.TotalReferences()),
		).
		Heading(sectionHeadingLevelConstant, tablesSectionTitleConstant)

	if len(usages) == 0 {
		document.Paragraph(emptySectionMessageConstant)
		return document.String()
	}

	entries := make([]string, 0, len(usages))
	for _, usage := range usages {
		entries = append(entries, fmt.Sprintf(
			tableEntryTemplate,
			report.InlineCode(usage.Name),
			countLabel(usage.References, singularReferenceConstant, pluralReferencesConstant),
			countLabel(usage.Files, singularFileConstant, pluralFilesConstant),
		))
	}
	document.Bullets(entries...)
	return document.String()
}

func countLabel(count int, singular string, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

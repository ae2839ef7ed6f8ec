package i18n

import (
	"fmt"

	"github.com/temirov/codeaudit/internal/report"
)

const (
	reportTitleConstant            = "$t( Usage Inventory"
	summaryTitleConstant           = "Summary"
	totalTemplateConstant          = "Total occurrences: %d"
	servicesTemplateConstant       = "Services: %d"
	componentsTemplateConstant     = "Components/Views: %d"
	otherTemplateConstant          = "Other (stores/utilities/pages): %d"
	keysTemplateConstant           = "Distinct translation keys: %d"
	servicesSectionTitleConstant   = "Services"
	componentsSectionTitleConstant = "Components & Pages"
	otherSectionTitleConstant      = "Other Locations"
	keysSectionTitleConstant       = "Translation Keys"
	emptySectionMessageConstant    = "_None_"
	notesTitleConstant             = "Notes"
	backendNoteConstant            = "Distinguish backend error messages from UI copy before key refactors."
	dynamicKeyNoteConstant         = "Keys ending in `.` are dynamic prefixes and are not listed."
	summaryHeadingLevelConstant    = 2
	sectionHeadingLevelConstant    = 3
	snippetLimitConstant           = 140
)

// RenderMarkdown renders the usage inventory report.
func RenderMarkdown(inventory Inventory) string {
	keys := inventory.Keys()
	document := report.NewDocument(reportTitleConstant).
		CompactList(
			summaryHeadingLevelConstant,
			summaryTitleConstant,
			fmt.Sprintf(totalTemplateConstant, inventory.Total()),
			fmt.Sprintf(servicesTemplateConstant, len(inventory.Services)),
			fmt.Sprintf(componentsTemplateConstant, len(inventory.Components)),
			fmt.Sprintf(otherTemplateConstant, len(inventory.Other)),
			fmt.Sprintf(keysTemplateConstant, len(keys)),
		).
		Section(occurrenceSection(servicesSectionTitleConstant, inventory.Services)).
		Section(occurrenceSection(componentsSectionTitleConstant, inventory.Components)).
		Section(occurrenceSection(otherSectionTitleConstant, inventory.Other)).
		Heading(sectionHeadingLevelConstant, keysSectionTitleConstant)

	if len(keys) == 0 {
		document.Paragraph(emptySectionMessageConstant)
	} else {
		formattedKeys := make([]string, 0, len(keys))
		for _, key := range keys {
			formattedKeys = append(formattedKeys, report.InlineCode(key))
		}
		document.Bullets(formattedKeys...)
	}

	document.CompactList(summaryHeadingLevelConstant, notesTitleConstant, backendNoteConstant, dynamicKeyNoteConstant)
	return document.String()
}

func occurrenceSection(title string, occurrences []Occurrence) report.GroupedSection {
	entries := make([]report.Entry, 0, len(occurrences))
	for _, occurrence := range occurrences {
		entries = append(entries, report.Entry{File: occurrence.File, Line: occurrence.Line, Code: occurrence.Code})
	}
	return report.GroupedSection{
		Title:        title,
		HeadingLevel: sectionHeadingLevelConstant,
		EmptyMessage: emptySectionMessageConstant,
		SnippetLimit: snippetLimitConstant,
		Format:       report.FormatLineEntry,
		Entries:      entries,
	}
}

package report

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

const (
	ellipsisConstant            = "..."
	fileGroupTemplateConstant   = "- `%s`"
	entryTemplateConstant       = "  - %s"
	lineEntryTemplateConstant   = "L%d: %s"
	defaultEmptyMessageConstant = "_None_"
	defaultHeadingLevelConstant = 2
)

// Entry is one reported line of source.
type Entry struct {
	File  string
	Line  int
	Label string
	Code  string
}

// EntryFormatter renders an entry given its already truncated snippet.
type EntryFormatter func(entry Entry, snippet string) string

// GroupedSection renders entries grouped by file path.
type GroupedSection struct {
	Title        string
	HeadingLevel int
	EmptyMessage string
	SnippetLimit int
	Format       EntryFormatter
	Entries      []Entry
}

// Render produces the section heading, then one bullet per file in alphabetical
// order with that file's entries nested beneath it in their original order.
func (section GroupedSection) Render() []string {
	headingLevel := section.HeadingLevel
	if headingLevel == 0 {
		headingLevel = defaultHeadingLevelConstant
	}
	lines := []string{headingLine(headingLevel, section.Title), ""}

	if len(section.Entries) == 0 {
		emptyMessage := section.EmptyMessage
		if len(emptyMessage) == 0 {
			emptyMessage = defaultEmptyMessageConstant
		}
		return append(lines, emptyMessage)
	}

	for _, group := range GroupByFile(section.Entries) {
		lines = append(lines, fmt.Sprintf(fileGroupTemplateConstant, group.File))
		for _, entry := range group.Entries {
			snippet := TruncateSnippet(entry.Code, section.SnippetLimit)
			lines = append(lines, fmt.Sprintf(entryTemplateConstant, section.format(entry, snippet)))
		}
	}
	return lines
}

func (section GroupedSection) format(entry Entry, snippet string) string {
	if section.Format != nil {
		return section.Format(entry, snippet)
	}
	return FormatLineEntry(entry, snippet)
}

// FormatLineEntry renders entries as `L<line>: <snippet>`.
func FormatLineEntry(entry Entry, snippet string) string {
	return fmt.Sprintf(lineEntryTemplateConstant, entry.Line, snippet)
}

// FileGroup holds the entries reported for one file.
type FileGroup struct {
	File    string
	Entries []Entry
}

// GroupByFile groups entries by file, sorting files alphabetically while
// keeping entries of the same file in their original order.
func GroupByFile(entries []Entry) []FileGroup {
	indexByFile := make(map[string]int)
	var groups []FileGroup
	for _, entry := range entries {
		groupIndex, exists := indexByFile[entry.File]
		if !exists {
			groupIndex = len(groups)
			indexByFile[entry.File] = groupIndex
			groups = append(groups, FileGroup{File: entry.File})
		}
		groups[groupIndex].Entries = append(groups[groupIndex].Entries, entry)
	}
	sort.SliceStable(groups, func(first int, second int) bool {
		return groups[first].File < groups[second].File
	})
	return groups
}

// TruncateSnippet shortens text longer than limit runes to its first limit-3
// runes followed by an ellipsis. A non-positive limit disables truncation.
func TruncateSnippet(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	keep := limit - len(ellipsisConstant)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(text)
	return string(runes[:keep]) + ellipsisConstant
}

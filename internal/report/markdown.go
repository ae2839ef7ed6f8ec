package report

import (
	"fmt"
	"strings"
)

const (
	markdownLineSeparatorConstant = "\n"
	headingMarkerConstant         = "#"
	headingTemplateConstant       = "%s %s"
	bulletTemplateConstant        = "- %s"
	minimumHeadingLevelConstant   = 1
	maximumHeadingLevelConstant   = 6
)

// Document accumulates the lines of a Markdown report.
type Document struct {
	lines []string
}

// NewDocument starts a document with a level-one title followed by a blank line.
func NewDocument(title string) *Document {
	document := &Document{}
	document.Heading(minimumHeadingLevelConstant, title)
	return document
}

// Heading appends a heading of the requested level followed by a blank line.
func (document *Document) Heading(level int, text string) *Document {
	document.lines = append(document.lines, headingLine(level, text), "")
	return document
}

func headingLine(level int, text string) string {
	if level < minimumHeadingLevelConstant {
		level = minimumHeadingLevelConstant
	}
	if level > maximumHeadingLevelConstant {
		level = maximumHeadingLevelConstant
	}
	return fmt.Sprintf(headingTemplateConstant, strings.Repeat(headingMarkerConstant, level), text)
}

// Paragraph appends a paragraph followed by a blank line.
func (document *Document) Paragraph(text string) *Document {
	document.lines = append(document.lines, text, "")
	return document
}

// Bullets appends one bullet per item followed by a blank line.
func (document *Document) Bullets(items ...string) *Document {
	for _, item := range items {
		document.lines = append(document.lines, fmt.Sprintf(bulletTemplateConstant, item))
	}
	document.lines = append(document.lines, "")
	return document
}

// CompactList appends a heading immediately followed by bullets, then a blank line.
func (document *Document) CompactList(level int, title string, items ...string) *Document {
	document.lines = append(document.lines, headingLine(level, title))
	return document.Bullets(items...)
}

// Section appends a rendered grouped section followed by a blank line.
func (document *Document) Section(section GroupedSection) *Document {
	document.lines = append(document.lines, section.Render()...)
	document.lines = append(document.lines, "")
	return document
}

// String renders the document with a single trailing line feed.
func (document *Document) String() string {
	lines := document.lines
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, markdownLineSeparatorConstant) + markdownLineSeparatorConstant
}

// InlineCode wraps text in backticks.
func InlineCode(text string) string {
	return "`" + text + "`"
}

package blocks

import "strings"

const (
	openingBraceConstant = "{"
	closingBraceConstant = "}"
)

// Line records a single visited line of a block.
type Line struct {
	Number int
	Text   string
}

// TextBlock is the ordered run of lines belonging to one matched construct.
type TextBlock []Line

// Extract returns the lines from startIndex through the line where the brace
// depth first returns to zero or below. The scan stops at end-of-file when the
// braces never balance. An out-of-range startIndex yields an empty block.
func Extract(lines []string, startIndex int) TextBlock {
	block, _ := ExtractBalanced(lines, startIndex)
	return block
}

// ExtractBalanced behaves like Extract and additionally reports whether the
// block closed before end-of-file.
func ExtractBalanced(lines []string, startIndex int) (TextBlock, bool) {
	if startIndex < 0 || startIndex >= len(lines) {
		return nil, false
	}

	braceDepth := 0
	openingBraceSeen := false
	block := make(TextBlock, 0, len(lines)-startIndex)

	for lineIndex := startIndex; lineIndex < len(lines); lineIndex++ {
		line := lines[lineIndex]
		if openingCount := strings.Count(line, openingBraceConstant); openingCount > 0 {
			braceDepth += openingCount
			openingBraceSeen = true
		}
		braceDepth -= strings.Count(line, closingBraceConstant)

		block = append(block, Line{Number: lineIndex + 1, Text: strings.TrimSpace(line)})

		if openingBraceSeen && braceDepth <= 0 {
			return block, true
		}
	}

	return block, false
}

// FirstLine returns the 1-based number of the first recorded line, or zero for an empty block.
func (block TextBlock) FirstLine() int {
	if len(block) == 0 {
		return 0
	}
	return block[0].Number
}

// LastLine returns the 1-based number of the last recorded line, or zero for an empty block.
func (block TextBlock) LastLine() int {
	if len(block) == 0 {
		return 0
	}
	return block[len(block)-1].Number
}

// LinesContaining returns the recorded lines whose trimmed text contains the fragment.
func (block TextBlock) LinesContaining(fragment string) []Line {
	var matching []Line
	for _, line := range block {
		if strings.Contains(line.Text, fragment) {
			matching = append(matching, line)
		}
	}
	return matching
}

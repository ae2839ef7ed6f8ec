package textscan

import (
	"fmt"
	"sort"
	"time"

	"github.com/dlclark/regexp2"
)

const (
	patternMatchTimeoutConstant         = 5 * time.Second
	patternCompileErrorTemplateConstant = "failed to compile pattern %q: %w"
	patternMatchErrorTemplateConstant   = "failed to match pattern %q: %w"
	lineFeedRuneConstant                = '\n'
	firstCaptureGroupConstant           = 1
)

// SourceMatch locates one pattern occurrence inside a file.
type SourceMatch struct {
	Path       string
	LineIndex  int
	Identifier string
}

// Pattern is a compiled regular expression that reports matches by line.
type Pattern struct {
	expression string
	compiled   *regexp2.Regexp
}

// CompilePattern compiles the expression in RE2-compatible mode and falls back
// to the full syntax for constructs such as look-behind assertions.
func CompilePattern(expression string) (*Pattern, error) {
	compiled, compileError := regexp2.Compile(expression, regexp2.RE2)
	if compileError != nil {
		compiled, compileError = regexp2.Compile(expression, regexp2.None)
		if compileError != nil {
			return nil, fmt.Errorf(patternCompileErrorTemplateConstant, expression, compileError)
		}
	}
	compiled.MatchTimeout = patternMatchTimeoutConstant
	return &Pattern{expression: expression, compiled: compiled}, nil
}

// MustCompilePattern is like CompilePattern but panics when the expression is invalid.
func MustCompilePattern(expression string) *Pattern {
	pattern, compileError := CompilePattern(expression)
	if compileError != nil {
		panic(compileError)
	}
	return pattern
}

// String returns the source expression.
func (pattern *Pattern) String() string {
	return pattern.expression
}

// MatchString reports whether the line contains a match.
func (pattern *Pattern) MatchString(line string) (bool, error) {
	matched, matchError := pattern.compiled.MatchString(line)
	if matchError != nil {
		return false, fmt.Errorf(patternMatchErrorTemplateConstant, pattern.expression, matchError)
	}
	return matched, nil
}

// FindAll returns every match in text with the 0-based index of the line on
// which it begins and the first capture group, when the pattern defines one.
func (pattern *Pattern) FindAll(path string, text string) ([]SourceMatch, error) {
	match, matchError := pattern.compiled.FindStringMatch(text)
	if matchError != nil {
		return nil, fmt.Errorf(patternMatchErrorTemplateConstant, pattern.expression, matchError)
	}
	if match == nil {
		return nil, nil
	}

	lineFeedOffsets := runeOffsetsOf(text, lineFeedRuneConstant)
	var sourceMatches []SourceMatch
	for match != nil {
		sourceMatches = append(sourceMatches, SourceMatch{
			Path:       path,
			LineIndex:  sort.SearchInts(lineFeedOffsets, match.Index),
			Identifier: firstCapture(match),
		})
		match, matchError = pattern.compiled.FindNextMatch(match)
		if matchError != nil {
			return nil, fmt.Errorf(patternMatchErrorTemplateConstant, pattern.expression, matchError)
		}
	}
	return sourceMatches, nil
}

// FindCaptures returns the first capture group of every match in text.
func (pattern *Pattern) FindCaptures(text string) ([]string, error) {
	sourceMatches, findError := pattern.FindAll("", text)
	if findError != nil {
		return nil, findError
	}
	captures := make([]string, 0, len(sourceMatches))
	for _, sourceMatch := range sourceMatches {
		captures = append(captures, sourceMatch.Identifier)
	}
	return captures, nil
}

func firstCapture(match *regexp2.Match) string {
	groups := match.Groups()
	if len(groups) <= firstCaptureGroupConstant {
		return ""
	}
	return groups[firstCaptureGroupConstant].String()
}

// runeOffsetsOf returns the rune offsets of every occurrence of target, matching
// the rune-based indices reported by regexp2.
func runeOffsetsOf(text string, target rune) []int {
	var offsets []int
	runeIndex := 0
	for _, candidate := range text {
		if candidate == target {
			offsets = append(offsets, runeIndex)
		}
		runeIndex++
	}
	return offsets
}

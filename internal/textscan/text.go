package textscan

import (
	"strings"
	"unicode/utf8"
)

const (
	lineFeedConstant               = "\n"
	carriageReturnConstant         = "\r"
	carriageReturnLineFeedConstant = "\r\n"
)

var lineEndingNormalizer = strings.NewReplacer(carriageReturnLineFeedConstant, lineFeedConstant, carriageReturnConstant, lineFeedConstant)

// DecodeText converts raw file contents into text with normalized line endings.
// In strict mode invalid UTF-8 rejects the content; otherwise invalid sequences are dropped.
func DecodeText(content []byte, strict bool) (string, bool) {
	text := string(content)
	if !utf8.ValidString(text) {
		if strict {
			return "", false
		}
		text = strings.ToValidUTF8(text, "")
	}
	return lineEndingNormalizer.Replace(text), true
}

// SplitLines splits normalized text into lines. A trailing line feed does not
// produce an additional empty line.
func SplitLines(text string) []string {
	if len(text) == 0 {
		return nil
	}
	lines := strings.Split(text, lineFeedConstant)
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

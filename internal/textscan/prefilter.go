package textscan

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Prefilter rejects content that contains none of a set of literal keywords.
// A prefilter without keywords admits everything.
type Prefilter struct {
	keywords []string
	matcher  *ahocorasick.Matcher
}

// NewPrefilter builds a prefilter from the provided keywords, ignoring blanks and duplicates.
func NewPrefilter(keywords ...string) *Prefilter {
	seen := make(map[string]struct{}, len(keywords))
	uniqueKeywords := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if len(strings.TrimSpace(keyword)) == 0 {
			continue
		}
		if _, exists := seen[keyword]; exists {
			continue
		}
		seen[keyword] = struct{}{}
		uniqueKeywords = append(uniqueKeywords, keyword)
	}

	prefilter := &Prefilter{keywords: uniqueKeywords}
	if len(uniqueKeywords) > 0 {
		prefilter.matcher = ahocorasick.NewStringMatcher(uniqueKeywords)
	}
	return prefilter
}

// Keywords returns the keywords the prefilter searches for.
func (prefilter *Prefilter) Keywords() []string {
	if prefilter == nil {
		return nil
	}
	return append([]string{}, prefilter.keywords...)
}

// Admits reports whether content contains at least one keyword.
func (prefilter *Prefilter) Admits(content []byte) bool {
	if prefilter == nil || prefilter.matcher == nil {
		return true
	}
	return len(prefilter.matcher.Match(content)) > 0
}

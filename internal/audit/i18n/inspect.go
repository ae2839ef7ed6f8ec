package i18n

import (
	"sort"
	"strings"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/textscan"
)

const (
	servicesDirectoryFragmentConstant   = "/services/"
	serviceFileSuffixConstant           = "service.ts"
	componentsDirectoryFragmentConstant = "/components/"
	vueFileSuffixConstant               = ".vue"
	dynamicKeySuffixConstant            = "."
	quoteCharactersConstant             = `'"`
	interpolationCharactersConstant     = "{}()"
)

// Category groups occurrences by the kind of file they appear in.
type Category int

// Supported categories, in report order.
const (
	CategoryServices Category = iota
	CategoryComponents
	CategoryOther
)

var (
	callPattern = textscan.MustCompilePattern(`\$t\(`)
	keyPatterns = []*textscan.Pattern{
		textscan.MustCompilePattern(`\$t\(\s*['"]([^'"\)]+)['"]`),
		textscan.MustCompilePattern(`(?<![\w$])t\(\s*['"]([^'"\)]+)['"]`),
		textscan.MustCompilePattern(`i18n\.(?:global\.)?t\(\s*['"]([^'"\)]+)['"]`),
	}
	directivePatterns = []*textscan.Pattern{
		textscan.MustCompilePattern(`v-t\s*=\s*"([^"]+)"`),
		textscan.MustCompilePattern(`v-t\s*=\s*'([^']+)'`),
	}
	keywordFilter = textscan.NewPrefilter("t(", "v-t")
)

// Occurrence is one source line containing a `$t(` call.
type Occurrence struct {
	File     string
	Line     int
	Code     string
	Category Category
}

// Classify assigns a file path to a category. Service detection ignores case;
// the .vue suffix check does not.
func Classify(path string) Category {
	lowered := strings.ToLower(path)
	switch {
	case strings.Contains(lowered, servicesDirectoryFragmentConstant) || strings.HasSuffix(lowered, serviceFileSuffixConstant):
		return CategoryServices
	case strings.Contains(lowered, componentsDirectoryFragmentConstant) || strings.HasSuffix(path, vueFileSuffixConstant):
		return CategoryComponents
	default:
		return CategoryOther
	}
}

// FindOccurrences returns one occurrence per line of document containing `$t(`.
func FindOccurrences(document audit.Document) ([]Occurrence, error) {
	category := Classify(document.Path)
	var occurrences []Occurrence
	for lineIndex, line := range document.Lines {
		matched, matchError := callPattern.MatchString(line)
		if matchError != nil {
			return nil, matchError
		}
		if !matched {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			File:     document.Path,
			Line:     lineIndex + 1,
			Code:     strings.TrimSpace(line),
			Category: category,
		})
	}
	return occurrences, nil
}

// ExtractKeys returns the literal translation keys referenced in text, in
// discovery order and possibly repeated. Keys ending in "." are dynamic
// prefixes and are dropped, as are v-t values containing interpolation.
func ExtractKeys(text string) ([]string, error) {
	var keys []string
	for _, pattern := range keyPatterns {
		captures, captureError := pattern.FindCaptures(text)
		if captureError != nil {
			return nil, captureError
		}
		for _, capture := range captures {
			key := strings.TrimSpace(capture)
			if len(key) == 0 || strings.HasSuffix(key, dynamicKeySuffixConstant) {
				continue
			}
			keys = append(keys, key)
		}
	}

	for _, pattern := range directivePatterns {
		captures, captureError := pattern.FindCaptures(text)
		if captureError != nil {
			return nil, captureError
		}
		for _, capture := range captures {
			key := trimOneQuote(strings.TrimSpace(capture))
			if len(key) == 0 || strings.ContainsAny(key, interpolationCharactersConstant) {
				continue
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func trimOneQuote(value string) string {
	if len(value) > 0 && strings.ContainsRune(quoteCharactersConstant, rune(value[0])) {
		value = value[1:]
	}
	if len(value) > 0 && strings.ContainsRune(quoteCharactersConstant, rune(value[len(value)-1])) {
		value = value[:len(value)-1]
	}
	return value
}

// Inventory aggregates occurrences and keys across a scan.
type Inventory struct {
	Services   []Occurrence
	Components []Occurrence
	Other      []Occurrence
	keys       map[string]struct{}
}

// AddOccurrences files each occurrence under its category.
func (inventory *Inventory) AddOccurrences(occurrences []Occurrence) {
	for _, occurrence := range occurrences {
		switch occurrence.Category {
		case CategoryServices:
			inventory.Services = append(inventory.Services, occurrence)
		case CategoryComponents:
			inventory.Components = append(inventory.Components, occurrence)
		default:
			inventory.Other = append(inventory.Other, occurrence)
		}
	}
}

// AddKeys records translation keys.
func (inventory *Inventory) AddKeys(keys []string) {
	if inventory.keys == nil {
		inventory.keys = make(map[string]struct{}, len(keys))
	}
	for _, key := range keys {
		inventory.keys[key] = struct{}{}
	}
}

// Total returns the number of occurrences across all categories.
func (inventory Inventory) Total() int {
	return len(inventory.Services) + len(inventory.Components) + len(inventory.Other)
}

// Keys returns the distinct translation keys sorted lexically.
func (inventory Inventory) Keys() []string {
	keys := make([]string, 0, len(inventory.keys))
	for key := range inventory.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

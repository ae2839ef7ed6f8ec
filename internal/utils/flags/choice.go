package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefix  = "<"
	choicePlaceholderSuffix  = ">"
	choiceSeparatorLiteral   = "|"
	choiceUsageEmptyTemplate = "`%s`"
	choiceUsageFullTemplate  = "`%s` %s"
)

// FormatChoiceUsage renders "`<a|B|c>` description" where the default choice is upper-cased.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choicePlaceholderPrefix + strings.Join(displayChoices(defaultChoice, choices), choiceSeparatorLiteral) + choicePlaceholderSuffix
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

// MatchChoice returns the canonical spelling of value among choices, ignoring case and
// surrounding whitespace.
func MatchChoice(value string, choices []string) (string, bool) {
	normalizedValue := normalizeChoice(value)
	if len(normalizedValue) == 0 {
		return "", false
	}
	for _, choice := range choices {
		if normalizeChoice(choice) == normalizedValue {
			return strings.TrimSpace(choice), true
		}
	}
	return "", false
}

func displayChoices(defaultChoice string, choices []string) []string {
	normalizedDefault := normalizeChoice(defaultChoice)
	displayed := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		normalizedChoice := normalizeChoice(choice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}

		displayValue := strings.TrimSpace(choice)
		if normalizedChoice == normalizedDefault {
			displayValue = strings.ToUpper(displayValue)
		}
		displayed = append(displayed, displayValue)
	}

	return displayed
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

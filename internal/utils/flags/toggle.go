package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueValue               = "true"
	toggleFalseValue              = "false"
	toggleTypeName                = "bool"
	toggleLongPrefix              = "--"
	toggleShortPrefix             = "-"
	toggleAssignment              = "="
	toggleParseErrorTemplate      = "invalid toggle value %q"
	toggleUsageTemplate           = "`%s` %s"
	toggleDefaultTruePlaceholder  = "<YES|no>"
	toggleDefaultFalsePlaceholder = "<yes|NO>"
)

var (
	toggleLiterals = map[string]bool{
		"true":  true,
		"yes":   true,
		"on":    true,
		"1":     true,
		"t":     true,
		"y":     true,
		"false": false,
		"no":    false,
		"off":   false,
		"0":     false,
		"f":     false,
		"n":     false,
	}

	toggleRegistryMutex sync.RWMutex
	toggleRegistry      = map[string]struct{}{}
)

// AddToggleFlag registers a boolean flag that also accepts yes/no, on/off and 1/0.
// A bare flag means true. The value may follow as a separate argument when the
// arguments were passed through NormalizeToggleArguments.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	flagSet.Var(newToggleValue(defaultValue, target), name, usage)
	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueValue
	flag.Usage = toggleUsage(usage, defaultValue)

	toggleRegistryMutex.Lock()
	toggleRegistry[name] = struct{}{}
	toggleRegistryMutex.Unlock()
}

// NormalizeToggleArguments joins "--toggle value" into "--toggle=value" for registered toggles
// so the value is not mistaken for a positional argument. Arguments after "--" are untouched.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == toggleLongPrefix {
			normalized = append(normalized, arguments[index:]...)
			break
		}

		if isBareToggle(current) && index+1 < len(arguments) && isToggleLiteral(arguments[index+1]) {
			normalized = append(normalized, current+toggleAssignment+arguments[index+1])
			index++
			continue
		}

		normalized = append(normalized, current)
	}

	return normalized
}

type toggleValue struct {
	value  bool
	target *bool
}

func newToggleValue(defaultValue bool, target *bool) *toggleValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleValue{value: defaultValue, target: target}
}

func (toggle *toggleValue) Set(rawValue string) error {
	trimmed := strings.ToLower(strings.TrimSpace(rawValue))
	if len(trimmed) == 0 {
		trimmed = toggleTrueValue
	}
	parsed, known := toggleLiterals[trimmed]
	if !known {
		return fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}

	toggle.value = parsed
	if toggle.target != nil {
		*toggle.target = parsed
	}
	return nil
}

func (toggle *toggleValue) String() string {
	if toggle != nil && toggle.value {
		return toggleTrueValue
	}
	return toggleFalseValue
}

func (toggle *toggleValue) Type() string {
	return toggleTypeName
}

func toggleUsage(description string, defaultValue bool) string {
	placeholder := toggleDefaultFalsePlaceholder
	if defaultValue {
		placeholder = toggleDefaultTruePlaceholder
	}
	trimmed := strings.TrimSpace(description)
	if len(trimmed) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(toggleUsageTemplate, placeholder, trimmed)
}

func isBareToggle(argument string) bool {
	if !strings.HasPrefix(argument, toggleLongPrefix) || strings.Contains(argument, toggleAssignment) {
		return false
	}
	name := strings.TrimPrefix(argument, toggleLongPrefix)

	toggleRegistryMutex.RLock()
	defer toggleRegistryMutex.RUnlock()
	_, registered := toggleRegistry[name]
	return registered
}

func isToggleLiteral(argument string) bool {
	if strings.HasPrefix(argument, toggleShortPrefix) {
		return false
	}
	_, known := toggleLiterals[strings.ToLower(strings.TrimSpace(argument))]
	return known
}

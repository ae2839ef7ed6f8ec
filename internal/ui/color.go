package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	flagutils "github.com/temirov/codeaudit/internal/utils/flags"
)

const (
	noColorEnvironmentVariableConstant = "NO_COLOR"
	unknownColorModeTemplateConstant   = "unsupported color mode: %s"
)

// ColorMode selects when console output is colored.
type ColorMode string

// Supported color modes.
const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

// ColorModeChoices lists the accepted color mode values in display order.
func ColorModeChoices() []string {
	return []string{string(ColorModeAuto), string(ColorModeAlways), string(ColorModeNever)}
}

// ParseColorMode converts a configured value into a ColorMode; empty means auto.
func ParseColorMode(value string) (ColorMode, error) {
	if len(strings.TrimSpace(value)) == 0 {
		return ColorModeAuto, nil
	}
	matched, found := flagutils.MatchChoice(value, ColorModeChoices())
	if !found {
		return ColorModeAuto, fmt.Errorf(unknownColorModeTemplateConstant, value)
	}
	return ColorMode(matched), nil
}

// EnvironmentLookup mirrors os.LookupEnv.
type EnvironmentLookup func(key string) (string, bool)

// ColorEnabled reports whether output written to writer should be colored.
// Auto mode requires a terminal writer and an unset or empty NO_COLOR.
func ColorEnabled(mode ColorMode, writer io.Writer, lookupEnvironment EnvironmentLookup) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}

	if lookupEnvironment == nil {
		lookupEnvironment = os.LookupEnv
	}
	if value, present := lookupEnvironment(noColorEnvironmentVariableConstant); present && len(value) > 0 {
		return false
	}

	terminalFile, isFile := writer.(*os.File)
	if !isFile || terminalFile == nil {
		return false
	}
	return term.IsTerminal(int(terminalFile.Fd()))
}

package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/ui"
)

func TestSummaryPrinterPlainOutput(testInstance *testing.T) {
	var output bytes.Buffer
	printer := ui.NewSummaryPrinter(&output, false)

	require.NoError(testInstance, printer.PrintResult(audit.Result{
		Operation:    "optional-null",
		OutputPath:   "docs/audit/optional-null-mismatches.md",
		SARIFPath:    "docs/audit/optional-null.sarif",
		FilesScanned: 4,
		Findings:     2,
	}))
	require.NoError(testInstance, printer.PrintPlan("table-types", []string{"docs/audit/table-types.md"}))
	require.NoError(testInstance, printer.PrintPlan("i18n-usage", nil))

	expected := "optional-null: 4 files scanned, 2 findings -> docs/audit/optional-null-mismatches.md, docs/audit/optional-null.sarif\n" +
		"table-types: would write docs/audit/table-types.md\n" +
		"i18n-usage: would write (no artifacts)\n"
	require.Equal(testInstance, expected, output.String())
}

func TestSummaryPrinterColoredOutput(testInstance *testing.T) {
	var output bytes.Buffer
	printer := ui.NewSummaryPrinter(&output, true)

	require.NoError(testInstance, printer.PrintResult(audit.Result{Operation: "table-types", OutputPath: "out.md", FilesScanned: 1}))
	require.Contains(testInstance, output.String(), "\x1b[")
	require.Contains(testInstance, output.String(), "table-types")
}

func TestParseColorMode(testInstance *testing.T) {
	testCases := []struct {
		value       string
		expected    ui.ColorMode
		expectError bool
	}{
		{value: "", expected: ui.ColorModeAuto},
		{value: " Always ", expected: ui.ColorModeAlways},
		{value: "never", expected: ui.ColorModeNever},
		{value: "sometimes", expected: ui.ColorModeAuto, expectError: true},
	}

	for _, testCase := range testCases {
		mode, parseError := ui.ParseColorMode(testCase.value)
		if testCase.expectError {
			require.Error(testInstance, parseError)
		} else {
			require.NoError(testInstance, parseError)
		}
		require.Equal(testInstance, testCase.expected, mode)
	}
}

func TestColorEnabled(testInstance *testing.T) {
	noEnvironment := func(string) (string, bool) { return "", false }
	noColorSet := func(key string) (string, bool) { return "1", key == "NO_COLOR" }

	var buffer bytes.Buffer
	require.True(testInstance, ui.ColorEnabled(ui.ColorModeAlways, &buffer, noColorSet))
	require.False(testInstance, ui.ColorEnabled(ui.ColorModeNever, os.Stdout, noEnvironment))
	require.False(testInstance, ui.ColorEnabled(ui.ColorModeAuto, &buffer, noEnvironment))

	temporaryFile, createError := os.CreateTemp(testInstance.TempDir(), "summary")
	require.NoError(testInstance, createError)
	defer temporaryFile.Close()
	require.False(testInstance, ui.ColorEnabled(ui.ColorModeAuto, temporaryFile, noEnvironment))
	require.False(testInstance, ui.ColorEnabled(ui.ColorModeAuto, temporaryFile, noColorSet))
}

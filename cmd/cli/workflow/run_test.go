package workflow_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	workflowcmd "github.com/temirov/codeaudit/cmd/cli/workflow"
	"github.com/temirov/codeaudit/internal/utils"
	flagutils "github.com/temirov/codeaudit/internal/utils/flags"
)

const (
	workflowFileNameConstant       = "workflow.yaml"
	workflowSourceFileConstant     = "users.ts"
	workflowSourceContentConstant  = "const row: Tables<'users'> = load()\n"
	workflowTemplateConstant       = "steps:\n  - operation: table-types\n    with:\n      root: %s\n      output: %s\n      format: text\n"
	workflowDryRunFlagConstant     = "--" + flagutils.DryRunFlagName
	workflowUsageSnippetConstant   = "Usage:"
	workflowPathRequiredConstant   = "workflow configuration path required"
	workflowLoadFailureConstant    = "unable to load workflow configuration"
	workflowBuildFailureConstant   = "unable to build workflow operations"
	workflowOutputFileNameConstant = "tables.txt"
)

type workflowFixture struct {
	configurationPath string
	outputPath        string
}

func writeWorkflowFixture(testInstance *testing.T) workflowFixture {
	testInstance.Helper()
	projectDirectory := testInstance.TempDir()
	sourceDirectory := filepath.Join(projectDirectory, "src")
	require.NoError(testInstance, os.MkdirAll(sourceDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(sourceDirectory, workflowSourceFileConstant), []byte(workflowSourceContentConstant), 0o644))

	outputPath := filepath.Join(projectDirectory, "reports", workflowOutputFileNameConstant)
	configurationPath := filepath.Join(projectDirectory, workflowFileNameConstant)
	configurationContent := fmt.Sprintf(workflowTemplateConstant, sourceDirectory, outputPath)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationContent), 0o644))

	return workflowFixture{configurationPath: configurationPath, outputPath: outputPath}
}

func buildWorkflowCommand(testInstance *testing.T, configuration workflowcmd.CommandConfiguration) (*cobra.Command, *bytes.Buffer) {
	testInstance.Helper()
	builder := workflowcmd.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		ConfigurationProvider: func() workflowcmd.CommandConfiguration {
			return configuration
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetContext(context.Background())
	return command, &output
}

func TestWorkflowCommandDryRunPrecedence(testInstance *testing.T) {
	testCases := []struct {
		name           string
		configuration  workflowcmd.CommandConfiguration
		additionalArgs []string
		expectWritten  bool
	}{
		{
			name:           "configuration_dry_run_without_flags",
			configuration:  workflowcmd.CommandConfiguration{DryRun: true},
			additionalArgs: []string{},
			expectWritten:  false,
		},
		{
			name:           "flag_enables_dry_run",
			configuration:  workflowcmd.CommandConfiguration{},
			additionalArgs: []string{workflowDryRunFlagConstant},
			expectWritten:  false,
		},
		{
			name:           "flag_disables_configured_dry_run",
			configuration:  workflowcmd.CommandConfiguration{DryRun: true},
			additionalArgs: []string{workflowDryRunFlagConstant, "no"},
			expectWritten:  true,
		},
		{
			name:           "runs_by_default",
			configuration:  workflowcmd.CommandConfiguration{},
			additionalArgs: []string{},
			expectWritten:  true,
		},
	}

	for testCaseIndex := range testCases {
		testCase := testCases[testCaseIndex]
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			fixture := writeWorkflowFixture(subtest)
			command, output := buildWorkflowCommand(subtest, testCase.configuration)

			arguments := append([]string{fixture.configurationPath}, testCase.additionalArgs...)
			command.SetArgs(flagutils.NormalizeToggleArguments(arguments))
			require.NoError(subtest, command.Execute())

			_, statError := os.Stat(fixture.outputPath)
			if testCase.expectWritten {
				require.NoError(subtest, statError)
				require.Equal(subtest, "table-types: 1 files scanned, 1 findings -> "+fixture.outputPath+"\n", output.String())
				written, readError := os.ReadFile(fixture.outputPath)
				require.NoError(subtest, readError)
				require.Equal(subtest, "users", string(written))
				return
			}

			require.True(subtest, os.IsNotExist(statError))
			require.Equal(subtest, "table-types: would write "+fixture.outputPath+"\n", output.String())
		})
	}
}

func TestWorkflowCommandUsesConfigurationFileFromContext(testInstance *testing.T) {
	fixture := writeWorkflowFixture(testInstance)
	command, output := buildWorkflowCommand(testInstance, workflowcmd.CommandConfiguration{DryRun: true})
	command.SetContext(utils.NewCommandContextAccessor().WithConfigurationFilePath(context.Background(), fixture.configurationPath))
	command.SetArgs([]string{})

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, "table-types: would write "+fixture.outputPath+"\n", output.String())
}

func TestWorkflowCommandErrors(testInstance *testing.T) {
	testCases := []struct {
		name            string
		contents        string
		omitPath        bool
		expectedError   string
		expectUsageText bool
	}{
		{
			name:            "missing_path_shows_help",
			omitPath:        true,
			expectedError:   workflowPathRequiredConstant,
			expectUsageText: true,
		},
		{
			name:          "empty_workflow",
			contents:      "steps: []\n",
			expectedError: workflowLoadFailureConstant,
		},
		{
			name:          "unknown_option",
			contents:      "steps:\n  - operation: optional-null\n    with:\n      roots: src\n",
			expectedError: workflowBuildFailureConstant,
		},
	}

	for testCaseIndex := range testCases {
		testCase := testCases[testCaseIndex]
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			command, output := buildWorkflowCommand(subtest, workflowcmd.CommandConfiguration{})
			command.SilenceErrors = true
			command.SilenceUsage = true

			arguments := []string{}
			if !testCase.omitPath {
				configurationPath := filepath.Join(subtest.TempDir(), workflowFileNameConstant)
				require.NoError(subtest, os.WriteFile(configurationPath, []byte(testCase.contents), 0o644))
				arguments = append(arguments, configurationPath)
			}
			command.SetArgs(arguments)

			executionError := command.Execute()
			require.ErrorContains(subtest, executionError, testCase.expectedError)
			if testCase.expectUsageText {
				require.Contains(subtest, output.String(), workflowUsageSnippetConstant)
			}
		})
	}
}

package docs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/cmd/cli"
	"github.com/temirov/codeaudit/internal/audit/tables"
	"github.com/temirov/codeaudit/internal/workflow"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	configurationTypeConstant        = "yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

var expectedWorkflowOperations = []string{"optional-null", "table-types", "i18n-usage"}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	snippetContent := readReadmeConfigurationSnippet(testInstance)

	testInstance.Run("application_configuration", func(subtest *testing.T) {
		viperInstance := viper.New()
		viperInstance.SetConfigType(configurationTypeConstant)
		require.NoError(subtest, viperInstance.ReadConfig(bytes.NewReader([]byte(snippetContent))))

		var configuration cli.ApplicationConfiguration
		require.NoError(subtest, viperInstance.Unmarshal(&configuration))

		require.Equal(subtest, "console", configuration.Common.LogFormat)
		require.Equal(subtest, "docs/audit/optional-null.sarif", configuration.Tools.OptionalNull.SARIFOutput)
		require.Equal(subtest, []string{"generated"}, configuration.Tools.I18nUsage.Scan.ExcludedDirectories)
		require.True(subtest, configuration.Tools.I18nUsage.Scan.RespectGitIgnore)

		_, formatError := tables.ParseFormat(configuration.Tools.TableTypes.Format)
		require.NoError(subtest, formatError)
	})

	testInstance.Run("workflow_section", func(subtest *testing.T) {
		configurationPath := filepath.Join(subtest.TempDir(), "config.yaml")
		require.NoError(subtest, os.WriteFile(configurationPath, []byte(snippetContent), 0o644))

		workflowConfiguration, loadError := workflow.LoadConfiguration(configurationPath)
		require.NoError(subtest, loadError)

		operations, buildError := workflow.BuildOperations(workflowConfiguration)
		require.NoError(subtest, buildError)

		operationNames := make([]string, 0, len(operations))
		for _, operation := range operations {
			operationNames = append(operationNames, operation.Name())
		}
		require.Equal(subtest, expectedWorkflowOperations, operationNames)
	})
}

func readReadmeConfigurationSnippet(testInstance *testing.T) string {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : headerIndex+fenceEndRelativeIndex])
}

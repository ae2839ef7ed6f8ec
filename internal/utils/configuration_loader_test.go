package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/internal/utils"
)

const (
	testEnvironmentPrefixConstant = "TESTCODEAUDIT"
	testConfigurationNameConstant = "config"
	testConfigurationTypeConstant = "yaml"
	testConfigFileNameConstant    = "config.yaml"
	testApplicationNameConstant   = "codeaudit"
	testEmbeddedContentConstant   = "common:\n  log_format: console\n  color: never\ntools:\n  sample:\n    root: embedded\n"
	testFileContentConstant       = "common:\n  color: always\ntools:\n  sample:\n    root: from-file\n    extensions: [\".vue\"]\n"
	testSearchContentConstant     = "common:\n  log_level: debug\n"
)

type layeredConfiguration struct {
	Common layeredCommonConfiguration `mapstructure:"common"`
	Tools  layeredToolsConfiguration  `mapstructure:"tools"`
}

type layeredCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Color     string `mapstructure:"color"`
}

type layeredToolsConfiguration struct {
	Sample layeredSampleConfiguration `mapstructure:"sample"`
}

type layeredSampleConfiguration struct {
	Root       string   `mapstructure:"root"`
	Output     string   `mapstructure:"output"`
	Extensions []string `mapstructure:"extensions"`
}

func layeredDefaults() map[string]any {
	return map[string]any{
		"common.log_level":        "info",
		"common.log_format":       "structured",
		"common.color":            "auto",
		"tools.sample.root":       "src",
		"tools.sample.output":     "report.md",
		"tools.sample.extensions": []string{".ts"},
	}
}

func writeConfigurationFile(testInstance *testing.T, directory string, content string) string {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(directory, 0o755))
	path := filepath.Join(directory, testConfigFileNameConstant)
	require.NoError(testInstance, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigurationLoaderLayersSources(testInstance *testing.T) {
	testCases := []struct {
		name        string
		embedded    string
		file        string
		environment map[string]string
		expected    layeredConfiguration
	}{
		{
			name: "defaults_only",
			expected: layeredConfiguration{
				Common: layeredCommonConfiguration{LogLevel: "info", LogFormat: "structured", Color: "auto"},
				Tools:  layeredToolsConfiguration{Sample: layeredSampleConfiguration{Root: "src", Output: "report.md", Extensions: []string{".ts"}}},
			},
		},
		{
			name:     "embedded_over_defaults",
			embedded: testEmbeddedContentConstant,
			expected: layeredConfiguration{
				Common: layeredCommonConfiguration{LogLevel: "info", LogFormat: "console", Color: "never"},
				Tools:  layeredToolsConfiguration{Sample: layeredSampleConfiguration{Root: "embedded", Output: "report.md", Extensions: []string{".ts"}}},
			},
		},
		{
			name:     "file_over_embedded",
			embedded: testEmbeddedContentConstant,
			file:     testFileContentConstant,
			expected: layeredConfiguration{
				Common: layeredCommonConfiguration{LogLevel: "info", LogFormat: "console", Color: "always"},
				Tools:  layeredToolsConfiguration{Sample: layeredSampleConfiguration{Root: "from-file", Output: "report.md", Extensions: []string{".vue"}}},
			},
		},
		{
			name:     "environment_over_file",
			embedded: testEmbeddedContentConstant,
			file:     testFileContentConstant,
			environment: map[string]string{
				"TESTCODEAUDIT_COMMON_LOG_LEVEL":    "error",
				"TESTCODEAUDIT_TOOLS_SAMPLE_ROOT":   "from-env",
				"TESTCODEAUDIT_TOOLS_SAMPLE_OUTPUT": "env.md",
			},
			expected: layeredConfiguration{
				Common: layeredCommonConfiguration{LogLevel: "error", LogFormat: "console", Color: "always"},
				Tools:  layeredToolsConfiguration{Sample: layeredSampleConfiguration{Root: "from-env", Output: "env.md", Extensions: []string{".vue"}}},
			},
		},
	}

	for testCaseIndex := range testCases {
		testCase := testCases[testCaseIndex]
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			for key, value := range testCase.environment {
				subtest.Setenv(key, value)
			}

			configurationFilePath := ""
			if len(testCase.file) > 0 {
				configurationFilePath = writeConfigurationFile(subtest, subtest.TempDir(), testCase.file)
			}

			loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{subtest.TempDir()})
			loader.SetEmbeddedConfiguration([]byte(testCase.embedded), testConfigurationTypeConstant)

			var loaded layeredConfiguration
			metadata, loadError := loader.LoadConfiguration(configurationFilePath, layeredDefaults(), &loaded)
			require.NoError(subtest, loadError)
			require.Equal(subtest, testCase.expected, loaded)
			require.Equal(subtest, configurationFilePath, metadata.ConfigFileUsed)
		})
	}
}

func TestConfigurationLoaderSearchesDirectoriesInOrder(testInstance *testing.T) {
	homeDirectory := testInstance.TempDir()
	testInstance.Setenv("HOME", homeDirectory)
	testInstance.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDirectory, ".config"))

	userDirectory, available := utils.UserConfigurationDirectory(testApplicationNameConstant)
	require.True(testInstance, available)
	require.Equal(testInstance, testApplicationNameConstant, filepath.Base(userDirectory))

	workingDirectory := testInstance.TempDir()
	searchPaths := []string{workingDirectory, " ", userDirectory}

	userFile := writeConfigurationFile(testInstance, userDirectory, testSearchContentConstant)
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, searchPaths)

	var fromUserDirectory layeredConfiguration
	metadata, loadError := loader.LoadConfiguration("", layeredDefaults(), &fromUserDirectory)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "debug", fromUserDirectory.Common.LogLevel)
	require.Equal(testInstance, userFile, metadata.ConfigFileUsed)

	workingFile := writeConfigurationFile(testInstance, workingDirectory, "common:\n  log_level: warn\n")

	var fromWorkingDirectory layeredConfiguration
	metadata, loadError = loader.LoadConfiguration("", layeredDefaults(), &fromWorkingDirectory)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "warn", fromWorkingDirectory.Common.LogLevel)
	require.Equal(testInstance, workingFile, metadata.ConfigFileUsed)
}

func TestConfigurationLoaderWithoutAnyFile(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{testInstance.TempDir()})

	var loaded layeredConfiguration
	metadata, loadError := loader.LoadConfiguration("", layeredDefaults(), &loaded)
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, metadata.ConfigFileUsed)
	require.Equal(testInstance, "info", loaded.Common.LogLevel)
}

func TestConfigurationLoaderExpandsHomeInConfigurationPath(testInstance *testing.T) {
	homeDirectory := testInstance.TempDir()
	testInstance.Setenv("HOME", homeDirectory)
	configurationFilePath := writeConfigurationFile(testInstance, homeDirectory, testSearchContentConstant)

	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var loaded layeredConfiguration
	metadata, loadError := loader.LoadConfiguration("~/"+testConfigFileNameConstant, nil, &loaded)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "debug", loaded.Common.LogLevel)
	require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
}

func TestConfigurationLoaderRejectsMissingExplicitFile(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	var loaded layeredConfiguration
	_, loadError := loader.LoadConfiguration(filepath.Join(testInstance.TempDir(), testConfigFileNameConstant), nil, &loaded)
	require.ErrorContains(testInstance, loadError, "failed to read configuration")
}

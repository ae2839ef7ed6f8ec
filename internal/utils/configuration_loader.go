package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	pathutils "github.com/temirov/codeaudit/internal/utils/path"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoader layers embedded defaults, default values, an optional configuration
// file and environment variables into a single viper view.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	embeddedConfiguration     []byte
	embeddedConfigurationType string
	homeExpander              *pathutils.HomeExpander
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches known paths and respects an environment prefix.
// Empty search paths are dropped.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	retainedSearchPaths := make([]string, 0, len(searchPaths))
	for _, searchPath := range searchPaths {
		trimmedSearchPath := strings.TrimSpace(searchPath)
		if len(trimmedSearchPath) == 0 {
			continue
		}
		retainedSearchPaths = append(retainedSearchPaths, trimmedSearchPath)
	}

	return &ConfigurationLoader{
		configurationName: configurationName,
		configurationType: configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       retainedSearchPaths,
		homeExpander:      pathutils.NewHomeExpander(),
	}
}

// UserConfigurationDirectory returns <user config dir>/<applicationName>, or false when the
// platform exposes no user configuration directory.
func UserConfigurationDirectory(applicationName string) (string, bool) {
	userConfigurationDirectory, lookupError := os.UserConfigDir()
	if lookupError != nil || len(userConfigurationDirectory) == 0 {
		return "", false
	}
	return filepath.Join(userConfigurationDirectory, applicationName), true
}

// SetEmbeddedConfiguration stores configuration data merged below the configuration file.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)
	loader.embeddedConfiguration = nil
	if len(configurationData) > 0 {
		loader.embeddedConfiguration = append([]byte(nil), configurationData...)
	}
}

// LoadConfiguration populates targetConfiguration. Precedence from lowest to highest is
// defaultValues, the embedded configuration, the configuration file and the environment.
// configurationFilePath may start with ~; when empty the search paths are consulted and a
// missing file is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)

	if mergeError := loader.mergeEmbeddedConfiguration(viperInstance); mergeError != nil {
		return LoadedConfiguration{}, mergeError
	}
	viperInstance.SetConfigType(loader.configurationType)

	for _, searchPath := range loader.searchPaths {
		viperInstance.AddConfigPath(loader.homeExpander.Expand(searchPath))
	}

	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant))
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	trimmedFilePath := strings.TrimSpace(configurationFilePath)
	if len(trimmedFilePath) > 0 {
		viperInstance.SetConfigFile(loader.homeExpander.Expand(trimmedFilePath))
	}

	if readError := viperInstance.MergeInConfig(); readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(readError, &notFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if unmarshalError := viperInstance.Unmarshal(targetConfiguration); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

func (loader *ConfigurationLoader) mergeEmbeddedConfiguration(viperInstance *viper.Viper) error {
	if len(loader.embeddedConfiguration) == 0 {
		return nil
	}

	configurationType := loader.configurationType
	if len(loader.embeddedConfigurationType) > 0 {
		configurationType = loader.embeddedConfigurationType
	}
	viperInstance.SetConfigType(configurationType)

	if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); mergeError != nil {
		return fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
	}
	return nil
}

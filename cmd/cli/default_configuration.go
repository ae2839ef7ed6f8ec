package cli

import (
	"bytes"
	_ "embed"
)

//go:embed default_config.yaml
var defaultConfigurationYAML []byte

// EmbeddedDefaultConfiguration returns a copy of the built-in configuration file and its format.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultConfigurationYAML), configurationTypeConstant
}

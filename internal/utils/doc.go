// Package utils hosts the CLI plumbing shared by every command: the viper-backed
// ConfigurationLoader, the zap LoggerFactory and the command context accessor.
package utils

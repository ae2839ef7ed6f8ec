package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	standardErrorSinkConstant  = "stderr"
	unknownLogLevelTemplate    = "unsupported log level: %s"
	unknownLogFormatTemplate   = "unsupported log format: %s"
	structuredEncodingConstant = "json"
	consoleEncodingConstant    = "console"
)

// LogLevel names the minimum severity a logger emits.
type LogLevel string

// Supported log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat names a logger encoding.
type LogFormat string

// Supported log formats.
const (
	LogFormatStructured LogFormat = "structured"
	LogFormatConsole    LogFormat = "console"
)

var zapLevels = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LogLevelChoices lists the accepted log levels from most to least verbose.
func LogLevelChoices() []string {
	return []string{string(LogLevelDebug), string(LogLevelInfo), string(LogLevelWarn), string(LogLevelError)}
}

// LogFormatChoices lists the accepted log formats.
func LogFormatChoices() []string {
	return []string{string(LogFormatStructured), string(LogFormatConsole)}
}

// LoggerFactory builds loggers that write to standard error.
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger builds a logger for level and format. Both are matched case-insensitively;
// structured emits JSON lines and console emits human-readable lines without stack traces.
func (factory *LoggerFactory) CreateLogger(level LogLevel, format LogFormat) (*zap.Logger, error) {
	zapLevel, known := zapLevels[LogLevel(normalizeChoice(string(level)))]
	if !known {
		return nil, fmt.Errorf(unknownLogLevelTemplate, level)
	}

	configuration, configurationError := encodingConfiguration(format)
	if configurationError != nil {
		return nil, configurationError
	}

	configuration.Level = zap.NewAtomicLevelAt(zapLevel)
	configuration.OutputPaths = []string{standardErrorSinkConstant}
	configuration.ErrorOutputPaths = []string{standardErrorSinkConstant}
	return configuration.Build()
}

func encodingConfiguration(format LogFormat) (zap.Config, error) {
	switch LogFormat(normalizeChoice(string(format))) {
	case LogFormatStructured:
		configuration := zap.NewProductionConfig()
		configuration.Encoding = structuredEncodingConstant
		return configuration, nil
	case LogFormatConsole:
		configuration := zap.NewDevelopmentConfig()
		configuration.Encoding = consoleEncodingConstant
		configuration.Development = false
		configuration.DisableStacktrace = true
		return configuration, nil
	default:
		return zap.Config{}, fmt.Errorf(unknownLogFormatTemplate, format)
	}
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

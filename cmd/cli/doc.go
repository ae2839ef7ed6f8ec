// Package cli constructs the codeaudit command-line interface. It wires the
// Cobra command hierarchy to the layered configuration loader and the zap
// logger, and registers the optional-null, i18n-usage, table-types and
// workflow commands.
package cli

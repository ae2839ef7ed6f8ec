// Package audit holds the pieces shared by the source-tree audits: scan
// configuration, source loading, command flag wiring and run results.
//
// Each audit lives in its own sub-package and exposes a CommandBuilder for the
// Cobra command and a Service that runs the audit programmatically.
package audit

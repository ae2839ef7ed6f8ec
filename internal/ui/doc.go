// Package ui formats the human-readable console lines printed after each audit.
//
// Detailed telemetry flows through the structured logger; this package only
// renders the short summaries users read on stdout.
package ui

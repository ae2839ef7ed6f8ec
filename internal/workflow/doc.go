// Package workflow runs a declarative sequence of audits loaded from YAML or JSON.
package workflow

package workflow

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/audit"
)

// Operation coordinates a single workflow step.
type Operation interface {
	Name() string
	Execute(executionContext context.Context, environment *Environment) (audit.Result, error)
	PlannedArtifacts() []string
}

// Environment exposes shared dependencies for workflow operations.
type Environment struct {
	Discoverer audit.SourceDiscoverer
	FileSystem audit.FileSystem
	Logger     *zap.Logger
}

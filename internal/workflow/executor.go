package workflow

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/ui"
)

const (
	workflowExecutionErrorTemplateConstant = "workflow operation %s failed: %w"
	workflowSummaryErrorTemplateConstant   = "failed to print workflow summary: %w"
	workflowStepStartedMessageConstant     = "workflow step started"
	workflowStepPlannedMessageConstant     = "workflow step planned"
	logFieldOperationConstant              = "operation"
	logFieldIndexConstant                  = "step"
)

// Dependencies configures shared collaborators for workflow execution.
type Dependencies struct {
	Logger       *zap.Logger
	Discoverer   audit.SourceDiscoverer
	FileSystem   audit.FileSystem
	Output       io.Writer
	ColorEnabled bool
}

// RuntimeOptions captures user-provided execution modifiers.
type RuntimeOptions struct {
	DryRun bool
}

// Executor coordinates workflow operation execution.
type Executor struct {
	operations   []Operation
	dependencies Dependencies
}

// NewExecutor constructs an Executor instance.
func NewExecutor(operations []Operation, dependencies Dependencies) *Executor {
	return &Executor{operations: append([]Operation{}, operations...), dependencies: dependencies}
}

// Execute runs the workflow operations in order and stops at the first failure.
// A dry run prints each step's planned artifacts without scanning.
func (executor *Executor) Execute(executionContext context.Context, runtimeOptions RuntimeOptions) ([]audit.Result, error) {
	logger := executor.dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	printer := ui.NewSummaryPrinter(executor.dependencies.Output, executor.dependencies.ColorEnabled)
	environment := &Environment{
		Discoverer: executor.dependencies.Discoverer,
		FileSystem: executor.dependencies.FileSystem,
		Logger:     logger,
	}

	results := make([]audit.Result, 0, len(executor.operations))
	for operationIndex := range executor.operations {
		operation := executor.operations[operationIndex]
		if operation == nil {
			continue
		}

		if runtimeOptions.DryRun {
			logger.Debug(workflowStepPlannedMessageConstant, zap.Int(logFieldIndexConstant, operationIndex+1), zap.String(logFieldOperationConstant, operation.Name()))
			if printError := printer.PrintPlan(operation.Name(), operation.PlannedArtifacts()); printError != nil {
				return results, fmt.Errorf(workflowSummaryErrorTemplateConstant, printError)
			}
			continue
		}

		if contextError := executionContext.Err(); contextError != nil {
			return results, fmt.Errorf(workflowExecutionErrorTemplateConstant, operation.Name(), contextError)
		}

		logger.Debug(workflowStepStartedMessageConstant, zap.Int(logFieldIndexConstant, operationIndex+1), zap.String(logFieldOperationConstant, operation.Name()))
		result, executeError := operation.Execute(executionContext, environment)
		if executeError != nil {
			return results, fmt.Errorf(workflowExecutionErrorTemplateConstant, operation.Name(), executeError)
		}
		results = append(results, result)

		if printError := printer.PrintResult(result); printError != nil {
			return results, fmt.Errorf(workflowSummaryErrorTemplateConstant, printError)
		}
	}

	return results, nil
}

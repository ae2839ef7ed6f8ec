package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/audit/tables"
	"github.com/temirov/codeaudit/internal/workflow"
)

type recordingOperation struct {
	name       string
	result     audit.Result
	err        error
	executions *[]string
}

func (operation recordingOperation) Name() string {
	return operation.name
}

func (operation recordingOperation) Execute(context.Context, *workflow.Environment) (audit.Result, error) {
	*operation.executions = append(*operation.executions, operation.name)
	return operation.result, operation.err
}

func (operation recordingOperation) PlannedArtifacts() []string {
	return operation.result.Artifacts()
}

func TestExecutorRunsAuditSteps(testInstance *testing.T) {
	projectDirectory := testInstance.TempDir()
	sourceDirectory := filepath.Join(projectDirectory, "src")
	require.NoError(testInstance, os.MkdirAll(sourceDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(sourceDirectory, "users.ts"), []byte("type Row = Tables<'users'>\n"), 0o644))
	outputPath := filepath.Join(projectDirectory, "out", "tables.txt")

	operations, buildError := workflow.BuildOperations(workflow.Configuration{Steps: []workflow.StepConfiguration{{
		Operation: workflow.OperationTypeTableTypes,
		Options:   map[string]any{"root": sourceDirectory, "output": outputPath, "format": "text"},
	}}})
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	executor := workflow.NewExecutor(operations, workflow.Dependencies{Output: &output})
	results, executeError := executor.Execute(context.Background(), workflow.RuntimeOptions{})
	require.NoError(testInstance, executeError)

	require.Equal(testInstance, []audit.Result{{
		Operation:    tables.OperationName,
		OutputPath:   outputPath,
		FilesScanned: 1,
		Findings:     1,
	}}, results)
	require.Equal(testInstance, "table-types: 1 files scanned, 1 findings -> "+outputPath+"\n", output.String())

	written, readError := os.ReadFile(outputPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "users", string(written))
}

func TestExecutorDryRunPrintsPlans(testInstance *testing.T) {
	var executions []string
	operations := []workflow.Operation{
		recordingOperation{name: "first", result: audit.Result{OutputPath: "first.md", SARIFPath: "first.sarif"}, executions: &executions},
		nil,
		recordingOperation{name: "second", executions: &executions},
	}

	var output bytes.Buffer
	results, executeError := workflow.NewExecutor(operations, workflow.Dependencies{Output: &output}).Execute(context.Background(), workflow.RuntimeOptions{DryRun: true})
	require.NoError(testInstance, executeError)
	require.Empty(testInstance, results)
	require.Empty(testInstance, executions)
	require.Equal(testInstance, "first: would write first.md, first.sarif\nsecond: would write (no artifacts)\n", output.String())
}

func TestExecutorStopsAtFirstFailure(testInstance *testing.T) {
	var executions []string
	stepError := errors.New("disk full")
	operations := []workflow.Operation{
		recordingOperation{name: "first", result: audit.Result{Operation: "first"}, executions: &executions},
		recordingOperation{name: "second", err: stepError, executions: &executions},
		recordingOperation{name: "third", executions: &executions},
	}

	results, executeError := workflow.NewExecutor(operations, workflow.Dependencies{}).Execute(context.Background(), workflow.RuntimeOptions{})
	require.ErrorIs(testInstance, executeError, stepError)
	require.EqualError(testInstance, executeError, "workflow operation second failed: disk full")
	require.Equal(testInstance, []string{"first", "second"}, executions)
	require.Equal(testInstance, []audit.Result{{Operation: "first"}}, results)
}

func TestExecutorHonorsCancellation(testInstance *testing.T) {
	var executions []string
	operations := []workflow.Operation{recordingOperation{name: "first", executions: &executions}}

	executionContext, cancel := context.WithCancel(context.Background())
	cancel()

	_, executeError := workflow.NewExecutor(operations, workflow.Dependencies{}).Execute(executionContext, workflow.RuntimeOptions{})
	require.ErrorIs(testInstance, executeError, context.Canceled)
	require.Empty(testInstance, executions)
}

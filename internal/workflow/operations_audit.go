package workflow

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/audit/i18n"
	"github.com/temirov/codeaudit/internal/audit/nullability"
	"github.com/temirov/codeaudit/internal/audit/tables"
)

// OptionalNullOperation runs the optional-null audit.
type OptionalNullOperation struct {
	Configuration nullability.CommandConfiguration
}

// Name identifies the operation type.
func (operation *OptionalNullOperation) Name() string {
	return string(OperationTypeOptionalNull)
}

// Execute scans the configured tree and writes the optional-null report.
func (operation *OptionalNullOperation) Execute(executionContext context.Context, environment *Environment) (audit.Result, error) {
	dependencies := resolveEnvironment(environment)
	service := nullability.NewService(nullability.ServiceDependencies{
		Discoverer: dependencies.Discoverer,
		FileSystem: dependencies.FileSystem,
		Logger:     dependencies.Logger,
	})
	return service.Run(executionContext, operation.Configuration)
}

// PlannedArtifacts lists the files Execute would write.
func (operation *OptionalNullOperation) PlannedArtifacts() []string {
	return nullability.PlannedArtifacts(operation.Configuration)
}

// I18nUsageOperation runs the i18n-usage audit.
type I18nUsageOperation struct {
	Configuration i18n.CommandConfiguration
}

// Name identifies the operation type.
func (operation *I18nUsageOperation) Name() string {
	return string(OperationTypeI18nUsage)
}

// Execute scans the configured tree and writes the translation usage report.
func (operation *I18nUsageOperation) Execute(executionContext context.Context, environment *Environment) (audit.Result, error) {
	dependencies := resolveEnvironment(environment)
	service := i18n.NewService(i18n.ServiceDependencies{
		Discoverer: dependencies.Discoverer,
		FileSystem: dependencies.FileSystem,
		Logger:     dependencies.Logger,
	})
	return service.Run(executionContext, operation.Configuration)
}

// PlannedArtifacts lists the files Execute would write.
func (operation *I18nUsageOperation) PlannedArtifacts() []string {
	return i18n.PlannedArtifacts(operation.Configuration)
}

// TableTypesOperation runs the table-types inventory.
type TableTypesOperation struct {
	Configuration tables.CommandConfiguration
}

// Name identifies the operation type.
func (operation *TableTypesOperation) Name() string {
	return string(OperationTypeTableTypes)
}

// Execute scans the configured tree and writes the table inventory.
func (operation *TableTypesOperation) Execute(executionContext context.Context, environment *Environment) (audit.Result, error) {
	dependencies := resolveEnvironment(environment)
	service := tables.NewService(tables.ServiceDependencies{
		Discoverer: dependencies.Discoverer,
		FileSystem: dependencies.FileSystem,
		Logger:     dependencies.Logger,
	})
	return service.Run(executionContext, operation.Configuration)
}

// PlannedArtifacts lists the files Execute would write.
func (operation *TableTypesOperation) PlannedArtifacts() []string {
	return tables.PlannedArtifacts(operation.Configuration)
}

func resolveEnvironment(environment *Environment) Environment {
	if environment == nil {
		return Environment{Logger: zap.NewNop()}
	}
	return *environment
}

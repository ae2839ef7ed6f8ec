package tables

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/report"
)

const (
	// OperationName identifies the table-types audit in commands, workflows and summaries.
	OperationName = "table-types"

	reportWrittenMessageConstant = "table inventory written"
	logFieldOutputConstant       = "output"
	logFieldFormatConstant       = "format"
	logFieldTablesConstant       = "tables"
	logFieldFilesConstant        = "files_scanned"
)

// ServiceDependencies enumerates collaborators required by the table-types service.
type ServiceDependencies struct {
	Discoverer audit.SourceDiscoverer
	FileSystem audit.FileSystem
	Logger     *zap.Logger
}

// Service runs the table-types audit.
type Service struct {
	loader *audit.SourceLoader
	writer *report.ArtifactWriter
	logger *zap.Logger
}

// NewService constructs a Service, falling back to the operating system for missing dependencies.
func NewService(dependencies ServiceDependencies) *Service {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fileSystem := audit.ResolveFileSystem(dependencies.FileSystem)
	return &Service{
		loader: audit.NewSourceLoader(dependencies.Discoverer, fileSystem, logger),
		writer: report.NewArtifactWriter(fileSystem),
		logger: logger,
	}
}

// Scan builds the table inventory. Invalid UTF-8 sequences are dropped rather
// than causing the file to be skipped.
func (service *Service) Scan(executionContext context.Context, configuration CommandConfiguration) (Inventory, int, error) {
	var inventory Inventory
	filesScanned, loadError := service.loader.Load(executionContext, audit.LoadOptions{
		Scan:      configuration.Scan,
		Prefilter: keywordFilter,
	}, func(document audit.Document) error {
		return inventory.Add(document.Path, document.Text)
	})
	if loadError != nil {
		return Inventory{}, filesScanned, loadError
	}
	return inventory, filesScanned, nil
}

// Run scans the configured tree and writes the inventory in the configured format.
func (service *Service) Run(executionContext context.Context, configuration CommandConfiguration) (audit.Result, error) {
	sanitized := configuration.Sanitize()
	format, formatError := ParseFormat(sanitized.Format)
	if formatError != nil {
		return audit.Result{}, formatError
	}

	inventory, filesScanned, scanError := service.Scan(executionContext, sanitized)
	if scanError != nil {
		return audit.Result{}, scanError
	}

	if writeError := service.writer.WriteString(sanitized.Scan.Output, Render(inventory, filesScanned, format)); writeError != nil {
		return audit.Result{}, writeError
	}

	tableCount := len(inventory.Names())
	service.logger.Info(
		reportWrittenMessageConstant,
		zap.String(logFieldOutputConstant, sanitized.Scan.Output),
		zap.String(logFieldFormatConstant, string(format)),
		zap.Int(logFieldFilesConstant, filesScanned),
		zap.Int(logFieldTablesConstant, tableCount),
	)

	return audit.Result{
		Operation:    OperationName,
		OutputPath:   sanitized.Scan.Output,
		FilesScanned: filesScanned,
		Findings:     tableCount,
	}, nil
}

// PlannedArtifacts lists the files Run would write for configuration.
func PlannedArtifacts(configuration CommandConfiguration) []string {
	return audit.Result{OutputPath: configuration.Sanitize().Scan.Output}.Artifacts()
}

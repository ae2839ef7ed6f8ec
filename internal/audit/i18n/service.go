package i18n

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/report"
)

const (
	// OperationName identifies the i18n-usage audit in commands, workflows and summaries.
	OperationName = "i18n-usage"

	reportWrittenMessageConstant = "i18n usage report written"
	logFieldOutputConstant       = "output"
	logFieldOccurrencesConstant  = "occurrences"
	logFieldKeysConstant         = "keys"
	logFieldFilesConstant        = "files_scanned"
)

// ServiceDependencies enumerates collaborators required by the i18n-usage service.
type ServiceDependencies struct {
	Discoverer audit.SourceDiscoverer
	FileSystem audit.FileSystem
	Logger     *zap.Logger
}

// Service runs the i18n-usage audit.
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

// Scan builds the inventory without writing the report.
func (service *Service) Scan(executionContext context.Context, configuration CommandConfiguration) (Inventory, int, error) {
	var inventory Inventory
	filesScanned, loadError := service.loader.Load(executionContext, audit.LoadOptions{
		Scan:           configuration.Scan,
		Prefilter:      keywordFilter,
		StrictDecoding: true,
	}, func(document audit.Document) error {
		occurrences, occurrenceError := FindOccurrences(document)
		if occurrenceError != nil {
			return occurrenceError
		}
		inventory.AddOccurrences(occurrences)

		keys, keyError := ExtractKeys(document.Text)
		if keyError != nil {
			return keyError
		}
		inventory.AddKeys(keys)
		return nil
	})
	if loadError != nil {
		return Inventory{}, filesScanned, loadError
	}
	return inventory, filesScanned, nil
}

// Run scans the configured tree and writes the inventory report.
func (service *Service) Run(executionContext context.Context, configuration CommandConfiguration) (audit.Result, error) {
	sanitized := configuration.Sanitize()

	inventory, filesScanned, scanError := service.Scan(executionContext, sanitized)
	if scanError != nil {
		return audit.Result{}, scanError
	}

	if writeError := service.writer.WriteString(sanitized.Scan.Output, RenderMarkdown(inventory)); writeError != nil {
		return audit.Result{}, writeError
	}

	service.logger.Info(
		reportWrittenMessageConstant,
		zap.String(logFieldOutputConstant, sanitized.Scan.Output),
		zap.Int(logFieldFilesConstant, filesScanned),
		zap.Int(logFieldOccurrencesConstant, inventory.Total()),
		zap.Int(logFieldKeysConstant, len(inventory.Keys())),
	)

	return audit.Result{
		Operation:    OperationName,
		OutputPath:   sanitized.Scan.Output,
		FilesScanned: filesScanned,
		Findings:     inventory.Total(),
	}, nil
}

// PlannedArtifacts lists the files Run would write for configuration.
func PlannedArtifacts(configuration CommandConfiguration) []string {
	return audit.Result{OutputPath: configuration.Sanitize().Scan.Output}.Artifacts()
}

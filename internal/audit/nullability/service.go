package nullability

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/report"
)

const (
	// OperationName identifies the optional-null audit in commands, workflows and summaries.
	OperationName = "optional-null"

	unbalancedPayloadMessageConstant = "payload braces never balanced; block runs to end of file"
	reportWrittenMessageConstant     = "optional-null report written"
	logFieldPathConstant             = "path"
	logFieldTableConstant            = "table"
	logFieldLineConstant             = "line"
	logFieldLastLineConstant         = "last_line"
	logFieldOutputConstant           = "output"
	logFieldFindingsConstant         = "findings"
	logFieldFilesConstant            = "files_scanned"
)

// ServiceDependencies enumerates collaborators required by the optional-null service.
type ServiceDependencies struct {
	Discoverer audit.SourceDiscoverer
	FileSystem audit.FileSystem
	Logger     *zap.Logger
}

// Service runs the optional-null audit.
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

// Scan collects payloads and findings without writing any artifact.
func (service *Service) Scan(executionContext context.Context, configuration CommandConfiguration) (Summary, int, error) {
	var summary Summary
	filesScanned, loadError := service.loader.Load(executionContext, audit.LoadOptions{
		Scan:           configuration.Scan,
		Prefilter:      keywordFilter,
		StrictDecoding: true,
	}, func(document audit.Document) error {
		payloads, findError := FindPayloads(document)
		if findError != nil {
			return findError
		}
		for _, payload := range payloads {
			if !payload.Balanced {
				service.logger.Debug(
					unbalancedPayloadMessageConstant,
					zap.String(logFieldPathConstant, payload.File),
					zap.String(logFieldTableConstant, payload.Table),
					zap.Int(logFieldLineConstant, payload.Block.FirstLine()),
					zap.Int(logFieldLastLineConstant, payload.Block.LastLine()),
				)
			}
			summary.Add(payload)
		}
		return nil
	})
	if loadError != nil {
		return Summary{}, filesScanned, loadError
	}
	return summary, filesScanned, nil
}

// Run scans the configured tree and writes the Markdown report plus the optional SARIF log.
func (service *Service) Run(executionContext context.Context, configuration CommandConfiguration) (audit.Result, error) {
	sanitized := configuration.Sanitize()

	summary, filesScanned, scanError := service.Scan(executionContext, sanitized)
	if scanError != nil {
		return audit.Result{}, scanError
	}

	if writeError := service.writer.WriteString(sanitized.Scan.Output, RenderMarkdown(summary)); writeError != nil {
		return audit.Result{}, writeError
	}

	result := audit.Result{
		Operation:    OperationName,
		OutputPath:   sanitized.Scan.Output,
		FilesScanned: filesScanned,
		Findings:     summary.FindingCount(),
	}

	if len(sanitized.SARIFOutput) > 0 {
		sarifError := service.writer.WriteRendered(sanitized.SARIFOutput, func(writer io.Writer) error {
			return report.WriteSARIF(writer, SARIFTool(), SARIFFindings(summary))
		})
		if sarifError != nil {
			return audit.Result{}, sarifError
		}
		result.SARIFPath = sanitized.SARIFOutput
	}

	service.logger.Info(
		reportWrittenMessageConstant,
		zap.String(logFieldOutputConstant, result.OutputPath),
		zap.Int(logFieldFilesConstant, result.FilesScanned),
		zap.Int(logFieldFindingsConstant, result.Findings),
	)
	return result, nil
}

// PlannedArtifacts lists the files Run would write for configuration.
func PlannedArtifacts(configuration CommandConfiguration) []string {
	sanitized := configuration.Sanitize()
	return audit.Result{OutputPath: sanitized.Scan.Output, SARIFPath: sanitized.SARIFOutput}.Artifacts()
}

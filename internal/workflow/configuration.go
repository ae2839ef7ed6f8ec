package workflow

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	toolOptionKey               = "tool"
	stepsDocumentKey            = "steps"
	workflowDocumentKey         = "workflow"
	readFileErrorTemplate       = "failed to load workflow configuration: %w"
	parseDocumentErrorTemplate  = "failed to parse workflow configuration: %w"
	toolWithoutOperationFormat  = "workflow tool %s missing operation name"
	toolReferenceTypeFormat     = "workflow step tool reference must be a string, got %T"
	unknownToolFormat           = "workflow step references unknown tool %q"
	toolOperationConflictFormat = "workflow step operation %s conflicts with tool %s operation %s"
)

var (
	errPathRequired       = errors.New("workflow configuration path must be provided")
	errNoSteps            = errors.New("workflow configuration must define at least one step")
	errStepOperation      = errors.New("workflow step missing operation name")
	errToolNameRequired   = errors.New("workflow tool names must be non-empty")
	errDuplicateToolNames = errors.New("workflow configuration defines duplicate tool names")
)

// OperationType names an audit a workflow step runs.
type OperationType string

// Supported workflow operations.
const (
	OperationTypeOptionalNull OperationType = "optional-null"
	OperationTypeI18nUsage    OperationType = "i18n-usage"
	OperationTypeTableTypes   OperationType = "table-types"
)

// Configuration is a parsed workflow: reusable named tools and the ordered steps to run.
type Configuration struct {
	Tools []NamedToolConfiguration `yaml:"tools" json:"tools"`
	Steps []StepConfiguration      `yaml:"steps" json:"steps"`

	catalog toolCatalog
}

// NamedToolConfiguration is a tool definition addressable from steps by Name.
type NamedToolConfiguration struct {
	Name              string `yaml:"name" json:"name"`
	ToolConfiguration `yaml:",inline" json:",inline"`
}

// StepConfiguration is one workflow step. Options may carry a tool reference under the tool key.
type StepConfiguration struct {
	Operation OperationType  `yaml:"operation" json:"operation"`
	Options   map[string]any `yaml:"with" json:"with"`
}

// ToolConfiguration pairs an operation with preset options.
type ToolConfiguration struct {
	Operation OperationType  `yaml:"operation" json:"operation"`
	Options   map[string]any `yaml:"with" json:"with"`
}

// LoadConfiguration reads and parses the workflow file at filePath.
func LoadConfiguration(filePath string) (Configuration, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Configuration{}, errPathRequired
	}

	content, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Configuration{}, fmt.Errorf(readFileErrorTemplate, readError)
	}
	return ParseConfiguration(content)
}

// ParseConfiguration decodes a YAML or JSON workflow. The steps may sit at the top level or
// below a workflow key, so a whole application configuration file is accepted too. A mapping
// with neither is treated as a workflow without steps.
func ParseConfiguration(content []byte) (Configuration, error) {
	var document yaml.Node
	if parseError := yaml.Unmarshal(content, &document); parseError != nil {
		return Configuration{}, fmt.Errorf(parseDocumentErrorTemplate, parseError)
	}

	var configuration Configuration
	if section := workflowSection(&document); section != nil {
		if decodeError := section.Decode(&configuration); decodeError != nil {
			return Configuration{}, fmt.Errorf(parseDocumentErrorTemplate, decodeError)
		}
	}
	return configuration.validate()
}

func workflowSection(document *yaml.Node) *yaml.Node {
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil
	}
	root := document.Content[0]
	if root.Kind != yaml.MappingNode || mappingValue(root, stepsDocumentKey) != nil {
		return root
	}
	if nested := mappingValue(root, workflowDocumentKey); nested != nil && nested.Kind == yaml.MappingNode {
		return nested
	}
	return nil
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for index := 0; index+1 < len(mapping.Content); index += 2 {
		if mapping.Content[index].Value == key {
			return mapping.Content[index+1]
		}
	}
	return nil
}

func (configuration Configuration) validate() (Configuration, error) {
	catalog, catalogError := newToolCatalog(configuration.Tools)
	if catalogError != nil {
		return Configuration{}, catalogError
	}
	configuration.catalog = catalog

	if len(configuration.Steps) == 0 {
		return Configuration{}, errNoSteps
	}

	for index, step := range configuration.Steps {
		operation := OperationType(strings.TrimSpace(string(step.Operation)))
		if _, _, referenced := lookupOption(step.Options, toolOptionKey); len(operation) == 0 && !referenced {
			return Configuration{}, errStepOperation
		}
		configuration.Steps[index].Operation = operation
	}

	return configuration, nil
}

// ResolveStep turns a step into the operation it runs and its effective options. A step that
// references a tool gets the tool's operation and options, with the step's own options on top.
func (configuration Configuration) ResolveStep(step StepConfiguration) (StepConfiguration, error) {
	toolKey, rawReference, referenced := lookupOption(step.Options, toolOptionKey)
	if !referenced {
		if len(strings.TrimSpace(string(step.Operation))) == 0 {
			return StepConfiguration{}, errStepOperation
		}
		return step, nil
	}

	toolName, isString := rawReference.(string)
	if !isString {
		return StepConfiguration{}, fmt.Errorf(toolReferenceTypeFormat, rawReference)
	}
	toolName = strings.TrimSpace(toolName)

	catalog := configuration.catalog
	if catalog == nil {
		var catalogError error
		if catalog, catalogError = newToolCatalog(configuration.Tools); catalogError != nil {
			return StepConfiguration{}, catalogError
		}
	}

	tool, known := catalog[toolName]
	if !known {
		return StepConfiguration{}, fmt.Errorf(unknownToolFormat, toolName)
	}
	if len(step.Operation) > 0 && step.Operation != tool.Operation {
		return StepConfiguration{}, fmt.Errorf(toolOperationConflictFormat, step.Operation, toolName, tool.Operation)
	}

	options := make(map[string]any, len(tool.Options)+len(step.Options))
	for key, value := range tool.Options {
		options[key] = value
	}
	for key, value := range step.Options {
		if key != toolKey {
			options[key] = value
		}
	}
	return StepConfiguration{Operation: tool.Operation, Options: options}, nil
}

// toolCatalog indexes tool definitions by trimmed name.
type toolCatalog map[string]ToolConfiguration

func newToolCatalog(tools []NamedToolConfiguration) (toolCatalog, error) {
	if len(tools) == 0 {
		return nil, nil
	}

	catalog := make(toolCatalog, len(tools))
	for index := range tools {
		name := strings.TrimSpace(tools[index].Name)
		if len(name) == 0 {
			return nil, errToolNameRequired
		}
		if _, duplicate := catalog[name]; duplicate {
			return nil, errDuplicateToolNames
		}
		operation := OperationType(strings.TrimSpace(string(tools[index].Operation)))
		if len(operation) == 0 {
			return nil, fmt.Errorf(toolWithoutOperationFormat, name)
		}
		tools[index].Name = name
		catalog[name] = ToolConfiguration{Operation: operation, Options: tools[index].Options}
	}
	return catalog, nil
}

// lookupOption finds key among options ignoring case and surrounding spaces, returning the
// key exactly as written.
func lookupOption(options map[string]any, key string) (string, any, bool) {
	for candidate, value := range options {
		if strings.EqualFold(strings.TrimSpace(candidate), key) {
			return candidate, value, true
		}
	}
	return "", nil, false
}

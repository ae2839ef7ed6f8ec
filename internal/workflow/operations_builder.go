package workflow

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/temirov/codeaudit/internal/audit/i18n"
	"github.com/temirov/codeaudit/internal/audit/nullability"
	"github.com/temirov/codeaudit/internal/audit/tables"
)

const (
	unsupportedOperationTemplateConstant = "unsupported workflow operation: %s"
	optionsDecoderErrorTemplateConstant  = "unable to prepare %s step options: %w"
	optionsDecodeErrorTemplateConstant   = "invalid %s step options: %w"
	configurationTagNameConstant         = "mapstructure"
)

// BuildOperations converts the declarative configuration into executable operations.
func BuildOperations(configuration Configuration) ([]Operation, error) {
	operations := make([]Operation, 0, len(configuration.Steps))
	for stepIndex := range configuration.Steps {
		step, resolveError := configuration.ResolveStep(configuration.Steps[stepIndex])
		if resolveError != nil {
			return nil, resolveError
		}
		operation, buildError := buildOperationFromStep(step)
		if buildError != nil {
			return nil, buildError
		}
		operations = append(operations, operation)
	}
	return operations, nil
}

func buildOperationFromStep(step StepConfiguration) (Operation, error) {
	switch step.Operation {
	case OperationTypeOptionalNull:
		configuration := nullability.DefaultCommandConfiguration()
		if decodeError := decodeStepOptions(step, &configuration); decodeError != nil {
			return nil, decodeError
		}
		return &OptionalNullOperation{Configuration: configuration.Sanitize()}, nil
	case OperationTypeI18nUsage:
		configuration := i18n.DefaultCommandConfiguration()
		if decodeError := decodeStepOptions(step, &configuration); decodeError != nil {
			return nil, decodeError
		}
		return &I18nUsageOperation{Configuration: configuration.Sanitize()}, nil
	case OperationTypeTableTypes:
		configuration := tables.DefaultCommandConfiguration()
		if decodeError := decodeStepOptions(step, &configuration); decodeError != nil {
			return nil, decodeError
		}
		sanitized := configuration.Sanitize()
		if _, formatError := tables.ParseFormat(sanitized.Format); formatError != nil {
			return nil, fmt.Errorf(optionsDecodeErrorTemplateConstant, step.Operation, formatError)
		}
		return &TableTypesOperation{Configuration: sanitized}, nil
	default:
		return nil, fmt.Errorf(unsupportedOperationTemplateConstant, step.Operation)
	}
}

// decodeStepOptions overlays the step options onto target, which already holds the
// operation defaults. Unknown option keys are rejected.
func decodeStepOptions(step StepConfiguration, target any) error {
	if len(step.Options) == 0 {
		return nil
	}

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          configurationTagNameConstant,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           target,
	})
	if decoderError != nil {
		return fmt.Errorf(optionsDecoderErrorTemplateConstant, step.Operation, decoderError)
	}

	if decodeError := decoder.Decode(step.Options); decodeError != nil {
		return fmt.Errorf(optionsDecodeErrorTemplateConstant, step.Operation, decodeError)
	}
	return nil
}

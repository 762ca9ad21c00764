package report

import (
	"strings"

	"github.com/temirov/tabkit/internal/spreadsheet"
)

const (
	configurationInputsKeyConstant             = "inputs"
	configurationOutputKeyConstant             = "output"
	configurationMinimumColumnWidthKeyConstant = "minimum_column_width"
	configurationColumnPaddingKeyConstant      = "column_padding"
	configurationKeySeparatorConstant          = "."
)

// Configuration stores persisted settings for the report command.
type Configuration struct {
	Inputs             []string `mapstructure:"inputs"`
	Output             string   `mapstructure:"output"`
	MinimumColumnWidth float64  `mapstructure:"minimum_column_width"`
	ColumnPadding      float64  `mapstructure:"column_padding"`
}

// DefaultConfiguration supplies baseline report settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		Inputs:             []string{},
		Output:             "",
		MinimumColumnWidth: spreadsheet.DefaultMinimumColumnWidth,
		ColumnPadding:      spreadsheet.DefaultColumnPadding,
	}
}

// DefaultConfigurationValues produces Viper defaults for the report command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationInputsKeyConstant:             defaults.Inputs,
		rootKey + configurationKeySeparatorConstant + configurationOutputKeyConstant:             defaults.Output,
		rootKey + configurationKeySeparatorConstant + configurationMinimumColumnWidthKeyConstant: defaults.MinimumColumnWidth,
		rootKey + configurationKeySeparatorConstant + configurationColumnPaddingKeyConstant:      defaults.ColumnPadding,
	}
}

// Sanitize trims configured values and drops empty input entries.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.Inputs = sanitizeInputs(configuration.Inputs)
	sanitized.Output = strings.TrimSpace(configuration.Output)
	return sanitized
}

// WidthPolicy returns the auto-fit policy described by the configuration.
func (configuration Configuration) WidthPolicy() spreadsheet.WidthPolicy {
	return spreadsheet.WidthPolicy{
		MinimumWidth: configuration.MinimumColumnWidth,
		Padding:      configuration.ColumnPadding,
	}.Sanitize()
}

func sanitizeInputs(candidateInputs []string) []string {
	sanitizedInputs := make([]string, 0, len(candidateInputs))
	for _, candidateInput := range candidateInputs {
		trimmedInput := strings.TrimSpace(candidateInput)
		if len(trimmedInput) == 0 {
			continue
		}
		sanitizedInputs = append(sanitizedInputs, trimmedInput)
	}
	return sanitizedInputs
}

package merge

import "strings"

const (
	configurationInputsKeyConstant    = "inputs"
	configurationSheetKeyConstant     = "sheet"
	configurationOutputKeyConstant    = "output"
	configurationKeySeparatorConstant = "."
)

// Configuration stores persisted settings for the merge command.
type Configuration struct {
	Inputs []string `mapstructure:"inputs"`
	Sheet  string   `mapstructure:"sheet"`
	Output string   `mapstructure:"output"`
}

// DefaultConfiguration supplies baseline merge settings.
func DefaultConfiguration() Configuration {
	return Configuration{Inputs: []string{}}
}

// DefaultConfigurationValues produces Viper defaults for the merge command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationInputsKeyConstant: defaults.Inputs,
		rootKey + configurationKeySeparatorConstant + configurationSheetKeyConstant:  defaults.Sheet,
		rootKey + configurationKeySeparatorConstant + configurationOutputKeyConstant: defaults.Output,
	}
}

// Sanitize trims configured paths and drops empty input entries.
// The sheet name is kept verbatim since surrounding spaces are part of it.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.Inputs = sanitizeInputs(configuration.Inputs)
	sanitized.Output = strings.TrimSpace(configuration.Output)
	return sanitized
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

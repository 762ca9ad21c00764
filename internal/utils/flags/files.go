// Package flags provides helpers for binding standardized file selection flags to Cobra commands.
package flags

import (
	"strings"

	"github.com/spf13/cobra"
)

const (
	// InputsFlagName exposes the shared input list flag name.
	InputsFlagName = "inputs"
	// OutputFlagName exposes the shared output path flag name.
	OutputFlagName = "out"
	// OutputFlagUsage describes the shared output flag purpose.
	OutputFlagUsage = "Output workbook path"
)

// FileFlagDefinitions captures usage text for the file selection flags.
type FileFlagDefinitions struct {
	InputsUsage string
	OutputUsage string
}

// FileFlagValues stores the values resolved from file selection flags and positional arguments.
type FileFlagValues struct {
	InputPaths []string
	OutputPath string
}

// BindFileFlags attaches the inputs and output flags to the provided command.
// Each --inputs value is taken verbatim, so paths may contain commas.
func BindFileFlags(command *cobra.Command, definitions FileFlagDefinitions) {
	if command == nil {
		return
	}

	outputUsage := definitions.OutputUsage
	if len(strings.TrimSpace(outputUsage)) == 0 {
		outputUsage = OutputFlagUsage
	}

	command.Flags().StringArray(InputsFlagName, nil, definitions.InputsUsage)
	command.Flags().String(OutputFlagName, "", outputUsage)
}

// ReadFileFlags collects the inputs flag followed by positional arguments, dropping blank entries.
func ReadFileFlags(command *cobra.Command, arguments []string) (FileFlagValues, error) {
	inputFlagValues, inputsFlagError := command.Flags().GetStringArray(InputsFlagName)
	if inputsFlagError != nil {
		return FileFlagValues{}, inputsFlagError
	}

	outputFlagValue, outputFlagError := command.Flags().GetString(OutputFlagName)
	if outputFlagError != nil {
		return FileFlagValues{}, outputFlagError
	}

	inputPaths := make([]string, 0, len(inputFlagValues)+len(arguments))
	for _, candidate := range append(append([]string{}, inputFlagValues...), arguments...) {
		trimmedCandidate := strings.TrimSpace(candidate)
		if len(trimmedCandidate) == 0 {
			continue
		}
		inputPaths = append(inputPaths, trimmedCandidate)
	}

	return FileFlagValues{InputPaths: inputPaths, OutputPath: strings.TrimSpace(outputFlagValue)}, nil
}

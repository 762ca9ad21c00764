package merge

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/reporting"
	"github.com/temirov/tabkit/internal/utils/flags"
)

const (
	commandUseConstant                    = "merge --inputs <file.xlsx>... --sheet <name> --out <merged.xlsx>"
	commandShortDescriptionConstant       = "Merge one sheet from several workbooks with identical headers"
	commandLongDescriptionConstant        = "merge reads the named sheet from every input workbook, verifies that all header rows match in order, and writes the concatenated rows to a single sheet named Merged."
	commandExecutionErrorTemplateConstant = "merge failed: %w"
	flagInputsDescriptionConstant         = "Input workbooks; additional positional arguments are appended"
	flagSheetNameConstant                 = "sheet"
	flagSheetDescriptionConstant          = "Sheet to read from every input"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current merge configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the merge cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            filesystem.FileSystem
}

// Build constructs the merge command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	flags.BindFileFlags(command, flags.FileFlagDefinitions{InputsUsage: flagInputsDescriptionConstant})
	command.Flags().String(flagSheetNameConstant, "", flagSheetDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	service := NewService(builder.resolveLogger(), builder.FileSystem, reporting.NewWriterReporter(command.OutOrStdout()))
	if _, runError := service.Run(command.Context(), options); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (Options, error) {
	configuration := builder.resolveConfiguration()

	fileFlagValues, fileFlagsError := flags.ReadFileFlags(command, arguments)
	if fileFlagsError != nil {
		return Options{}, fileFlagsError
	}
	inputPaths := fileFlagValues.InputPaths
	if len(inputPaths) == 0 {
		inputPaths = configuration.Inputs
	}

	sheetFlagValue, sheetFlagError := command.Flags().GetString(flagSheetNameConstant)
	if sheetFlagError != nil {
		return Options{}, sheetFlagError
	}

	return Options{
		InputPaths: inputPaths,
		SheetName:  selectSheetName(sheetFlagValue, configuration.Sheet),
		OutputPath: selectStringValue(fileFlagValues.OutputPath, configuration.Output),
	}, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	return configuration.Sanitize()
}

func selectStringValue(flagValue string, configurationValue string) string {
	trimmedFlagValue := strings.TrimSpace(flagValue)
	if len(trimmedFlagValue) > 0 {
		return trimmedFlagValue
	}

	return strings.TrimSpace(configurationValue)
}

// selectSheetName prefers a non-blank flag value; neither value is trimmed.
func selectSheetName(flagValue string, configurationValue string) string {
	if len(strings.TrimSpace(flagValue)) > 0 {
		return flagValue
	}
	return configurationValue
}

package report

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
	commandUseConstant                    = "report --inputs <file.csv>... --out <report.xlsx>"
	commandShortDescriptionConstant       = "Combine CSV files into a formatted revenue workbook"
	commandLongDescriptionConstant        = "report combines CSV transactions, computes revenue, and writes a Transactions sheet plus a Summary sheet with KPIs, pivots, monthly totals, and a revenue-by-region chart."
	commandExecutionErrorTemplateConstant = "report generation failed: %w"
	flagInputsDescriptionConstant         = "Input CSV files; additional positional arguments are appended"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current report configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the report cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            filesystem.FileSystem
}

// Build constructs the report command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	flags.BindFileFlags(command, flags.FileFlagDefinitions{InputsUsage: flagInputsDescriptionConstant})

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

	return Options{
		InputPaths:  inputPaths,
		OutputPath:  selectStringValue(fileFlagValues.OutputPath, configuration.Output),
		WidthPolicy: configuration.WidthPolicy(),
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

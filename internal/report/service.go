package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/reporting"
	"github.com/temirov/tabkit/internal/spreadsheet"
	"github.com/temirov/tabkit/internal/utils"
	pathutils "github.com/temirov/tabkit/internal/utils/path"
)

const (
	reportStartedMessageConstant         = "report generation started"
	reportCompletedMessageConstant       = "report generation completed"
	reportCoercionMessageConstant        = "values replaced with defaults"
	reportWrittenTemplateConstant        = "Report written to %s\n"
	logFieldConfigurationFileConstant    = "config_file"
	logFieldRunIdentifierConstant        = "run_id"
	logFieldInputCountConstant           = "input_count"
	logFieldRowCountConstant             = "row_count"
	logFieldOutputPathConstant           = "output_path"
	logFieldInvalidUnitsConstant         = "invalid_units"
	logFieldInvalidUnitPricesConstant    = "invalid_unit_prices"
	logFieldInvalidDatesConstant         = "invalid_dates"
	logFieldPivotRowCountConstant        = "pivot_row_count"
	loadInputsErrorTemplateConstant      = "unable to load inputs: %w"
	validateColumnsErrorTemplateConstant = "input validation failed: %w"
	writeReportErrorTemplateConstant     = "unable to write report: %w"
)

// Options configures a single report run.
type Options struct {
	InputPaths  []string                `option:"inputs" validate:"required,min=1,dive,required"`
	OutputPath  string                  `option:"out" validate:"required"`
	WidthPolicy spreadsheet.WidthPolicy `option:"-"`
}

// Result describes a completed report run.
type Result struct {
	OutputPath       string
	TransactionCount int
	Summary          Summary
}

// Service runs the report pipeline.
type Service struct {
	logger           *zap.Logger
	fileSystem       filesystem.FileSystem
	reporter         reporting.Reporter
	optionsValidator *utils.OptionsValidator
	homeExpander     *pathutils.HomeExpander
	contextAccessor  utils.CommandContextAccessor
}

// NewService constructs a Service. Nil collaborators fall back to operating system defaults.
func NewService(logger *zap.Logger, fileSystem filesystem.FileSystem, reporter reporting.Reporter) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	if reporter == nil {
		reporter = reporting.NewDiscardReporter()
	}
	return &Service{
		logger:           logger,
		fileSystem:       fileSystem,
		reporter:         reporter,
		optionsValidator: utils.NewOptionsValidator(),
		homeExpander:     pathutils.NewHomeExpander(),
		contextAccessor:  utils.NewCommandContextAccessor(),
	}
}

// Run loads, validates, transforms, aggregates, and writes the report.
// Column validation completes before any output path is touched.
func (service *Service) Run(executionContext context.Context, options Options) (Result, error) {
	if validationError := service.optionsValidator.Validate(options); validationError != nil {
		return Result{}, validationError
	}

	inputPaths := service.homeExpander.ExpandAll(options.InputPaths)
	outputPath := service.homeExpander.Expand(options.OutputPath)

	runLogger := service.logger
	if runIdentifier, exists := service.contextAccessor.RunIdentifier(executionContext); exists {
		runLogger = runLogger.With(zap.String(logFieldRunIdentifierConstant, runIdentifier))
	}
	if configurationFilePath, exists := service.contextAccessor.ConfigurationFilePath(executionContext); exists && len(configurationFilePath) > 0 {
		runLogger = runLogger.With(zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}
	runLogger.Info(reportStartedMessageConstant,
		zap.Int(logFieldInputCountConstant, len(inputPaths)),
		zap.String(logFieldOutputPathConstant, outputPath),
	)

	table, loadError := NewLoader(service.fileSystem).Load(executionContext, inputPaths)
	if loadError != nil {
		return Result{}, fmt.Errorf(loadInputsErrorTemplateConstant, loadError)
	}

	if columnsError := ValidateColumns(table); columnsError != nil {
		return Result{}, fmt.Errorf(validateColumnsErrorTemplateConstant, columnsError)
	}

	transactions, statistics := Transform(table)
	if statistics.InvalidUnits > 0 || statistics.InvalidUnitPrices > 0 || statistics.InvalidDates > 0 {
		runLogger.Debug(reportCoercionMessageConstant,
			zap.Int(logFieldInvalidUnitsConstant, statistics.InvalidUnits),
			zap.Int(logFieldInvalidUnitPricesConstant, statistics.InvalidUnitPrices),
			zap.Int(logFieldInvalidDatesConstant, statistics.InvalidDates),
		)
	}

	summary := Aggregate(transactions)

	reportWriter := NewWriter(service.fileSystem, options.WidthPolicy)
	if writeError := reportWriter.Write(outputPath, transactions, summary); writeError != nil {
		return Result{}, fmt.Errorf(writeReportErrorTemplateConstant, writeError)
	}

	runLogger.Info(reportCompletedMessageConstant,
		zap.Int(logFieldRowCountConstant, len(transactions)),
		zap.Int(logFieldPivotRowCountConstant, len(summary.Pivot)),
		zap.String(logFieldOutputPathConstant, filesystem.DisplayPath(service.fileSystem, outputPath)),
	)
	service.reporter.Printf(reportWrittenTemplateConstant, outputPath)

	return Result{OutputPath: outputPath, TransactionCount: len(transactions), Summary: summary}, nil
}

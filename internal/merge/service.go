package merge

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
	mergeStartedMessageConstant       = "merge started"
	mergeSheetLoadedMessageConstant   = "sheet loaded"
	mergeCompletedMessageConstant     = "merge completed"
	mergingFilesTemplateConstant      = "Merging %d files...\n"
	mergedWrittenTemplateConstant     = "Merged workbook written to %s\n"
	logFieldConfigurationFileConstant = "config_file"
	logFieldRunIdentifierConstant     = "run_id"
	logFieldInputCountConstant        = "input_count"
	logFieldInputPathConstant         = "input_path"
	logFieldSheetNameConstant         = "sheet"
	logFieldRowCountConstant          = "row_count"
	logFieldOutputPathConstant        = "output_path"
	writeMergedErrorTemplateConstant  = "unable to write merged workbook: %w"
)

// Options configures a single merge run.
type Options struct {
	InputPaths []string `option:"inputs" validate:"required,min=1,dive,required"`
	SheetName  string   `option:"sheet" validate:"required"`
	OutputPath string   `option:"out" validate:"required"`
}

// Result describes a completed merge.
type Result struct {
	OutputPath string
	FileCount  int
	RowCount   int
	Header     []string
}

// Service runs the sheet merge pipeline.
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

// Run loads the sheet from every input, checks header agreement, and writes the merged workbook.
// Any missing sheet or header mismatch aborts the run before output is written.
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
	runLogger.Info(mergeStartedMessageConstant,
		zap.Int(logFieldInputCountConstant, len(inputPaths)),
		zap.String(logFieldSheetNameConstant, options.SheetName),
	)
	service.reporter.Printf(mergingFilesTemplateConstant, len(inputPaths))

	loader := NewLoader(service.fileSystem)
	loadedSheets := make([]Sheet, 0, len(inputPaths))
	var expectedHeader []string

	for inputIndex, inputPath := range inputPaths {
		if executionContext != nil {
			if contextError := executionContext.Err(); contextError != nil {
				return Result{}, contextError
			}
		}

		sheet, loadError := loader.LoadSheet(inputPath, options.SheetName)
		if loadError != nil {
			return Result{}, loadError
		}

		if inputIndex == 0 {
			expectedHeader = sheet.Header
		} else if headerError := ValidateHeader(inputPath, expectedHeader, sheet.Header); headerError != nil {
			return Result{}, headerError
		}

		runLogger.Debug(mergeSheetLoadedMessageConstant,
			zap.String(logFieldInputPathConstant, inputPath),
			zap.Int(logFieldRowCountConstant, len(sheet.Rows)),
		)
		loadedSheets = append(loadedSheets, sheet)
	}

	mergedRows := make([][]Cell, 0)
	for _, sheet := range loadedSheets {
		mergedRows = append(mergedRows, sheet.Rows...)
	}

	mergedWriter := NewWriter(service.fileSystem, spreadsheet.DefaultWidthPolicy())
	if writeError := mergedWriter.Write(outputPath, expectedHeader, mergedRows); writeError != nil {
		return Result{}, fmt.Errorf(writeMergedErrorTemplateConstant, writeError)
	}

	runLogger.Info(mergeCompletedMessageConstant,
		zap.Int(logFieldRowCountConstant, len(mergedRows)),
		zap.String(logFieldOutputPathConstant, filesystem.DisplayPath(service.fileSystem, outputPath)),
	)
	service.reporter.Printf(mergedWrittenTemplateConstant, outputPath)

	return Result{
		OutputPath: outputPath,
		FileCount:  len(loadedSheets),
		RowCount:   len(mergedRows),
		Header:     expectedHeader,
	}, nil
}

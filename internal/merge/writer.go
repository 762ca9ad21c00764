package merge

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/spreadsheet"
)

const (
	createWorkbookErrorTemplateConstant = "unable to create merged workbook: %w"
	streamRowErrorTemplateConstant      = "unable to write merged row %d: %w"
	streamWidthErrorTemplateConstant    = "unable to set merged column width: %w"
	streamFlushErrorTemplateConstant    = "unable to flush merged sheet: %w"
	booleanTrueRenderConstant           = "TRUE"
	booleanFalseRenderConstant          = "FALSE"
	floatRenderFormatConstant           = 'f'
)

// Writer writes a header and concatenated rows to a single-sheet workbook.
type Writer struct {
	fileSystem  filesystem.FileSystem
	widthPolicy spreadsheet.WidthPolicy
}

// NewWriter constructs a Writer.
func NewWriter(fileSystem filesystem.FileSystem, widthPolicy spreadsheet.WidthPolicy) *Writer {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &Writer{fileSystem: fileSystem, widthPolicy: widthPolicy.Sanitize()}
}

// Write streams the header once followed by every row and saves the workbook.
func (writer *Writer) Write(outputPath string, header []string, rows [][]Cell) error {
	workbook, workbookError := spreadsheet.NewWorkbook(MergedSheetName)
	if workbookError != nil {
		return fmt.Errorf(createWorkbookErrorTemplateConstant, workbookError)
	}
	defer workbook.Close()

	styles, stylesError := spreadsheet.NewStyleSet(workbook)
	if stylesError != nil {
		return fmt.Errorf(createWorkbookErrorTemplateConstant, stylesError)
	}
	numberFormats := spreadsheet.NewNumberFormatStyles(workbook)

	streamWriter, streamError := workbook.NewStreamWriter(MergedSheetName)
	if streamError != nil {
		return fmt.Errorf(createWorkbookErrorTemplateConstant, streamError)
	}

	widths := spreadsheet.NewColumnWidthTracker()
	headerValues := make([]any, 0, len(header))
	for columnIndex, headerName := range header {
		widths.Observe(columnIndex+1, headerName)
		headerValues = append(headerValues, excelize.Cell{StyleID: styles.Header, Value: headerName})
	}

	rowValues := make([][]any, 0, len(rows))
	for _, row := range rows {
		values := make([]any, 0, len(row))
		for columnIndex, cell := range row {
			if cell.Value == nil {
				values = append(values, nil)
				continue
			}
			styleIdentifier, resolveError := numberFormats.Resolve(cell.NumberFormat)
			if resolveError != nil {
				return resolveError
			}
			widths.Observe(columnIndex+1, renderValue(cell.Value))
			values = append(values, excelize.Cell{StyleID: styleIdentifier, Value: cell.Value})
		}
		rowValues = append(rowValues, values)
	}

	for _, column := range widths.Columns() {
		if widthError := streamWriter.SetColWidth(column, column, widths.Width(column, writer.widthPolicy)); widthError != nil {
			return fmt.Errorf(streamWidthErrorTemplateConstant, widthError)
		}
	}

	if len(header) > 0 {
		if rowError := streamWriter.SetRow(firstColumnCell(1), headerValues); rowError != nil {
			return fmt.Errorf(streamRowErrorTemplateConstant, 1, rowError)
		}
	}
	for rowIndex, values := range rowValues {
		rowNumber := rowIndex + 2
		if rowError := streamWriter.SetRow(firstColumnCell(rowNumber), values); rowError != nil {
			return fmt.Errorf(streamRowErrorTemplateConstant, rowNumber, rowError)
		}
	}

	if flushError := streamWriter.Flush(); flushError != nil {
		return fmt.Errorf(streamFlushErrorTemplateConstant, flushError)
	}

	return spreadsheet.SaveWorkbook(writer.fileSystem, workbook, outputPath)
}

func firstColumnCell(rowNumber int) string {
	cellName, _ := excelize.CoordinatesToCellName(1, rowNumber)
	return cellName
}

func renderValue(value any) string {
	switch typedValue := value.(type) {
	case nil:
		return ""
	case string:
		return typedValue
	case bool:
		if typedValue {
			return booleanTrueRenderConstant
		}
		return booleanFalseRenderConstant
	case float64:
		return strconv.FormatFloat(typedValue, floatRenderFormatConstant, -1, 64)
	default:
		return fmt.Sprint(typedValue)
	}
}

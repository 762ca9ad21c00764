package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	cellReferenceErrorTemplateConstant = "invalid cell coordinates (%d, %d) on sheet %s: %w"
	cellWriteErrorTemplateConstant     = "unable to write cell %s!%s: %w"
	columnWidthErrorTemplateConstant   = "unable to set width of column %s on sheet %s: %w"
)

// SheetWriter writes cells to one worksheet, tracking rendered widths and keeping the first error.
//
// Once an operation fails every later operation is a no-op; callers check Err once at the end.
type SheetWriter struct {
	workbook   *excelize.File
	sheetName  string
	widths     *ColumnWidthTracker
	firstError error
}

// NewSheetWriter constructs a SheetWriter for an existing sheet.
func NewSheetWriter(workbook *excelize.File, sheetName string) *SheetWriter {
	return &SheetWriter{
		workbook:  workbook,
		sheetName: sheetName,
		widths:    NewColumnWidthTracker(),
	}
}

// SheetName reports the sheet this writer targets.
func (writer *SheetWriter) SheetName() string {
	return writer.sheetName
}

// CellName converts 1-based coordinates to an A1 reference, optionally absolute.
func (writer *SheetWriter) CellName(column int, row int, absolute bool) string {
	if writer.firstError != nil {
		return ""
	}
	cellName, conversionError := excelize.CoordinatesToCellName(column, row, absolute)
	if conversionError != nil {
		writer.firstError = fmt.Errorf(cellReferenceErrorTemplateConstant, column, row, writer.sheetName, conversionError)
		return ""
	}
	return cellName
}

// SetValue writes a value and optional style. A nil value leaves the cell empty but still styled.
func (writer *SheetWriter) SetValue(column int, row int, value any, rendered string, styleIdentifier int) {
	cellName := writer.CellName(column, row, false)
	if writer.firstError != nil {
		return
	}

	if value != nil {
		if setError := writer.workbook.SetCellValue(writer.sheetName, cellName, value); setError != nil {
			writer.firstError = fmt.Errorf(cellWriteErrorTemplateConstant, writer.sheetName, cellName, setError)
			return
		}
	}

	writer.widths.Observe(column, rendered)
	writer.applyStyle(cellName, styleIdentifier)
}

// SetText writes a string value whose rendering is the string itself.
func (writer *SheetWriter) SetText(column int, row int, text string, styleIdentifier int) {
	writer.SetValue(column, row, text, text, styleIdentifier)
}

// SetFormula writes a formula without a leading equals sign.
func (writer *SheetWriter) SetFormula(column int, row int, formula string, rendered string, styleIdentifier int) {
	cellName := writer.CellName(column, row, false)
	if writer.firstError != nil {
		return
	}

	if setError := writer.workbook.SetCellFormula(writer.sheetName, cellName, formula); setError != nil {
		writer.firstError = fmt.Errorf(cellWriteErrorTemplateConstant, writer.sheetName, cellName, setError)
		return
	}

	writer.widths.Observe(column, rendered)
	writer.applyStyle(cellName, styleIdentifier)
}

// ApplyColumnWidths sets every observed column to its auto-fitted width.
func (writer *SheetWriter) ApplyColumnWidths(policy WidthPolicy) {
	for _, column := range writer.widths.Columns() {
		if writer.firstError != nil {
			return
		}
		columnName, conversionError := excelize.ColumnNumberToName(column)
		if conversionError != nil {
			writer.firstError = fmt.Errorf(columnWidthErrorTemplateConstant, columnName, writer.sheetName, conversionError)
			return
		}
		if widthError := writer.workbook.SetColWidth(writer.sheetName, columnName, columnName, writer.widths.Width(column, policy)); widthError != nil {
			writer.firstError = fmt.Errorf(columnWidthErrorTemplateConstant, columnName, writer.sheetName, widthError)
		}
	}
}

// Fail records an error raised outside the writer so Err reports it.
func (writer *SheetWriter) Fail(failure error) {
	if writer.firstError == nil && failure != nil {
		writer.firstError = failure
	}
}

// Err returns the first error encountered.
func (writer *SheetWriter) Err() error {
	return writer.firstError
}

func (writer *SheetWriter) applyStyle(cellName string, styleIdentifier int) {
	if styleIdentifier == 0 {
		return
	}
	if styleError := writer.workbook.SetCellStyle(writer.sheetName, cellName, cellName, styleIdentifier); styleError != nil {
		writer.firstError = fmt.Errorf(cellWriteErrorTemplateConstant, writer.sheetName, cellName, styleError)
	}
}

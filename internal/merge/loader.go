package merge

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/spreadsheet"
)

const (
	openWorkbookErrorTemplateConstant = "unable to open workbook %s: %w"
	readSheetErrorTemplateConstant    = "unable to read sheet %q in %s: %w"
	booleanTrueRawValueConstant       = "1"
)

// Loader reads one sheet from a workbook at a time.
type Loader struct {
	fileSystem filesystem.FileSystem
}

// NewLoader constructs a Loader reading through the provided file system.
func NewLoader(fileSystem filesystem.FileSystem) *Loader {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &Loader{fileSystem: fileSystem}
}

// LoadSheet reads the named sheet, normalizing its header row.
// The workbook is closed before LoadSheet returns.
func (loader *Loader) LoadSheet(filePath string, sheetName string) (Sheet, error) {
	workbookReader, openError := loader.fileSystem.Open(filePath)
	if openError != nil {
		return Sheet{}, fmt.Errorf(openWorkbookErrorTemplateConstant, filePath, openError)
	}
	defer workbookReader.Close()

	workbook, workbookError := excelize.OpenReader(workbookReader)
	if workbookError != nil {
		return Sheet{}, fmt.Errorf(openWorkbookErrorTemplateConstant, filePath, workbookError)
	}
	defer workbook.Close()

	sheetIndex, indexError := workbook.GetSheetIndex(sheetName)
	if indexError != nil || sheetIndex < 0 {
		return Sheet{}, MissingSheetError{FilePath: filePath, SheetName: sheetName}
	}

	rawRows, rowsError := workbook.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if rowsError != nil {
		return Sheet{}, fmt.Errorf(readSheetErrorTemplateConstant, sheetName, filePath, rowsError)
	}

	sheet := Sheet{FilePath: filePath}
	if len(rawRows) == 0 {
		return sheet, nil
	}
	sheet.Header = spreadsheet.NormalizeHeaders(rawRows[0])

	for rowOffset, rawRow := range rawRows[1:] {
		rowNumber := rowOffset + 2
		cells := make([]Cell, len(rawRow))
		for columnIndex, rawValue := range rawRow {
			cell, cellError := readCell(workbook, sheetName, columnIndex+1, rowNumber, rawValue)
			if cellError != nil {
				return Sheet{}, fmt.Errorf(readSheetErrorTemplateConstant, sheetName, filePath, cellError)
			}
			cells[columnIndex] = cell
		}
		sheet.Rows = append(sheet.Rows, cells)
	}

	return sheet, nil
}

func readCell(workbook *excelize.File, sheetName string, column int, row int, rawValue string) (Cell, error) {
	if len(rawValue) == 0 {
		return Cell{}, nil
	}

	cellName, nameError := excelize.CoordinatesToCellName(column, row)
	if nameError != nil {
		return Cell{}, nameError
	}

	cellType, typeError := workbook.GetCellType(sheetName, cellName)
	if typeError != nil {
		return Cell{}, typeError
	}

	cell := Cell{Value: typedValue(cellType, rawValue)}

	styleIdentifier, styleError := workbook.GetCellStyle(sheetName, cellName)
	if styleError != nil {
		return Cell{}, styleError
	}
	if styleIdentifier == 0 {
		return cell, nil
	}
	sourceStyle, styleReadError := workbook.GetStyle(styleIdentifier)
	if styleReadError != nil {
		return Cell{}, styleReadError
	}
	if sourceStyle.NumFmt != 0 || (sourceStyle.CustomNumFmt != nil && len(*sourceStyle.CustomNumFmt) > 0) {
		cell.NumberFormat = &excelize.Style{NumFmt: sourceStyle.NumFmt, CustomNumFmt: sourceStyle.CustomNumFmt}
	}
	return cell, nil
}

// typedValue restores the stored type of a raw cell value.
// Cells without an explicit type attribute hold numbers.
func typedValue(cellType excelize.CellType, rawValue string) any {
	switch cellType {
	case excelize.CellTypeBool:
		return rawValue == booleanTrueRawValueConstant
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		numericValue, parseError := strconv.ParseFloat(rawValue, 64)
		if parseError != nil {
			return rawValue
		}
		return numericValue
	default:
		return rawValue
	}
}

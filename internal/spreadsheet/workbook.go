package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/temirov/tabkit/internal/filesystem"
)

const (
	saveWorkbookErrorTemplateConstant = "unable to write workbook %s: %w"
	renameSheetErrorTemplateConstant  = "unable to create sheet %s: %w"
	addSheetErrorTemplateConstant     = "unable to add sheet %s: %w"
)

// NewWorkbook creates a workbook whose sheets are named in order; the first sheet is active.
func NewWorkbook(sheetNames ...string) (*excelize.File, error) {
	workbook := excelize.NewFile()
	if len(sheetNames) == 0 {
		return workbook, nil
	}

	if renameError := workbook.SetSheetName(workbook.GetSheetName(0), sheetNames[0]); renameError != nil {
		_ = workbook.Close()
		return nil, fmt.Errorf(renameSheetErrorTemplateConstant, sheetNames[0], renameError)
	}

	for _, sheetName := range sheetNames[1:] {
		if _, addError := workbook.NewSheet(sheetName); addError != nil {
			_ = workbook.Close()
			return nil, fmt.Errorf(addSheetErrorTemplateConstant, sheetName, addError)
		}
	}

	workbook.SetActiveSheet(0)
	return workbook, nil
}

// SaveWorkbook creates the output directory when needed and writes the workbook.
func SaveWorkbook(fileSystem filesystem.FileSystem, workbook *excelize.File, outputPath string) error {
	if outputError := filesystem.EnsureOutputFile(fileSystem, outputPath); outputError != nil {
		return outputError
	}
	if directoryError := filesystem.EnsureParentDirectory(fileSystem, outputPath); directoryError != nil {
		return directoryError
	}
	if saveError := workbook.SaveAs(outputPath); saveError != nil {
		return fmt.Errorf(saveWorkbookErrorTemplateConstant, outputPath, saveError)
	}
	return nil
}

package merge_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/merge"
	"github.com/temirov/tabkit/internal/reporting"
)

const (
	testSourceSheetNameConstant = "Sheet1"
	testDateFormatConstant      = "yyyy-mm-dd"
)

func createWorkbook(testInstance *testing.T, directory string, name string, sheetName string, rows [][]any) string {
	testInstance.Helper()
	workbook := excelize.NewFile()
	defer workbook.Close()

	require.NoError(testInstance, workbook.SetSheetName(workbook.GetSheetName(0), sheetName))
	for rowIndex, row := range rows {
		cellName, nameError := excelize.CoordinatesToCellName(1, rowIndex+1)
		require.NoError(testInstance, nameError)
		require.NoError(testInstance, workbook.SetSheetRow(sheetName, cellName, &row))
	}

	workbookPath := filepath.Join(directory, name)
	require.NoError(testInstance, workbook.SaveAs(workbookPath))
	return workbookPath
}

func openMergedWorkbook(testInstance *testing.T, workbookPath string) *excelize.File {
	testInstance.Helper()
	workbook, openError := excelize.OpenFile(workbookPath)
	require.NoError(testInstance, openError)
	testInstance.Cleanup(func() { _ = workbook.Close() })
	return workbook
}

func TestServiceRunMergesIdenticalHeaders(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	firstPath := createWorkbook(testInstance, workingDirectory, "north.xlsx", testSourceSheetNameConstant, [][]any{
		{"Region", "Product", "Units"},
		{"North", "Widget", 4},
		{"North", "Gadget", 2},
	})
	secondPath := createWorkbook(testInstance, workingDirectory, "south.xlsx", testSourceSheetNameConstant, [][]any{
		{" region ", "PRODUCT", "units"},
		{"South", "Widget", 9},
	})
	outputPath := filepath.Join(workingDirectory, "merged_output", "regions_merged.xlsx")

	outputBuffer := &bytes.Buffer{}
	service := merge.NewService(zap.NewNop(), filesystem.OSFileSystem{}, reporting.NewWriterReporter(outputBuffer))

	result, runError := service.Run(context.Background(), merge.Options{
		InputPaths: []string{firstPath, secondPath},
		SheetName:  testSourceSheetNameConstant,
		OutputPath: outputPath,
	})
	require.NoError(testInstance, runError)
	require.Equal(testInstance, 2, result.FileCount)
	require.Equal(testInstance, 3, result.RowCount)
	require.Equal(testInstance, "Merging 2 files...\nMerged workbook written to "+outputPath+"\n", outputBuffer.String())

	workbook := openMergedWorkbook(testInstance, outputPath)
	require.Equal(testInstance, []string{merge.MergedSheetName}, workbook.GetSheetList())

	mergedRows, rowsError := workbook.GetRows(merge.MergedSheetName)
	require.NoError(testInstance, rowsError)
	require.Equal(testInstance, [][]string{
		{"region", "product", "units"},
		{"North", "Widget", "4"},
		{"North", "Gadget", "2"},
		{"South", "Widget", "9"},
	}, mergedRows)

	unitsCellType, typeError := workbook.GetCellType(merge.MergedSheetName, "C2")
	require.NoError(testInstance, typeError)
	require.NotEqual(testInstance, excelize.CellTypeSharedString, unitsCellType)
	require.NotEqual(testInstance, excelize.CellTypeInlineString, unitsCellType)
}

func TestServiceRunPreservesTypesAndFormats(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	sourceWorkbook := excelize.NewFile()
	require.NoError(testInstance, sourceWorkbook.SetSheetName(sourceWorkbook.GetSheetName(0), testSourceSheetNameConstant))
	require.NoError(testInstance, sourceWorkbook.SetSheetRow(testSourceSheetNameConstant, "A1", &[]any{"date", "active", "code"}))
	require.NoError(testInstance, sourceWorkbook.SetCellValue(testSourceSheetNameConstant, "A2", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)))
	dateFormat := testDateFormatConstant
	dateStyle, styleError := sourceWorkbook.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	require.NoError(testInstance, styleError)
	require.NoError(testInstance, sourceWorkbook.SetCellStyle(testSourceSheetNameConstant, "A2", "A2", dateStyle))
	require.NoError(testInstance, sourceWorkbook.SetCellValue(testSourceSheetNameConstant, "B2", true))
	require.NoError(testInstance, sourceWorkbook.SetCellValue(testSourceSheetNameConstant, "C2", "00123"))
	sourcePath := filepath.Join(workingDirectory, "typed.xlsx")
	require.NoError(testInstance, sourceWorkbook.SaveAs(sourcePath))
	require.NoError(testInstance, sourceWorkbook.Close())

	outputPath := filepath.Join(workingDirectory, "merged.xlsx")
	_, runError := merge.NewService(nil, nil, nil).Run(context.Background(), merge.Options{
		InputPaths: []string{sourcePath},
		SheetName:  testSourceSheetNameConstant,
		OutputPath: outputPath,
	})
	require.NoError(testInstance, runError)

	workbook := openMergedWorkbook(testInstance, outputPath)

	dateValue, dateError := workbook.GetCellValue(merge.MergedSheetName, "A2")
	require.NoError(testInstance, dateError)
	require.Equal(testInstance, "2024-01-05", dateValue)

	dateStyleIdentifier, styleReadError := workbook.GetCellStyle(merge.MergedSheetName, "A2")
	require.NoError(testInstance, styleReadError)
	mergedDateStyle, getStyleError := workbook.GetStyle(dateStyleIdentifier)
	require.NoError(testInstance, getStyleError)
	require.NotNil(testInstance, mergedDateStyle.CustomNumFmt)
	require.Equal(testInstance, testDateFormatConstant, *mergedDateStyle.CustomNumFmt)

	booleanType, booleanTypeError := workbook.GetCellType(merge.MergedSheetName, "B2")
	require.NoError(testInstance, booleanTypeError)
	require.Equal(testInstance, excelize.CellTypeBool, booleanType)

	codeValue, codeError := workbook.GetCellValue(merge.MergedSheetName, "C2")
	require.NoError(testInstance, codeError)
	require.Equal(testInstance, "00123", codeValue)
}

func TestServiceRunRejectsHeaderOrderMismatch(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	firstPath := createWorkbook(testInstance, workingDirectory, "first.xlsx", testSourceSheetNameConstant, [][]any{
		{"region", "product"},
		{"East", "Widget"},
	})
	secondPath := createWorkbook(testInstance, workingDirectory, "second.xlsx", testSourceSheetNameConstant, [][]any{
		{"product", "region"},
		{"Widget", "East"},
	})
	outputPath := filepath.Join(workingDirectory, "merged", "out.xlsx")

	_, runError := merge.NewService(nil, nil, nil).Run(context.Background(), merge.Options{
		InputPaths: []string{firstPath, secondPath},
		SheetName:  testSourceSheetNameConstant,
		OutputPath: outputPath,
	})

	var headerMismatchError merge.HeaderMismatchError
	require.ErrorAs(testInstance, runError, &headerMismatchError)
	require.Equal(testInstance, secondPath, headerMismatchError.FilePath)
	require.Equal(testInstance, []string{"region", "product"}, headerMismatchError.Expected)
	require.Equal(testInstance, []string{"product", "region"}, headerMismatchError.Actual)
	require.Contains(testInstance, runError.Error(), "expected [region, product], got [product, region]")

	_, statError := os.Stat(filepath.Dir(outputPath))
	require.True(testInstance, os.IsNotExist(statError))
}

func TestServiceRunRejectsMissingSheet(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	firstPath := createWorkbook(testInstance, workingDirectory, "first.xlsx", testSourceSheetNameConstant, [][]any{{"region"}, {"East"}})
	secondPath := createWorkbook(testInstance, workingDirectory, "second.xlsx", "Data", [][]any{{"region"}, {"West"}})
	outputPath := filepath.Join(workingDirectory, "out.xlsx")

	_, runError := merge.NewService(nil, nil, nil).Run(context.Background(), merge.Options{
		InputPaths: []string{firstPath, secondPath},
		SheetName:  testSourceSheetNameConstant,
		OutputPath: outputPath,
	})

	var missingSheetError merge.MissingSheetError
	require.ErrorAs(testInstance, runError, &missingSheetError)
	require.Equal(testInstance, merge.MissingSheetError{FilePath: secondPath, SheetName: testSourceSheetNameConstant}, missingSheetError)
	require.Contains(testInstance, runError.Error(), secondPath)
	require.Contains(testInstance, runError.Error(), testSourceSheetNameConstant)

	_, statError := os.Stat(outputPath)
	require.True(testInstance, os.IsNotExist(statError))
}

func TestServiceRunRejectsInvalidOptions(testInstance *testing.T) {
	_, runError := merge.NewService(nil, nil, nil).Run(context.Background(), merge.Options{InputPaths: []string{"a.xlsx"}})
	require.Error(testInstance, runError)
	require.Equal(testInstance, "invalid options: sheet: is required; out: is required", runError.Error())
}

func TestValidateHeader(testInstance *testing.T) {
	testCases := []struct {
		name        string
		expected    []string
		actual      []string
		expectError bool
	}{
		{name: "identical", expected: []string{"region", "product"}, actual: []string{"region", "product"}},
		{name: "reordered", expected: []string{"region", "product"}, actual: []string{"product", "region"}, expectError: true},
		{name: "extra_column", expected: []string{"region"}, actual: []string{"region", "product"}, expectError: true},
		{name: "both_empty", expected: nil, actual: []string{}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			validationError := merge.ValidateHeader("input.xlsx", testCase.expected, testCase.actual)
			if testCase.expectError {
				require.Error(testInstance, validationError)
				return
			}
			require.NoError(testInstance, validationError)
		})
	}
}

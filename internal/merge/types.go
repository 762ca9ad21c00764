package merge

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MergedSheetName names the only sheet of the merged workbook.
const MergedSheetName = "Merged"

const (
	missingSheetErrorTemplateConstant   = "sheet %q not found in %s"
	headerMismatchErrorTemplateConstant = "header mismatch in %s: expected [%s], got [%s]"
	headerSeparatorConstant             = ", "
)

// Cell is one merged value together with the number format of its source cell.
type Cell struct {
	Value        any
	NumberFormat *excelize.Style
}

// Sheet holds the normalized header and data rows read from one input.
type Sheet struct {
	FilePath string
	Header   []string
	Rows     [][]Cell
}

// MissingSheetError reports an input lacking the requested sheet.
type MissingSheetError struct {
	FilePath  string
	SheetName string
}

// Error names the sheet and the file.
func (missingSheetError MissingSheetError) Error() string {
	return fmt.Sprintf(missingSheetErrorTemplateConstant, missingSheetError.SheetName, missingSheetError.FilePath)
}

// HeaderMismatchError reports an input whose ordered header differs from the first input.
type HeaderMismatchError struct {
	FilePath string
	Expected []string
	Actual   []string
}

// Error shows both header sequences.
func (headerMismatchError HeaderMismatchError) Error() string {
	return fmt.Sprintf(headerMismatchErrorTemplateConstant,
		headerMismatchError.FilePath,
		strings.Join(headerMismatchError.Expected, headerSeparatorConstant),
		strings.Join(headerMismatchError.Actual, headerSeparatorConstant),
	)
}

// ValidateHeader returns HeaderMismatchError unless actual matches expected in order.
func ValidateHeader(filePath string, expected []string, actual []string) error {
	if slices.Equal(expected, actual) {
		return nil
	}
	return HeaderMismatchError{FilePath: filePath, Expected: expected, Actual: actual}
}

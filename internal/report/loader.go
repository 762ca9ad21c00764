package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/spreadsheet"
)

const (
	openInputErrorTemplateConstant  = "unable to open input %s: %w"
	readInputErrorTemplateConstant  = "unable to read input %s: %w"
	emptyInputErrorTemplateConstant = "input %s has no header row"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
}

// Loader reads CSV inputs into a single combined Table.
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

// Load reads every input in order and concatenates their rows.
//
// Columns are the union of normalized headers in first-encounter order.
// Values missing from a shorter row or from a file lacking the column are empty strings.
func (loader *Loader) Load(executionContext context.Context, inputPaths []string) (Table, error) {
	combinedTable := Table{}
	knownColumns := make(map[string]struct{})

	for _, inputPath := range inputPaths {
		if executionContext != nil {
			if contextError := executionContext.Err(); contextError != nil {
				return Table{}, contextError
			}
		}

		fileColumns, fileRecords, loadError := loader.loadFile(inputPath)
		if loadError != nil {
			return Table{}, loadError
		}

		for _, column := range fileColumns {
			if _, known := knownColumns[column]; known {
				continue
			}
			knownColumns[column] = struct{}{}
			combinedTable.Columns = append(combinedTable.Columns, column)
		}
		combinedTable.Records = append(combinedTable.Records, fileRecords...)
	}

	for recordIndex := range combinedTable.Records {
		values := combinedTable.Records[recordIndex].Values
		for _, column := range combinedTable.Columns {
			if _, present := values[column]; !present {
				values[column] = ""
			}
		}
	}

	return combinedTable, nil
}

func (loader *Loader) loadFile(inputPath string) ([]string, []Record, error) {
	inputReader, openError := loader.fileSystem.Open(inputPath)
	if openError != nil {
		return nil, nil, fmt.Errorf(openInputErrorTemplateConstant, inputPath, openError)
	}
	defer inputReader.Close()

	csvReader := csv.NewReader(inputReader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	headerRow, headerError := csvReader.Read()
	if errors.Is(headerError, io.EOF) {
		return nil, nil, fmt.Errorf(emptyInputErrorTemplateConstant, inputPath)
	}
	if headerError != nil {
		return nil, nil, fmt.Errorf(readInputErrorTemplateConstant, inputPath, headerError)
	}
	columns := spreadsheet.NormalizeHeaders(headerRow)

	records := make([]Record, 0)
	for {
		row, rowError := csvReader.Read()
		if errors.Is(rowError, io.EOF) {
			break
		}
		if rowError != nil {
			return nil, nil, fmt.Errorf(readInputErrorTemplateConstant, inputPath, rowError)
		}

		values := make(map[string]string, len(columns))
		for columnIndex, column := range columns {
			if columnIndex < len(row) {
				values[column] = row[columnIndex]
				continue
			}
			if _, present := values[column]; !present {
				values[column] = ""
			}
		}

		records = append(records, Record{Values: values, Date: ParseTransactionDate(values[ColumnDate])})
	}

	return columns, records, nil
}

// ParseTransactionDate parses a date using the supported layouts.
// Unparseable text yields an invalid date that keeps the raw text.
func ParseTransactionDate(rawValue string) TransactionDate {
	trimmedValue := strings.TrimSpace(rawValue)
	transactionDate := TransactionDate{Raw: trimmedValue}
	if len(trimmedValue) == 0 {
		return transactionDate
	}
	for _, layout := range dateLayouts {
		parsedTime, parseError := time.Parse(layout, trimmedValue)
		if parseError != nil {
			continue
		}
		transactionDate.Time = parsedTime
		transactionDate.Valid = true
		return transactionDate
	}
	return transactionDate
}

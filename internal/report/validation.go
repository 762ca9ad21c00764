package report

import "sort"

// ValidateColumns returns MissingColumnsError when the table lacks any required column.
// Extra columns are ignored.
func ValidateColumns(table Table) error {
	missingColumns := make([]string, 0)
	for _, requiredColumn := range RequiredColumns() {
		if !table.HasColumn(requiredColumn) {
			missingColumns = append(missingColumns, requiredColumn)
		}
	}
	if len(missingColumns) == 0 {
		return nil
	}
	sort.Strings(missingColumns)
	return MissingColumnsError{Columns: missingColumns}
}

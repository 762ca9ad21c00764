package report

import (
	"fmt"
	"strings"
)

const (
	missingColumnsErrorTemplateConstant = "missing required column(s): [%s]"
	missingColumnsSeparatorConstant     = " "
)

// MissingColumnsError reports required columns absent from every input file.
type MissingColumnsError struct {
	Columns []string
}

// Error lists the missing columns in sorted order.
func (missingColumnsError MissingColumnsError) Error() string {
	return fmt.Sprintf(missingColumnsErrorTemplateConstant, strings.Join(missingColumnsError.Columns, missingColumnsSeparatorConstant))
}

package spreadsheet

import (
	"sort"
	"unicode/utf8"
)

// Default auto-fit parameters.
const (
	DefaultMinimumColumnWidth = 10
	DefaultColumnPadding      = 2
)

// WidthPolicy bounds auto-fitted column widths.
type WidthPolicy struct {
	MinimumWidth float64
	Padding      float64
}

// DefaultWidthPolicy returns the policy used when configuration leaves the values unset.
func DefaultWidthPolicy() WidthPolicy {
	return WidthPolicy{MinimumWidth: DefaultMinimumColumnWidth, Padding: DefaultColumnPadding}
}

// Sanitize replaces non-positive minimum widths and negative padding with defaults.
func (policy WidthPolicy) Sanitize() WidthPolicy {
	sanitized := policy
	if sanitized.MinimumWidth <= 0 {
		sanitized.MinimumWidth = DefaultMinimumColumnWidth
	}
	if sanitized.Padding < 0 {
		sanitized.Padding = DefaultColumnPadding
	}
	return sanitized
}

// ColumnWidthTracker remembers the longest rendered value per column.
type ColumnWidthTracker struct {
	longestByColumn map[int]int
}

// NewColumnWidthTracker constructs an empty tracker.
func NewColumnWidthTracker() *ColumnWidthTracker {
	return &ColumnWidthTracker{longestByColumn: make(map[int]int)}
}

// Observe records a rendered value for the 1-based column.
func (tracker *ColumnWidthTracker) Observe(column int, rendered string) {
	renderedLength := utf8.RuneCountInString(rendered)
	if currentLength, exists := tracker.longestByColumn[column]; !exists || renderedLength > currentLength {
		tracker.longestByColumn[column] = renderedLength
	}
}

// Width returns the auto-fitted width for the column under the policy.
func (tracker *ColumnWidthTracker) Width(column int, policy WidthPolicy) float64 {
	fittedWidth := float64(tracker.longestByColumn[column]) + policy.Padding
	if fittedWidth < policy.MinimumWidth {
		return policy.MinimumWidth
	}
	return fittedWidth
}

// Columns lists observed columns in ascending order.
func (tracker *ColumnWidthTracker) Columns() []int {
	columns := make([]int, 0, len(tracker.longestByColumn))
	for column := range tracker.longestByColumn {
		columns = append(columns, column)
	}
	sort.Ints(columns)
	return columns
}

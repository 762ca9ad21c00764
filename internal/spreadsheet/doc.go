// Package spreadsheet collects the workbook helpers shared by the report and
// merge commands: header normalization, reusable cell styles, rendered-width
// tracking for column auto-fit, and a sticky-error sheet writer over excelize.
package spreadsheet

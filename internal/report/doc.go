// Package report builds the sales workbook: it loads CSV transactions, validates
// the required columns, derives revenue, aggregates summaries, and writes the
// Transactions and Summary sheets with a revenue-by-region chart.
package report

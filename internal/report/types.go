package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names recognized by the report pipeline after header normalization.
const (
	ColumnDate      = "date"
	ColumnRegion    = "region"
	ColumnProduct   = "product"
	ColumnUnits     = "units"
	ColumnUnitPrice = "unit_price"
	ColumnRevenue   = "revenue"
)

// RequiredColumns lists the columns every combined table must contain.
func RequiredColumns() []string {
	return []string{ColumnDate, ColumnRegion, ColumnProduct, ColumnUnits, ColumnUnitPrice}
}

// TransactionColumns lists the Transactions sheet columns in output order.
func TransactionColumns() []string {
	return []string{ColumnDate, ColumnRegion, ColumnProduct, ColumnUnits, ColumnUnitPrice, ColumnRevenue}
}

// TransactionDate is a parsed date that remembers its source text.
type TransactionDate struct {
	Time  time.Time
	Valid bool
	Raw   string
}

// Record is one loaded CSV row keyed by normalized column name.
type Record struct {
	Values map[string]string
	Date   TransactionDate
}

// Value returns the text stored for the column, or an empty string.
func (record Record) Value(column string) string {
	return record.Values[column]
}

// Table is the combined result of loading every input file.
type Table struct {
	Columns []string
	Records []Record
}

// HasColumn reports whether any input file declared the column.
func (table Table) HasColumn(column string) bool {
	for _, existingColumn := range table.Columns {
		if existingColumn == column {
			return true
		}
	}
	return false
}

// Transaction is a validated row with coerced numeric fields and derived revenue.
type Transaction struct {
	Date      TransactionDate
	Region    string
	Product   string
	Units     int64
	UnitPrice decimal.Decimal
	Revenue   decimal.Decimal
}

// PivotRow sums one region and product pair.
type PivotRow struct {
	Region     string
	Product    string
	UnitsSum   int64
	RevenueSum decimal.Decimal
}

// TotalsRow sums revenue for one region or product.
type TotalsRow struct {
	Key        string
	RevenueSum decimal.Decimal
}

// MonthlyRow sums one YYYY-MM month.
type MonthlyRow struct {
	Month      string
	UnitsSum   int64
	RevenueSum decimal.Decimal
}

// KPISet holds the scalar values shown at the top of the Summary sheet.
type KPISet struct {
	TotalRevenue      decimal.Decimal
	TotalUnits        int64
	AverageOrderValue decimal.Decimal
	TransactionCount  int64
	TopRegion         string
	TopProduct        string
}

// Summary bundles every aggregate written to the Summary sheet.
type Summary struct {
	Pivot         []PivotRow
	RegionTotals  []TotalsRow
	ProductTotals []TotalsRow
	Monthly       []MonthlyRow
	KPIs          KPISet
}

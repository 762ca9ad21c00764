package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tabkit/internal/report"
)

func TestParseUnitsOrZero(testInstance *testing.T) {
	testCases := []struct {
		name          string
		rawValue      string
		expectedUnits int64
	}{
		{name: "integer", rawValue: "10", expectedUnits: 10},
		{name: "padded_integer", rawValue: "  7 ", expectedUnits: 7},
		{name: "integral_decimal", rawValue: "3.0", expectedUnits: 3},
		{name: "negative", rawValue: "-2", expectedUnits: -2},
		{name: "fractional", rawValue: "2.5", expectedUnits: 0},
		{name: "text", rawValue: "ten", expectedUnits: 0},
		{name: "empty", rawValue: "", expectedUnits: 0},
		{name: "beyond_int64", rawValue: "99999999999999999999", expectedUnits: 0},
		{name: "beyond_int64_integral_decimal", rawValue: "-99999999999999999999.0", expectedUnits: 0},
		{name: "largest_int64_decimal", rawValue: "9223372036854775807.0", expectedUnits: 9223372036854775807},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedUnits, report.ParseUnitsOrZero(testCase.rawValue))
		})
	}
}

func TestParseDecimalOrZero(testInstance *testing.T) {
	testCases := []struct {
		name           string
		rawValue       string
		expectedAmount string
	}{
		{name: "decimal", rawValue: "2.5", expectedAmount: "2.5"},
		{name: "integer", rawValue: "4", expectedAmount: "4"},
		{name: "padded", rawValue: " 0.10 ", expectedAmount: "0.1"},
		{name: "currency_symbol", rawValue: "$2.50", expectedAmount: "0"},
		{name: "empty", rawValue: "", expectedAmount: "0"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expectedAmount := decimal.RequireFromString(testCase.expectedAmount)
			actualAmount := report.ParseDecimalOrZero(testCase.rawValue)
			require.Truef(testInstance, expectedAmount.Equal(actualAmount), "expected %s, got %s", expectedAmount, actualAmount)
		})
	}
}

func TestTransformDerivesRevenue(testInstance *testing.T) {
	table := report.Table{
		Columns: []string{"date", "region", "product", "units", "unit_price", "channel"},
		Records: []report.Record{
			newRecord("2024-01-05", "East", "Widget", "10", "2.5"),
			newRecord("2024-01-06", "West", "Gadget", "abc", "3"),
			newRecord("not a date", "West", "Gadget", "4", "n/a"),
			newRecord("2024-02-01", "North", "Widget", "3", "0.1"),
		},
	}

	transactions, statistics := report.Transform(table)
	require.Len(testInstance, transactions, len(table.Records))

	expectedRevenues := []string{"25", "0", "0", "0.3"}
	for transactionIndex, transaction := range transactions {
		expectedRevenue := decimal.RequireFromString(expectedRevenues[transactionIndex])
		require.Truef(testInstance, expectedRevenue.Equal(transaction.Revenue), "row %d: expected %s, got %s", transactionIndex, expectedRevenue, transaction.Revenue)
		require.True(testInstance, transaction.UnitPrice.Mul(decimal.NewFromInt(transaction.Units)).Equal(transaction.Revenue))
	}

	require.Equal(testInstance, report.CoercionStatistics{InvalidUnits: 1, InvalidUnitPrices: 1, InvalidDates: 1}, statistics)
	require.Equal(testInstance, "West", transactions[1].Region)
	require.Equal(testInstance, "Gadget", transactions[1].Product)
}

func newRecord(date string, region string, product string, units string, unitPrice string) report.Record {
	return report.Record{
		Values: map[string]string{
			"date":       date,
			"region":     region,
			"product":    product,
			"units":      units,
			"unit_price": unitPrice,
		},
		Date: report.ParseTransactionDate(date),
	}
}

package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CoercionStatistics counts values replaced with zero during transformation.
type CoercionStatistics struct {
	InvalidUnits      int
	InvalidUnitPrices int
	InvalidDates      int
}

// ParseUnitsOrZero parses an integer count. Integral decimals such as "3.0" are accepted;
// anything else yields zero.
func ParseUnitsOrZero(rawValue string) int64 {
	units, _ := parseUnits(rawValue)
	return units
}

// ParseDecimalOrZero parses a decimal amount, yielding zero on failure.
func ParseDecimalOrZero(rawValue string) decimal.Decimal {
	amount, _ := parseDecimal(rawValue)
	return amount
}

func parseUnits(rawValue string) (int64, bool) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		return 0, false
	}
	if units, parseError := strconv.ParseInt(trimmedValue, 10, 64); parseError == nil {
		return units, true
	}
	amount, parseError := decimal.NewFromString(trimmedValue)
	if parseError != nil || !amount.IsInteger() {
		return 0, false
	}
	if !amount.Equal(decimal.NewFromInt(amount.IntPart())) {
		return 0, false
	}
	return amount.IntPart(), true
}

func parseDecimal(rawValue string) (decimal.Decimal, bool) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		return decimal.Zero, false
	}
	amount, parseError := decimal.NewFromString(trimmedValue)
	if parseError != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// Transform coerces numeric columns and derives revenue for every record.
// Every record is retained, including those whose values fell back to zero.
func Transform(table Table) ([]Transaction, CoercionStatistics) {
	statistics := CoercionStatistics{}
	transactions := make([]Transaction, 0, len(table.Records))

	for _, record := range table.Records {
		units, unitsValid := parseUnits(record.Value(ColumnUnits))
		if !unitsValid {
			statistics.InvalidUnits++
		}
		unitPrice, unitPriceValid := parseDecimal(record.Value(ColumnUnitPrice))
		if !unitPriceValid {
			statistics.InvalidUnitPrices++
		}
		if !record.Date.Valid {
			statistics.InvalidDates++
		}

		transactions = append(transactions, Transaction{
			Date:      record.Date,
			Region:    record.Value(ColumnRegion),
			Product:   record.Value(ColumnProduct),
			Units:     units,
			UnitPrice: unitPrice,
			Revenue:   unitPrice.Mul(decimal.NewFromInt(units)),
		})
	}

	return transactions, statistics
}

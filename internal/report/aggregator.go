package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	monthKeyLayoutConstant = "2006-01"
	monthKeyLengthConstant = 7
)

type pivotKey struct {
	region  string
	product string
}

// Aggregate computes every Summary aggregate from the transformed transactions.
func Aggregate(transactions []Transaction) Summary {
	summary := Summary{
		Pivot:         aggregatePivot(transactions),
		RegionTotals:  aggregateTotals(transactions, func(transaction Transaction) string { return transaction.Region }),
		ProductTotals: aggregateTotals(transactions, func(transaction Transaction) string { return transaction.Product }),
		Monthly:       aggregateMonthly(transactions),
	}
	summary.KPIs = computeKPIs(transactions, summary.RegionTotals, summary.ProductTotals)
	return summary
}

// MonthKey returns the YYYY-MM key for a date, falling back to the first seven characters of its text.
func MonthKey(transactionDate TransactionDate) string {
	if transactionDate.Valid {
		return transactionDate.Time.Format(monthKeyLayoutConstant)
	}
	rawRunes := []rune(transactionDate.Raw)
	if len(rawRunes) > monthKeyLengthConstant {
		rawRunes = rawRunes[:monthKeyLengthConstant]
	}
	return string(rawRunes)
}

func aggregatePivot(transactions []Transaction) []PivotRow {
	rowIndexByKey := make(map[pivotKey]int)
	pivotRows := make([]PivotRow, 0)
	for _, transaction := range transactions {
		key := pivotKey{region: transaction.Region, product: transaction.Product}
		rowIndex, exists := rowIndexByKey[key]
		if !exists {
			rowIndex = len(pivotRows)
			rowIndexByKey[key] = rowIndex
			pivotRows = append(pivotRows, PivotRow{Region: key.region, Product: key.product, RevenueSum: decimal.Zero})
		}
		pivotRows[rowIndex].UnitsSum += transaction.Units
		pivotRows[rowIndex].RevenueSum = pivotRows[rowIndex].RevenueSum.Add(transaction.Revenue)
	}

	sort.SliceStable(pivotRows, func(leftIndex int, rightIndex int) bool {
		if pivotRows[leftIndex].Region != pivotRows[rightIndex].Region {
			return pivotRows[leftIndex].Region < pivotRows[rightIndex].Region
		}
		return pivotRows[leftIndex].Product < pivotRows[rightIndex].Product
	})
	return pivotRows
}

func aggregateTotals(transactions []Transaction, keyOf func(Transaction) string) []TotalsRow {
	rowIndexByKey := make(map[string]int)
	totalsRows := make([]TotalsRow, 0)
	for _, transaction := range transactions {
		key := keyOf(transaction)
		rowIndex, exists := rowIndexByKey[key]
		if !exists {
			rowIndex = len(totalsRows)
			rowIndexByKey[key] = rowIndex
			totalsRows = append(totalsRows, TotalsRow{Key: key, RevenueSum: decimal.Zero})
		}
		totalsRows[rowIndex].RevenueSum = totalsRows[rowIndex].RevenueSum.Add(transaction.Revenue)
	}

	sort.SliceStable(totalsRows, func(leftIndex int, rightIndex int) bool {
		return totalsRows[leftIndex].RevenueSum.GreaterThan(totalsRows[rightIndex].RevenueSum)
	})
	return totalsRows
}

func aggregateMonthly(transactions []Transaction) []MonthlyRow {
	rowIndexByMonth := make(map[string]int)
	monthlyRows := make([]MonthlyRow, 0)
	for _, transaction := range transactions {
		month := MonthKey(transaction.Date)
		rowIndex, exists := rowIndexByMonth[month]
		if !exists {
			rowIndex = len(monthlyRows)
			rowIndexByMonth[month] = rowIndex
			monthlyRows = append(monthlyRows, MonthlyRow{Month: month, RevenueSum: decimal.Zero})
		}
		monthlyRows[rowIndex].UnitsSum += transaction.Units
		monthlyRows[rowIndex].RevenueSum = monthlyRows[rowIndex].RevenueSum.Add(transaction.Revenue)
	}

	sort.SliceStable(monthlyRows, func(leftIndex int, rightIndex int) bool {
		return monthlyRows[leftIndex].Month < monthlyRows[rightIndex].Month
	})
	return monthlyRows
}

func computeKPIs(transactions []Transaction, regionTotals []TotalsRow, productTotals []TotalsRow) KPISet {
	kpis := KPISet{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		TransactionCount:  int64(len(transactions)),
	}
	for _, transaction := range transactions {
		kpis.TotalRevenue = kpis.TotalRevenue.Add(transaction.Revenue)
		kpis.TotalUnits += transaction.Units
	}
	if kpis.TotalUnits != 0 {
		kpis.AverageOrderValue = kpis.TotalRevenue.Div(decimal.NewFromInt(kpis.TotalUnits))
	}
	if len(regionTotals) > 0 {
		kpis.TopRegion = regionTotals[0].Key
	}
	if len(productTotals) > 0 {
		kpis.TopProduct = productTotals[0].Key
	}
	return kpis
}

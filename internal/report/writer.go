package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/temirov/tabkit/internal/filesystem"
	"github.com/temirov/tabkit/internal/spreadsheet"
)

// Sheet names and fixed labels of the report workbook.
const (
	TransactionsSheetName = "Transactions"
	SummarySheetName      = "Summary"
	ChartTitle            = "Revenue by Region"
	PivotTotalLabel       = "Total"
)

const (
	kpiLabelHeaderConstant              = "Label"
	kpiValueHeaderConstant              = "Value"
	kpiTotalRevenueLabelConstant        = "Total Revenue"
	kpiTotalUnitsLabelConstant          = "Total Units"
	kpiAverageOrderValueLabelConstant   = "Avg Order Value (AOV)"
	kpiTransactionCountLabelConstant    = "# Transactions"
	kpiTopRegionLabelConstant           = "Top Region (by Rev)"
	kpiTopProductLabelConstant          = "Top Product (by Rev)"
	headerUnitsSumConstant              = "units_sum"
	headerRevenueSumConstant            = "revenue_sum"
	headerMonthConstant                 = "month (YYYY-MM)"
	dateRenderLayoutConstant            = "2006-01-02"
	sumFormulaTemplateConstant          = "SUM(%s:%s)"
	sheetReferenceTemplateConstant      = "%s!%s"
	sheetRangeReferenceTemplateConstant = "%s!%s:%s"
	chartXAxisTitleConstant             = "Region"
	chartYAxisTitleConstant             = "Revenue"
	createWorkbookErrorTemplateConstant = "unable to create report workbook: %w"
	writeSheetErrorTemplateConstant     = "unable to write %s sheet: %w"
	addChartErrorTemplateConstant       = "unable to add chart to %s sheet: %w"
)

// PivotHeaders returns the exact Summary pivot header row.
func PivotHeaders() []string {
	return []string{ColumnRegion, ColumnProduct, headerUnitsSumConstant, headerRevenueSumConstant}
}

// Writer renders transactions and their summary into a workbook file.
type Writer struct {
	fileSystem  filesystem.FileSystem
	widthPolicy spreadsheet.WidthPolicy
}

// NewWriter constructs a Writer.
func NewWriter(fileSystem filesystem.FileSystem, widthPolicy spreadsheet.WidthPolicy) *Writer {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &Writer{fileSystem: fileSystem, widthPolicy: widthPolicy.Sanitize()}
}

// Write builds the Transactions and Summary sheets and saves the workbook to outputPath.
func (writer *Writer) Write(outputPath string, transactions []Transaction, summary Summary) error {
	workbook, workbookError := spreadsheet.NewWorkbook(TransactionsSheetName, SummarySheetName)
	if workbookError != nil {
		return fmt.Errorf(createWorkbookErrorTemplateConstant, workbookError)
	}
	defer workbook.Close()

	styles, stylesError := spreadsheet.NewStyleSet(workbook)
	if stylesError != nil {
		return fmt.Errorf(createWorkbookErrorTemplateConstant, stylesError)
	}

	if transactionsError := writer.writeTransactions(workbook, styles, transactions); transactionsError != nil {
		return fmt.Errorf(writeSheetErrorTemplateConstant, TransactionsSheetName, transactionsError)
	}

	if summaryError := writer.writeSummary(workbook, styles, summary); summaryError != nil {
		return fmt.Errorf(writeSheetErrorTemplateConstant, SummarySheetName, summaryError)
	}

	return spreadsheet.SaveWorkbook(writer.fileSystem, workbook, outputPath)
}

func (writer *Writer) writeTransactions(workbook *excelize.File, styles *spreadsheet.StyleSet, transactions []Transaction) error {
	sheetWriter := spreadsheet.NewSheetWriter(workbook, TransactionsSheetName)

	for columnIndex, column := range TransactionColumns() {
		sheetWriter.SetText(columnIndex+1, 1, column, styles.Header)
	}

	for transactionIndex, transaction := range transactions {
		row := transactionIndex + 2
		if transaction.Date.Valid {
			sheetWriter.SetValue(1, row, transaction.Date.Time, transaction.Date.Time.Format(dateRenderLayoutConstant), styles.Date)
		} else {
			sheetWriter.SetValue(1, row, nil, "", styles.Date)
		}
		sheetWriter.SetText(2, row, transaction.Region, 0)
		sheetWriter.SetText(3, row, transaction.Product, 0)
		sheetWriter.SetValue(4, row, transaction.Units, spreadsheet.RenderInteger(transaction.Units), styles.Integer)
		writeCurrency(sheetWriter, 5, row, transaction.UnitPrice, styles.Currency)
		writeCurrency(sheetWriter, 6, row, transaction.Revenue, styles.Currency)
	}

	sheetWriter.ApplyColumnWidths(writer.widthPolicy)
	return sheetWriter.Err()
}

func (writer *Writer) writeSummary(workbook *excelize.File, styles *spreadsheet.StyleSet, summary Summary) error {
	plan := PlanSummaryLayout(summary)
	sheetWriter := spreadsheet.NewSheetWriter(workbook, SummarySheetName)

	for _, region := range plan.Regions {
		switch region.Name {
		case RegionKPI:
			writeKPIBlock(sheetWriter, styles, region, summary.KPIs)
		case RegionPivot:
			writePivot(sheetWriter, styles, region, summary.Pivot)
		case RegionRegionTotals:
			writeTotals(sheetWriter, styles, region, ColumnRegion, summary.RegionTotals)
		case RegionProductTotals:
			writeTotals(sheetWriter, styles, region, ColumnProduct, summary.ProductTotals)
		case RegionMonthly:
			writeMonthly(sheetWriter, styles, region, summary.Monthly)
		}
	}

	sheetWriter.ApplyColumnWidths(writer.widthPolicy)

	if chartRegion, hasChart := plan.Region(RegionChart); hasChart {
		regionTotalsRegion, _ := plan.Region(RegionRegionTotals)
		addRevenueChart(workbook, sheetWriter, regionTotalsRegion, chartRegion)
	}

	return sheetWriter.Err()
}

func writeKPIBlock(sheetWriter *spreadsheet.SheetWriter, styles *spreadsheet.StyleSet, region LayoutRegion, kpis KPISet) {
	labelColumn := region.Column
	valueColumn := region.Column + 1

	sheetWriter.SetText(labelColumn, region.Row, kpiLabelHeaderConstant, styles.ShadedHeader)
	sheetWriter.SetText(valueColumn, region.Row, kpiValueHeaderConstant, styles.ShadedHeader)

	row := region.Row + 1
	sheetWriter.SetText(labelColumn, row, kpiTotalRevenueLabelConstant, 0)
	writeCurrency(sheetWriter, valueColumn, row, kpis.TotalRevenue, styles.Currency)

	row++
	sheetWriter.SetText(labelColumn, row, kpiTotalUnitsLabelConstant, 0)
	sheetWriter.SetValue(valueColumn, row, kpis.TotalUnits, spreadsheet.RenderInteger(kpis.TotalUnits), styles.Integer)

	row++
	sheetWriter.SetText(labelColumn, row, kpiAverageOrderValueLabelConstant, 0)
	writeCurrency(sheetWriter, valueColumn, row, kpis.AverageOrderValue, styles.Currency)

	row++
	sheetWriter.SetText(labelColumn, row, kpiTransactionCountLabelConstant, 0)
	sheetWriter.SetValue(valueColumn, row, kpis.TransactionCount, spreadsheet.RenderInteger(kpis.TransactionCount), styles.Integer)

	row++
	sheetWriter.SetText(labelColumn, row, kpiTopRegionLabelConstant, 0)
	sheetWriter.SetText(valueColumn, row, kpis.TopRegion, 0)

	row++
	sheetWriter.SetText(labelColumn, row, kpiTopProductLabelConstant, 0)
	sheetWriter.SetText(valueColumn, row, kpis.TopProduct, 0)
}

func writePivot(sheetWriter *spreadsheet.SheetWriter, styles *spreadsheet.StyleSet, region LayoutRegion, pivotRows []PivotRow) {
	for headerIndex, header := range PivotHeaders() {
		sheetWriter.SetText(region.Column+headerIndex, region.Row, header, styles.CenteredHeader)
	}

	unitsColumn := region.Column + 2
	revenueColumn := region.Column + 3
	totalUnits := int64(0)
	totalRevenue := decimal.Zero

	for pivotIndex, pivotRow := range pivotRows {
		row := region.Row + 1 + pivotIndex
		sheetWriter.SetText(region.Column, row, pivotRow.Region, 0)
		sheetWriter.SetText(region.Column+1, row, pivotRow.Product, 0)
		sheetWriter.SetValue(unitsColumn, row, pivotRow.UnitsSum, spreadsheet.RenderInteger(pivotRow.UnitsSum), styles.Integer)
		writeCurrency(sheetWriter, revenueColumn, row, pivotRow.RevenueSum, styles.Currency)
		totalUnits += pivotRow.UnitsSum
		totalRevenue = totalRevenue.Add(pivotRow.RevenueSum)
	}

	totalsRow := region.LastRow()
	sheetWriter.SetText(region.Column, totalsRow, PivotTotalLabel, styles.TotalsLabel)
	sheetWriter.SetValue(region.Column+1, totalsRow, nil, "", styles.TotalsLabel)

	if len(pivotRows) == 0 {
		sheetWriter.SetValue(unitsColumn, totalsRow, totalUnits, spreadsheet.RenderInteger(totalUnits), styles.TotalsInteger)
		writeCurrency(sheetWriter, revenueColumn, totalsRow, totalRevenue, styles.TotalsCurrency)
		return
	}

	firstDataRow := region.Row + 1
	lastDataRow := totalsRow - 1
	sheetWriter.SetFormula(unitsColumn, totalsRow, sumFormula(sheetWriter, unitsColumn, firstDataRow, lastDataRow), spreadsheet.RenderInteger(totalUnits), styles.TotalsInteger)
	sheetWriter.SetFormula(revenueColumn, totalsRow, sumFormula(sheetWriter, revenueColumn, firstDataRow, lastDataRow), spreadsheet.RenderCurrency(totalRevenue), styles.TotalsCurrency)
}

func writeTotals(sheetWriter *spreadsheet.SheetWriter, styles *spreadsheet.StyleSet, region LayoutRegion, keyHeader string, totalsRows []TotalsRow) {
	sheetWriter.SetText(region.Column, region.Row, keyHeader, styles.ShadedHeader)
	sheetWriter.SetText(region.Column+1, region.Row, headerRevenueSumConstant, styles.ShadedHeader)

	for totalsIndex, totalsRow := range totalsRows {
		row := region.Row + 1 + totalsIndex
		sheetWriter.SetText(region.Column, row, totalsRow.Key, 0)
		writeCurrency(sheetWriter, region.Column+1, row, totalsRow.RevenueSum, styles.Currency)
	}
}

func writeMonthly(sheetWriter *spreadsheet.SheetWriter, styles *spreadsheet.StyleSet, region LayoutRegion, monthlyRows []MonthlyRow) {
	for headerIndex, header := range []string{headerMonthConstant, headerUnitsSumConstant, headerRevenueSumConstant} {
		sheetWriter.SetText(region.Column+headerIndex, region.Row, header, styles.CenteredHeader)
	}

	for monthlyIndex, monthlyRow := range monthlyRows {
		row := region.Row + 1 + monthlyIndex
		sheetWriter.SetText(region.Column, row, monthlyRow.Month, 0)
		sheetWriter.SetValue(region.Column+1, row, monthlyRow.UnitsSum, spreadsheet.RenderInteger(monthlyRow.UnitsSum), styles.Integer)
		writeCurrency(sheetWriter, region.Column+2, row, monthlyRow.RevenueSum, styles.Currency)
	}
}

// addRevenueChart binds categories to the region keys and values to the revenue column,
// naming the series after the revenue header cell.
func addRevenueChart(workbook *excelize.File, sheetWriter *spreadsheet.SheetWriter, totalsRegion LayoutRegion, chartRegion LayoutRegion) {
	sheetName := sheetWriter.SheetName()
	keyColumn := totalsRegion.Column
	revenueColumn := totalsRegion.Column + 1
	firstDataRow := totalsRegion.Row + 1
	lastDataRow := totalsRegion.LastRow()

	seriesName := fmt.Sprintf(sheetReferenceTemplateConstant, sheetName, sheetWriter.CellName(revenueColumn, totalsRegion.Row, true))
	categories := fmt.Sprintf(sheetRangeReferenceTemplateConstant, sheetName, sheetWriter.CellName(keyColumn, firstDataRow, true), sheetWriter.CellName(keyColumn, lastDataRow, true))
	values := fmt.Sprintf(sheetRangeReferenceTemplateConstant, sheetName, sheetWriter.CellName(revenueColumn, firstDataRow, true), sheetWriter.CellName(revenueColumn, lastDataRow, true))
	anchorCell := sheetWriter.CellName(chartRegion.Column, chartRegion.Row, false)
	if sheetWriter.Err() != nil {
		return
	}

	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: seriesName, Categories: categories, Values: values},
		},
		Title: []excelize.RichTextRun{{Text: ChartTitle}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: chartXAxisTitleConstant}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: chartYAxisTitleConstant}}},
		Dimension: excelize.ChartDimension{
			Width:  chartWidthPixelsConstant,
			Height: chartHeightPixelsConstant,
		},
	}

	if chartError := workbook.AddChart(sheetName, anchorCell, chart); chartError != nil {
		sheetWriter.Fail(fmt.Errorf(addChartErrorTemplateConstant, sheetName, chartError))
	}
}

func writeCurrency(sheetWriter *spreadsheet.SheetWriter, column int, row int, amount decimal.Decimal, styleIdentifier int) {
	sheetWriter.SetValue(column, row, amount.InexactFloat64(), spreadsheet.RenderCurrency(amount), styleIdentifier)
}

func sumFormula(sheetWriter *spreadsheet.SheetWriter, column int, firstRow int, lastRow int) string {
	return fmt.Sprintf(sumFormulaTemplateConstant, sheetWriter.CellName(column, firstRow, false), sheetWriter.CellName(column, lastRow, false))
}

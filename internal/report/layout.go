package report

// Summary sheet region names.
const (
	RegionKPI           = "kpi"
	RegionPivot         = "pivot"
	RegionRegionTotals  = "region_totals"
	RegionProductTotals = "product_totals"
	RegionMonthly       = "monthly"
	RegionChart         = "chart"
)

const (
	kpiRowCountConstant              = 6
	kpiColumnCountConstant           = 2
	pivotColumnCountConstant         = 4
	totalsColumnCountConstant        = 2
	monthlyColumnCountConstant       = 3
	headerRowCountConstant           = 1
	pivotTotalsRowCountConstant      = 1
	chartWidthPixelsConstant         = 756
	chartHeightPixelsConstant        = 454
	defaultColumnWidthPixelsConstant = 64
	defaultRowHeightPixelsConstant   = 20
	kpiToPivotRowGapConstant         = 1
	pivotToTotalsColumnGapConstant   = 2
	totalsToTotalsColumnGapConstant  = 1
	totalsToChartColumnGapConstant   = 1
	pivotToMonthlyRowGapConstant     = 2
	summaryOriginColumnConstant      = 1
	summaryOriginRowConstant         = 1
)

// LayoutRegion is a rectangular block of the Summary sheet. Coordinates are 1-based.
type LayoutRegion struct {
	Name   string
	Column int
	Row    int
	Width  int
	Height int
}

// LastColumn returns the rightmost column covered by the region.
func (region LayoutRegion) LastColumn() int {
	return region.Column + region.Width - 1
}

// LastRow returns the bottom row covered by the region.
func (region LayoutRegion) LastRow() int {
	return region.Row + region.Height - 1
}

// Overlaps reports whether two regions share any cell.
func (region LayoutRegion) Overlaps(other LayoutRegion) bool {
	if region.Width <= 0 || region.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return region.Column <= other.LastColumn() && other.Column <= region.LastColumn() &&
		region.Row <= other.LastRow() && other.Row <= region.LastRow()
}

// LayoutPlan lists the Summary regions in placement order.
type LayoutPlan struct {
	Regions []LayoutRegion
}

// Region finds a region by name.
func (plan LayoutPlan) Region(name string) (LayoutRegion, bool) {
	for _, region := range plan.Regions {
		if region.Name == name {
			return region, true
		}
	}
	return LayoutRegion{}, false
}

// PlanSummaryLayout places every Summary region relative to the extent of the regions before it.
//
// The chart region is omitted when there are no region totals to plot.
func PlanSummaryLayout(summary Summary) LayoutPlan {
	kpiRegion := LayoutRegion{
		Name:   RegionKPI,
		Column: summaryOriginColumnConstant,
		Row:    summaryOriginRowConstant,
		Width:  kpiColumnCountConstant,
		Height: headerRowCountConstant + kpiRowCountConstant,
	}

	pivotRegion := LayoutRegion{
		Name:   RegionPivot,
		Column: summaryOriginColumnConstant,
		Row:    kpiRegion.LastRow() + kpiToPivotRowGapConstant + 1,
		Width:  pivotColumnCountConstant,
		Height: headerRowCountConstant + len(summary.Pivot) + pivotTotalsRowCountConstant,
	}

	regionTotalsRegion := LayoutRegion{
		Name:   RegionRegionTotals,
		Column: pivotRegion.LastColumn() + pivotToTotalsColumnGapConstant + 1,
		Row:    pivotRegion.Row,
		Width:  totalsColumnCountConstant,
		Height: headerRowCountConstant + len(summary.RegionTotals),
	}

	productTotalsRegion := LayoutRegion{
		Name:   RegionProductTotals,
		Column: regionTotalsRegion.LastColumn() + totalsToTotalsColumnGapConstant + 1,
		Row:    pivotRegion.Row,
		Width:  totalsColumnCountConstant,
		Height: headerRowCountConstant + len(summary.ProductTotals),
	}

	monthlyRegion := LayoutRegion{
		Name:   RegionMonthly,
		Column: summaryOriginColumnConstant,
		Row:    pivotRegion.LastRow() + pivotToMonthlyRowGapConstant + 1,
		Width:  monthlyColumnCountConstant,
		Height: headerRowCountConstant + len(summary.Monthly),
	}

	plan := LayoutPlan{Regions: []LayoutRegion{kpiRegion, pivotRegion, regionTotalsRegion, productTotalsRegion, monthlyRegion}}

	if len(summary.RegionTotals) > 0 {
		plan.Regions = append(plan.Regions, LayoutRegion{
			Name:   RegionChart,
			Column: productTotalsRegion.LastColumn() + totalsToChartColumnGapConstant + 1,
			Row:    pivotRegion.Row,
			Width:  spanCells(chartWidthPixelsConstant, defaultColumnWidthPixelsConstant),
			Height: spanCells(chartHeightPixelsConstant, defaultRowHeightPixelsConstant),
		})
	}

	return plan
}

// spanCells counts the default-sized cells a drawing of the given pixel length covers.
func spanCells(pixels int, cellPixels int) int {
	return (pixels + cellPixels - 1) / cellPixels
}

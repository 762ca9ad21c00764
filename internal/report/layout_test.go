package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/tabkit/internal/report"
)

func TestPlanSummaryLayout(testInstance *testing.T) {
	summary := report.Summary{
		Pivot:         make([]report.PivotRow, 3),
		RegionTotals:  make([]report.TotalsRow, 2),
		ProductTotals: make([]report.TotalsRow, 4),
		Monthly:       make([]report.MonthlyRow, 2),
	}

	plan := report.PlanSummaryLayout(summary)

	expectedRegions := []report.LayoutRegion{
		{Name: report.RegionKPI, Column: 1, Row: 1, Width: 2, Height: 7},
		{Name: report.RegionPivot, Column: 1, Row: 9, Width: 4, Height: 5},
		{Name: report.RegionRegionTotals, Column: 7, Row: 9, Width: 2, Height: 3},
		{Name: report.RegionProductTotals, Column: 10, Row: 9, Width: 2, Height: 5},
		{Name: report.RegionMonthly, Column: 1, Row: 16, Width: 3, Height: 3},
	}
	for _, expectedRegion := range expectedRegions {
		actualRegion, exists := plan.Region(expectedRegion.Name)
		require.True(testInstance, exists, expectedRegion.Name)
		require.Equal(testInstance, expectedRegion, actualRegion)
	}

	chartRegion, hasChart := plan.Region(report.RegionChart)
	require.True(testInstance, hasChart)
	require.Equal(testInstance, 13, chartRegion.Column)
	require.Equal(testInstance, 9, chartRegion.Row)
	require.Equal(testInstance, 12, chartRegion.Width, "756 px over 64 px default columns")
	require.Equal(testInstance, 23, chartRegion.Height, "454 px over 20 px default rows")
	require.Equal(testInstance, 24, chartRegion.LastColumn())

	for leftIndex := range plan.Regions {
		for rightIndex := leftIndex + 1; rightIndex < len(plan.Regions); rightIndex++ {
			require.Falsef(testInstance, plan.Regions[leftIndex].Overlaps(plan.Regions[rightIndex]),
				"%s overlaps %s", plan.Regions[leftIndex].Name, plan.Regions[rightIndex].Name)
		}
	}
}

func TestPlanSummaryLayoutGrowsWithPivot(testInstance *testing.T) {
	smallPlan := report.PlanSummaryLayout(report.Summary{Pivot: make([]report.PivotRow, 1)})
	largePlan := report.PlanSummaryLayout(report.Summary{Pivot: make([]report.PivotRow, 40)})

	smallMonthly, _ := smallPlan.Region(report.RegionMonthly)
	largeMonthly, _ := largePlan.Region(report.RegionMonthly)
	require.Equal(testInstance, 39, largeMonthly.Row-smallMonthly.Row)

	_, hasChart := smallPlan.Region(report.RegionChart)
	require.False(testInstance, hasChart)
}

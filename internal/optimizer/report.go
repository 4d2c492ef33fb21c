package optimizer

import (
	"fmt"
	"strings"

	"datacenter-optimizer/internal/model"
)

// Report renders a plain-text summary of one run, suitable for the CLI and
// the demo binary.
func Report(rec *model.ResultsRecord, facility *model.FacilityParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DATA CENTER OPTIMIZATION RESULTS (%.0f MW)\n", facility.RequestedCapacityMW)
	b.WriteString("==========================================\n\n")

	b.WriteString("COST SUMMARY\n")
	fmt.Fprintf(&b, "  Total daily cost:  $%.2f\n", rec.Summary.TotalCost)
	fmt.Fprintf(&b, "  Electricity cost:  $%.2f\n", rec.Summary.ElectricityCost)
	fmt.Fprintf(&b, "  Water cost:        $%.2f\n", rec.Summary.WaterCost)
	fmt.Fprintf(&b, "  Baseline cost:     $%.2f\n\n", rec.Summary.BaselineCost)

	b.WriteString("SAVINGS\n")
	fmt.Fprintf(&b, "  Daily savings:     $%.2f\n", rec.Savings.DailySavings)
	fmt.Fprintf(&b, "  Annual savings:    $%.0f\n", rec.Savings.AnnualSavings)
	fmt.Fprintf(&b, "  Percentage saved:  %.1f%%\n\n", rec.Savings.PercentageSaved)

	b.WriteString("ENVIRONMENTAL IMPACT\n")
	fmt.Fprintf(&b, "  Water used:        %.0f gallons\n", rec.Environmental.WaterUsedGallons)
	fmt.Fprintf(&b, "  Water saved:       %.0f gallons\n", rec.Environmental.WaterSavedGallons)
	fmt.Fprintf(&b, "  Peak reduction:    %.1f MW\n", rec.Environmental.PeakReductionMW)
	fmt.Fprintf(&b, "  Carbon avoided:    %.2f tons CO2/day\n\n", rec.Environmental.CarbonAvoidedTons)

	b.WriteString("OPERATIONS\n")
	fmt.Fprintf(&b, "  Peak demand:       %.1f MW\n", rec.Summary.PeakDemandMW)
	fmt.Fprintf(&b, "  Water-cooled hours: %d of %d\n", waterHours(rec), model.HoursPerDay)

	return b.String()
}

func waterHours(rec *model.ResultsRecord) int {
	n := 0
	for _, h := range rec.HourlyData {
		if h.WaterCooling == 1 {
			n++
		}
	}
	return n
}

package optimizer

import (
	"fmt"
	"math"

	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/program"
	"datacenter-optimizer/internal/solver"
)

// extractResults turns a raw optimal assignment into the published results
// record: the hour-by-hour schedule, cost summary, savings against the
// unoptimized baseline, and environmental impact.
func extractResults(
	p *program.Program,
	sol *solver.Solution,
	profile *model.HourlyProfile,
	facility *model.FacilityParams,
	variant Variant,
) *model.ResultsRecord {
	rec := &model.ResultsRecord{
		HourlyData: make([]model.HourRecord, 0, model.HoursPerDay),
	}

	var (
		totalElecCost  float64
		totalWaterCost float64
		totalGallons   float64
		peakDemand     float64
	)

	for h := 0; h < model.HoursPerDay; h++ {
		batchLoad := sol.Value(p.MustLookup(fmt.Sprintf("batch_load[%d]", h)))
		totalLoad := sol.Value(p.MustLookup(fmt.Sprintf("total_load[%d]", h)))
		waterOn := roundBinary(sol.Value(p.MustLookup(fmt.Sprintf("use_water[%d]", h))))

		gallons, waterCost := hourlyWater(p, sol, facility, variant, h, waterOn)
		elecCost := totalLoad * profile.Prices[h] / 1000

		rec.HourlyData = append(rec.HourlyData, model.HourRecord{
			Hour:             h,
			BatchLoadMW:      batchLoad,
			WaterCooling:     waterOn,
			TotalLoadMW:      totalLoad,
			ElectricityPrice: profile.Prices[h],
			Temperature:      profile.Temperatures[h],
			ElectricityCost:  elecCost,
			WaterCost:        waterCost,
		})

		totalElecCost += elecCost
		totalWaterCost += waterCost
		totalGallons += gallons
		peakDemand = math.Max(peakDemand, totalLoad)
	}

	baseline := BaselineCost(profile, facility)
	totalCost := totalElecCost + totalWaterCost

	rec.Summary = model.Summary{
		TotalCost:       totalCost,
		ElectricityCost: totalElecCost,
		WaterCost:       totalWaterCost,
		PeakDemandMW:    peakDemand,
		BaselineCost:    baseline,
	}

	daily := baseline - totalCost
	rec.Savings = model.Savings{
		DailySavings:    daily,
		AnnualSavings:   daily * 365,
		PercentageSaved: daily / baseline * 100,
	}

	rec.Environmental = model.Environmental{
		WaterUsedGallons:  totalGallons,
		WaterSavedGallons: math.Max(0, BaselineWaterGallons(facility)-totalGallons),
		PeakReductionMW:   math.Max(0, facility.RequestedCapacityMW-peakDemand),
		CarbonAvoidedTons: daily * model.CarbonTonsPerDollarSaved,
	}

	return rec
}

// hourlyWater returns water gallons drawn and their cost for one hour. The
// two variants price water differently: the linear model uses a flat
// $/gallon, the advanced model the municipal $/1000 gal rate plus the hybrid
// mode's half draw.
func hourlyWater(
	p *program.Program,
	sol *solver.Solution,
	facility *model.FacilityParams,
	variant Variant,
	h int,
	waterOn int,
) (gallons, cost float64) {
	switch variant {
	case VariantAdvanced:
		hybridOn := 0.0
		if idx, ok := p.Lookup(fmt.Sprintf("use_hybrid[%d]", h)); ok {
			hybridOn = math.Round(sol.Value(idx))
		}
		gallons = float64(waterOn)*facility.WaterGalPerHour + hybridOn*hybridGalPerHour*facility.ScaleFactor
		cost = gallons * waterRatePer1000Gal / 1000
	default:
		gallons = float64(waterOn) * facility.WaterGalPerHour
		cost = gallons * model.WaterCostPerGallon
	}
	return gallons, cost
}

func roundBinary(v float64) int {
	if v >= 0.5 {
		return 1
	}
	return 0
}

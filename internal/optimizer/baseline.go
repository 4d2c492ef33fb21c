package optimizer

import "datacenter-optimizer/internal/model"

// BaselineCost is the counterfactual daily cost with no optimization: the
// flexible load spread evenly (flexible/3 MW every hour, which totals the
// same 8 full-capacity hours of work), chillers running all day, priced at
// the average of the supplied hourly prices. It scales with the facility so
// savings comparisons stay meaningful at any capacity.
func BaselineCost(profile *model.HourlyProfile, facility *model.FacilityParams) float64 {
	hourlyLoad := facility.CriticalLoadMW + facility.FlexibleLoadMW/3 + facility.ChillerEnergyMW
	return hourlyLoad * float64(model.HoursPerDay) * profile.AveragePrice() / 1000
}

// BaselineWaterGallons is the reference water draw used for the water-saved
// metric: the historical assumption of water cooling through the 12 hot hours.
func BaselineWaterGallons(facility *model.FacilityParams) float64 {
	return model.ReferenceWaterGalPerHour * 12 * float64(model.HoursPerDay) * facility.ScaleFactor
}

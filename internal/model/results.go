package model

// ResultsRecord is the output of a successful optimization run. The JSON
// field names are a published contract consumed by the REST layer and the
// dashboard; do not rename them.
type ResultsRecord struct {
	HourlyData    []HourRecord  `json:"hourly_data"`
	Summary       Summary       `json:"summary"`
	Savings       Savings       `json:"savings"`
	Environmental Environmental `json:"environmental"`
}

// HourRecord is the per-hour slice of the optimized schedule.
type HourRecord struct {
	Hour             int     `json:"hour"`
	BatchLoadMW      float64 `json:"batch_load_mw"`
	WaterCooling     int     `json:"water_cooling"` // 1 = water, 0 = chiller
	TotalLoadMW      float64 `json:"total_load_mw"`
	ElectricityPrice float64 `json:"electricity_price"`
	Temperature      float64 `json:"temperature"`
	ElectricityCost  float64 `json:"electricity_cost"`
	WaterCost        float64 `json:"water_cost"`
}

type Summary struct {
	TotalCost       float64 `json:"total_cost"`
	ElectricityCost float64 `json:"electricity_cost"`
	WaterCost       float64 `json:"water_cost"`
	PeakDemandMW    float64 `json:"peak_demand_mw"`
	BaselineCost    float64 `json:"baseline_cost"`
}

type Savings struct {
	DailySavings    float64 `json:"daily_savings"`
	AnnualSavings   float64 `json:"annual_savings"`
	PercentageSaved float64 `json:"percentage_saved"`
}

type Environmental struct {
	WaterUsedGallons  float64 `json:"water_used_gallons"`
	WaterSavedGallons float64 `json:"water_saved_gallons"`
	PeakReductionMW   float64 `json:"peak_reduction_mw"`
	CarbonAvoidedTons float64 `json:"carbon_avoided_tons"`
}

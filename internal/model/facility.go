package model

import "errors"

// Reference facility: a canonical 50 MW Phoenix data center. All absolute
// quantities below are defined at this size and multiplied by ScaleFactor for
// other capacities, which keeps the LP numerically well-conditioned from
// 50 MW up to 2000 MW. Rate parameters ($/MWh, $/gallon) are never scaled.
const (
	ReferenceCapacityMW       = 50.0
	ReferenceCriticalLoadMW   = 30.0
	ReferenceFlexibleLoadMW   = 20.0
	ReferenceCoolingMW        = 15.0
	ReferenceWaterCoolingMW   = 7.5   // electrical draw of water cooling
	ReferenceChillerMW        = 18.0  // electrical draw of air-cooled chillers
	ReferenceWaterGalPerHour  = 120.0 // gallons/hour while water cooling runs
	WaterCostPerGallon        = 0.004
	TempPenaltyPerDegree      = 0.1  // $/°F·h of chiller use above the threshold
	TempPenaltyThresholdF     = 95.0
	CapacityHeadroom          = 1.2    // short-term overdraw allowed over nameplate
	CarbonTonsPerDollarSaved  = 0.0004 // Arizona grid intensity proxy
	BatchCompletionHours      = 8.0    // flexible work sized to 8 full-capacity hours
	DemandChargePerKW         = 13.50  // APS demand charge, advanced variant only
)

// FacilityParams holds the per-run capacity configuration with all absolute
// quantities already scaled to the requested size. Immutable once built.
type FacilityParams struct {
	RequestedCapacityMW float64
	ScaleFactor         float64

	CriticalLoadMW    float64
	FlexibleLoadMW    float64
	CoolingCapacityMW float64

	WaterCoolingEnergyMW float64
	ChillerEnergyMW      float64
	WaterGalPerHour      float64
}

// NewFacilityParams scales the reference facility to the requested capacity.
func NewFacilityParams(capacityMW float64) (*FacilityParams, error) {
	if capacityMW <= 0 {
		return nil, errors.New("capacity_mw must be > 0")
	}
	scale := capacityMW / ReferenceCapacityMW
	return &FacilityParams{
		RequestedCapacityMW:  capacityMW,
		ScaleFactor:          scale,
		CriticalLoadMW:       ReferenceCriticalLoadMW * scale,
		FlexibleLoadMW:       ReferenceFlexibleLoadMW * scale,
		CoolingCapacityMW:    ReferenceCoolingMW * scale,
		WaterCoolingEnergyMW: ReferenceWaterCoolingMW * scale,
		ChillerEnergyMW:      ReferenceChillerMW * scale,
		WaterGalPerHour:      ReferenceWaterGalPerHour * scale,
	}, nil
}

// CapacityCeilingMW is the per-hour upper bound on total facility draw.
func (f *FacilityParams) CapacityCeilingMW() float64 {
	return f.RequestedCapacityMW * CapacityHeadroom
}

// BatchEnergyMWh is the daily flexible-work completion requirement.
func (f *FacilityParams) BatchEnergyMWh() float64 {
	return f.FlexibleLoadMW * BatchCompletionHours
}

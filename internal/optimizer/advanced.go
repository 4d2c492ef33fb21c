package optimizer

import (
	"fmt"

	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/program"
)

// Advanced-variant parameters, defined at the 50 MW reference size where they
// are absolute quantities. Rates stay unscaled.
const (
	waterCoolingPUE = 0.5
	chillerPUEBase  = 1.2
	hybridPUE       = 0.8

	waterRatePer1000Gal = 3.24 // Phoenix municipal rate, advanced variant
	hybridGalPerHour    = 60.0

	chillerStages   = 6
	stageCoolingMW  = 3.0
	heatFraction    = 0.3 // share of IT load that becomes heat
	rampLimitMW     = 5.0
	storageInitMWh  = 100.0
	storageCapMWh   = 1000.0
	storageChargeMW = 20.0 // thermal charge while water cooling runs
	storageDrawMW   = 15.0 // thermal draw in hybrid mode

	drIncentive = 50.0 // $ per activated demand-response hour

	peakStartHour = 15 // APS peak window 3-8 PM
	peakEndHour   = 20
)

// BuildAdvanced constructs the richer MILP variant: three cooling modes plus
// off, chiller staging, thermal storage, batch ramp limits, a tracked peak
// demand with demand charge, and optional demand-response activation driven
// by a grid-demand vector (nil disables it).
//
// The water-cooling capacity term uses the temperature-dependent efficiency
// curve; temperature is a parameter, so the term stays linear. The original
// mode×stage product is linearized by capping active stages at
// 6×use_chiller.
//
// This variant is illustrative: with ~10 binaries per hour it routinely
// exceeds what the pure-Go fallback can prove optimal in a real-time budget,
// and is meant for the cgo backends.
func BuildAdvanced(profile *model.HourlyProfile, facility *model.FacilityParams, gridDemand []float64) *program.Program {
	p := program.New()
	scale := facility.ScaleFactor

	batch := make([]int, model.HoursPerDay)
	water := make([]int, model.HoursPerDay)
	chiller := make([]int, model.HoursPerDay)
	hybrid := make([]int, model.HoursPerDay)
	stages := make([][]int, model.HoursPerDay)
	storage := make([]int, model.HoursPerDay)
	dr := make([]int, model.HoursPerDay)
	total := make([]int, model.HoursPerDay)

	for h := 0; h < model.HoursPerDay; h++ {
		batch[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("batch_load[%d]", h),
			Upper: facility.FlexibleLoadMW,
		})
		water[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("use_water[%d]", h),
			Type:  program.Binary,
			Upper: 1,
			Cost:  facility.WaterGalPerHour * waterRatePer1000Gal / 1000,
		})
		chiller[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("use_chiller[%d]", h),
			Type:  program.Binary,
			Upper: 1,
		})
		hybrid[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("use_hybrid[%d]", h),
			Type:  program.Binary,
			Upper: 1,
			Cost:  hybridGalPerHour * scale * waterRatePer1000Gal / 1000,
		})
		stages[h] = make([]int, chillerStages)
		for s := 0; s < chillerStages; s++ {
			stages[h][s] = p.AddVar(program.Variable{
				Name:  fmt.Sprintf("chiller_stage[%d][%d]", h, s),
				Type:  program.Binary,
				Upper: 1,
			})
		}
		storage[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("cold_storage[%d]", h),
			Upper: storageCapMWh * scale,
		})
		dr[h] = p.AddVar(program.Variable{
			Name: fmt.Sprintf("demand_response[%d]", h),
			Type: program.Binary,
			// Incentive payment offsets cost when activated.
			Upper: 1,
			Cost:  -drIncentive,
		})
		total[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("total_load[%d]", h),
			Upper: 100 * scale,
			Cost:  profile.Prices[h] / 1000,
		})
	}

	peak := p.AddVar(program.Variable{
		Name:  "peak_demand",
		Upper: facility.CapacityCeilingMW(),
		Cost:  model.DemandChargePerKW,
	})

	// Daily batch completion.
	completion := program.Constraint{
		Name: "batch_completion",
		Op:   program.GE,
		RHS:  facility.BatchEnergyMWh(),
	}
	for h := 0; h < model.HoursPerDay; h++ {
		completion.Terms = append(completion.Terms, program.Term{Var: batch[h], Coeff: 1})
	}
	p.AddConstraint(completion)

	for h := 0; h < model.HoursPerDay; h++ {
		// At most one cooling mode; all three off means free cooling.
		p.AddConstraint(program.Constraint{
			Name: fmt.Sprintf("cooling_mode[%d]", h),
			Terms: []program.Term{
				{Var: water[h], Coeff: 1},
				{Var: chiller[h], Coeff: 1},
				{Var: hybrid[h], Coeff: 1},
			},
			Op:  program.LE,
			RHS: 1,
		})

		// Stages only count while the chiller mode is selected.
		stageCap := program.Constraint{
			Name: fmt.Sprintf("stage_gate[%d]", h),
			Op:   program.LE,
			RHS:  0,
		}
		for s := 0; s < chillerStages; s++ {
			stageCap.Terms = append(stageCap.Terms, program.Term{Var: stages[h][s], Coeff: 1})
		}
		stageCap.Terms = append(stageCap.Terms, program.Term{Var: chiller[h], Coeff: -chillerStages})
		p.AddConstraint(stageCap)

		// Cooling provided must cover heat generated by the IT load.
		eff := model.WaterEfficiency(profile.Temperatures[h])
		cooling := program.Constraint{
			Name: fmt.Sprintf("cooling_requirement[%d]", h),
			Op:   program.GE,
			RHS:  heatFraction * facility.CriticalLoadMW,
			Terms: []program.Term{
				{Var: water[h], Coeff: facility.CoolingCapacityMW * eff},
				{Var: hybrid[h], Coeff: facility.CoolingCapacityMW * 0.9},
				{Var: batch[h], Coeff: -heatFraction},
			},
		}
		for s := 0; s < chillerStages; s++ {
			cooling.Terms = append(cooling.Terms, program.Term{Var: stages[h][s], Coeff: stageCoolingMW * scale})
		}
		p.AddConstraint(cooling)

		// Simplified minimum-runtime coupling between consecutive hours.
		if h < model.HoursPerDay-1 {
			p.AddConstraint(program.Constraint{
				Name: fmt.Sprintf("min_runtime[%d]", h),
				Terms: []program.Term{
					{Var: batch[h], Coeff: 1},
					{Var: batch[h+1], Coeff: -1},
				},
				Op:  program.LE,
				RHS: facility.FlexibleLoadMW,
			})
		}

		// Batch ramp limits.
		if h > 0 {
			p.AddConstraint(program.Constraint{
				Name: fmt.Sprintf("ramp_up[%d]", h),
				Terms: []program.Term{
					{Var: batch[h], Coeff: 1},
					{Var: batch[h-1], Coeff: -1},
				},
				Op:  program.LE,
				RHS: rampLimitMW * scale,
			})
			p.AddConstraint(program.Constraint{
				Name: fmt.Sprintf("ramp_down[%d]", h),
				Terms: []program.Term{
					{Var: batch[h-1], Coeff: 1},
					{Var: batch[h], Coeff: -1},
				},
				Op:  program.LE,
				RHS: rampLimitMW * scale,
			})
		}

		// total = critical + batch + per-mode cooling draw (PUE-weighted).
		p.AddConstraint(program.Constraint{
			Name: fmt.Sprintf("load_balance[%d]", h),
			Terms: []program.Term{
				{Var: total[h], Coeff: 1},
				{Var: batch[h], Coeff: -1},
				{Var: chiller[h], Coeff: -facility.CoolingCapacityMW * chillerPUEBase},
				{Var: water[h], Coeff: -facility.CoolingCapacityMW * waterCoolingPUE},
				{Var: hybrid[h], Coeff: -facility.CoolingCapacityMW * hybridPUE},
			},
			Op:  program.EQ,
			RHS: facility.CriticalLoadMW,
		})

		// Peak tracking for the demand charge.
		p.AddConstraint(program.Constraint{
			Name: fmt.Sprintf("peak_tracking[%d]", h),
			Terms: []program.Term{
				{Var: total[h], Coeff: 1},
				{Var: peak, Coeff: -1},
			},
			Op:  program.LE,
			RHS: 0,
		})

		p.AddConstraint(program.Constraint{
			Name:  fmt.Sprintf("capacity_limit[%d]", h),
			Terms: []program.Term{{Var: total[h], Coeff: 1}},
			Op:    program.LE,
			RHS:   facility.CapacityCeilingMW(),
		})

		// Thermal storage balance: charge while water cooling, draw in hybrid.
		if h == 0 {
			p.AddConstraint(program.Constraint{
				Name:  "storage_init",
				Terms: []program.Term{{Var: storage[0], Coeff: 1}},
				Op:    program.EQ,
				RHS:   storageInitMWh * scale,
			})
		} else {
			p.AddConstraint(program.Constraint{
				Name: fmt.Sprintf("storage_balance[%d]", h),
				Terms: []program.Term{
					{Var: storage[h], Coeff: 1},
					{Var: storage[h-1], Coeff: -1},
					{Var: water[h], Coeff: -storageChargeMW * scale},
					{Var: hybrid[h], Coeff: storageDrawMW * scale},
				},
				Op:  program.EQ,
				RHS: 0,
			})
		}

		// Demand response is forced on during peak hours of grid stress and
		// off otherwise; without grid data it stays off.
		p.AddConstraint(program.Constraint{
			Name:  fmt.Sprintf("dr_activation[%d]", h),
			Terms: []program.Term{{Var: dr[h], Coeff: 1}},
			Op:    program.EQ,
			RHS:   drActivation(h, gridDemand),
		})
	}

	return p
}

func drActivation(h int, gridDemand []float64) float64 {
	if len(gridDemand) != model.HoursPerDay {
		return 0
	}
	if h < peakStartHour || h >= peakEndHour {
		return 0
	}
	peak := gridDemand[0]
	for _, d := range gridDemand[1:] {
		if d > peak {
			peak = d
		}
	}
	if gridDemand[h] > 0.9*peak {
		return 1
	}
	return 0
}

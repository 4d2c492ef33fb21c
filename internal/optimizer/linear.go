package optimizer

import (
	"fmt"

	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/program"
)

// BuildLinear constructs the production MILP for one operating day. This is
// the variant meant for real-time use: every term is linear, the only
// integrality is the per-hour water/chiller selector, and it solves reliably
// with any of the registered backends.
//
// Per hour h:
//   - batch_load[h]  continuous in [0, flexible]: shiftable compute scheduled
//   - use_water[h]   binary: 1 = water cooling, 0 = chiller (the complement
//     1-use_water covers the chiller; with two modes no explicit
//     mutual-exclusion row is needed)
//   - total_load[h]  continuous in [0, 100×scale]: derived facility draw
//
// Constraints: daily batch completion, per-hour load balance, and a 20%
// headroom capacity ceiling. The objective is electricity cost + water cost +
// a soft penalty on chiller use above 95°F, which discourages hot-hour
// chiller operation without a hard (and potentially infeasible) constraint.
func BuildLinear(profile *model.HourlyProfile, facility *model.FacilityParams) *program.Program {
	p := program.New()

	batch := make([]int, model.HoursPerDay)
	water := make([]int, model.HoursPerDay)
	total := make([]int, model.HoursPerDay)

	for h := 0; h < model.HoursPerDay; h++ {
		price := profile.Prices[h]
		penalty := chillerPenalty(profile.Temperatures[h])

		batch[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("batch_load[%d]", h),
			Type:  program.Continuous,
			Lower: 0,
			Upper: facility.FlexibleLoadMW,
		})
		// Water cost is paid when the mode is on; the chiller penalty is a
		// constant minus the same binary, so it lands in the offset and a
		// negative coefficient here.
		water[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("use_water[%d]", h),
			Type:  program.Binary,
			Lower: 0,
			Upper: 1,
			Cost:  facility.WaterGalPerHour*model.WaterCostPerGallon - penalty,
		})
		p.Offset += penalty

		// The generous ceiling keeps the program feasible; the nameplate
		// capacity limit is a separate constraint below.
		total[h] = p.AddVar(program.Variable{
			Name:  fmt.Sprintf("total_load[%d]", h),
			Type:  program.Continuous,
			Lower: 0,
			Upper: 100 * facility.ScaleFactor,
			Cost:  price / 1000, // MW × $/MWh → $
		})
	}

	// All flexible work completes within the day.
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
		// total = critical + batch + w·water_draw + (1-w)·chiller_draw
		p.AddConstraint(program.Constraint{
			Name: fmt.Sprintf("load_balance[%d]", h),
			Terms: []program.Term{
				{Var: total[h], Coeff: 1},
				{Var: batch[h], Coeff: -1},
				{Var: water[h], Coeff: -(facility.WaterCoolingEnergyMW - facility.ChillerEnergyMW)},
			},
			Op:  program.EQ,
			RHS: facility.CriticalLoadMW + facility.ChillerEnergyMW,
		})

		p.AddConstraint(program.Constraint{
			Name:  fmt.Sprintf("capacity_limit[%d]", h),
			Terms: []program.Term{{Var: total[h], Coeff: 1}},
			Op:    program.LE,
			RHS:   facility.CapacityCeilingMW(),
		})
	}

	return p
}

// chillerPenalty is the soft objective cost of running chillers at high
// ambient temperature: $0.1 per °F above 95°F, per hour.
func chillerPenalty(tempF float64) float64 {
	if tempF <= model.TempPenaltyThresholdF {
		return 0
	}
	return (tempF - model.TempPenaltyThresholdF) * model.TempPenaltyPerDegree
}

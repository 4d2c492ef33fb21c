// Package optimizer builds the daily operating MILP for an Arizona data
// center and turns solver output into the published results record. Model
// construction and extraction are pure functions over their inputs: each run
// owns its program, so independent runs can proceed in parallel without
// locking.
package optimizer

import (
	"fmt"
	"time"

	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/program"
	"datacenter-optimizer/internal/solver"
)

// Variant selects the model formulation.
type Variant string

const (
	// VariantLinear is the production formulation (default).
	VariantLinear Variant = "linear"
	// VariantAdvanced is the richer illustrative formulation.
	VariantAdvanced Variant = "advanced"
)

// Options configures one optimization run.
type Options struct {
	Variant   Variant
	Solver    string // preferred backend name; empty keeps the default order
	TimeLimit time.Duration

	// GridDemand optionally enables demand-response activation in the
	// advanced variant; must be 24 values when set.
	GridDemand []float64
}

// Run executes one full optimization pass: build the program for the selected
// variant, solve it through the backend chain, and extract results. It either
// returns a complete record or a typed error; no partial output.
func Run(profile *model.HourlyProfile, facility *model.FacilityParams, opts Options) (*model.ResultsRecord, error) {
	variant := opts.Variant
	if variant == "" {
		variant = VariantLinear
	}

	var prog *program.Program
	switch variant {
	case VariantLinear:
		prog = BuildLinear(profile, facility)
	case VariantAdvanced:
		prog = BuildAdvanced(profile, facility, opts.GridDemand)
	default:
		return nil, fmt.Errorf("unknown model variant %q", variant)
	}

	sol, err := solver.Solve(prog, opts.Solver, opts.TimeLimit)
	if err != nil {
		return nil, err
	}

	return extractResults(prog, sol, profile, facility, variant), nil
}

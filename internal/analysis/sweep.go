// Package analysis runs the optimizer across candidate facility sizes and
// ranks the outcomes, for sizing studies and dashboard comparisons.
package analysis

import (
	"fmt"
	"sort"

	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/optimizer"
)

// CapacityOutcome pairs one facility size with its optimized results.
type CapacityOutcome struct {
	CapacityMW float64
	Results    *model.ResultsRecord
}

// SweepCapacities optimizes the same day at each requested capacity. Runs
// are independent (each owns its program), so a failure at one size aborts
// the sweep with context rather than returning a partial table.
func SweepCapacities(profile *model.HourlyProfile, capacities []float64, opts optimizer.Options) ([]CapacityOutcome, error) {
	out := make([]CapacityOutcome, 0, len(capacities))
	for _, capacityMW := range capacities {
		facility, err := model.NewFacilityParams(capacityMW)
		if err != nil {
			return nil, fmt.Errorf("capacity %.0f MW: %w", capacityMW, err)
		}
		rec, err := optimizer.Run(profile, facility, opts)
		if err != nil {
			return nil, fmt.Errorf("capacity %.0f MW: %w", capacityMW, err)
		}
		out = append(out, CapacityOutcome{CapacityMW: capacityMW, Results: rec})
	}
	return out, nil
}

// RankByAnnualSavings sorts outcomes descending by annual savings.
func RankByAnnualSavings(outcomes []CapacityOutcome) []CapacityOutcome {
	ranked := make([]CapacityOutcome, len(outcomes))
	copy(ranked, outcomes)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Results.Savings.AnnualSavings > ranked[j].Results.Savings.AnnualSavings
	})
	return ranked
}

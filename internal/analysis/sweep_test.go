package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"datacenter-optimizer/internal/data"
	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/optimizer"
)

func deterministicProfile(t *testing.T) *model.HourlyProfile {
	t.Helper()
	p, err := model.NewHourlyProfile(data.PhoenixTemperatures(nil), data.TOUPrices(nil))
	require.NoError(t, err)
	return p
}

func TestSweepCapacities(t *testing.T) {
	profile := deterministicProfile(t)

	outcomes, err := SweepCapacities(profile, []float64{50, 100}, optimizer.Options{})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	require.Equal(t, 50.0, outcomes[0].CapacityMW)
	require.Equal(t, 100.0, outcomes[1].CapacityMW)
	for _, o := range outcomes {
		require.Len(t, o.Results.HourlyData, model.HoursPerDay)
	}

	// Savings grow with facility size.
	require.Greater(t,
		outcomes[1].Results.Savings.AnnualSavings,
		outcomes[0].Results.Savings.AnnualSavings)
}

func TestSweepCapacitiesRejectsBadSize(t *testing.T) {
	profile := deterministicProfile(t)

	_, err := SweepCapacities(profile, []float64{50, -10}, optimizer.Options{})
	require.ErrorContains(t, err, "capacity -10 MW")
}

func TestRankByAnnualSavings(t *testing.T) {
	outcomes := []CapacityOutcome{
		{CapacityMW: 50, Results: &model.ResultsRecord{Savings: model.Savings{AnnualSavings: 10}}},
		{CapacityMW: 500, Results: &model.ResultsRecord{Savings: model.Savings{AnnualSavings: 100}}},
		{CapacityMW: 100, Results: &model.ResultsRecord{Savings: model.Savings{AnnualSavings: 20}}},
	}

	ranked := RankByAnnualSavings(outcomes)
	require.Equal(t, []float64{500, 100, 50},
		[]float64{ranked[0].CapacityMW, ranked[1].CapacityMW, ranked[2].CapacityMW})

	// Input order is untouched.
	require.Equal(t, 50.0, outcomes[0].CapacityMW)
}

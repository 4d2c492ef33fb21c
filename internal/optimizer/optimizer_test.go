package optimizer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"datacenter-optimizer/internal/data"
	"datacenter-optimizer/internal/model"
)

func demoProfile(t *testing.T, seed int64) *model.HourlyProfile {
	t.Helper()
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return mustProfile(t, data.PhoenixTemperatures(rng), data.TOUPrices(rng))
}

func TestRunCompletesBatchWork(t *testing.T) {
	profile := demoProfile(t, 1)
	facility := mustFacility(t, 50)

	rec, err := Run(profile, facility, Options{})
	require.NoError(t, err)

	var sum float64
	for _, h := range rec.HourlyData {
		require.GreaterOrEqual(t, h.BatchLoadMW, -1e-6)
		require.LessOrEqual(t, h.BatchLoadMW, facility.FlexibleLoadMW+1e-6)
		sum += h.BatchLoadMW
	}
	require.GreaterOrEqual(t, sum, facility.BatchEnergyMWh()-1e-4)
}

func TestRunRespectsCapacityCeiling(t *testing.T) {
	profile := demoProfile(t, 1)
	for _, capacityMW := range []float64{50, 500, 2000} {
		facility := mustFacility(t, capacityMW)
		rec, err := Run(profile, facility, Options{})
		require.NoError(t, err)

		ceiling := facility.CapacityCeilingMW()
		for _, h := range rec.HourlyData {
			require.LessOrEqualf(t, h.TotalLoadMW, ceiling+1e-4,
				"capacity %v MW, hour %d", capacityMW, h.Hour)
		}
		require.LessOrEqual(t, rec.Summary.PeakDemandMW, ceiling+1e-4)
	}
}

func TestRunScalesLinearly(t *testing.T) {
	// With every temperature at or below the penalty threshold the objective
	// has no unscaled term, so a 40x facility costs exactly 40x as much.
	profile := mustProfile(t, flat(85), data.TOUPrices(nil))

	small, err := Run(profile, mustFacility(t, 50), Options{})
	require.NoError(t, err)
	large, err := Run(profile, mustFacility(t, 2000), Options{})
	require.NoError(t, err)

	require.InEpsilon(t, 40*small.Summary.TotalCost, large.Summary.TotalCost, 1e-6)
	require.InEpsilon(t, 40*small.Summary.BaselineCost, large.Summary.BaselineCost, 1e-9)
	require.InDelta(t, 40*small.Environmental.WaterUsedGallons, large.Environmental.WaterUsedGallons, 1e-3)
}

func TestRunBalancesLoadAtScale(t *testing.T) {
	// The reported totals must satisfy the hourly load balance exactly, not
	// just to within a tolerance that grows with facility size.
	profile := mustProfile(t, flat(85), data.TOUPrices(nil))
	for _, capacityMW := range []float64{50, 2000} {
		facility := mustFacility(t, capacityMW)
		rec, err := Run(profile, facility, Options{})
		require.NoError(t, err)

		for _, h := range rec.HourlyData {
			draw := facility.ChillerEnergyMW
			if h.WaterCooling == 1 {
				draw = facility.WaterCoolingEnergyMW
			}
			want := facility.CriticalLoadMW + h.BatchLoadMW + draw
			require.InDeltaf(t, want, h.TotalLoadMW, 1e-6*facility.ScaleFactor,
				"capacity %v MW, hour %d", capacityMW, h.Hour)
		}
	}
}

func TestRunSavesAgainstBaseline(t *testing.T) {
	profile := demoProfile(t, 0)
	facility := mustFacility(t, 50)

	rec, err := Run(profile, facility, Options{})
	require.NoError(t, err)

	s := rec.Summary
	require.InDelta(t, s.ElectricityCost+s.WaterCost, s.TotalCost, 1e-9)
	require.GreaterOrEqual(t, s.BaselineCost, s.TotalCost)

	sv := rec.Savings
	require.InDelta(t, s.BaselineCost-s.TotalCost, sv.DailySavings, 1e-9)
	require.InDelta(t, sv.DailySavings*365, sv.AnnualSavings, 1e-6)
	require.InDelta(t, sv.DailySavings/s.BaselineCost*100, sv.PercentageSaved, 1e-9)

	env := rec.Environmental
	require.GreaterOrEqual(t, env.WaterUsedGallons, 0.0)
	require.GreaterOrEqual(t, env.WaterSavedGallons, 0.0)
	require.InDelta(t, sv.DailySavings*model.CarbonTonsPerDollarSaved, env.CarbonAvoidedTons, 1e-9)
}

func TestRunIsDeterministic(t *testing.T) {
	profile := demoProfile(t, 7)
	facility := mustFacility(t, 50)

	first, err := Run(profile, facility, Options{})
	require.NoError(t, err)
	second, err := Run(profile, facility, Options{})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRunShiftsLoadOffPeak(t *testing.T) {
	// Deterministic TOU bands: peak is 15:00-19:59 at $150/MWh against hot
	// afternoon temperatures. The optimizer must push batch work off peak and
	// use water cooling through the peak window.
	profile := mustProfile(t, data.PhoenixTemperatures(nil), data.TOUPrices(nil))
	facility := mustFacility(t, 50)

	rec, err := Run(profile, facility, Options{})
	require.NoError(t, err)

	for h := 15; h < 20; h++ {
		hour := rec.HourlyData[h]
		require.Equalf(t, 1, hour.WaterCooling, "hour %d should water cool", h)
		require.InDeltaf(t, 0, hour.BatchLoadMW, 1e-6, "hour %d should carry no batch load", h)
	}
}

func TestRunHourRecordsMirrorInputs(t *testing.T) {
	profile := demoProfile(t, 3)
	facility := mustFacility(t, 50)

	rec, err := Run(profile, facility, Options{})
	require.NoError(t, err)
	require.Len(t, rec.HourlyData, model.HoursPerDay)

	for h, hour := range rec.HourlyData {
		require.Equal(t, h, hour.Hour)
		require.Equal(t, profile.Prices[h], hour.ElectricityPrice)
		require.Equal(t, profile.Temperatures[h], hour.Temperature)
		require.InDelta(t, hour.TotalLoadMW*profile.Prices[h]/1000, hour.ElectricityCost, 1e-9)
		if hour.WaterCooling == 1 {
			require.InDelta(t, facility.WaterGalPerHour*model.WaterCostPerGallon, hour.WaterCost, 1e-9)
		} else {
			require.Equal(t, 0.0, hour.WaterCost)
		}
	}
}

func TestRunRejectsUnknownVariant(t *testing.T) {
	profile := demoProfile(t, 1)
	facility := mustFacility(t, 50)

	_, err := Run(profile, facility, Options{Variant: "quadratic"})
	require.ErrorContains(t, err, "unknown model variant")
}

func TestBaselineCost(t *testing.T) {
	profile := mustProfile(t, flat(95), flat(100))
	facility := mustFacility(t, 50)

	// (30 + 20/3 + 18) MW for 24 h at $100/MWh.
	want := (30 + 20.0/3 + 18) * 24 * 100 / 1000
	require.InDelta(t, want, BaselineCost(profile, facility), 1e-9)

	// Scales with capacity.
	require.InDelta(t, want*10, BaselineCost(profile, mustFacility(t, 500)), 1e-9)
}

func TestBaselineWaterGallons(t *testing.T) {
	require.InDelta(t, 120.0*12*24, BaselineWaterGallons(mustFacility(t, 50)), 1e-9)
	require.InDelta(t, 120.0*12*24*40, BaselineWaterGallons(mustFacility(t, 2000)), 1e-9)
}

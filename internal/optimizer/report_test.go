package optimizer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"datacenter-optimizer/internal/model"
)

func sampleRecord() *model.ResultsRecord {
	rec := &model.ResultsRecord{
		Summary: model.Summary{
			TotalCost:       100.5,
			ElectricityCost: 95.25,
			WaterCost:       5.25,
			PeakDemandMW:    57.5,
			BaselineCost:    131.2,
		},
		Savings: model.Savings{
			DailySavings:    30.7,
			AnnualSavings:   11205.5,
			PercentageSaved: 23.4,
		},
		Environmental: model.Environmental{
			WaterUsedGallons:  960,
			WaterSavedGallons: 33600,
			PeakReductionMW:   0,
			CarbonAvoidedTons: 0.01,
		},
	}
	for h := 0; h < model.HoursPerDay; h++ {
		water := 0
		if h >= 15 && h < 20 {
			water = 1
		}
		rec.HourlyData = append(rec.HourlyData, model.HourRecord{
			Hour:         h,
			BatchLoadMW:  10,
			WaterCooling: water,
			TotalLoadMW:  55,
		})
	}
	return rec
}

func TestReport(t *testing.T) {
	facility := mustFacility(t, 50)
	out := Report(sampleRecord(), facility)

	require.Contains(t, out, "DATA CENTER OPTIMIZATION RESULTS (50 MW)")
	require.Contains(t, out, "Total daily cost:  $100.50")
	require.Contains(t, out, "Daily savings:     $30.70")
	require.Contains(t, out, "Water used:        960 gallons")
	require.Contains(t, out, "Water-cooled hours: 5 of 24")
}

func TestWriteScheduleCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, WriteScheduleCSV(path, sampleRecord()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+model.HoursPerDay)

	require.Equal(t, "hour,batch_load_mw,water_cooling,total_load_mw,electricity_price,temperature,electricity_cost,water_cost",
		strings.Join(rows[0], ","))
	require.Equal(t, "15", rows[16][0])
	require.Equal(t, "1", rows[16][2])
	require.Equal(t, "10.000000", rows[16][1])
}

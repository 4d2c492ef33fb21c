package optimizer

import (
	"encoding/csv"
	"os"
	"strconv"

	"datacenter-optimizer/internal/model"
)

// WriteScheduleCSV writes the hour-by-hour schedule to a CSV file, one row
// per hour, column names matching the JSON field names.
func WriteScheduleCSV(path string, rec *model.ResultsRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"batch_load_mw",
		"water_cooling",
		"total_load_mw",
		"electricity_price",
		"temperature",
		"electricity_cost",
		"water_cost",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rec.HourlyData {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.BatchLoadMW),
			strconv.Itoa(r.WaterCooling),
			fmtFloat(r.TotalLoadMW),
			fmtFloat(r.ElectricityPrice),
			fmtFloat(r.Temperature),
			fmtFloat(r.ElectricityCost),
			fmtFloat(r.WaterCost),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

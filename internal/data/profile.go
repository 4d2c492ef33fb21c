package data

import (
	"encoding/json"
	"os"

	"datacenter-optimizer/internal/model"
)

// ProfileFile is the on-disk JSON shape for a day of input data.
type ProfileFile struct {
	Temperatures []float64 `json:"temperatures"`
	Prices       []float64 `json:"prices"`
	GridDemand   []float64 `json:"grid_demand,omitempty"`
}

// LoadProfileJSON reads and validates a profile file. Validation is strict:
// both series must be exactly 24 values and prices non-negative.
func LoadProfileJSON(path string) (*model.HourlyProfile, []float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f ProfileFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, err
	}
	profile, err := model.NewHourlyProfile(f.Temperatures, f.Prices)
	if err != nil {
		return nil, nil, err
	}
	return profile, f.GridDemand, nil
}

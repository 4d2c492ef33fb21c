package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"datacenter-optimizer/internal/optimizer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "solver:\n  preference: simplex\n")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50.0, c.Facility.CapacityMW)
	require.Equal(t, "linear", c.Model.Variant)
	require.Equal(t, "simplex", c.Solver.Preference)
}

func TestLoadMergesFacilityFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "facility.yaml", "facility:\n  name: phoenix-2\n  capacity_mw: 500\n")
	path := writeFile(t, dir, "config.yaml", "facility_file: facility.yaml\nmodel:\n  variant: advanced\n")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "phoenix-2", c.Facility.Name)
	require.Equal(t, 500.0, c.Facility.CapacityMW)
	require.Equal(t, "advanced", c.Model.Variant)
}

func TestLoadInlineFacilityOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "facility.yaml", "facility:\n  name: phoenix-2\n  capacity_mw: 500\n")
	path := writeFile(t, dir, "config.yaml",
		"facility_file: facility.yaml\nfacility:\n  capacity_mw: 2000\n")

	c, err := Load(path)
	require.NoError(t, err)
	// Name merges from the file, capacity from the inline override.
	require.Equal(t, "phoenix-2", c.Facility.Name)
	require.Equal(t, 2000.0, c.Facility.CapacityMW)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative capacity", "facility:\n  capacity_mw: -5\n"},
		{"unknown variant", "model:\n  variant: quadratic\n"},
		{"negative time limit", "solver:\n  time_limit_seconds: -1\n"},
		{"malformed yaml", "facility: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestToOptions(t *testing.T) {
	c := &Config{
		Solver: SolverConfig{Preference: "glpk", TimeLimitSeconds: 60},
		Model:  ModelConfig{Variant: "advanced"},
	}
	opts := c.ToOptions()
	require.Equal(t, optimizer.VariantAdvanced, opts.Variant)
	require.Equal(t, "glpk", opts.Solver)
	require.Equal(t, time.Minute, opts.TimeLimit)
}

func TestMergeFacility(t *testing.T) {
	base := FacilityConfig{Name: "base", CapacityMW: 50}
	require.Equal(t, base, MergeFacility(base, FacilityConfig{}))

	merged := MergeFacility(base, FacilityConfig{CapacityMW: 500})
	require.Equal(t, "base", merged.Name)
	require.Equal(t, 500.0, merged.CapacityMW)
}

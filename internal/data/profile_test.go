package data

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"datacenter-optimizer/internal/model"
)

func writeProfile(t *testing.T, f ProfileFile) string {
	t.Helper()
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func series(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestLoadProfileJSON(t *testing.T) {
	path := writeProfile(t, ProfileFile{
		Temperatures: series(24, 98),
		Prices:       series(24, 65),
		GridDemand:   series(24, 12000),
	})

	profile, grid, err := LoadProfileJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(profile.Temperatures) != 24 || profile.Temperatures[0] != 98 {
		t.Fatalf("temperatures not loaded: %v", profile.Temperatures[:1])
	}
	if len(grid) != 24 || grid[0] != 12000 {
		t.Fatalf("grid demand not loaded: %v", grid[:1])
	}
}

func TestLoadProfileJSONOptionalGridDemand(t *testing.T) {
	path := writeProfile(t, ProfileFile{
		Temperatures: series(24, 98),
		Prices:       series(24, 65),
	})
	_, grid, err := LoadProfileJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if grid != nil {
		t.Fatalf("grid demand should be nil, got %v", grid)
	}
}

func TestLoadProfileJSONValidates(t *testing.T) {
	path := writeProfile(t, ProfileFile{
		Temperatures: series(23, 98),
		Prices:       series(24, 65),
	})
	_, _, err := LoadProfileJSON(path)
	var inputErr *model.InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *model.InvalidInputError, got %v", err)
	}
}

func TestLoadProfileJSONBadFile(t *testing.T) {
	if _, _, err := LoadProfileJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadProfileJSON(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

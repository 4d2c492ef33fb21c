package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/optimizer"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load facility parameters from a separate YAML (e.g.
	// examples/facilities/*.yaml). If both FacilityFile and Facility are
	// provided, Facility overrides FacilityFile.
	FacilityFile string         `yaml:"facility_file"`
	Facility     FacilityConfig `yaml:"facility"`
	Solver       SolverConfig   `yaml:"solver"`
	Model        ModelConfig    `yaml:"model"`
}

type FacilityConfig struct {
	Name       string  `yaml:"name"`
	CapacityMW float64 `yaml:"capacity_mw"`
}

type SolverConfig struct {
	Preference       string `yaml:"preference"`
	TimeLimitSeconds int    `yaml:"time_limit_seconds"`
}

type ModelConfig struct {
	Variant string `yaml:"variant"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default to the reference facility and the production variant so configs
	// can stay concise.
	if c.Facility.CapacityMW == 0 {
		c.Facility.CapacityMW = model.ReferenceCapacityMW
	}
	if c.Model.Variant == "" {
		c.Model.Variant = string(optimizer.VariantLinear)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.FacilityFile != "" {
		facilityPath := c.FacilityFile
		if !filepath.IsAbs(facilityPath) {
			// Prefer paths relative to the config file, falling back to the
			// working directory.
			cand := filepath.Join(filepath.Dir(path), facilityPath)
			if _, err := os.Stat(cand); err == nil {
				facilityPath = cand
			}
		}
		loaded, err := loadFacilityFile(facilityPath)
		if err != nil {
			return nil, err
		}
		c.Facility = MergeFacility(loaded, c.Facility)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := model.NewFacilityParams(c.Facility.CapacityMW); err != nil {
		return fmt.Errorf("facility config invalid: %w", err)
	}
	switch optimizer.Variant(c.Model.Variant) {
	case optimizer.VariantLinear, optimizer.VariantAdvanced:
	default:
		return fmt.Errorf("model.variant must be %q or %q, got %q",
			optimizer.VariantLinear, optimizer.VariantAdvanced, c.Model.Variant)
	}
	if c.Solver.TimeLimitSeconds < 0 {
		return errors.New("solver.time_limit_seconds must be >= 0")
	}
	return nil
}

// ToOptions converts the config into per-run optimizer options.
func (c *Config) ToOptions() optimizer.Options {
	return optimizer.Options{
		Variant:   optimizer.Variant(c.Model.Variant),
		Solver:    c.Solver.Preference,
		TimeLimit: time.Duration(c.Solver.TimeLimitSeconds) * time.Second,
	}
}

type facilityFileWrapper struct {
	Facility FacilityConfig `yaml:"facility"`
}

func loadFacilityFile(path string) (FacilityConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FacilityConfig{}, err
	}
	var w facilityFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return FacilityConfig{}, err
	}
	return w.Facility, nil
}

// MergeFacility overlays non-zero fields from override onto base.
func MergeFacility(base, override FacilityConfig) FacilityConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityMW != 0 {
		out.CapacityMW = override.CapacityMW
	}
	return out
}

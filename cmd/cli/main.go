package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"datacenter-optimizer/internal/analysis"
	"datacenter-optimizer/internal/config"
	"datacenter-optimizer/internal/data"
	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/optimizer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --data profile.json --config examples/config.yaml --out results/schedule.csv")
	fmt.Println("  cli optimize --demo --capacity 2000")
	fmt.Println("  cli sweep --demo --capacities 50,500,2000")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - profile.json holds 24 hourly temperatures (°F) and prices ($/MWh)")
	fmt.Println("  - --demo generates a synthetic Phoenix summer day instead")
	fmt.Println("  - sweep runs the same day at several capacities and ranks savings")
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to hourly profile JSON")
	demo := fs.Bool("demo", false, "Use synthetic Phoenix demo data")
	seed := fs.Int64("seed", 0, "Demo data seed (0 = no jitter)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	capacity := fs.Float64("capacity", 0, "Facility capacity in MW (overrides config)")
	solverName := fs.String("solver", "", "Preferred solver backend (overrides config)")
	variant := fs.String("variant", "", "Model variant: linear or advanced (overrides config)")
	outPath := fs.String("out", "", "Optional path to write schedule CSV")
	asJSON := fs.Bool("json", false, "Print the full results record as JSON")
	_ = fs.Parse(args)

	profile, gridDemand := loadProfile(*dataPath, *demo, *seed)

	opts := optimizer.Options{GridDemand: gridDemand}
	capacityMW := model.ReferenceCapacityMW
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		opts = cfg.ToOptions()
		opts.GridDemand = gridDemand
		capacityMW = cfg.Facility.CapacityMW
	}
	if *capacity != 0 {
		capacityMW = *capacity
	}
	if *solverName != "" {
		opts.Solver = *solverName
	}
	if *variant != "" {
		opts.Variant = optimizer.Variant(*variant)
	}

	facility, err := model.NewFacilityParams(capacityMW)
	if err != nil {
		fatal(err)
	}

	start := time.Now()
	rec, err := optimizer.Run(profile, facility, opts)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("solved in %s\n\n", time.Since(start).Round(time.Millisecond))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			fatal(err)
		}
	} else {
		fmt.Println(optimizer.Report(rec, facility))
	}

	if *outPath != "" {
		if err := optimizer.WriteScheduleCSV(*outPath, rec); err != nil {
			fatal(err)
		}
		fmt.Printf("schedule written to %s\n", *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to hourly profile JSON")
	demo := fs.Bool("demo", false, "Use synthetic Phoenix demo data")
	seed := fs.Int64("seed", 0, "Demo data seed (0 = no jitter)")
	capacities := fs.String("capacities", "50,500,2000", "Comma-separated capacities in MW")
	solverName := fs.String("solver", "", "Preferred solver backend")
	_ = fs.Parse(args)

	profile, _ := loadProfile(*dataPath, *demo, *seed)

	caps, err := parseCapacities(*capacities)
	if err != nil {
		fatal(err)
	}

	outcomes, err := analysis.SweepCapacities(profile, caps, optimizer.Options{Solver: *solverName})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%-12s %-14s %-14s %-14s %-10s\n",
		"capacity_mw", "total_cost", "baseline_cost", "annual_savings", "saved_pct")
	for _, o := range analysis.RankByAnnualSavings(outcomes) {
		fmt.Printf("%-12.0f $%-13.2f $%-13.2f $%-13.0f %.1f%%\n",
			o.CapacityMW,
			o.Results.Summary.TotalCost,
			o.Results.Summary.BaselineCost,
			o.Results.Savings.AnnualSavings,
			o.Results.Savings.PercentageSaved)
	}
}

func loadProfile(dataPath string, demo bool, seed int64) (*model.HourlyProfile, []float64) {
	if demo {
		var rng *rand.Rand
		if seed != 0 {
			rng = rand.New(rand.NewSource(seed))
		}
		profile, err := model.NewHourlyProfile(data.PhoenixTemperatures(rng), data.TOUPrices(rng))
		if err != nil {
			fatal(err)
		}
		return profile, nil
	}
	if dataPath == "" {
		fmt.Println("--data or --demo is required")
		os.Exit(2)
	}
	profile, gridDemand, err := data.LoadProfileJSON(dataPath)
	if err != nil {
		fatal(err)
	}
	return profile, gridDemand
}

func parseCapacities(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid capacity %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

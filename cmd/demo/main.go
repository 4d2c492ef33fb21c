package main

import (
	"flag"
	"fmt"
	"math/rand"

	"datacenter-optimizer/internal/data"
	"datacenter-optimizer/internal/model"
	"datacenter-optimizer/internal/optimizer"
)

// Demo:
// - Generate a synthetic Phoenix summer day (temperatures + TOU prices)
// - Build and solve the production linear model at the requested capacity
// - Print the text report and the hour-by-hour schedule
func main() {
	capacity := flag.Float64("capacity", model.ReferenceCapacityMW, "Facility capacity in MW")
	seed := flag.Int64("seed", 1, "Demo data seed")
	outCSV := flag.String("out", "", "Optional path to write schedule CSV")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	profile, err := model.NewHourlyProfile(data.PhoenixTemperatures(rng), data.TOUPrices(rng))
	if err != nil {
		panic(err)
	}

	facility, err := model.NewFacilityParams(*capacity)
	if err != nil {
		panic(err)
	}

	rec, err := optimizer.Run(profile, facility, optimizer.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(optimizer.Report(rec, facility))

	fmt.Println("hour  batch_mw  cooling  total_mw  price   temp")
	for _, h := range rec.HourlyData {
		cooling := "chiller"
		if h.WaterCooling == 1 {
			cooling = "water"
		}
		fmt.Printf("%4d  %8.1f  %-7s  %8.1f  %6.1f  %5.0f\n",
			h.Hour, h.BatchLoadMW, cooling, h.TotalLoadMW, h.ElectricityPrice, h.Temperature)
	}

	if *outCSV != "" {
		if err := optimizer.WriteScheduleCSV(*outCSV, rec); err != nil {
			panic(err)
		}
		fmt.Printf("\nschedule written to %s\n", *outCSV)
	}
}

// Package data loads hourly profiles from disk and synthesizes realistic
// Phoenix demo profiles. Live EIA/NOAA ingestion lives outside this service;
// callers hand the optimizer ready-made 24-hour vectors.
package data

import (
	"math"
	"math/rand"
)

// APS-style time-of-use bands, $/kWh before the $/MWh conversion.
const (
	peakRate         = 0.15 // 3-8 PM
	offpeakRate      = 0.05
	superOffpeakRate = 0.03 // 10 PM - 6 AM
)

// TOUPrices generates a 24-hour time-of-use price vector in $/MWh with a
// small random variation per hour. Pass a seeded *rand.Rand for
// deterministic output; nil disables the variation entirely.
func TOUPrices(rng *rand.Rand) []float64 {
	prices := make([]float64, 24)
	for h := 0; h < 24; h++ {
		var rate float64
		switch {
		case h >= 15 && h < 20:
			rate = peakRate
		case h >= 22 || h < 6:
			rate = superOffpeakRate
		default:
			rate = offpeakRate
		}
		variation := 1.0
		if rng != nil {
			variation = 0.95 + 0.1*rng.Float64()
		}
		prices[h] = rate * variation * 1000
	}
	return prices
}

// PhoenixTemperatures generates a typical Phoenix summer day: a sine wave
// with its minimum near 5 AM, averaging 95°F with a ±15°F swing, clamped to
// [75, 120]. A nil rng disables the per-hour jitter.
func PhoenixTemperatures(rng *rand.Rand) []float64 {
	temps := make([]float64, 24)
	for h := 0; h < 24; h++ {
		phase := float64(h-5) * math.Pi / 12
		temp := 95 + 15*math.Sin(phase-math.Pi/2)
		if rng != nil {
			temp += -2 + 4*rng.Float64()
		}
		temps[h] = math.Max(75, math.Min(120, temp))
	}
	return temps
}

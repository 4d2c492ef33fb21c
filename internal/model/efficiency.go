package model

// Water-cooling efficiency knots: efficiency degrades as ambient temperature
// rises. Values outside the knot range clamp to the end points.
var efficiencyKnots = []struct {
	TempF      float64
	Efficiency float64
}{
	{75, 1.00},
	{85, 0.95},
	{95, 0.90},
	{105, 0.85},
	{115, 0.75},
	{120, 0.70},
}

// WaterEfficiency returns the water-cooling efficiency factor for an ambient
// temperature, linearly interpolated between knots. Only the advanced model
// variant consumes this; the linear variant uses the soft temperature penalty
// instead.
func WaterEfficiency(tempF float64) float64 {
	first := efficiencyKnots[0]
	if tempF <= first.TempF {
		return first.Efficiency
	}
	for i := 1; i < len(efficiencyKnots); i++ {
		k := efficiencyKnots[i]
		if tempF <= k.TempF {
			prev := efficiencyKnots[i-1]
			frac := (tempF - prev.TempF) / (k.TempF - prev.TempF)
			return prev.Efficiency + frac*(k.Efficiency-prev.Efficiency)
		}
	}
	return efficiencyKnots[len(efficiencyKnots)-1].Efficiency
}

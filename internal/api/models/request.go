package models

// OptimizeRequest is the request body for running an optimization.
// Temperatures (°F) and prices ($/MWh) must each hold exactly 24 values.
type OptimizeRequest struct {
	Temperatures []float64 `json:"temperatures" binding:"required"`
	Prices       []float64 `json:"prices" binding:"required"`
	CapacityMW   float64   `json:"capacity_mw,omitempty"` // default: 50
	Solver       string    `json:"solver,omitempty"`      // preferred backend
	Variant      string    `json:"variant,omitempty"`     // "linear" (default) or "advanced"

	// GridDemand enables demand-response activation in the advanced variant.
	GridDemand       []float64 `json:"grid_demand,omitempty"`
	TimeLimitSeconds int       `json:"time_limit_seconds,omitempty"`
}

// DemoRequest runs the optimizer on a synthetic Phoenix summer day.
type DemoRequest struct {
	CapacityMW float64 `json:"capacity_mw,omitempty"`
	Seed       int64   `json:"seed,omitempty"` // deterministic demo data when set
}

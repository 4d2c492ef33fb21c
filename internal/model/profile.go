package model

import "fmt"

// HoursPerDay is the optimization horizon. The core model is built on exactly
// one day of hourly data; callers own any padding or truncation policy.
const HoursPerDay = 24

// HourlyProfile bundles the two parallel 24-value input series.
// Units:
// - Temperatures: ambient °F (realistic Phoenix range is roughly 50-125°F,
//   but out-of-range values are not rejected; they only feed the penalty and
//   efficiency functions)
// - Prices: $/MWh, must be non-negative
type HourlyProfile struct {
	Temperatures []float64
	Prices       []float64
}

// InvalidInputError reports a violation of the optimizer's input contract.
// It is fatal to the call: the core never pads, truncates, or substitutes
// demo data.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NewHourlyProfile validates and wraps the input series.
func NewHourlyProfile(temperatures, prices []float64) (*HourlyProfile, error) {
	if len(temperatures) != HoursPerDay {
		return nil, &InvalidInputError{
			Field:  "temperatures",
			Reason: fmt.Sprintf("expected %d values, got %d", HoursPerDay, len(temperatures)),
		}
	}
	if len(prices) != HoursPerDay {
		return nil, &InvalidInputError{
			Field:  "prices",
			Reason: fmt.Sprintf("expected %d values, got %d", HoursPerDay, len(prices)),
		}
	}
	for h, p := range prices {
		if p < 0 {
			return nil, &InvalidInputError{
				Field:  "prices",
				Reason: fmt.Sprintf("negative price %.4f at hour %d", p, h),
			}
		}
	}
	p := &HourlyProfile{
		Temperatures: make([]float64, HoursPerDay),
		Prices:       make([]float64, HoursPerDay),
	}
	copy(p.Temperatures, temperatures)
	copy(p.Prices, prices)
	return p, nil
}

// AveragePrice returns the mean of the 24 hourly prices.
func (p *HourlyProfile) AveragePrice() float64 {
	sum := 0.0
	for _, v := range p.Prices {
		sum += v
	}
	return sum / float64(len(p.Prices))
}

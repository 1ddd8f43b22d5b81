// Package battery models battery capacity degradation and the timing and
// cost of an in-life replacement.
package battery

import (
	"math"

	"github.com/kilianp07/fleettco/core/model"
)

// Replacement describes whether and when the battery falls below its minimum
// usable capacity within the vehicle life, and what replacing it costs.
type Replacement struct {
	Occurs bool
	// Year is the fractional year at which capacity crosses the minimum.
	Year float64
	Cost float64
	NPV  float64
}

// CapacityAtYear returns the remaining capacity fraction after t years of
// geometric degradation.
func CapacityAtYear(degradationRate, years float64) float64 {
	if degradationRate <= 0 {
		return 1
	}
	return math.Pow(1-degradationRate, years)
}

// PlanReplacement solves (1-d)^t = minimum for the replacement year and
// discounts the replacement cost to present value. Degradation rates outside
// (0,1) or minimum capacities outside (0,1] cannot cross the threshold, and
// a crossing beyond the vehicle life is out of scope; both yield no
// replacement.
func PlanReplacement(v model.VehicleSpec, params model.BatteryParameters, discountRate float64, lifeYears int) Replacement {
	d := params.DegradationAnnualRate
	min := params.MinimumCapacity
	if d <= 0 || d >= 1 || min <= 0 || min > 1 {
		return Replacement{}
	}

	year := math.Log(min) / math.Log(1-d)
	if year > float64(lifeYears) {
		return Replacement{}
	}

	cost := v.BatteryCapacityKWh * params.ReplacementCostPerKWh
	return Replacement{
		Occurs: true,
		Year:   year,
		Cost:   cost,
		NPV:    cost / math.Pow(1+discountRate, year),
	}
}

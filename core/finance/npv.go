// Package finance holds the financial primitives and cost models of the TCO
// engine: constant-annuity NPV, geometric depreciation, cumulative cost
// curves, curve-intersection interpolation, annual and acquisition costs,
// infrastructure amortisation and payload-penalty economics.
//
// Cash flows occur at year ends (years 1..N); acquisition and first-cycle
// infrastructure capital fall at year 0.
package finance

import (
	"fmt"
	"math"
)

// NPVConstant returns the net present value of a constant annual cash flow
// paid at the end of each year. It is linear in annualCost and returns 0 for
// years <= 0. A zero discount rate degenerates to annualCost*years.
func NPVConstant(annualCost, discountRate float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if discountRate == 0 {
		return annualCost * float64(years)
	}
	var npv float64
	for year := 1; year <= years; year++ {
		npv += annualCost / math.Pow(1+discountRate, float64(year))
	}
	return npv
}

// CumulativeCostCurve returns years entries where entry i is the cumulative
// cost at the end of year i+1, given a one-off up-front cost plus a constant
// annual cost.
func CumulativeCostCurve(initialCost, annualCost float64, years int) []float64 {
	if years <= 0 {
		return nil
	}
	curve := make([]float64, years)
	curve[0] = initialCost
	for i := 1; i < years; i++ {
		curve[i] = curve[i-1] + annualCost
	}
	return curve
}

// PriceParityYear estimates the fractional year at which two cumulative cost
// curves intersect. years carries the year label of each observation; when
// nil it defaults to 1..len(curveA). The first sign change (or touch) of the
// difference wins; parallel segments are skipped. Returns +Inf when the
// curves never cross within the horizon.
func PriceParityYear(curveA, curveB []float64, years []float64) (float64, error) {
	if len(curveA) != len(curveB) {
		return 0, fmt.Errorf("cost curves must be the same length: %d vs %d", len(curveA), len(curveB))
	}
	if years == nil {
		years = make([]float64, len(curveA))
		for i := range years {
			years[i] = float64(i + 1)
		}
	} else if len(years) != len(curveA) {
		return 0, fmt.Errorf("years length %d does not match curves of length %d", len(years), len(curveA))
	}

	for i := 0; i+1 < len(curveA); i++ {
		d1 := curveA[i] - curveB[i]
		d2 := curveA[i+1] - curveB[i+1]
		if d1*d2 > 0 {
			continue
		}
		denom := (curveA[i+1] - curveA[i]) - (curveB[i+1] - curveB[i])
		if denom == 0 {
			// Parallel over this segment.
			continue
		}
		t := (curveB[i] - curveA[i]) / denom
		return years[i] + t, nil
	}
	return math.Inf(1), nil
}

// ResidualValue returns the vehicle's residual value after the given number
// of years under geometric depreciation: an initial first-year hit followed
// by a constant annual rate.
func ResidualValue(msrp float64, years int, initialDepreciation, annualDepreciation float64) float64 {
	if years <= 0 {
		return 0
	}
	afterInitial := msrp * (1 - initialDepreciation)
	return afterInitial * math.Pow(1-annualDepreciation, float64(years-1))
}

// Div returns num/den, or def when den is zero. Every division in the core
// goes through here so ratios and per-unit metrics never produce NaN or
// panic on degenerate inputs.
func Div(num, den, def float64) float64 {
	if den == 0 {
		return def
	}
	return num / den
}

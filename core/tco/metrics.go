package tco

import (
	"math"

	"github.com/kilianp07/fleettco/core/finance"
)

// ComparativeMetricsFor derives the headline KPIs from two computed results.
// Price parity interpolates the crossing of the cumulative cost curves; the
// ratio-style metrics go to +Inf on degenerate denominators instead of
// failing.
func ComparativeMetricsFor(bev, diesel *Result, lifeYears int) (ComparativeMetrics, error) {
	bevCurve := cumulativeCostCurve(bev, lifeYears)
	dieselCurve := cumulativeCostCurve(diesel, lifeYears)

	years := make([]float64, lifeYears+1)
	for i := range years {
		years[i] = float64(i)
	}
	parity, err := finance.PriceParityYear(bevCurve, dieselCurve, years)
	if err != nil {
		return ComparativeMetrics{}, err
	}

	emissionSavings := diesel.Emissions.Lifetime - bev.Emissions.Lifetime

	abatement := math.Inf(1)
	if emissionSavings > 0 {
		abatement = (bev.NPVTotal - diesel.NPVTotal) / (emissionSavings / 1000)
	}

	return ComparativeMetrics{
		UpfrontCostDifference:   bevCurve[0] - dieselCurve[0],
		AnnualOperatingSavings:  diesel.AnnualCosts.Operating - bev.AnnualCosts.Operating,
		PriceParityYear:         parity,
		EmissionSavingsLifetime: emissionSavings,
		AbatementCost:           abatement,
		BEVToDieselTCORatio:     finance.Div(bev.NPVTotal, diesel.NPVTotal, math.Inf(1)),
	}, nil
}

// cumulativeCostCurve builds the year-0..life cumulative cash-out curve used
// for the parity crossing: acquisition plus the per-vehicle infrastructure
// capital share at year 0, annual operating plus infrastructure maintenance
// each year, another capital share whenever a replacement cycle starts
// within the life, and the battery replacement cost in the year its
// capacity threshold is crossed. Residual value stays out of the curve; it
// is settled in the NPV totals.
func cumulativeCostCurve(r *Result, lifeYears int) []float64 {
	fleet := float64(r.Infrastructure.FleetSize)
	capitalShare := finance.Div(r.Infrastructure.PriceWithIncentives, fleet, 0)
	maintenanceShare := finance.Div(r.Infrastructure.AnnualMaintenance, fleet, 0)

	batteryYear := 0
	if r.Battery.Occurs {
		batteryYear = int(math.Ceil(r.Battery.Year))
	}

	curve := make([]float64, lifeYears+1)
	curve[0] = r.AcquisitionCost + capitalShare
	for year := 1; year <= lifeYears; year++ {
		cost := r.AnnualCosts.Operating + maintenanceShare
		if s := r.Infrastructure.ServiceLifeYears; s > 0 && year%s == 0 && year < lifeYears {
			cost += capitalShare
		}
		if r.Battery.Occurs && year == batteryYear {
			cost += r.Battery.Cost
		}
		curve[year] = curve[year-1] + cost
	}
	return curve
}

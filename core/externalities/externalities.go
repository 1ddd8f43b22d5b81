// Package externalities prices the societal costs of vehicle operation
// (air pollution, noise, CO2e) and derives the social-benefit metrics of
// switching drivetrains.
package externalities

import (
	"github.com/kilianp07/fleettco/core/finance"
	"github.com/kilianp07/fleettco/core/model"
)

// PollutantCosts is the externality bill attributable to one pollutant.
type PollutantCosts struct {
	CostPerKM    float64
	AnnualCost   float64
	LifetimeCost float64
	NPV          float64
}

// Costs is the externality bill for one vehicle: total cost per km scaled to
// annual, lifetime and NPV figures, plus the per-pollutant breakdown.
type Costs struct {
	CostPerKM    float64
	AnnualCost   float64
	LifetimeCost float64
	NPV          float64
	Breakdown    map[string]PollutantCosts
}

// Calculate totals the externality rates for the vehicle's class and
// drivetrain. When the table carries an aggregate row it is used as the
// total and the remaining rows only populate the breakdown; otherwise the
// total is the sum of all rows.
func Calculate(v model.VehicleSpec, rates model.ExternalityRates, annualKMs float64, discountRate float64, lifeYears int) Costs {
	rows := rates.ForVehicle(v.Class, v.Drivetrain)

	breakdown := make(map[string]PollutantCosts, len(rows))
	var perKM, sum float64
	var hasTotal bool
	for _, row := range rows {
		if row.Pollutant == model.PollutantTotal {
			perKM = row.CostPerKM
			hasTotal = true
			continue
		}
		breakdown[row.Pollutant] = pollutantCosts(row.CostPerKM, annualKMs, discountRate, lifeYears)
		sum += row.CostPerKM
	}
	if !hasTotal {
		perKM = sum
	}

	total := pollutantCosts(perKM, annualKMs, discountRate, lifeYears)
	return Costs{
		CostPerKM:    total.CostPerKM,
		AnnualCost:   total.AnnualCost,
		LifetimeCost: total.LifetimeCost,
		NPV:          total.NPV,
		Breakdown:    breakdown,
	}
}

func pollutantCosts(perKM, annualKMs, discountRate float64, lifeYears int) PollutantCosts {
	annual := perKM * annualKMs
	return PollutantCosts{
		CostPerKM:    perKM,
		AnnualCost:   annual,
		LifetimeCost: annual * float64(lifeYears),
		NPV:          finance.NPVConstant(annual, discountRate, lifeYears),
	}
}

// Proxy derives a synthetic single-pollutant externality bill from CO2e
// emissions and the carbon price parameter, for datasets that ship emission
// factors but no externality table. Emissions are in kg/km, the carbon price
// in $/tonne.
func Proxy(co2PerKM float64, params model.FinancialParameters, annualKMs float64, discountRate float64, lifeYears int) Costs {
	carbonPrice := params.ValueOr(model.ParamCarbonPrice, 0)
	perKM := co2PerKM / 1000 * carbonPrice

	total := pollutantCosts(perKM, annualKMs, discountRate, lifeYears)
	return Costs{
		CostPerKM:    total.CostPerKM,
		AnnualCost:   total.AnnualCost,
		LifetimeCost: total.LifetimeCost,
		NPV:          total.NPV,
		Breakdown:    map[string]PollutantCosts{"CO2e": total},
	}
}

// Social folds externality costs into a private TCO.
type Social struct {
	SocialTCOLifetime     float64
	SocialTCOPerKM        float64
	ExternalityShareOfTCO float64
}

// SocialTCO adds the externality NPV to the private NPV total.
func SocialTCO(npvTotal float64, ext Costs, annualKMs float64, lifeYears int) Social {
	lifetime := npvTotal + ext.NPV
	totalKM := annualKMs * float64(lifeYears)
	return Social{
		SocialTCOLifetime:     lifetime,
		SocialTCOPerKM:        finance.Div(lifetime, totalKM, 0),
		ExternalityShareOfTCO: finance.Div(ext.NPV, lifetime, 0) * 100,
	}
}

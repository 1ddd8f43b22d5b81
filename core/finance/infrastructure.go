package finance

import (
	"math"

	"github.com/kilianp07/fleettco/core/model"
)

// InfrastructureCosts is the amortised cost of a charging-infrastructure
// option shared across a fleet. The WithIncentives fields always carry a
// usable value: when no subsidy applies they mirror the base figures, so
// downstream code can uniformly prefer them.
type InfrastructureCosts struct {
	Price              float64
	ServiceLifeYears   int
	AnnualMaintenance  float64
	AnnualCapital      float64
	TotalAnnual        float64
	PerVehicleAnnual   float64
	ReplacementCycles  int
	NPVInfrastructure  float64
	NPVPerVehicle      float64
	FleetSize          int

	PriceWithIncentives         float64
	NPVWithIncentives           float64
	NPVPerVehicleWithIncentives float64
	SubsidyRate                 float64
}

// InfrastructureNPV accumulates the discounted cost of the infrastructure
// over the vehicle life: one capital outlay per replacement cycle
// (undiscounted at year 0, discounted at the cycle start year otherwise)
// plus discounted annual maintenance for the years the cycle covers.
func InfrastructureNPV(price float64, serviceLife int, discountRate float64, vehicleLifeYears int, annualMaintenance float64) float64 {
	cycles := replacementCycles(vehicleLifeYears, serviceLife)

	var npv float64
	for cycle := 0; cycle < cycles; cycle++ {
		startYear := cycle * serviceLife
		if startYear >= vehicleLifeYears {
			break
		}

		if cycle == 0 {
			npv += price
		} else {
			npv += price / math.Pow(1+discountRate, float64(startYear))
		}

		yearsInCycle := serviceLife
		if remaining := vehicleLifeYears - startYear; remaining < yearsInCycle {
			yearsInCycle = remaining
		}
		for year := 0; year < yearsInCycle; year++ {
			npv += annualMaintenance / math.Pow(1+discountRate, float64(startYear+year+1))
		}
	}
	return npv
}

func replacementCycles(vehicleLifeYears, serviceLife int) int {
	if serviceLife <= 0 {
		return 1
	}
	cycles := (vehicleLifeYears + serviceLife - 1) / serviceLife
	if cycles < 1 {
		return 1
	}
	return cycles
}

// CalculateInfrastructureCosts amortises the option's capital and
// maintenance over the vehicle life and splits the NPV across fleetSize
// vehicles. Incentive fields are initialised to the un-subsidised values;
// apply a subsidy with WithIncentives.
func CalculateInfrastructureCosts(opt model.InfrastructureOption, vehicleLifeYears int, discountRate float64, fleetSize int) InfrastructureCosts {
	annualMaintenance := opt.Price * opt.MaintenancePercent
	annualCapital := Div(opt.Price, float64(opt.ServiceLifeYears), 0)
	totalAnnual := annualCapital + annualMaintenance

	npv := InfrastructureNPV(opt.Price, opt.ServiceLifeYears, discountRate, vehicleLifeYears, annualMaintenance)

	c := InfrastructureCosts{
		Price:             opt.Price,
		ServiceLifeYears:  opt.ServiceLifeYears,
		AnnualMaintenance: annualMaintenance,
		AnnualCapital:     annualCapital,
		TotalAnnual:       totalAnnual,
		PerVehicleAnnual:  Div(totalAnnual, float64(fleetSize), 0),
		ReplacementCycles: replacementCycles(vehicleLifeYears, opt.ServiceLifeYears),
		NPVInfrastructure: npv,
		NPVPerVehicle:     Div(npv, float64(fleetSize), 0),
		FleetSize:         fleetSize,
	}
	c.PriceWithIncentives = c.Price
	c.NPVWithIncentives = c.NPVInfrastructure
	c.NPVPerVehicleWithIncentives = c.NPVPerVehicle
	return c
}

// WithIncentives applies an active charging-infrastructure subsidy, scaling
// the price and both NPV figures by (1-rate). Without an active subsidy, or
// when apply is false, the incentive fields keep mirroring the base values.
func (c InfrastructureCosts) WithIncentives(incentives model.Incentives, apply bool) InfrastructureCosts {
	if !apply {
		return c
	}
	rate, ok := incentives.ActiveRateAny(model.IncentiveInfrastructureSubsidy)
	if !ok {
		return c
	}
	c.PriceWithIncentives = c.Price * (1 - rate)
	c.NPVWithIncentives = c.NPVInfrastructure * (1 - rate)
	c.NPVPerVehicleWithIncentives = c.NPVPerVehicle * (1 - rate)
	c.SubsidyRate = rate
	return c
}

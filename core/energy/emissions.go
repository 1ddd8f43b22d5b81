package energy

import "github.com/kilianp07/fleettco/core/model"

// Emissions reports CO2e output per km, per year and over the vehicle life,
// in the unit of the emission-factor table (kg CO2e).
type Emissions struct {
	CO2PerKM float64
	Annual   float64
	Lifetime float64
}

// CalculateEmissions looks up the emission factor for the vehicle's fuel
// ("electricity"/"Grid" for BEVs, "diesel"/"Euro IV+" otherwise) and scales
// it by consumption and distance.
func CalculateEmissions(v model.VehicleSpec, factors model.EmissionFactors, annualKMs float64, lifeYears int) (Emissions, error) {
	var perKM float64
	if v.IsBEV() {
		ef, err := factors.Lookup(model.FuelElectricity, model.StandardGrid)
		if err != nil {
			return Emissions{}, err
		}
		perKM = v.KWhPer100KM / per100KM * ef.CO2PerUnit
	} else {
		ef, err := factors.Lookup(model.FuelDiesel, model.StandardEuroIVPlus)
		if err != nil {
			return Emissions{}, err
		}
		perKM = v.LitresPer100KM / per100KM * ef.CO2PerUnit
	}

	annual := perKM * annualKMs
	return Emissions{
		CO2PerKM: perKM,
		Annual:   annual,
		Lifetime: annual * float64(lifeYears),
	}, nil
}

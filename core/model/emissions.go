package model

import (
	"fmt"

	"github.com/kilianp07/fleettco/core/errs"
)

// FuelType identifies the energy carrier in the emission-factor table.
type FuelType string

const (
	FuelElectricity FuelType = "electricity"
	FuelDiesel      FuelType = "diesel"
)

// Emission standards used to key emission-factor rows.
const (
	StandardGrid       = "Grid"
	StandardEuroIVPlus = "Euro IV+"
)

// EmissionFactor is one row of the emission-factor table. CO2PerUnit is in
// kg CO2e per kWh for electricity and per litre for diesel.
type EmissionFactor struct {
	FuelType         FuelType
	EmissionStandard string
	CO2PerUnit       float64
}

// EmissionFactors is the emission-factor table.
type EmissionFactors []EmissionFactor

// Lookup returns the factor for (fuel, standard) or a DataNotFoundError.
func (f EmissionFactors) Lookup(fuel FuelType, standard string) (EmissionFactor, error) {
	for _, ef := range f {
		if ef.FuelType == fuel && ef.EmissionStandard == standard {
			return ef, nil
		}
	}
	return EmissionFactor{}, errs.DataNotFound("emission factors", fmt.Sprintf("%s/%s", fuel, standard))
}

// PollutantTotal is the synthetic pollutant aggregating all others; when
// present it is preferred over summing individual rows.
const PollutantTotal = "externalities_total"

// ExternalityRate is one row of the externality table: the societal cost per
// km of one pollutant for a (vehicle class, drivetrain) pair.
type ExternalityRate struct {
	VehicleClass string
	Drivetrain   Drivetrain
	Pollutant    string
	CostPerKM    float64
}

// ExternalityRates is the externality table.
type ExternalityRates []ExternalityRate

// ForVehicle returns the rows matching the given class and drivetrain.
func (r ExternalityRates) ForVehicle(class string, d Drivetrain) ExternalityRates {
	var out ExternalityRates
	for _, row := range r {
		if row.VehicleClass == class && row.Drivetrain == d {
			out = append(out, row)
		}
	}
	return out
}

// Scaled returns a copy of the table with every cost per km multiplied by
// factor. Used by externality sensitivity sweeps.
func (r ExternalityRates) Scaled(factor float64) ExternalityRates {
	out := make(ExternalityRates, len(r))
	for i, row := range r {
		row.CostPerKM *= factor
		out[i] = row
	}
	return out
}

// Package energy computes per-km energy costs, CO2e emissions and charging
// requirements for the vehicles under comparison.
package energy

import (
	"github.com/kilianp07/fleettco/core/model"
)

// per100KM converts a per-100km consumption rate to a per-km rate.
const per100KM = 100.0

const weightEps = 1e-12

// WeightedElectricityPrice returns the mix-weighted average $/kWh price.
// Weights are normalised to sum to one, so callers may pass fractions,
// percentages or raw weights. An unknown charging id is a DataNotFoundError.
func WeightedElectricityPrice(mix model.ChargingMix, options model.ChargingOptions) (float64, error) {
	if len(mix) == 0 {
		return 0, nil
	}
	total := mix.Sum()
	if total < weightEps {
		return 0, nil
	}

	var price float64
	for id, weight := range mix {
		opt, err := options.ByID(id)
		if err != nil {
			return 0, err
		}
		price += opt.PerKWhPrice * (weight / total)
	}
	return price, nil
}

// CostPerKM returns the energy cost per km for the vehicle. BEVs price
// electricity from the charging mix when one is supplied, otherwise from the
// selected charging option; diesel vehicles use the diesel price parameter.
func CostPerKM(
	v model.VehicleSpec,
	options model.ChargingOptions,
	selectedChargingID string,
	mix model.ChargingMix,
	params model.FinancialParameters,
) (float64, error) {
	if v.IsBEV() {
		var price float64
		var err error
		if len(mix) > 0 {
			price, err = WeightedElectricityPrice(mix, options)
		} else {
			var opt model.ChargingOption
			opt, err = options.ByID(selectedChargingID)
			price = opt.PerKWhPrice
		}
		if err != nil {
			return 0, err
		}
		return v.KWhPer100KM / per100KM * price, nil
	}

	dieselPrice, err := params.Value(model.ParamDieselPrice)
	if err != nil {
		return 0, err
	}
	return v.LitresPer100KM / per100KM * dieselPrice, nil
}

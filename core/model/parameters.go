package model

import "github.com/kilianp07/fleettco/core/errs"

// Financial parameter keys. The set is open but these names are fixed by the
// source datasets.
const (
	ParamDieselPrice          = "diesel_price"
	ParamInitialDepreciation  = "initial_depreciation_percent"
	ParamAnnualDepreciation   = "annual_depreciation_percent"
	ParamCarbonPrice          = "carbon_price"
	ParamFreightValuePerTonne = "freight_value_per_tonne"
	ParamDriverCostHourly     = "driver_cost_hourly"
	ParamAvgTripDistance      = "avg_trip_distance"
	ParamAvgLoadUnloadTime    = "avg_loadunload_time"
)

// FinancialParameters maps parameter names to scalar values. The zero value
// is an empty table. Values are copied on construction and on override, so a
// FinancialParameters is safe to share between calculations.
type FinancialParameters struct {
	values map[string]float64
}

// NewFinancialParameters builds a parameter table from the given values.
func NewFinancialParameters(values map[string]float64) FinancialParameters {
	cp := make(map[string]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return FinancialParameters{values: cp}
}

// Value returns the parameter or a DataNotFoundError when the key is absent.
func (p FinancialParameters) Value(key string) (float64, error) {
	v, ok := p.values[key]
	if !ok {
		return 0, errs.DataNotFound("financial parameters", key)
	}
	return v, nil
}

// ValueOr returns the parameter or def when the key is absent.
func (p FinancialParameters) ValueOr(key string, def float64) float64 {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// WithValue returns a copy of the table with key set to value. The receiver
// is left unchanged; sensitivity sweeps use this to perturb one input.
func (p FinancialParameters) WithValue(key string, value float64) FinancialParameters {
	cp := make(map[string]float64, len(p.values)+1)
	for k, v := range p.values {
		cp[k] = v
	}
	cp[key] = value
	return FinancialParameters{values: cp}
}

// BatteryParameters holds the battery economics inputs.
type BatteryParameters struct {
	// ReplacementCostPerKWh is the replacement pack cost in $/kWh.
	ReplacementCostPerKWh float64
	// DegradationAnnualRate is the yearly capacity loss as a fraction.
	DegradationAnnualRate float64
	// MinimumCapacity is the usable-capacity threshold as a fraction of the
	// original capacity; crossing it triggers a replacement.
	MinimumCapacity float64
}

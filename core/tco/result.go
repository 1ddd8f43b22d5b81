package tco

import (
	"github.com/kilianp07/fleettco/core/battery"
	"github.com/kilianp07/fleettco/core/energy"
	"github.com/kilianp07/fleettco/core/externalities"
	"github.com/kilianp07/fleettco/core/finance"
	"github.com/kilianp07/fleettco/core/model"
)

// Result is the full TCO picture for one vehicle. It is built fresh by each
// Calculate call and never mutated afterwards.
type Result struct {
	RunID   string
	Vehicle model.VehicleSpec

	EnergyCostPerKM float64
	// WeightedElectricityPrice is the mix-weighted $/kWh for BEVs priced by
	// a charging mix; zero otherwise.
	WeightedElectricityPrice float64

	AnnualCosts     finance.AnnualCosts
	AcquisitionCost float64
	ResidualValue   float64
	NPVOperating    float64

	Battery        battery.Replacement
	Infrastructure finance.InfrastructureCosts
	Charging       energy.ChargingRequirements

	Emissions     energy.Emissions
	Externalities externalities.Costs
	Social        externalities.Social

	NPVTotal      float64
	TCOLifetime   float64
	TCOAnnual     float64
	TCOPerKM      float64
	TCOPerTonneKM float64
}

// ComparativeMetrics are the headline KPIs of a BEV-vs-diesel comparison.
type ComparativeMetrics struct {
	UpfrontCostDifference  float64
	AnnualOperatingSavings float64
	// PriceParityYear is the fractional year the cumulative cost curves
	// cross, +Inf when they never do within the life.
	PriceParityYear         float64
	EmissionSavingsLifetime float64
	// AbatementCost is $ per tonne of CO2e avoided, +Inf when the BEV
	// avoids nothing.
	AbatementCost       float64
	BEVToDieselTCORatio float64
}

// ComparisonResult pairs the two vehicle results with the derived KPIs.
type ComparisonResult struct {
	RunID  string
	BEV    *Result
	Diesel *Result

	Metrics       ComparativeMetrics
	Payload       finance.PayloadPenalty
	Externalities externalities.Comparison
	SocialBenefit externalities.SocialBenefit
}

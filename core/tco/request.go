// Package tco orchestrates the cost models into full per-vehicle TCO results
// and BEV-vs-diesel comparisons.
package tco

import (
	"fmt"

	"github.com/kilianp07/fleettco/core/model"
)

// Parameters are the scenario-level scalars of a calculation run. They apply
// identically to both vehicles of a comparison.
type Parameters struct {
	AnnualKMs      float64
	TruckLifeYears int
	DiscountRate   float64
	FleetSize      int
	// ApplyIncentives toggles the incentive table without removing it from
	// the inputs.
	ApplyIncentives bool

	// SelectedChargingID prices BEV electricity when ChargingMix is empty.
	SelectedChargingID string
	// ChargingMix, when non-empty, takes precedence over the selected option.
	ChargingMix              model.ChargingMix
	SelectedInfrastructureID string

	Financial model.FinancialParameters
	Battery   model.BatteryParameters
}

// Validate checks the scenario scalars.
func (p Parameters) Validate() error {
	if p.AnnualKMs <= 0 {
		return fmt.Errorf("annual kms must be positive, got %v", p.AnnualKMs)
	}
	if p.TruckLifeYears <= 0 {
		return fmt.Errorf("truck life years must be positive, got %d", p.TruckLifeYears)
	}
	if p.DiscountRate < 0 {
		return fmt.Errorf("discount rate must not be negative, got %v", p.DiscountRate)
	}
	if p.FleetSize <= 0 {
		return fmt.Errorf("fleet size must be positive, got %d", p.FleetSize)
	}
	return nil
}

// Request is everything a single-vehicle calculation needs: the vehicle, its
// fee row, the full lookup tables and the scenario parameters. Requests are
// treated as immutable; sweeps build perturbed copies instead of mutating.
type Request struct {
	RunID string

	Vehicle model.VehicleSpec
	Fees    model.FeeSchedule

	ChargingOptions       model.ChargingOptions
	InfrastructureOptions model.InfrastructureOptions
	Incentives            model.Incentives
	EmissionFactors       model.EmissionFactors
	ExternalityRates      model.ExternalityRates

	Params Parameters
}

// Validate checks the request is sound before calculation.
func (r Request) Validate() error {
	if err := r.Vehicle.Validate(); err != nil {
		return err
	}
	return r.Params.Validate()
}

// WithFinancial returns a copy of the request with the financial parameter
// table replaced. Sensitivity sweeps perturb requests through this and the
// sibling With* helpers.
func (r Request) WithFinancial(p model.FinancialParameters) Request {
	r.Params.Financial = p
	return r
}

// WithChargingOptions returns a copy with the charging price table replaced.
func (r Request) WithChargingOptions(opts model.ChargingOptions) Request {
	r.ChargingOptions = opts
	return r
}

// WithExternalityRates returns a copy with the externality table replaced.
func (r Request) WithExternalityRates(rates model.ExternalityRates) Request {
	r.ExternalityRates = rates
	return r
}

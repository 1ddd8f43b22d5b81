package model

import "github.com/kilianp07/fleettco/core/errs"

// ChargingOption is a single charging price point.
type ChargingOption struct {
	ID          string
	PerKWhPrice float64
	// Label is the human-readable approach, e.g. "Depot overnight".
	Label string
}

// ChargingOptions is the charging price table.
type ChargingOptions []ChargingOption

// ByID returns the option with the given id or a DataNotFoundError.
func (o ChargingOptions) ByID(id string) (ChargingOption, error) {
	for _, opt := range o {
		if opt.ID == id {
			return opt, nil
		}
	}
	return ChargingOption{}, errs.DataNotFound("charging options", id)
}

// ChargingMix maps charging-option ids to their share of total charging.
// Shares may be fractions, percentages, or any un-normalised weights;
// consumers normalise them to sum to one.
type ChargingMix map[string]float64

// Sum returns the total weight in the mix.
func (m ChargingMix) Sum() float64 {
	var total float64
	for _, w := range m {
		total += w
	}
	return total
}

// InfrastructureOption describes a charging-infrastructure choice.
type InfrastructureOption struct {
	ID string
	// Description is free text and may embed the charger power, e.g.
	// "80kW DC fast charger".
	Description        string
	Price              float64
	ServiceLifeYears   int
	MaintenancePercent float64
}

// InfrastructureOptions is the infrastructure table.
type InfrastructureOptions []InfrastructureOption

// ByID returns the option with the given id or a DataNotFoundError.
func (o InfrastructureOptions) ByID(id string) (InfrastructureOption, error) {
	for _, opt := range o {
		if opt.ID == id {
			return opt, nil
		}
	}
	return InfrastructureOption{}, errs.DataNotFound("infrastructure options", id)
}

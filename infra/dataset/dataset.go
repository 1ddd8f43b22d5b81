// Package dataset loads the calculation input tables from a directory of
// CSV files, one file per table, keyed by header names.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kilianp07/fleettco/core/errs"
	"github.com/kilianp07/fleettco/core/logger"
	"github.com/kilianp07/fleettco/core/model"
	"github.com/kilianp07/fleettco/core/tco"
)

// Table file names expected inside a dataset directory. The externality and
// incentive tables are optional; the rest are required.
const (
	fileVehicles       = "vehicles.csv"
	fileFees           = "fees.csv"
	fileFinancial      = "financial_parameters.csv"
	fileBattery        = "battery_parameters.csv"
	fileCharging       = "charging_options.csv"
	fileInfrastructure = "infrastructure_options.csv"
	fileIncentives     = "incentives.csv"
	fileEmissions      = "emission_factors.csv"
	fileExternalities  = "externality_rates.csv"
)

// Dataset is the full set of input tables for a calculation run.
type Dataset struct {
	Vehicles []model.VehicleSpec
	Fees     map[string]model.FeeSchedule

	Financial model.FinancialParameters
	Battery   model.BatteryParameters

	ChargingOptions       model.ChargingOptions
	InfrastructureOptions model.InfrastructureOptions
	Incentives            model.Incentives
	EmissionFactors       model.EmissionFactors
	ExternalityRates      model.ExternalityRates
}

// Load reads every table from dir. Missing optional tables are logged and
// left empty; missing required tables fail the load.
func Load(dir string, log logger.Logger) (*Dataset, error) {
	if log == nil {
		log = logger.NopLogger{}
	}

	d := &Dataset{Fees: make(map[string]model.FeeSchedule)}

	if err := d.loadVehicles(filepath.Join(dir, fileVehicles)); err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	if err := d.loadFees(filepath.Join(dir, fileFees)); err != nil {
		return nil, fmt.Errorf("load fees: %w", err)
	}
	if err := d.loadFinancial(filepath.Join(dir, fileFinancial)); err != nil {
		return nil, fmt.Errorf("load financial parameters: %w", err)
	}
	if err := d.loadBattery(filepath.Join(dir, fileBattery)); err != nil {
		return nil, fmt.Errorf("load battery parameters: %w", err)
	}
	if err := d.loadCharging(filepath.Join(dir, fileCharging)); err != nil {
		return nil, fmt.Errorf("load charging options: %w", err)
	}
	if err := d.loadInfrastructure(filepath.Join(dir, fileInfrastructure)); err != nil {
		return nil, fmt.Errorf("load infrastructure options: %w", err)
	}
	if err := d.loadEmissions(filepath.Join(dir, fileEmissions)); err != nil {
		return nil, fmt.Errorf("load emission factors: %w", err)
	}

	if err := d.loadIncentives(filepath.Join(dir, fileIncentives)); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load incentives: %w", err)
		}
		log.Warnf("no incentive table in %s, incentives disabled", dir)
	}
	if err := d.loadExternalities(filepath.Join(dir, fileExternalities)); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load externality rates: %w", err)
		}
		log.Warnf("no externality table in %s, falling back to carbon proxy", dir)
	}

	log.Infof("dataset loaded from %s: %d vehicles, %d charging options", dir, len(d.Vehicles), len(d.ChargingOptions))
	return d, nil
}

// VehicleByID returns the vehicle row or a DataNotFoundError.
func (d *Dataset) VehicleByID(id string) (model.VehicleSpec, error) {
	for _, v := range d.Vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return model.VehicleSpec{}, errs.DataNotFound("vehicles", id)
}

// FeesFor returns the fee row for the vehicle or a DataNotFoundError.
func (d *Dataset) FeesFor(vehicleID string) (model.FeeSchedule, error) {
	f, ok := d.Fees[vehicleID]
	if !ok {
		return model.FeeSchedule{}, errs.DataNotFound("fees", vehicleID)
	}
	return f, nil
}

// Request assembles a calculation request for one vehicle, wiring in the
// dataset's tables and the scenario parameters. The dataset's financial and
// battery tables are used unless the parameters already carry their own.
func (d *Dataset) Request(vehicleID string, p tco.Parameters) (tco.Request, error) {
	v, err := d.VehicleByID(vehicleID)
	if err != nil {
		return tco.Request{}, err
	}
	fees, err := d.FeesFor(vehicleID)
	if err != nil {
		return tco.Request{}, err
	}

	if _, err := p.Financial.Value(model.ParamDieselPrice); err != nil {
		p.Financial = d.Financial
	}
	if p.Battery == (model.BatteryParameters{}) {
		p.Battery = d.Battery
	}

	return tco.Request{
		Vehicle:               v,
		Fees:                  fees,
		ChargingOptions:       d.ChargingOptions,
		InfrastructureOptions: d.InfrastructureOptions,
		Incentives:            d.Incentives,
		EmissionFactors:       d.EmissionFactors,
		ExternalityRates:      d.ExternalityRates,
		Params:                p,
	}, nil
}

// ComparisonPair resolves a BEV and its diesel comparator from the vehicle
// table's pairing column.
func (d *Dataset) ComparisonPair(bevID string) (bev, diesel model.VehicleSpec, err error) {
	bev, err = d.VehicleByID(bevID)
	if err != nil {
		return model.VehicleSpec{}, model.VehicleSpec{}, err
	}
	if !bev.IsBEV() {
		return model.VehicleSpec{}, model.VehicleSpec{}, fmt.Errorf("vehicle %s is not a BEV", bevID)
	}
	if bev.ComparisonPairID == "" {
		return model.VehicleSpec{}, model.VehicleSpec{}, errs.DataNotFound("vehicles", bevID+" comparison pair")
	}
	diesel, err = d.VehicleByID(bev.ComparisonPairID)
	if err != nil {
		return model.VehicleSpec{}, model.VehicleSpec{}, err
	}
	return bev, diesel, nil
}

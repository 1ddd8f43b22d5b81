package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kilianp07/fleettco/core/model"
)

// row is one CSV record keyed by (lowercased, trimmed) header name.
type row map[string]string

func readRows(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]row, 0, len(records)-1)
	for _, rec := range records[1:] {
		m := make(row, len(header))
		for i, h := range header {
			if i < len(rec) {
				m[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, m)
	}
	return rows, nil
}

func (r row) str(key string) string { return r[key] }

func (r row) float(key string) (float64, error) {
	s := r[key]
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", key, err)
	}
	return v, nil
}

func (r row) intval(key string) (int, error) {
	v, err := r.float(key)
	return int(v), err
}

func (r row) boolean(key string) bool {
	switch strings.ToLower(r[key]) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func (d *Dataset) loadVehicles(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		v := model.VehicleSpec{
			ID:               r.str("vehicle_id"),
			Model:            r.str("model"),
			Class:            r.str("vehicle_class"),
			Drivetrain:       model.Drivetrain(r.str("drivetrain")),
			ComparisonPairID: r.str("comparison_pair_id"),
		}
		fields := []struct {
			dst *float64
			key string
		}{
			{&v.MSRP, "msrp"},
			{&v.PayloadTonnes, "payload_tonnes"},
			{&v.KWhPer100KM, "kwh_per_100km"},
			{&v.LitresPer100KM, "litres_per_100km"},
			{&v.BatteryCapacityKWh, "battery_capacity_kwh"},
			{&v.RangeKM, "range_km"},
		}
		for _, f := range fields {
			if *f.dst, err = r.float(f.key); err != nil {
				return err
			}
		}
		d.Vehicles = append(d.Vehicles, v)
	}
	return nil
}

func (d *Dataset) loadFees(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		f := model.FeeSchedule{VehicleID: r.str("vehicle_id")}
		if f.MaintenancePerKM, err = r.float("maintenance_per_km"); err != nil {
			return err
		}
		if f.RegistrationAnnual, err = r.float("registration_annual"); err != nil {
			return err
		}
		if f.InsuranceAnnual, err = r.float("insurance_annual"); err != nil {
			return err
		}
		if f.StampDuty, err = r.float("stamp_duty"); err != nil {
			return err
		}
		d.Fees[f.VehicleID] = f
	}
	return nil
}

func (d *Dataset) loadFinancial(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	values := make(map[string]float64, len(rows))
	for _, r := range rows {
		v, err := r.float("value")
		if err != nil {
			return err
		}
		values[r.str("parameter")] = v
	}
	d.Financial = model.NewFinancialParameters(values)
	return nil
}

func (d *Dataset) loadBattery(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: no battery parameter row", path)
	}
	r := rows[0]
	if d.Battery.ReplacementCostPerKWh, err = r.float("replacement_cost_per_kwh"); err != nil {
		return err
	}
	if d.Battery.DegradationAnnualRate, err = r.float("degradation_annual_rate"); err != nil {
		return err
	}
	if d.Battery.MinimumCapacity, err = r.float("minimum_capacity"); err != nil {
		return err
	}
	return nil
}

func (d *Dataset) loadCharging(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		opt := model.ChargingOption{
			ID:    r.str("charging_id"),
			Label: r.str("label"),
		}
		if opt.PerKWhPrice, err = r.float("per_kwh_price"); err != nil {
			return err
		}
		d.ChargingOptions = append(d.ChargingOptions, opt)
	}
	return nil
}

func (d *Dataset) loadInfrastructure(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		opt := model.InfrastructureOption{
			ID:          r.str("infrastructure_id"),
			Description: r.str("description"),
		}
		if opt.Price, err = r.float("price"); err != nil {
			return err
		}
		if opt.ServiceLifeYears, err = r.intval("service_life_years"); err != nil {
			return err
		}
		if opt.MaintenancePercent, err = r.float("maintenance_percent"); err != nil {
			return err
		}
		d.InfrastructureOptions = append(d.InfrastructureOptions, opt)
	}
	return nil
}

func (d *Dataset) loadIncentives(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		rule := model.IncentiveRule{
			Type:       model.IncentiveType(r.str("incentive_type")),
			Drivetrain: model.Drivetrain(r.str("drivetrain")),
			Active:     r.boolean("active"),
		}
		if rule.Rate, err = r.float("rate"); err != nil {
			return err
		}
		d.Incentives = append(d.Incentives, rule)
	}
	return nil
}

func (d *Dataset) loadEmissions(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		ef := model.EmissionFactor{
			FuelType:         model.FuelType(r.str("fuel_type")),
			EmissionStandard: r.str("emission_standard"),
		}
		if ef.CO2PerUnit, err = r.float("co2_per_unit"); err != nil {
			return err
		}
		d.EmissionFactors = append(d.EmissionFactors, ef)
	}
	return nil
}

func (d *Dataset) loadExternalities(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, r := range rows {
		rate := model.ExternalityRate{
			VehicleClass: r.str("vehicle_class"),
			Drivetrain:   model.Drivetrain(r.str("drivetrain")),
			Pollutant:    r.str("pollutant_type"),
		}
		if rate.CostPerKM, err = r.float("cost_per_km"); err != nil {
			return err
		}
		d.ExternalityRates = append(d.ExternalityRates, rate)
	}
	return nil
}

package model

import "fmt"

// Drivetrain identifies the powertrain of a vehicle or the applicability of
// an incentive rule.
type Drivetrain string

const (
	DrivetrainBEV    Drivetrain = "BEV"
	DrivetrainDiesel Drivetrain = "Diesel"
	// DrivetrainAll marks incentive rules that apply to every drivetrain.
	DrivetrainAll Drivetrain = "All"
)

// VehicleSpec describes one vehicle taking part in a TCO calculation.
// It is immutable for the duration of a run.
type VehicleSpec struct {
	ID    string
	Model string
	// Class keys externality-rate lookups (e.g. "Light Rigid", "Articulated").
	Class      string
	Drivetrain Drivetrain

	MSRP          float64
	PayloadTonnes float64

	// KWhPer100KM is the energy consumption rate for BEVs.
	KWhPer100KM float64
	// LitresPer100KM is the fuel consumption rate for Diesel vehicles.
	LitresPer100KM float64

	// BatteryCapacityKWh is set for BEVs only.
	BatteryCapacityKWh float64
	RangeKM            float64

	// ComparisonPairID links a BEV to its diesel comparator in the dataset.
	ComparisonPairID string
}

// IsBEV reports whether the vehicle is battery-electric.
func (v VehicleSpec) IsBEV() bool { return v.Drivetrain == DrivetrainBEV }

// Validate checks that the spec is sound for calculation.
func (v VehicleSpec) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	if v.MSRP <= 0 {
		return fmt.Errorf("vehicle %s: msrp must be positive", v.ID)
	}
	if v.IsBEV() && v.BatteryCapacityKWh <= 0 {
		return fmt.Errorf("vehicle %s: battery capacity must be positive", v.ID)
	}
	return nil
}

// FeeSchedule holds the per-vehicle fee row keyed by vehicle id.
type FeeSchedule struct {
	VehicleID          string
	MaintenancePerKM   float64
	RegistrationAnnual float64
	InsuranceAnnual    float64
	StampDuty          float64
}

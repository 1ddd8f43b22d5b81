package energy

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/kilianp07/fleettco/core/model"
)

const (
	daysPerYear           = 365.0
	defaultChargerPowerKW = 80.0
)

// ChargingRequirements sizes the daily charging workload implied by the
// vehicle's duty cycle against the selected charger.
type ChargingRequirements struct {
	DailyDistanceKM    float64
	DailyEnergyKWh     float64
	ChargerPowerKW     float64
	ChargingHoursDaily float64
	ChargesPerDay      float64
}

// CalculateChargingRequirements derives the daily energy need from annual
// distance and the vehicle's consumption, then the plug-in hours on the
// charger. Charger power is parsed from the infrastructure description when
// it names a kW rating, falling back to a standard DC rating.
func CalculateChargingRequirements(v model.VehicleSpec, infra model.InfrastructureOption, annualKMs float64) ChargingRequirements {
	daily := annualKMs / daysPerYear
	energy := v.KWhPer100KM / per100KM * daily

	power := chargerPowerKW(infra.Description)

	r := ChargingRequirements{
		DailyDistanceKM: daily,
		DailyEnergyKWh:  energy,
		ChargerPowerKW:  power,
	}
	if power > 0 {
		r.ChargingHoursDaily = energy / power
	}
	if v.BatteryCapacityKWh > 0 {
		r.ChargesPerDay = energy / v.BatteryCapacityKWh
	}
	return r
}

// chargerPowerKW extracts a kW rating like "80kW DC fast charger" from the
// option description. Descriptions without a rating get the default.
func chargerPowerKW(description string) float64 {
	lower := strings.ToLower(description)
	idx := strings.Index(lower, "kw")
	if idx <= 0 {
		return defaultChargerPowerKW
	}

	end := idx
	for end > 0 && unicode.IsSpace(rune(lower[end-1])) {
		end--
	}
	start := end
	for start > 0 && (unicode.IsDigit(rune(lower[start-1])) || lower[start-1] == '.') {
		start--
	}
	if start == end {
		return defaultChargerPowerKW
	}

	power, err := strconv.ParseFloat(lower[start:end], 64)
	if err != nil || power <= 0 {
		return defaultChargerPowerKW
	}
	return power
}

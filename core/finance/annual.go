package finance

import "github.com/kilianp07/fleettco/core/model"

// AnnualCosts breaks down one year of operating cost.
type AnnualCosts struct {
	Energy       float64
	Maintenance  float64
	Registration float64
	Insurance    float64
	Operating    float64
}

// AnnualCostBreakdown sums energy, maintenance, registration and insurance
// for one year of operation. When incentives apply and the vehicle is a BEV,
// the registration, insurance and energy components are discounted by the
// matching active incentive rules; each rule is looked up independently and
// applied at most once.
func AnnualCostBreakdown(
	v model.VehicleSpec,
	fees model.FeeSchedule,
	energyCostPerKM float64,
	annualKMs float64,
	incentives model.Incentives,
	applyIncentives bool,
) AnnualCosts {
	c := AnnualCosts{
		Energy:       energyCostPerKM * annualKMs,
		Maintenance:  fees.MaintenancePerKM * annualKMs,
		Registration: fees.RegistrationAnnual,
		Insurance:    fees.InsuranceAnnual,
	}

	if applyIncentives && v.IsBEV() {
		if rate, ok := incentives.ActiveRate(model.IncentiveRegistrationExemption, v.Drivetrain); ok {
			c.Registration *= 1 - rate
		}
		if rate, ok := incentives.ActiveRate(model.IncentiveInsuranceDiscount, v.Drivetrain); ok {
			c.Insurance *= 1 - rate
		}
		if rate, ok := incentives.ActiveRate(model.IncentiveElectricityDiscount, v.Drivetrain); ok {
			c.Energy *= 1 - rate
		}
	}

	c.Operating = c.Energy + c.Maintenance + c.Registration + c.Insurance
	return c
}

// AcquisitionCost returns the upfront purchase price including stamp duty.
// For BEVs with incentives enabled, an active purchase rebate is subtracted
// as a flat amount and an active stamp-duty exemption removes the matching
// share of the duty; the two subtractions are independent.
func AcquisitionCost(
	v model.VehicleSpec,
	fees model.FeeSchedule,
	incentives model.Incentives,
	applyIncentives bool,
) float64 {
	cost := v.MSRP + fees.StampDuty

	if applyIncentives && v.IsBEV() {
		if rebate, ok := incentives.ActiveRate(model.IncentivePurchaseRebate, v.Drivetrain); ok {
			cost -= rebate
		}
		if rate, ok := incentives.ActiveRate(model.IncentiveStampDutyExemption, v.Drivetrain); ok {
			cost -= fees.StampDuty * rate
		}
	}

	return cost
}

package model

// IncentiveType identifies a government incentive scheme.
type IncentiveType string

const (
	IncentiveStampDutyExemption    IncentiveType = "stamp_duty_exemption"
	IncentiveRegistrationExemption IncentiveType = "registration_exemption"
	IncentivePurchaseRebate        IncentiveType = "purchase_rebate_aud"
	IncentiveInfrastructureSubsidy IncentiveType = "charging_infrastructure_subsidy"
	IncentiveElectricityDiscount   IncentiveType = "electricity_rate_discount"
	IncentiveInsuranceDiscount     IncentiveType = "insurance_discount"
)

// IncentiveRule is one row of the incentive table. Rate is a fractional
// discount for the exemption/discount/subsidy types and a flat currency
// amount for the purchase rebate.
type IncentiveRule struct {
	Type       IncentiveType
	Drivetrain Drivetrain
	Active     bool
	Rate       float64
}

// Incentives is the incentive table. A missing rule simply means no
// incentive applies; lookups therefore report presence instead of erroring.
type Incentives []IncentiveRule

// ActiveRate returns the rate of the first active rule of type t that
// applies to drivetrain d (directly or via DrivetrainAll). Only the first
// matching row per type is honoured.
func (in Incentives) ActiveRate(t IncentiveType, d Drivetrain) (float64, bool) {
	for _, r := range in {
		if !r.Active || r.Type != t {
			continue
		}
		if r.Drivetrain == d || r.Drivetrain == DrivetrainAll {
			return r.Rate, true
		}
	}
	return 0, false
}

// ActiveRateAny returns the rate of the first active rule of type t
// regardless of drivetrain. Infrastructure subsidies are keyed this way.
func (in Incentives) ActiveRateAny(t IncentiveType) (float64, bool) {
	for _, r := range in {
		if r.Active && r.Type == t {
			return r.Rate, true
		}
	}
	return 0, false
}

package externalities

import (
	"math"

	"github.com/kilianp07/fleettco/core/finance"
)

// SocialBenefit summarises whether the BEV's price premium is repaid by its
// operating and externality savings.
type SocialBenefit struct {
	UpfrontPremium float64
	// AnnualBenefits is operating plus externality savings per year.
	AnnualBenefits     float64
	NPVBenefits        float64
	BenefitCostRatio   float64
	SimplePaybackYears float64
	PaybackYears       float64
	PaybackWithinLife  bool
}

// SocialBenefitMetrics computes the benefit-cost ratio of the switch and the
// year the premium is recovered. The ratio divides the NPV of combined
// annual benefits by the premium and is +Inf when the BEV is no dearer
// upfront. Payback accumulates discounted benefits year by year and
// interpolates within the crossing year; when the premium is never
// recovered the payback is reported as the vehicle life.
func SocialBenefitMetrics(
	upfrontPremium float64,
	annualOperatingSavings float64,
	annualExternalitySavings float64,
	discountRate float64,
	lifeYears int,
) SocialBenefit {
	annualBenefits := annualOperatingSavings + annualExternalitySavings

	m := SocialBenefit{
		UpfrontPremium: upfrontPremium,
		AnnualBenefits: annualBenefits,
		NPVBenefits:    finance.NPVConstant(annualBenefits, discountRate, lifeYears),
	}

	if upfrontPremium <= 0 {
		m.BenefitCostRatio = math.Inf(1)
		m.PaybackWithinLife = true
		return m
	}

	m.BenefitCostRatio = m.NPVBenefits / upfrontPremium
	if annualBenefits > 0 {
		m.SimplePaybackYears = upfrontPremium / annualBenefits
	} else {
		m.SimplePaybackYears = math.Inf(1)
	}

	m.PaybackYears = float64(lifeYears)
	cumulative := 0.0
	for year := 1; year <= lifeYears; year++ {
		discounted := annualBenefits / math.Pow(1+discountRate, float64(year))
		next := cumulative + discounted
		if next >= upfrontPremium {
			m.PaybackWithinLife = true
			if discounted > 0 {
				m.PaybackYears = float64(year-1) + (upfrontPremium-cumulative)/discounted
			} else {
				m.PaybackYears = float64(year)
			}
			return m
		}
		cumulative = next
	}
	return m
}

package externalities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/fleettco/core/finance"
)

func TestSocialBenefitMetricsNoPremium(t *testing.T) {
	m := SocialBenefitMetrics(-5000, 10000, 2000, 0.07, 10)
	assert.True(t, math.IsInf(m.BenefitCostRatio, 1))
	assert.True(t, m.PaybackWithinLife)
	assert.Equal(t, 0.0, m.PaybackYears)
}

func TestSocialBenefitMetricsRatio(t *testing.T) {
	m := SocialBenefitMetrics(100000, 10000, 2000, 0.07, 10)
	wantNPV := finance.NPVConstant(12000, 0.07, 10)
	assert.InDelta(t, wantNPV, m.NPVBenefits, 1e-9)
	assert.InDelta(t, wantNPV/100000, m.BenefitCostRatio, 1e-12)
	assert.InDelta(t, 100000.0/12000.0, m.SimplePaybackYears, 1e-9)
}

func TestSocialBenefitPaybackInterpolation(t *testing.T) {
	// Zero discount rate makes the accumulation linear: 25000 premium at
	// 10000/year crosses midway through year 3.
	m := SocialBenefitMetrics(25000, 10000, 0, 0, 10)
	assert.True(t, m.PaybackWithinLife)
	assert.InDelta(t, 2.5, m.PaybackYears, 1e-9)
}

func TestSocialBenefitPaybackNeverReached(t *testing.T) {
	m := SocialBenefitMetrics(1000000, 1000, 0, 0.07, 10)
	assert.False(t, m.PaybackWithinLife)
	assert.Equal(t, 10.0, m.PaybackYears)
	assert.True(t, math.IsInf(m.SimplePaybackYears, 0) || m.SimplePaybackYears > 10)
}

func TestSocialBenefitNegativeSavings(t *testing.T) {
	m := SocialBenefitMetrics(100000, -5000, 1000, 0.07, 10)
	assert.True(t, math.IsInf(m.SimplePaybackYears, 1))
	assert.False(t, m.PaybackWithinLife)
	assert.Equal(t, 10.0, m.PaybackYears)
}

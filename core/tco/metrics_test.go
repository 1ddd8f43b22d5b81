package tco

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleettco/core/battery"
	"github.com/kilianp07/fleettco/core/energy"
	"github.com/kilianp07/fleettco/core/finance"
)

func TestComparativeMetricsParityInterpolation(t *testing.T) {
	bev := &Result{
		AcquisitionCost: 200000,
		ResidualValue:   40000,
		AnnualCosts:     finance.AnnualCosts{Operating: 20000},
		Emissions:       energy.Emissions{Lifetime: 500000},
		NPVTotal:        350000,
	}
	diesel := &Result{
		AcquisitionCost: 100000,
		ResidualValue:   20000,
		AnnualCosts:     finance.AnnualCosts{Operating: 30000},
		Emissions:       energy.Emissions{Lifetime: 800000},
		NPVTotal:        380000,
	}

	m, err := ComparativeMetricsFor(bev, diesel, 10)
	require.NoError(t, err)

	// 100,000 upfront gap closed at 10,000/year.
	assert.Equal(t, 10.0, m.PriceParityYear)
	assert.Equal(t, 100000.0, m.UpfrontCostDifference)
	assert.Equal(t, 10000.0, m.AnnualOperatingSavings)
	assert.Equal(t, 300000.0, m.EmissionSavingsLifetime)
	// 30,000 cheaper over life, 300 tonnes avoided.
	assert.InDelta(t, -100.0, m.AbatementCost, 1e-9)
	assert.InDelta(t, 350000.0/380000.0, m.BEVToDieselTCORatio, 1e-12)
}

func TestAbatementCostInfiniteWithoutSavings(t *testing.T) {
	bev := &Result{NPVTotal: 350000, Emissions: energy.Emissions{Lifetime: 800000}}
	diesel := &Result{NPVTotal: 380000, Emissions: energy.Emissions{Lifetime: 800000}}

	m, err := ComparativeMetricsFor(bev, diesel, 10)
	require.NoError(t, err)
	assert.True(t, math.IsInf(m.AbatementCost, 1))
}

func TestTCORatioInfiniteOnZeroDiesel(t *testing.T) {
	m, err := ComparativeMetricsFor(&Result{NPVTotal: 100}, &Result{}, 5)
	require.NoError(t, err)
	assert.True(t, math.IsInf(m.BEVToDieselTCORatio, 1))
}

func TestCumulativeCostCurveCashFlows(t *testing.T) {
	r := &Result{
		AcquisitionCost: 100000,
		AnnualCosts:     finance.AnnualCosts{Operating: 10000},
		Infrastructure: finance.InfrastructureCosts{
			FleetSize:           2,
			PriceWithIncentives: 50000,
			AnnualMaintenance:   500,
			ServiceLifeYears:    5,
		},
		Battery: battery.Replacement{Occurs: true, Year: 8.2, Cost: 45000},
	}

	curve := cumulativeCostCurve(r, 10)
	require.Len(t, curve, 11)

	// Acquisition plus the per-vehicle infrastructure capital share.
	assert.InDelta(t, 125000, curve[0], 1e-9)
	// Operating plus maintenance share in a plain year.
	assert.InDelta(t, 135250, curve[1], 1e-9)
	// Replacement cycle capital lands at year 5.
	assert.InDelta(t, curve[4]+10250+25000, curve[5], 1e-9)
	// Battery crossing at 8.2 cashes out in year 9.
	assert.InDelta(t, curve[8]+10250+45000, curve[9], 1e-9)
	// No replacement at the final year even though 10 % 5 == 0.
	assert.InDelta(t, curve[9]+10250, curve[10], 1e-9)
}

func TestCumulativeCostCurveNoInfrastructure(t *testing.T) {
	r := &Result{AcquisitionCost: 100000, AnnualCosts: finance.AnnualCosts{Operating: 30000}}
	curve := cumulativeCostCurve(r, 3)
	assert.Equal(t, []float64{100000, 130000, 160000, 190000}, curve)
}

package tco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleettco/core/errs"
	"github.com/kilianp07/fleettco/core/metrics"
	"github.com/kilianp07/fleettco/core/model"
)

func testParams() Parameters {
	return Parameters{
		AnnualKMs:                100000,
		TruckLifeYears:           10,
		DiscountRate:             0.07,
		FleetSize:                2,
		SelectedChargingID:       "depot",
		SelectedInfrastructureID: "dc-80",
		Financial: model.NewFinancialParameters(map[string]float64{
			model.ParamDieselPrice:         2.0,
			model.ParamInitialDepreciation: 0.1,
			model.ParamAnnualDepreciation:  0.05,
			model.ParamCarbonPrice:         30,
		}),
		Battery: model.BatteryParameters{
			ReplacementCostPerKWh: 150,
			DegradationAnnualRate: 0.025,
			MinimumCapacity:       0.8,
		},
	}
}

func bevRequest() Request {
	return Request{
		RunID: "run-1",
		Vehicle: model.VehicleSpec{
			ID: "bev-1", Model: "eActros", Class: "Articulated",
			Drivetrain: model.DrivetrainBEV, MSRP: 400000, PayloadTonnes: 8,
			KWhPer100KM: 130, BatteryCapacityKWh: 300, ComparisonPairID: "dsl-1",
		},
		Fees: model.FeeSchedule{
			VehicleID: "bev-1", MaintenancePerKM: 0.08,
			RegistrationAnnual: 1000, InsuranceAnnual: 8000, StampDuty: 12000,
		},
		ChargingOptions: model.ChargingOptions{
			{ID: "depot", PerKWhPrice: 0.25, Label: "Depot overnight"},
			{ID: "fast", PerKWhPrice: 0.45, Label: "Public DC"},
		},
		InfrastructureOptions: model.InfrastructureOptions{
			{ID: "dc-80", Description: "80kW DC fast charger", Price: 50000, ServiceLifeYears: 5, MaintenancePercent: 0.01},
		},
		EmissionFactors: model.EmissionFactors{
			{FuelType: model.FuelElectricity, EmissionStandard: model.StandardGrid, CO2PerUnit: 0.7},
			{FuelType: model.FuelDiesel, EmissionStandard: model.StandardEuroIVPlus, CO2PerUnit: 2.68},
		},
		ExternalityRates: model.ExternalityRates{
			{VehicleClass: "Articulated", Drivetrain: model.DrivetrainBEV, Pollutant: model.PollutantTotal, CostPerKM: 0.010},
			{VehicleClass: "Articulated", Drivetrain: model.DrivetrainDiesel, Pollutant: model.PollutantTotal, CostPerKM: 0.050},
		},
		Params: testParams(),
	}
}

func dieselRequest() Request {
	req := bevRequest()
	req.Vehicle = model.VehicleSpec{
		ID: "dsl-1", Model: "Actros", Class: "Articulated",
		Drivetrain: model.DrivetrainDiesel, MSRP: 200000, PayloadTonnes: 10,
		LitresPer100KM: 28,
	}
	req.Fees = model.FeeSchedule{
		VehicleID: "dsl-1", MaintenancePerKM: 0.12,
		RegistrationAnnual: 1000, InsuranceAnnual: 6000, StampDuty: 6000,
	}
	return req
}

func TestCalculateBEV(t *testing.T) {
	svc := NewCalculationService(nil, nil)
	res, err := svc.Calculate(bevRequest())
	require.NoError(t, err)

	assert.InDelta(t, 0.325, res.EnergyCostPerKM, 1e-12)
	// 32500 energy + 8000 maintenance + 1000 registration + 8000 insurance.
	assert.InDelta(t, 49500, res.AnnualCosts.Operating, 1e-9)
	assert.InDelta(t, 412000, res.AcquisitionCost, 1e-9)

	assert.True(t, res.Battery.Occurs)
	assert.Greater(t, res.Battery.NPV, 0.0)

	assert.Equal(t, 2, res.Infrastructure.ReplacementCycles)
	assert.InDelta(t, res.Infrastructure.NPVInfrastructure/2, res.Infrastructure.NPVPerVehicle, 1e-9)

	// The total is exactly the sum of its published parts.
	want := res.AcquisitionCost - res.ResidualValue + res.NPVOperating +
		res.Battery.NPV + res.Infrastructure.NPVPerVehicleWithIncentives
	assert.InDelta(t, want, res.NPVTotal, 1e-9)

	assert.InDelta(t, res.NPVTotal/1e6, res.TCOPerKM, 1e-12)
	assert.InDelta(t, res.TCOPerKM/8, res.TCOPerTonneKM, 1e-12)
	assert.InDelta(t, res.NPVTotal+res.Externalities.NPV, res.Social.SocialTCOLifetime, 1e-9)

	// Daily charging sized from the selected infrastructure option.
	assert.Equal(t, 80.0, res.Charging.ChargerPowerKW)
}

func TestCalculateDiesel(t *testing.T) {
	svc := NewCalculationService(nil, nil)
	res, err := svc.Calculate(dieselRequest())
	require.NoError(t, err)

	assert.InDelta(t, 0.56, res.EnergyCostPerKM, 1e-12)
	assert.False(t, res.Battery.Occurs)
	// No charging infrastructure on the diesel side.
	assert.Equal(t, 0.0, res.Infrastructure.NPVPerVehicleWithIncentives)
	assert.InDelta(t, res.AcquisitionCost-res.ResidualValue+res.NPVOperating, res.NPVTotal, 1e-9)
}

func TestCalculateUsesWeightedMix(t *testing.T) {
	req := bevRequest()
	req.Params.ChargingMix = model.ChargingMix{"depot": 0.8, "fast": 0.2}

	svc := NewCalculationService(nil, nil)
	res, err := svc.Calculate(req)
	require.NoError(t, err)
	assert.InDelta(t, 0.29, res.WeightedElectricityPrice, 1e-12)
	assert.InDelta(t, 1.3*0.29, res.EnergyCostPerKM, 1e-12)
}

func TestCalculateIdempotent(t *testing.T) {
	svc := NewCalculationService(nil, nil)
	first, err := svc.Calculate(bevRequest())
	require.NoError(t, err)
	second, err := svc.Calculate(bevRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateDieselIgnoresIncentives(t *testing.T) {
	incentives := model.Incentives{
		{Type: model.IncentivePurchaseRebate, Drivetrain: model.DrivetrainBEV, Active: true, Rate: 20000},
		{Type: model.IncentiveRegistrationExemption, Drivetrain: model.DrivetrainBEV, Active: true, Rate: 1.0},
	}
	svc := NewCalculationService(nil, nil)

	withReq := dieselRequest()
	withReq.Incentives = incentives
	withReq.Params.ApplyIncentives = true
	with, err := svc.Calculate(withReq)
	require.NoError(t, err)

	withoutReq := dieselRequest()
	withoutReq.Incentives = incentives
	without, err := svc.Calculate(withoutReq)
	require.NoError(t, err)

	assert.Equal(t, without.AcquisitionCost, with.AcquisitionCost)
	assert.Equal(t, without.AnnualCosts, with.AnnualCosts)
	assert.Equal(t, without.NPVTotal, with.NPVTotal)
}

func TestCalculateMissingDieselPrice(t *testing.T) {
	req := dieselRequest()
	req.Params.Financial = model.NewFinancialParameters(map[string]float64{
		model.ParamInitialDepreciation: 0.1,
		model.ParamAnnualDepreciation:  0.05,
	})
	svc := NewCalculationService(nil, nil)
	_, err := svc.Calculate(req)
	require.Error(t, err)
	assert.True(t, errs.IsDataNotFound(err))
}

func TestCalculateProxyExternalities(t *testing.T) {
	req := bevRequest()
	req.ExternalityRates = nil
	svc := NewCalculationService(nil, nil)
	res, err := svc.Calculate(req)
	require.NoError(t, err)
	// 1.3 kWh/km * 0.7 kg/kWh priced at $30/tonne.
	assert.InDelta(t, 0.91*30/1000, res.Externalities.CostPerKM, 1e-12)
	assert.Contains(t, res.Externalities.Breakdown, "CO2e")
}

func TestCompare(t *testing.T) {
	svc := NewCalculationService(nil, nil)
	cmp, err := svc.Compare(bevRequest(), dieselRequest())
	require.NoError(t, err)

	assert.Equal(t, "run-1", cmp.RunID)
	assert.Equal(t, cmp.RunID, cmp.BEV.RunID)
	assert.Equal(t, cmp.RunID, cmp.Diesel.RunID)

	assert.InDelta(t, cmp.Diesel.AnnualCosts.Operating-cmp.BEV.AnnualCosts.Operating,
		cmp.Metrics.AnnualOperatingSavings, 1e-9)
	assert.Greater(t, cmp.Metrics.EmissionSavingsLifetime, 0.0)

	// BEV carries 2 tonnes less than the diesel.
	assert.True(t, cmp.Payload.HasPenalty)
	assert.InDelta(t, 10.0/8.0, cmp.Payload.TripsMultiplier, 1e-12)

	assert.InDelta(t, 0.04, cmp.Externalities.SavingsPerKM, 1e-12)
	assert.Equal(t, cmp.BEV.AcquisitionCost-cmp.Diesel.AcquisitionCost, cmp.SocialBenefit.UpfrontPremium)
}

type captureSink struct {
	calcs []metrics.CalculationEvent
	cmps  []metrics.ComparisonEvent
}

func (s *captureSink) RecordCalculation(ev metrics.CalculationEvent) error {
	s.calcs = append(s.calcs, ev)
	return nil
}

func (s *captureSink) RecordComparison(ev metrics.ComparisonEvent) error {
	s.cmps = append(s.cmps, ev)
	return nil
}

func TestCompareEmitsMetrics(t *testing.T) {
	sink := &captureSink{}
	svc := NewCalculationService(nil, sink)
	_, err := svc.Compare(bevRequest(), dieselRequest())
	require.NoError(t, err)

	require.Len(t, sink.calcs, 2)
	assert.Equal(t, "BEV", sink.calcs[0].Drivetrain)
	assert.Equal(t, "Diesel", sink.calcs[1].Drivetrain)
	require.Len(t, sink.cmps, 1)
	assert.Equal(t, "bev-1", sink.cmps[0].BEVID)
}

func TestCalculateValidatesRequest(t *testing.T) {
	req := bevRequest()
	req.Params.AnnualKMs = 0
	svc := NewCalculationService(nil, nil)
	_, err := svc.Calculate(req)
	require.Error(t, err)
}

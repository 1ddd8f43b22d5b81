package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/fleettco/core/model"
)

func bevSpec() model.VehicleSpec {
	return model.VehicleSpec{ID: "bev-1", Drivetrain: model.DrivetrainBEV, MSRP: 400000, BatteryCapacityKWh: 300}
}

func dieselSpec() model.VehicleSpec {
	return model.VehicleSpec{ID: "dsl-1", Drivetrain: model.DrivetrainDiesel, MSRP: 200000}
}

func testFees() model.FeeSchedule {
	return model.FeeSchedule{MaintenancePerKM: 0.10, RegistrationAnnual: 1000, InsuranceAnnual: 5000, StampDuty: 12000}
}

func testIncentives() model.Incentives {
	return model.Incentives{
		{Type: model.IncentiveRegistrationExemption, Drivetrain: model.DrivetrainBEV, Active: true, Rate: 1.0},
		{Type: model.IncentiveInsuranceDiscount, Drivetrain: model.DrivetrainAll, Active: true, Rate: 0.2},
		{Type: model.IncentiveElectricityDiscount, Drivetrain: model.DrivetrainBEV, Active: true, Rate: 0.1},
		{Type: model.IncentivePurchaseRebate, Drivetrain: model.DrivetrainBEV, Active: true, Rate: 20000},
		{Type: model.IncentiveStampDutyExemption, Drivetrain: model.DrivetrainBEV, Active: true, Rate: 0.5},
	}
}

func TestAnnualCostBreakdownWithoutIncentives(t *testing.T) {
	c := AnnualCostBreakdown(bevSpec(), testFees(), 0.40, 50000, testIncentives(), false)
	assert.Equal(t, 20000.0, c.Energy)
	assert.Equal(t, 5000.0, c.Maintenance)
	assert.Equal(t, 1000.0, c.Registration)
	assert.Equal(t, 5000.0, c.Insurance)
	assert.Equal(t, 31000.0, c.Operating)
}

func TestAnnualCostBreakdownAppliesBEVIncentives(t *testing.T) {
	c := AnnualCostBreakdown(bevSpec(), testFees(), 0.40, 50000, testIncentives(), true)
	assert.Equal(t, 0.0, c.Registration)
	assert.Equal(t, 4000.0, c.Insurance)
	assert.Equal(t, 18000.0, c.Energy)
	assert.Equal(t, 27000.0, c.Operating)
}

func TestAnnualCostBreakdownDieselUnaffectedByIncentives(t *testing.T) {
	with := AnnualCostBreakdown(dieselSpec(), testFees(), 0.56, 50000, testIncentives(), true)
	without := AnnualCostBreakdown(dieselSpec(), testFees(), 0.56, 50000, testIncentives(), false)
	assert.Equal(t, without, with)
}

func TestAcquisitionCost(t *testing.T) {
	cost := AcquisitionCost(bevSpec(), testFees(), testIncentives(), false)
	assert.Equal(t, 412000.0, cost)
}

func TestAcquisitionCostAppliesRebateAndStampDutyExemption(t *testing.T) {
	cost := AcquisitionCost(bevSpec(), testFees(), testIncentives(), true)
	// 412000 - 20000 rebate - 6000 stamp duty share
	assert.Equal(t, 386000.0, cost)
}

func TestAcquisitionCostDieselIgnoresIncentives(t *testing.T) {
	with := AcquisitionCost(dieselSpec(), testFees(), testIncentives(), true)
	without := AcquisitionCost(dieselSpec(), testFees(), testIncentives(), false)
	assert.Equal(t, without, with)
}

package tco

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/fleettco/core/battery"
	"github.com/kilianp07/fleettco/core/energy"
	"github.com/kilianp07/fleettco/core/errs"
	"github.com/kilianp07/fleettco/core/externalities"
	"github.com/kilianp07/fleettco/core/finance"
	"github.com/kilianp07/fleettco/core/logger"
	"github.com/kilianp07/fleettco/core/metrics"
	"github.com/kilianp07/fleettco/core/model"
)

// CalculationService runs the TCO pipeline. It is stateless between calls
// and safe for concurrent use.
type CalculationService struct {
	log  logger.Logger
	sink metrics.MetricsSink
}

// NewCalculationService builds a service. A nil logger or sink falls back to
// the no-op implementation.
func NewCalculationService(log logger.Logger, sink metrics.MetricsSink) *CalculationService {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &CalculationService{log: log, sink: sink}
}

// Calculate runs the full single-vehicle pipeline: energy, annual and
// acquisition costs, residual value, battery replacement, infrastructure,
// emissions and externalities, aggregated into NPV totals and per-km
// metrics. Missing required rows surface as DataNotFoundError; anything
// unexpected is wrapped in a CalculationError naming the failed step.
func (s *CalculationService) Calculate(req Request) (*Result, error) {
	started := time.Now()

	if req.RunID == "" {
		req.RunID = uuid.NewString()
	}
	if err := req.Validate(); err != nil {
		return nil, errs.Calculation("validate request", err)
	}

	v := req.Vehicle
	p := req.Params
	s.log.Debugf("calculating tco for vehicle %s (%s)", v.ID, v.Drivetrain)

	res := &Result{RunID: req.RunID, Vehicle: v}

	energyCost, err := energy.CostPerKM(v, req.ChargingOptions, p.SelectedChargingID, p.ChargingMix, p.Financial)
	if err != nil {
		return nil, errs.Calculation("energy cost", err)
	}
	res.EnergyCostPerKM = energyCost

	if v.IsBEV() && len(p.ChargingMix) > 0 {
		price, err := energy.WeightedElectricityPrice(p.ChargingMix, req.ChargingOptions)
		if err != nil {
			return nil, errs.Calculation("weighted electricity price", err)
		}
		res.WeightedElectricityPrice = price
	}

	res.AnnualCosts = finance.AnnualCostBreakdown(v, req.Fees, energyCost, p.AnnualKMs, req.Incentives, p.ApplyIncentives)
	res.AcquisitionCost = finance.AcquisitionCost(v, req.Fees, req.Incentives, p.ApplyIncentives)

	initialDep, err := p.Financial.Value(model.ParamInitialDepreciation)
	if err != nil {
		return nil, errs.Calculation("residual value", err)
	}
	annualDep, err := p.Financial.Value(model.ParamAnnualDepreciation)
	if err != nil {
		return nil, errs.Calculation("residual value", err)
	}
	res.ResidualValue = finance.ResidualValue(v.MSRP, p.TruckLifeYears, initialDep, annualDep)

	if v.IsBEV() {
		res.Battery = battery.PlanReplacement(v, p.Battery, p.DiscountRate, p.TruckLifeYears)

		if p.SelectedInfrastructureID != "" {
			opt, err := req.InfrastructureOptions.ByID(p.SelectedInfrastructureID)
			if err != nil {
				return nil, errs.Calculation("infrastructure", err)
			}
			infra := finance.CalculateInfrastructureCosts(opt, p.TruckLifeYears, p.DiscountRate, p.FleetSize)
			res.Infrastructure = infra.WithIncentives(req.Incentives, p.ApplyIncentives)
			res.Charging = energy.CalculateChargingRequirements(v, opt, p.AnnualKMs)
		}
	}

	res.Emissions, err = energy.CalculateEmissions(v, req.EmissionFactors, p.AnnualKMs, p.TruckLifeYears)
	if err != nil {
		return nil, errs.Calculation("emissions", err)
	}

	if len(req.ExternalityRates) > 0 {
		res.Externalities = externalities.Calculate(v, req.ExternalityRates, p.AnnualKMs, p.DiscountRate, p.TruckLifeYears)
	} else {
		res.Externalities = externalities.Proxy(res.Emissions.CO2PerKM, p.Financial, p.AnnualKMs, p.DiscountRate, p.TruckLifeYears)
	}

	res.NPVOperating = finance.NPVConstant(res.AnnualCosts.Operating, p.DiscountRate, p.TruckLifeYears)

	res.NPVTotal = res.AcquisitionCost - res.ResidualValue + res.NPVOperating + res.Battery.NPV
	if v.IsBEV() {
		res.NPVTotal += res.Infrastructure.NPVPerVehicleWithIncentives
	}

	totalKM := p.AnnualKMs * float64(p.TruckLifeYears)
	res.TCOLifetime = res.NPVTotal
	res.TCOAnnual = finance.Div(res.NPVTotal, float64(p.TruckLifeYears), 0)
	res.TCOPerKM = finance.Div(res.NPVTotal, totalKM, 0)
	res.TCOPerTonneKM = finance.Div(res.TCOPerKM, v.PayloadTonnes, 0)

	res.Social = externalities.SocialTCO(res.NPVTotal, res.Externalities, p.AnnualKMs, p.TruckLifeYears)

	if err := s.sink.RecordCalculation(metrics.CalculationEvent{
		RunID:       req.RunID,
		VehicleID:   v.ID,
		Drivetrain:  string(v.Drivetrain),
		TCOPerKM:    res.TCOPerKM,
		TCOLifetime: res.TCOLifetime,
		Duration:    time.Since(started),
		Time:        time.Now(),
	}); err != nil {
		s.log.Warnf("failed to record calculation metrics: %v", err)
	}

	s.log.Infof("tco calculated for %s: %.4f $/km over %d years", v.ID, res.TCOPerKM, p.TruckLifeYears)
	return res, nil
}

// Compare runs the pipeline for a BEV and its diesel comparator and derives
// the comparative KPIs, payload-penalty economics, externality comparison
// and social-benefit metrics.
func (s *CalculationService) Compare(bevReq, dieselReq Request) (*ComparisonResult, error) {
	started := time.Now()

	if bevReq.RunID == "" {
		bevReq.RunID = uuid.NewString()
	}
	dieselReq.RunID = bevReq.RunID

	bev, err := s.Calculate(bevReq)
	if err != nil {
		return nil, err
	}
	diesel, err := s.Calculate(dieselReq)
	if err != nil {
		return nil, err
	}

	p := bevReq.Params
	m, err := ComparativeMetricsFor(bev, diesel, p.TruckLifeYears)
	if err != nil {
		return nil, errs.Calculation("comparative metrics", err)
	}

	cmp := &ComparisonResult{
		RunID:   bevReq.RunID,
		BEV:     bev,
		Diesel:  diesel,
		Metrics: m,
	}

	cmp.Payload = finance.PayloadPenaltyCosts(
		payloadEconomics(bev),
		payloadEconomics(diesel),
		p.Financial,
		p.AnnualKMs,
		p.TruckLifeYears,
	)

	cmp.Externalities = externalities.Compare(bev.Externalities, diesel.Externalities)

	cmp.SocialBenefit = externalities.SocialBenefitMetrics(
		bev.AcquisitionCost-diesel.AcquisitionCost,
		m.AnnualOperatingSavings,
		diesel.Externalities.AnnualCost-bev.Externalities.AnnualCost,
		p.DiscountRate,
		p.TruckLifeYears,
	)

	if rec, ok := s.sink.(metrics.ComparisonRecorder); ok {
		if err := rec.RecordComparison(metrics.ComparisonEvent{
			RunID:           cmp.RunID,
			BEVID:           bev.Vehicle.ID,
			DieselID:        diesel.Vehicle.ID,
			TCOSavingsLife:  diesel.NPVTotal - bev.NPVTotal,
			PriceParityYear: m.PriceParityYear,
			AbatementCost:   m.AbatementCost,
			Duration:        time.Since(started),
			Time:            time.Now(),
		}); err != nil {
			s.log.Warnf("failed to record comparison metrics: %v", err)
		}
	}

	return cmp, nil
}

func payloadEconomics(r *Result) finance.PayloadEconomics {
	return finance.PayloadEconomics{
		PayloadTonnes:       r.Vehicle.PayloadTonnes,
		AnnualOperatingCost: r.AnnualCosts.Operating,
		NPVTotalCost:        r.NPVTotal,
		TCOPerTonneKM:       r.TCOPerTonneKM,
	}
}

// Package sensitivity re-runs the TCO pipeline under perturbed inputs:
// single-parameter sweeps, tornado endpoint analysis and externality-rate
// scaling.
package sensitivity

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/fleettco/core/logger"
	"github.com/kilianp07/fleettco/core/metrics"
	"github.com/kilianp07/fleettco/core/model"
	"github.com/kilianp07/fleettco/core/tco"
)

// Sweepable parameter names. Anything else is silently skipped.
const (
	ParamAnnualDistance   = "Annual Distance"
	ParamDieselPrice      = "Diesel Price"
	ParamVehicleLifetime  = "Vehicle Lifetime"
	ParamDiscountRate     = "Discount Rate"
	ParamElectricityPrice = "Electricity Price"
)

// Outcome is the per-vehicle extract collected at each sweep point.
type Outcome struct {
	TCOPerKM            float64
	TCOLifetime         float64
	AnnualOperatingCost float64
}

// Point is one sweep observation.
type Point struct {
	Value  float64
	BEV    Outcome
	Diesel Outcome
}

// SweepResult is the outcome of sweeping one parameter.
type SweepResult struct {
	Parameter string
	Points    []Point
}

// Engine fans the calculation service out over perturbed requests.
type Engine struct {
	svc  *tco.CalculationService
	log  logger.Logger
	sink metrics.MetricsSink
}

// NewEngine builds a sweep engine around the calculation service. A nil
// logger or sink falls back to the no-op implementation.
func NewEngine(svc *tco.CalculationService, log logger.Logger, sink metrics.MetricsSink) *Engine {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{svc: svc, log: log, sink: sink}
}

// Sweep re-runs the full pipeline for both vehicles at each candidate value
// of the named parameter. An unsupported parameter name yields an empty
// result, not an error; the sweep never mutates the incoming requests.
func (e *Engine) Sweep(param string, values []float64, bevReq, dieselReq tco.Request) (SweepResult, error) {
	res := SweepResult{Parameter: param}
	if !supported(param) {
		e.log.Warnf("unsupported sensitivity parameter %q, skipping", param)
		return res, nil
	}

	started := time.Now()
	for _, value := range values {
		bev, err := e.svc.Calculate(perturb(bevReq, param, value))
		if err != nil {
			return SweepResult{}, err
		}
		diesel, err := e.svc.Calculate(perturb(dieselReq, param, value))
		if err != nil {
			return SweepResult{}, err
		}
		res.Points = append(res.Points, Point{
			Value:  value,
			BEV:    outcome(bev),
			Diesel: outcome(diesel),
		})
	}

	if rec, ok := e.sink.(metrics.SweepRecorder); ok {
		if err := rec.RecordSweep(metrics.SweepEvent{
			RunID:     bevReq.RunID,
			Parameter: param,
			Points:    len(res.Points),
			Duration:  time.Since(started),
			Time:      time.Now(),
		}); err != nil {
			e.log.Warnf("failed to record sweep metrics: %v", err)
		}
	}
	return res, nil
}

func supported(param string) bool {
	switch param {
	case ParamAnnualDistance, ParamDieselPrice, ParamVehicleLifetime, ParamDiscountRate, ParamElectricityPrice:
		return true
	}
	return false
}

func outcome(r *tco.Result) Outcome {
	return Outcome{
		TCOPerKM:            r.TCOPerKM,
		TCOLifetime:         r.TCOLifetime,
		AnnualOperatingCost: r.AnnualCosts.Operating,
	}
}

// perturb returns a copy of the request with the named parameter substituted.
func perturb(req tco.Request, param string, value float64) tco.Request {
	switch param {
	case ParamAnnualDistance:
		req.Params.AnnualKMs = value
	case ParamDieselPrice:
		req = req.WithFinancial(req.Params.Financial.WithValue(model.ParamDieselPrice, value))
	case ParamVehicleLifetime:
		years := int(math.Round(value))
		if years < 1 {
			years = 1
		}
		req.Params.TruckLifeYears = years
	case ParamDiscountRate:
		req.Params.DiscountRate = value
	case ParamElectricityPrice:
		req = req.WithChargingOptions(rescaleChargingOptions(req, value))
	}
	return req
}

// rescaleChargingOptions scales every charging price so the selected
// option's price becomes target, preserving the relative spread between
// options. An unknown selection or zero base leaves the table untouched.
func rescaleChargingOptions(req tco.Request, target float64) model.ChargingOptions {
	base, err := req.ChargingOptions.ByID(req.Params.SelectedChargingID)
	if err != nil || base.PerKWhPrice == 0 {
		return req.ChargingOptions
	}
	factor := target / base.PerKWhPrice

	prices := make([]float64, len(req.ChargingOptions))
	for i, opt := range req.ChargingOptions {
		prices[i] = opt.PerKWhPrice
	}
	floats.Scale(factor, prices)

	out := make(model.ChargingOptions, len(req.ChargingOptions))
	for i, opt := range req.ChargingOptions {
		opt.PerKWhPrice = prices[i]
		out[i] = opt
	}
	return out
}

package sensitivity

import (
	"fmt"

	"github.com/kilianp07/fleettco/core/model"
	"github.com/kilianp07/fleettco/core/tco"
)

// Default tornado ranges around the baseline scenario.
const (
	distanceRangePct    = 0.50
	priceRangePct       = 0.20
	lifetimeRangeYears  = 3
	discountRangePoints = 0.03
	minLifetimeYears    = 1
	minDiscountRate     = 0.005
)

// Impact is one tornado bar: the BEV TCO-per-km shift at the low and high
// endpoint of a parameter's default range.
type Impact struct {
	Parameter string
	Low       float64
	High      float64
	// MinImpact and MaxImpact are tco-per-km at the endpoints minus the
	// baseline; either may be negative.
	MinImpact float64
	MaxImpact float64
}

// Tornado sweeps each supported parameter across its default range endpoints
// and reports the BEV TCO-per-km impact relative to the unperturbed
// baseline. Fee tables are mandatory here: without them every bar would be
// built on defaults and the chart would mislead.
func (e *Engine) Tornado(bevReq, dieselReq tco.Request) ([]Impact, error) {
	if bevReq.Fees.VehicleID == "" || dieselReq.Fees.VehicleID == "" {
		return nil, fmt.Errorf("tornado analysis requires fee schedules for both vehicles")
	}

	base, err := e.svc.Calculate(bevReq)
	if err != nil {
		return nil, err
	}
	baseTCO := base.TCOPerKM

	impacts := make([]Impact, 0, 5)
	for _, param := range []string{
		ParamAnnualDistance,
		ParamDieselPrice,
		ParamVehicleLifetime,
		ParamDiscountRate,
		ParamElectricityPrice,
	} {
		low, high, ok := e.tornadoRange(param, bevReq, base)
		if !ok {
			e.log.Warnf("no baseline for tornado parameter %q, skipping", param)
			continue
		}

		sweep, err := e.Sweep(param, []float64{low, high}, bevReq, dieselReq)
		if err != nil {
			return nil, err
		}
		if len(sweep.Points) != 2 {
			continue
		}

		impacts = append(impacts, Impact{
			Parameter: param,
			Low:       low,
			High:      high,
			MinImpact: sweep.Points[0].BEV.TCOPerKM - baseTCO,
			MaxImpact: sweep.Points[1].BEV.TCOPerKM - baseTCO,
		})
	}
	return impacts, nil
}

// tornadoRange derives the default low/high endpoints for one parameter.
// The electricity baseline prefers the already-computed weighted mix price
// over the selected option's list price.
func (e *Engine) tornadoRange(param string, req tco.Request, base *tco.Result) (low, high float64, ok bool) {
	p := req.Params
	switch param {
	case ParamAnnualDistance:
		return p.AnnualKMs * (1 - distanceRangePct), p.AnnualKMs * (1 + distanceRangePct), true
	case ParamDieselPrice:
		price, err := p.Financial.Value(model.ParamDieselPrice)
		if err != nil {
			return 0, 0, false
		}
		return price * (1 - priceRangePct), price * (1 + priceRangePct), true
	case ParamVehicleLifetime:
		low := p.TruckLifeYears - lifetimeRangeYears
		if low < minLifetimeYears {
			low = minLifetimeYears
		}
		return float64(low), float64(p.TruckLifeYears + lifetimeRangeYears), true
	case ParamDiscountRate:
		low := p.DiscountRate - discountRangePoints
		if low < minDiscountRate {
			low = minDiscountRate
		}
		return low, p.DiscountRate + discountRangePoints, true
	case ParamElectricityPrice:
		baseline := base.WeightedElectricityPrice
		if baseline == 0 {
			opt, err := req.ChargingOptions.ByID(p.SelectedChargingID)
			if err != nil {
				return 0, 0, false
			}
			baseline = opt.PerKWhPrice
		}
		return baseline * (1 - priceRangePct), baseline * (1 + priceRangePct), true
	}
	return 0, 0, false
}

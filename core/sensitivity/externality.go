package sensitivity

import (
	"math"

	"github.com/kilianp07/fleettco/core/tco"
)

// DefaultExternalityScalingPcts are the rate adjustments swept when none are
// supplied: halved, unchanged, +50% and doubled.
var DefaultExternalityScalingPcts = []float64{-50, 0, 50, 100}

// ExternalityPoint is the comparison outcome under one externality scaling.
type ExternalityPoint struct {
	ScalingPct float64

	BEVSocialTCO      float64
	DieselSocialTCO   float64
	ExternalitySaving float64
	// SocialAbatementCost is $ per tonne of CO2e avoided once externality
	// savings are counted, +Inf when the BEV avoids nothing.
	SocialAbatementCost float64
}

// ExternalitySweep re-runs the comparison with every externality rate scaled
// by each percentage, showing how sensitive the social case is to the
// valuation of pollution. A nil pcts slice sweeps the default grid.
func (e *Engine) ExternalitySweep(pcts []float64, bevReq, dieselReq tco.Request) ([]ExternalityPoint, error) {
	if pcts == nil {
		pcts = DefaultExternalityScalingPcts
	}

	points := make([]ExternalityPoint, 0, len(pcts))
	for _, pct := range pcts {
		factor := 1 + pct/100

		cmp, err := e.svc.Compare(
			bevReq.WithExternalityRates(bevReq.ExternalityRates.Scaled(factor)),
			dieselReq.WithExternalityRates(dieselReq.ExternalityRates.Scaled(factor)),
		)
		if err != nil {
			return nil, err
		}

		point := ExternalityPoint{
			ScalingPct:        pct,
			BEVSocialTCO:      cmp.BEV.Social.SocialTCOLifetime,
			DieselSocialTCO:   cmp.Diesel.Social.SocialTCOLifetime,
			ExternalitySaving: cmp.Externalities.SavingsLife,
		}

		point.SocialAbatementCost = math.Inf(1)
		if savings := cmp.Metrics.EmissionSavingsLifetime; savings > 0 {
			point.SocialAbatementCost = (cmp.BEV.Social.SocialTCOLifetime - cmp.Diesel.Social.SocialTCOLifetime) / (savings / 1000)
		}
		points = append(points, point)
	}
	return points, nil
}

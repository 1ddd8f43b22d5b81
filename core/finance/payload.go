package finance

import "github.com/kilianp07/fleettco/core/model"

// Defaults used when the financial parameter table omits the payload
// economics inputs.
const (
	defaultFreightValuePerTonne = 120.0
	defaultDriverCostHourly     = 35.0
	defaultAvgTripDistanceKM    = 100.0
	defaultAvgLoadUnloadHours   = 1.0

	avgSpeedKMH = 60.0
)

// PayloadEconomics carries the per-vehicle figures the payload-penalty model
// needs from an already-computed TCO result.
type PayloadEconomics struct {
	PayloadTonnes       float64
	AnnualOperatingCost float64
	NPVTotalCost        float64
	TCOPerTonneKM       float64
}

// PayloadPenalty quantifies the economics of a BEV carrying less than its
// diesel comparator: extra trips, extra labour and the opportunity cost of
// lost carrying capacity.
type PayloadPenalty struct {
	HasPenalty           bool
	PayloadDifference    float64
	PayloadDifferencePct float64

	TripsMultiplier      float64
	AdditionalTripsPct   float64
	FleetRatio           float64
	AdditionalBEVsNeeded float64

	AdditionalOperatingAnnual   float64
	AdditionalOperatingLifetime float64

	AdditionalHoursAnnual    float64
	AdditionalLabourAnnual   float64
	AdditionalLabourLifetime float64

	LostCapacityAnnualTonnes float64
	OpportunityCostAnnual    float64
	OpportunityCostLifetime  float64

	TCOPerEffectiveTonneKM float64
	AdjustedLifetimeTCO    float64
}

// PayloadPenaltyCosts compares BEV and diesel payloads and, when the BEV
// carries less, derives the annual and lifetime cost of making up the
// shortfall with additional trips.
func PayloadPenaltyCosts(
	bev, diesel PayloadEconomics,
	params model.FinancialParameters,
	annualKMs float64,
	lifeYears int,
) PayloadPenalty {
	diff := diesel.PayloadTonnes - bev.PayloadTonnes
	p := PayloadPenalty{
		PayloadDifference:    diff,
		PayloadDifferencePct: Div(diff, diesel.PayloadTonnes, 0) * 100,
	}
	if diff <= 0 {
		return p
	}
	p.HasPenalty = true

	trips := Div(diesel.PayloadTonnes, bev.PayloadTonnes, 1)
	p.TripsMultiplier = trips
	p.AdditionalTripsPct = (trips - 1) * 100
	p.FleetRatio = trips
	p.AdditionalBEVsNeeded = trips - 1

	freightValue := params.ValueOr(model.ParamFreightValuePerTonne, defaultFreightValuePerTonne)
	driverCost := params.ValueOr(model.ParamDriverCostHourly, defaultDriverCostHourly)
	tripDistance := params.ValueOr(model.ParamAvgTripDistance, defaultAvgTripDistanceKM)
	loadUnload := params.ValueOr(model.ParamAvgLoadUnloadTime, defaultAvgLoadUnloadHours)

	life := float64(lifeYears)

	p.AdditionalOperatingAnnual = (trips - 1) * bev.AnnualOperatingCost
	p.AdditionalOperatingLifetime = p.AdditionalOperatingAnnual * life

	drivingHours := annualKMs / avgSpeedKMH
	tripsPerYear := Div(annualKMs, tripDistance, 0)
	loadUnloadHours := tripsPerYear * loadUnload
	p.AdditionalHoursAnnual = (drivingHours + loadUnloadHours) * (trips - 1)
	p.AdditionalLabourAnnual = p.AdditionalHoursAnnual * driverCost
	p.AdditionalLabourLifetime = p.AdditionalLabourAnnual * life

	p.LostCapacityAnnualTonnes = diff * tripsPerYear
	p.OpportunityCostAnnual = p.LostCapacityAnnualTonnes * freightValue
	p.OpportunityCostLifetime = p.OpportunityCostAnnual * life

	effectiveRatio := Div(bev.PayloadTonnes, diesel.PayloadTonnes, 1)
	p.TCOPerEffectiveTonneKM = Div(bev.TCOPerTonneKM, effectiveRatio, 0)
	p.AdjustedLifetimeTCO = bev.NPVTotalCost + p.AdditionalOperatingLifetime

	return p
}

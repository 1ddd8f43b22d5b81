package externalities

import "sort"

// PollutantDelta compares one pollutant's cost per km across two vehicles.
type PollutantDelta struct {
	Pollutant    string
	BEVPerKM     float64
	DieselPerKM  float64
	SavingsPerKM float64
}

// Comparison sets BEV and diesel externality bills side by side.
type Comparison struct {
	BEV             Costs
	Diesel          Costs
	SavingsPerKM    float64
	SavingsAnnual   float64
	SavingsLife     float64
	ByPollutant     []PollutantDelta
	BEVReductionPct float64
}

// Compare diffs the two externality bills. ByPollutant covers the union of
// both breakdowns in sorted order; a pollutant absent from one side counts
// as zero there.
func Compare(bev, diesel Costs) Comparison {
	c := Comparison{
		BEV:           bev,
		Diesel:        diesel,
		SavingsPerKM:  diesel.CostPerKM - bev.CostPerKM,
		SavingsAnnual: diesel.AnnualCost - bev.AnnualCost,
		SavingsLife:   diesel.LifetimeCost - bev.LifetimeCost,
	}
	if diesel.CostPerKM > 0 {
		c.BEVReductionPct = c.SavingsPerKM / diesel.CostPerKM * 100
	}

	seen := make(map[string]struct{}, len(bev.Breakdown)+len(diesel.Breakdown))
	var names []string
	for p := range bev.Breakdown {
		seen[p] = struct{}{}
		names = append(names, p)
	}
	for p := range diesel.Breakdown {
		if _, ok := seen[p]; !ok {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	for _, p := range names {
		b := bev.Breakdown[p].CostPerKM
		d := diesel.Breakdown[p].CostPerKM
		c.ByPollutant = append(c.ByPollutant, PollutantDelta{
			Pollutant:    p,
			BEVPerKM:     b,
			DieselPerKM:  d,
			SavingsPerKM: d - b,
		})
	}
	return c
}

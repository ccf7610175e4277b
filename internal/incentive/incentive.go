// Package incentive stacks capital-cost incentive programs for a battery asset.
package incentive

import "bess-valuation/internal/model"

// BreakdownEntry is one applied program and its dollar value.
type BreakdownEntry struct {
	Program string
	Amount  float64
}

// Result reports the stacked incentive value. GrossCapitalCost is carried
// along for reuse by the financial engine so both sides price the asset
// identically.
type Result struct {
	GrossCapitalCost float64
	Total            float64
	Breakdown        []BreakdownEntry
}

// Apply computes the gross capital cost and the total incentive value.
//
// ITC and CEIC are mutually exclusive: when both are enabled only the larger
// applies. The bonus credit, state $/kWh programs and the custom program
// stack additively. Only non-zero amounts appear in the breakdown.
func Apply(asset model.BESSAssetParameters, programs model.IncentiveProgramSet) Result {
	gross := asset.GrossCapitalCost()
	kwh := asset.CapacityKWh()

	res := Result{GrossCapitalCost: gross}
	add := func(name string, amount float64) {
		if amount == 0 {
			return
		}
		res.Breakdown = append(res.Breakdown, BreakdownEntry{Program: name, Amount: amount})
		res.Total += amount
	}

	itc := 0.0
	if programs.ITCEnabled {
		itc = programs.ITCPct * gross
	}
	ceic := 0.0
	if programs.CEICEnabled {
		ceic = programs.CEICPct * gross
	}
	switch {
	case itc >= ceic && itc > 0:
		add("investment_tax_credit", itc)
	case ceic > 0:
		add("clean_electricity_investment_credit", ceic)
	}

	if programs.BonusEnabled {
		add("bonus_credit", programs.BonusPct*gross)
	}
	for _, sp := range programs.StatePrograms {
		add(sp.Name, sp.RatePerKWh*kwh)
	}
	if c := programs.Custom; c != nil {
		switch c.Kind {
		case model.CustomPerKWh:
			add(c.Name, c.Rate*kwh)
		case model.CustomPctOfCost:
			add(c.Name, c.Rate*gross)
		}
	}
	return res
}

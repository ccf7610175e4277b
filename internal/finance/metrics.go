package finance

import (
	"math"

	"bess-valuation/internal/model"
)

// computeMetrics fills NPV, IRR, payback and LCOS from the finished ledger.
func (in Inputs) computeMetrics(res *Result) {
	flows := make([]float64, len(res.Ledger))
	for i, rec := range res.Ledger {
		flows[i] = rec.NetCashFlow
	}

	rate := in.Assumptions.DiscountRate
	if rate <= -1 {
		res.Diagnostics = append(res.Diagnostics, "discount rate <= -100%; NPV and LCOS undefined")
		res.NPV = model.UndefinedMetric()
		res.LCOS = model.UndefinedMetric()
	} else {
		res.NPV = model.DefinedMetric(npv(rate, flows))
		res.LCOS = in.lcos(res, rate)
	}

	if v, ok := irr(flows); ok {
		res.IRR = model.DefinedMetric(v)
	} else {
		res.IRR = model.UndefinedMetric()
	}

	if v, ok := payback(res.Ledger); ok {
		res.PaybackYears = model.DefinedMetric(v)
	} else {
		res.PaybackYears = model.UndefinedMetric()
	}
}

// npv discounts a cash-flow series where index == year.
func npv(rate float64, flows []float64) float64 {
	sum := 0.0
	for year, cf := range flows {
		sum += cf / math.Pow(1+rate, float64(year))
	}
	return sum
}

// irr finds the discount rate where NPV crosses zero, by bisection.
// Only attempted for a conventional series: negative year 0 and at least one
// positive later flow.
func irr(flows []float64) (float64, bool) {
	if len(flows) < 2 || flows[0] >= 0 {
		return 0, false
	}
	hasPositive := false
	for _, cf := range flows[1:] {
		if cf > 0 {
			hasPositive = true
			break
		}
	}
	if !hasPositive {
		return 0, false
	}

	lo, hi := -0.9999, 10.0
	fLo := npv(lo, flows)
	fHi := npv(hi, flows)
	for i := 0; fLo*fHi > 0 && i < 8; i++ {
		hi *= 2
		fHi = npv(hi, flows)
	}
	if fLo*fHi > 0 {
		return 0, false
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fMid := npv(mid, flows)
		if math.Abs(fMid) < 1e-9 {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, true
}

// payback is the first year cumulative cash flow turns non-negative, linearly
// interpolated within that year. ok is false when it never recovers.
func payback(ledger []CashFlowRecord) (float64, bool) {
	if len(ledger) == 0 {
		return 0, false
	}
	if ledger[0].CumulativeCashFlow >= 0 {
		return 0, true
	}
	prev := ledger[0].CumulativeCashFlow
	for _, rec := range ledger[1:] {
		if rec.CumulativeCashFlow >= 0 {
			frac := 1.0
			if rec.NetCashFlow > 0 {
				frac = -prev / rec.NetCashFlow
			}
			return float64(rec.Year-1) + frac, true
		}
		prev = rec.CumulativeCashFlow
	}
	return 0, false
}

// lcos is discounted lifetime cost (O&M + replacement + decommissioning)
// divided by discounted lifetime discharge, $/MWh.
func (in Inputs) lcos(res *Result, rate float64) model.Metric {
	costs := 0.0
	energy := 0.0
	for _, rec := range res.Ledger {
		disc := math.Pow(1+rate, float64(rec.Year))
		costs += (rec.OMCost + rec.ReplacementCost + rec.DecommissioningCost) / disc
		if rec.Year > 0 {
			energy += in.AnnualDischargeMWh / disc
		}
	}
	if energy <= 0 {
		res.Diagnostics = append(res.Diagnostics, "zero discounted discharge; LCOS undefined")
		return model.UndefinedMetric()
	}
	return model.DefinedMetric(costs / energy)
}

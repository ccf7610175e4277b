// Package finance builds the multi-year after-tax cash-flow ledger and the
// summary investment metrics for a battery project.
package finance

import (
	"errors"
	"fmt"
	"math"

	"bess-valuation/internal/incentive"
	"bess-valuation/internal/model"
)

// CashFlowRecord is one year of the project ledger (year 0 = commissioning).
type CashFlowRecord struct {
	Year                int
	GrossSavings        float64
	OMCost              float64
	ReplacementCost     float64
	DecommissioningCost float64
	TaxableIncome       float64
	Taxes               float64
	NetCashFlow         float64
	CumulativeCashFlow  float64
}

// Inputs collects everything the projection needs. AnnualSavings and
// AnnualDischargeMWh are year-1 levels from the billing engine; CyclesPerDay
// and OperatingDaysPerYear come from the EAF duty cycle and drive battery
// wear-out.
type Inputs struct {
	Asset                model.BESSAssetParameters
	Assumptions          model.FinancialAssumptions
	AnnualSavings        float64
	AnnualDischargeMWh   float64
	Incentives           incentive.Result
	CyclesPerDay         float64
	OperatingDaysPerYear float64
}

// Result is the ledger plus summary metrics. ReplacementIntervalYears is
// +Inf when no replacement is ever scheduled.
type Result struct {
	Ledger []CashFlowRecord

	GrossInitialCost         float64
	NetInitialCost           float64
	ReplacementIntervalYears float64

	NPV          model.Metric
	IRR          model.Metric
	PaybackYears model.Metric
	LCOS         model.Metric // $/MWh discharged

	Diagnostics []string
}

// Evaluate produces the ledger (lifespan+1 records, years 0..N) and metrics.
//
// Replacements are scheduled with an explicit next-due counter advanced by the
// effective replacement interval. Every due time falling within a year fires a
// full replacement charge in that year, so sub-year intervals fire multiple
// times in a single year; no partial-cost proration is applied.
func Evaluate(in Inputs) (*Result, error) {
	if err := in.Asset.Validate(); err != nil {
		return nil, fmt.Errorf("asset parameters: %w", err)
	}
	if err := in.Assumptions.Validate(); err != nil {
		return nil, fmt.Errorf("financial assumptions: %w", err)
	}
	if in.AnnualSavings < 0 {
		return nil, errors.New("AnnualSavings must be >= 0")
	}

	res := &Result{GrossInitialCost: in.Incentives.GrossCapitalCost}
	res.NetInitialCost = res.GrossInitialCost - in.Incentives.Total
	if res.NetInitialCost < 0 {
		res.Diagnostics = append(res.Diagnostics,
			"incentives exceed gross capital cost; net initial cost is negative")
	}

	omYear1 := in.yearOneOM(res.GrossInitialCost)
	res.ReplacementIntervalYears = in.replacementInterval(res)

	n := in.Assumptions.LifespanYears
	infl := in.Assumptions.InflationRate
	decommBase := in.Asset.DecommissioningCost() - in.Assumptions.SalvagePct*res.GrossInitialCost

	ledger := make([]CashFlowRecord, 0, n+1)
	cum := -res.NetInitialCost
	ledger = append(ledger, CashFlowRecord{
		Year:               0,
		NetCashFlow:        -res.NetInitialCost,
		CumulativeCashFlow: cum,
	})

	nextDue := res.ReplacementIntervalYears
	for year := 1; year <= n; year++ {
		factor := math.Pow(1+infl, float64(year-1))

		rec := CashFlowRecord{
			Year:         year,
			GrossSavings: in.AnnualSavings * factor,
			OMCost:       omYear1 * factor,
		}
		if !math.IsInf(res.ReplacementIntervalYears, 1) {
			for nextDue <= float64(year)+1e-9 {
				rec.ReplacementCost += res.GrossInitialCost * factor
				nextDue += res.ReplacementIntervalYears
			}
		}
		if year == n {
			rec.DecommissioningCost = decommBase * factor
		}

		rec.TaxableIncome = rec.GrossSavings - rec.OMCost - rec.ReplacementCost - rec.DecommissioningCost
		if rec.TaxableIncome > 0 {
			rec.Taxes = rec.TaxableIncome * in.Assumptions.TaxRate
		}
		rec.NetCashFlow = rec.TaxableIncome - rec.Taxes
		cum += rec.NetCashFlow
		rec.CumulativeCashFlow = cum
		ledger = append(ledger, rec)
	}
	res.Ledger = ledger

	in.computeMetrics(res)
	return res, nil
}

// yearOneOM resolves the technology's opex model plus insurance at year-1 price levels.
func (in Inputs) yearOneOM(grossCost float64) float64 {
	var om float64
	switch in.Asset.Opex.Kind {
	case model.OpexFixedPerKWYear:
		om = in.Asset.Opex.Rate * in.Asset.PowerKW()
	case model.OpexPerKWhYear:
		om = in.Asset.Opex.Rate * in.Asset.CapacityKWh()
	}
	return om + in.Asset.InsurancePctPerYear*grossCost
}

// replacementInterval is min(calendar life, cycle-limited life) in years.
func (in Inputs) replacementInterval(res *Result) float64 {
	annualCycles := in.CyclesPerDay * in.OperatingDaysPerYear
	cycleLimited := math.Inf(1)
	if annualCycles > 0 {
		cycleLimited = in.Asset.CycleLife / annualCycles
	}
	interval := math.Min(in.Asset.CalendarLifeYears, cycleLimited)
	if interval <= 0 || math.IsNaN(interval) {
		res.Diagnostics = append(res.Diagnostics,
			"replacement interval not positive; no replacements scheduled")
		return math.Inf(1)
	}
	return interval
}

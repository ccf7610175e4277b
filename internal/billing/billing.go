// Package billing computes time-of-use utility bills for the EAF load with
// and without battery peak shaving.
package billing

import (
	"fmt"

	"bess-valuation/internal/dispatch"
	"bess-valuation/internal/loadgen"
	"bess-valuation/internal/model"
)

// SampleStepMin is the dispatch simulation resolution in minutes.
const SampleStepMin = 0.25

// daysInMonth is a nominal non-leap calendar year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthlyBill is one month of charges for a single supply variant.
type MonthlyBill struct {
	Month        int
	Days         int
	EnergyCost   float64
	DemandCost   float64
	Total        float64
	PeakDemandKW float64
}

// MonthlyPair holds the with/without-BESS bills for one month.
type MonthlyPair struct {
	Month        int
	Without      MonthlyBill
	With         MonthlyBill
	Savings      float64
	DischargeMWh float64
}

// AnnualBilling aggregates months 1-12 of a nominal year.
type AnnualBilling struct {
	Months             []MonthlyPair
	AnnualWithout      float64
	AnnualWith         float64
	AnnualSavings      float64
	AnnualDischargeMWh float64
	Diagnostics        []string
}

// MonthBillPair bills one calendar month for both variants.
//
// A single representative melt cycle is simulated and its per-cycle energies
// are allocated across the filled TOU intervals assuming cycles are uniformly
// distributed over the day. That uniform-distribution assumption is a
// modeling simplification shared with the demand-charge treatment: the
// month's peak demand is the representative cycle's peak grid power.
func MonthBillPair(eaf model.EAFParameters, batteryLimitMW float64, tariff model.TariffDefinition, month, days int) (MonthlyPair, []string) {
	var diags []string

	mult, ok := tariff.SeasonalMultiplier(month)
	if !ok {
		diags = append(diags, fmt.Sprintf("month %d not in any season set; multiplier defaulted to 1.0", month))
	}

	dur := eaf.EffectiveCycleDurationMin()
	samples := loadgen.SampleTimes(dur, SampleStepMin)
	perFurnace := loadgen.Profile(samples, eaf.SizeTons, dur)

	load := make([]float64, len(perFurnace))
	for i, p := range perFurnace {
		load[i] = p * float64(eaf.FurnaceCount)
	}

	with := dispatch.PeakShave(load, eaf.GridCapMW, batteryLimitMW)

	// Without BESS the grid carries the full, uncapped load.
	gridEnergyWithout := trapezoidMWh(load, SampleStepMin)
	gridEnergyWith := trapezoidMWh(with.GridMW, SampleStepMin)
	battEnergyWith := trapezoidMWh(with.BatteryMW, SampleStepMin)

	peakWithoutKW := loadgen.Peak(load) * 1000
	peakWithKW := loadgen.Peak(with.GridMW) * 1000

	pair := MonthlyPair{
		Month:   month,
		Without: billVariant(eaf, tariff, mult, month, days, gridEnergyWithout, peakWithoutKW),
		With:    billVariant(eaf, tariff, mult, month, days, gridEnergyWith, peakWithKW),
	}
	pair.Savings = pair.Without.Total - pair.With.Total
	pair.DischargeMWh = eaf.CyclesPerDay * float64(days) * battEnergyWith
	return pair, diags
}

func billVariant(eaf model.EAFParameters, tariff model.TariffDefinition, mult float64, month, days int, perCycleGridMWh, peakKW float64) MonthlyBill {
	b := MonthlyBill{Month: month, Days: days, PeakDemandKW: peakKW}
	for _, iv := range tariff.Filled {
		cycles := eaf.CyclesPerDay * (iv.Hours() / 24.0) * float64(days)
		rate := tariff.EnergyRates[iv.RateClass] * mult
		b.EnergyCost += cycles * perCycleGridMWh * rate
	}
	b.DemandCost = peakKW * tariff.DemandChargePerKWMonth * mult
	b.Total = b.EnergyCost + b.DemandCost
	return b
}

// Annual bills months 1-12 and aggregates savings and battery throughput.
// The tariff must already carry its filled TOU list (see NormalizeTariff).
func Annual(eaf model.EAFParameters, batteryLimitMW float64, tariff model.TariffDefinition) (AnnualBilling, error) {
	if err := eaf.Validate(); err != nil {
		return AnnualBilling{}, fmt.Errorf("eaf parameters: %w", err)
	}
	if err := tariff.Validate(); err != nil {
		return AnnualBilling{}, fmt.Errorf("tariff: %w", err)
	}

	out := AnnualBilling{Months: make([]MonthlyPair, 0, 12)}
	for m := 1; m <= 12; m++ {
		pair, diags := MonthBillPair(eaf, batteryLimitMW, tariff, m, daysInMonth[m-1])
		out.Months = append(out.Months, pair)
		out.Diagnostics = append(out.Diagnostics, diags...)
		out.AnnualWithout += pair.Without.Total
		out.AnnualWith += pair.With.Total
		out.AnnualSavings += pair.Savings
		out.AnnualDischargeMWh += pair.DischargeMWh
	}
	return out, nil
}

// trapezoidMWh integrates a power series (MW) sampled at stepMin minutes.
func trapezoidMWh(powerMW []float64, stepMin float64) float64 {
	if len(powerMW) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(powerMW); i++ {
		sum += (powerMW[i-1] + powerMW[i]) / 2.0
	}
	return sum * stepMin / 60.0
}

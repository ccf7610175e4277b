package analysis

import (
	"math"
	"sort"

	"bess-valuation/internal/loadgen"
	"bess-valuation/internal/model"
)

// ShavingPotential is a plant-level summary of the peak-shaving opportunity.
// It intentionally does not depend on a specific battery size; it includes
// raw load stats plus the power and energy a battery would need to shave the
// entire excursion above the grid cap.
type ShavingPotential struct {
	PeakMW float64
	MeanMW float64
	MinMW  float64
	P05MW  float64
	P95MW  float64

	GridCapMW float64

	// RequiredPowerMW is the discharge power that would shave the full peak.
	RequiredPowerMW float64
	// EnergyAboveCapMWh is the energy above the cap over one melt cycle.
	EnergyAboveCapMWh float64

	ShavableMWhPerDay  float64
	ShavableMWhPerYear float64
}

const sampleStepMin = 0.25

// ComputePotential samples the plant load over one melt cycle and summarizes
// how much of it sits above the grid import cap.
func ComputePotential(eaf model.EAFParameters) ShavingPotential {
	p := ShavingPotential{GridCapMW: eaf.GridCapMW}
	dur := eaf.EffectiveCycleDurationMin()
	samples := loadgen.SampleTimes(dur, sampleStepMin)
	if len(samples) == 0 {
		return p
	}
	profile := loadgen.Profile(samples, eaf.SizeTons, dur)

	furnaces := eaf.FurnaceCount
	if furnaces < 1 {
		furnaces = 1
	}
	load := make([]float64, len(profile))
	for i, v := range profile {
		load[i] = v * float64(furnaces)
	}

	sum := 0.0
	minv := math.Inf(1)
	vals := make([]float64, 0, len(load))
	for _, v := range load {
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
	}
	sort.Float64s(vals)
	p.PeakMW = vals[len(vals)-1]
	p.MinMW = minv
	p.MeanMW = sum / float64(len(vals))
	p.P05MW = percentileSorted(vals, 0.05)
	p.P95MW = percentileSorted(vals, 0.95)

	if p.PeakMW > eaf.GridCapMW {
		p.RequiredPowerMW = p.PeakMW - eaf.GridCapMW
	}

	excess := make([]float64, len(load))
	for i, v := range load {
		if v > eaf.GridCapMW {
			excess[i] = v - eaf.GridCapMW
		}
	}
	p.EnergyAboveCapMWh = trapezoidMWh(excess, sampleStepMin)
	p.ShavableMWhPerDay = p.EnergyAboveCapMWh * eaf.CyclesPerDay
	p.ShavableMWhPerYear = p.ShavableMWhPerDay * eaf.OperatingDaysPerYear
	return p
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// trapezoidMWh integrates a uniformly sampled MW series over stepMin-minute
// intervals.
func trapezoidMWh(powerMW []float64, stepMin float64) float64 {
	total := 0.0
	for i := 1; i < len(powerMW); i++ {
		total += (powerMW[i-1] + powerMW[i]) / 2 * stepMin / 60
	}
	return total
}

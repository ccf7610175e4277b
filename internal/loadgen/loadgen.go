// Package loadgen produces synthetic electric-arc-furnace power profiles
// for a single melt cycle.
package loadgen

import "math"

// The reference cycle is 28 minutes split into four phases at fixed fractions.
// Actual cycles of any duration are mapped onto the same fractional shape.
const (
	refCycleMinutes = 28.0

	boreInEndFrac   = 3.0 / 28.0
	mainMeltEndFrac = 17.0 / 28.0
	meltTailEndFrac = 20.0 / 28.0
)

// Reference peak power for a 100-ton furnace, MW. Power scales sub-linearly
// with heat size via (size/100)^0.6.
const refPeakMW = 80.0

// Ripple periods in reference-cycle minutes. Angular frequency is scaled by
// (reference duration / actual duration) so the cycle shape is duration-invariant.
const (
	meltRipplePeriodMin   = 2.0
	refineRipplePeriodMin = 3.0

	meltRippleAmp   = 0.06
	refineRippleAmp = 0.04
)

// SampleTimes returns sample times in minutes covering [0, cycleDurationMin]
// at the given step. A non-positive duration or step yields nil.
func SampleTimes(cycleDurationMin, stepMin float64) []float64 {
	if cycleDurationMin <= 0 || stepMin <= 0 {
		return nil
	}
	n := int(math.Floor(cycleDurationMin/stepMin)) + 1
	out := make([]float64, 0, n+1)
	for t := 0.0; t < cycleDurationMin; t += stepMin {
		out = append(out, t)
	}
	return append(out, cycleDurationMin)
}

// Profile evaluates the melt-cycle power curve (MW) at each sample time.
// Sample times are minutes within [0, cycleDurationMin]. A non-positive
// cycle duration yields an all-zero profile.
func Profile(samplesMin []float64, sizeTons, cycleDurationMin float64) []float64 {
	out := make([]float64, len(samplesMin))
	if cycleDurationMin <= 0 {
		return out
	}
	scale := math.Pow(sizeTons/100.0, 0.6)
	freqScale := refCycleMinutes / cycleDurationMin
	for i, t := range samplesMin {
		out[i] = powerAt(t, cycleDurationMin, freqScale) * refPeakMW * scale
	}
	return out
}

// powerAt returns the per-unit power (fraction of scaled peak) at minute t.
func powerAt(tMin, cycleDurationMin, freqScale float64) float64 {
	frac := tMin / cycleDurationMin
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	switch {
	case frac < boreInEndFrac:
		// Bore-in: ramp from a cautious start to full arc power.
		phi := frac / boreInEndFrac
		return 0.35 + 0.65*phi
	case frac < mainMeltEndFrac:
		// Main melt: full power with arc flicker ripple.
		omega := 2 * math.Pi / meltRipplePeriodMin * freqScale
		return 0.95 + meltRippleAmp*math.Sin(omega*tMin)
	case frac < meltTailEndFrac:
		// Melt tail: taper as the scrap collapses into the bath.
		phi := (frac - mainMeltEndFrac) / (meltTailEndFrac - mainMeltEndFrac)
		return 0.95 - 0.35*phi
	default:
		// Refine: reduced flat-bath power with a gentler ripple.
		omega := 2 * math.Pi / refineRipplePeriodMin * freqScale
		return 0.50 + refineRippleAmp*math.Sin(omega*tMin)
	}
}

// Peak returns the maximum of a profile, zero for an empty one.
func Peak(profile []float64) float64 {
	peak := 0.0
	for _, p := range profile {
		if p > peak {
			peak = p
		}
	}
	return peak
}

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-valuation/internal/loadgen"
)

func TestPeakShaveConservation(t *testing.T) {
	samples := loadgen.SampleTimes(36, 0.25)
	load := loadgen.Profile(samples, 120, 36)

	cap := 50.0
	limit := 20.0
	s := PeakShave(load, cap, limit)
	require.Len(t, s.GridMW, len(load))
	require.Len(t, s.BatteryMW, len(load))

	for i, l := range load {
		if l > cap {
			assert.InDelta(t, l, s.GridMW[i]+s.BatteryMW[i], 1e-9, "sample %d", i)
			want := l - cap
			if want > limit {
				want = limit
			}
			assert.InDelta(t, want, s.BatteryMW[i], 1e-9, "sample %d", i)
		} else {
			assert.Equal(t, l, s.GridMW[i], "sample %d", i)
			assert.Zero(t, s.BatteryMW[i], "sample %d", i)
		}
	}
}

func TestPeakShaveNoBenefit(t *testing.T) {
	samples := loadgen.SampleTimes(36, 0.25)
	load := loadgen.Profile(samples, 100, 36)

	// Cap above any possible peak: the battery never discharges.
	s := PeakShave(load, 1000, 50)
	for i := range load {
		assert.Equal(t, load[i], s.GridMW[i])
		assert.Zero(t, s.BatteryMW[i])
	}
}

func TestPeakShaveLimitBinding(t *testing.T) {
	load := []float64{100}
	s := PeakShave(load, 40, 10)
	assert.Equal(t, 10.0, s.BatteryMW[0])
	assert.Equal(t, 90.0, s.GridMW[0])
}

func TestPeakShaveNegativeCoercion(t *testing.T) {
	load := []float64{30}
	s := PeakShave(load, -5, -5)
	// Both coerced to zero: cap 0 means everything is excess but the battery
	// can supply nothing.
	assert.Equal(t, 30.0, s.GridMW[0])
	assert.Zero(t, s.BatteryMW[0])
}

package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-valuation/internal/model"
)

func assertCovers24(t *testing.T, filled []model.TOUInterval) {
	t.Helper()
	require.NotEmpty(t, filled)
	assert.Equal(t, 0.0, filled[0].StartHour)
	assert.Equal(t, 24.0, filled[len(filled)-1].EndHour)
	total := 0.0
	cursor := 0.0
	for _, iv := range filled {
		assert.InDelta(t, cursor, iv.StartHour, 1e-9)
		assert.Greater(t, iv.EndHour, iv.StartHour)
		total += iv.Hours()
		cursor = iv.EndHour
	}
	assert.InDelta(t, 24.0, total, 1e-9)
}

func TestFillTOUGapsEmpty(t *testing.T) {
	filled, diags := FillTOUGaps(nil)
	require.Len(t, filled, 1)
	assert.Equal(t, model.RateClassOffPeak, filled[0].RateClass)
	assertCovers24(t, filled)
	assert.Empty(t, diags)
}

func TestFillTOUGapsBackfill(t *testing.T) {
	filled, diags := FillTOUGaps([]model.TOUInterval{
		{StartHour: 11, EndHour: 19, RateClass: "peak"},
		{StartHour: 7, EndHour: 11, RateClass: "mid_peak"},
	})
	assertCovers24(t, filled)
	assert.Empty(t, diags)

	// [0,7) off_peak, [7,11) mid, [11,19) peak, [19,24) off_peak
	require.Len(t, filled, 4)
	assert.Equal(t, model.RateClassOffPeak, filled[0].RateClass)
	assert.Equal(t, "mid_peak", filled[1].RateClass)
	assert.Equal(t, "peak", filled[2].RateClass)
	assert.Equal(t, model.RateClassOffPeak, filled[3].RateClass)
}

func TestFillTOUGapsDropsInvalid(t *testing.T) {
	filled, diags := FillTOUGaps([]model.TOUInterval{
		{StartHour: 9, EndHour: 9, RateClass: "peak"},   // empty
		{StartHour: 12, EndHour: 10, RateClass: "peak"}, // inverted
		{StartHour: -1, EndHour: 5, RateClass: "peak"},  // out of range
		{StartHour: 20, EndHour: 25, RateClass: "peak"}, // out of range
		{StartHour: 8, EndHour: 12, RateClass: "peak"},
	})
	assertCovers24(t, filled)
	assert.Len(t, diags, 4)
}

func TestFillTOUGapsOverlapFlagged(t *testing.T) {
	filled, diags := FillTOUGaps([]model.TOUInterval{
		{StartHour: 8, EndHour: 14, RateClass: "peak"},
		{StartHour: 12, EndHour: 18, RateClass: "mid_peak"},
	})
	assertCovers24(t, filled)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "overlap")

	// Earlier start wins the overlapped range.
	for _, iv := range filled {
		if iv.StartHour < 14 && iv.EndHour > 8 {
			if iv.StartHour >= 8 && iv.EndHour <= 14 {
				assert.Equal(t, "peak", iv.RateClass)
			}
		}
	}
}

func TestFillTOUGapsFullyOverlapped(t *testing.T) {
	filled, diags := FillTOUGaps([]model.TOUInterval{
		{StartHour: 8, EndHour: 20, RateClass: "peak"},
		{StartHour: 10, EndHour: 12, RateClass: "mid_peak"},
	})
	assertCovers24(t, filled)
	require.Len(t, diags, 1)
	for _, iv := range filled {
		assert.NotEqual(t, "mid_peak", iv.RateClass)
	}
}

func TestFillTOUGapsRandomizedCompleteness(t *testing.T) {
	// A handful of awkward hand-picked lists; completeness must always hold.
	lists := [][]model.TOUInterval{
		{{StartHour: 0, EndHour: 24, RateClass: "peak"}},
		{{StartHour: 23.5, EndHour: 24, RateClass: "peak"}},
		{{StartHour: 0, EndHour: 0.25, RateClass: "peak"}},
		{
			{StartHour: 1, EndHour: 2, RateClass: "a"},
			{StartHour: 2, EndHour: 3, RateClass: "b"},
			{StartHour: 2.5, EndHour: 6, RateClass: "c"},
			{StartHour: 22, EndHour: 23, RateClass: "d"},
		},
	}
	for _, list := range lists {
		filled, _ := FillTOUGaps(list)
		assertCovers24(t, filled)
	}
}

func TestNormalizeTariffDefaultsOffPeakRate(t *testing.T) {
	tariff := model.TariffDefinition{
		EnergyRates: map[string]float64{"peak": 90},
		TOUIntervals: []model.TOUInterval{
			{StartHour: 8, EndHour: 20, RateClass: "peak"},
		},
	}
	normalized, diags := NormalizeTariff(tariff)
	assertCovers24(t, normalized.Filled)
	assert.Contains(t, normalized.EnergyRates, model.RateClassOffPeak)
	require.NotEmpty(t, diags)
	assert.False(t, math.IsNaN(normalized.EnergyRates[model.RateClassOffPeak]))
	require.NoError(t, normalized.Validate())
}

package sizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-valuation/internal/config"
	"bess-valuation/internal/model"
)

func scenario(t *testing.T) (model.EAFParameters, model.TariffDefinition, model.FinancialAssumptions, model.IncentiveProgramSet, model.BESSAssetParameters) {
	t.Helper()
	cfg := config.Default()
	asset, err := cfg.BESS.ToModel()
	require.NoError(t, err)
	programs, err := cfg.Incentives.ToModel()
	require.NoError(t, err)
	return cfg.EAF.ToModel(), cfg.Tariff.ToModel(), cfg.Financial.ToModel(), programs, asset
}

func smallSearch() SearchConfig {
	return SearchConfig{
		CapacityMinMWh: 10,
		CapacityMaxMWh: 60,
		PowerMinMW:     5,
		PowerMaxMW:     40,
		Steps:          4,
		CRateMin:       0.2,
		CRateMax:       2.5,
		Workers:        4,
	}
}

func TestOptimizeFindsBest(t *testing.T) {
	eaf, tariff, fin, programs, base := scenario(t)

	res, err := Optimize(context.Background(), eaf, tariff, fin, programs, base, smallSearch())
	require.NoError(t, err)
	require.NotNil(t, res.Best)
	assert.Len(t, res.Grid, 16)
	assert.Greater(t, res.Evaluated, 0)

	// Best really is the max valid NPV in the table.
	for _, c := range res.Grid {
		if c.Skipped || c.Err != "" || !c.NPV.OK {
			continue
		}
		assert.LessOrEqual(t, c.NPV.Value, res.Best.NPV.Value)
	}
}

func TestOptimizeCRateBand(t *testing.T) {
	eaf, tariff, fin, programs, base := scenario(t)

	cfg := smallSearch()
	cfg.CRateMin = 0.5
	cfg.CRateMax = 1.0
	res, err := Optimize(context.Background(), eaf, tariff, fin, programs, base, cfg)
	require.NoError(t, err)

	for _, c := range res.Grid {
		rate := c.PowerMW / c.CapacityMWh
		if rate < 0.5 || rate > 1.0 {
			assert.True(t, c.Skipped, "pair %.1f/%.1f should be skipped", c.CapacityMWh, c.PowerMW)
			assert.False(t, c.NPV.OK)
		} else {
			assert.False(t, c.Skipped)
		}
	}
}

func TestOptimizeParallelMatchesSerial(t *testing.T) {
	eaf, tariff, fin, programs, base := scenario(t)

	serialCfg := smallSearch()
	serialCfg.Workers = 1
	serial, err := Optimize(context.Background(), eaf, tariff, fin, programs, base, serialCfg)
	require.NoError(t, err)

	parallelCfg := smallSearch()
	parallelCfg.Workers = 8
	parallel, err := Optimize(context.Background(), eaf, tariff, fin, programs, base, parallelCfg)
	require.NoError(t, err)

	require.Len(t, parallel.Grid, len(serial.Grid))
	for i := range serial.Grid {
		assert.Equal(t, serial.Grid[i].CapacityMWh, parallel.Grid[i].CapacityMWh)
		assert.Equal(t, serial.Grid[i].PowerMW, parallel.Grid[i].PowerMW)
		assert.Equal(t, serial.Grid[i].NPV, parallel.Grid[i].NPV)
	}
	require.NotNil(t, serial.Best)
	require.NotNil(t, parallel.Best)
	assert.Equal(t, serial.Best.CapacityMWh, parallel.Best.CapacityMWh)
	assert.Equal(t, serial.Best.PowerMW, parallel.Best.PowerMW)
}

func TestOptimizeRecordsCandidateErrors(t *testing.T) {
	eaf, tariff, fin, programs, base := scenario(t)
	// Break the base asset so every evaluation fails validation; the search
	// must finish anyway with per-candidate errors and no best.
	base.CalendarLifeYears = 0

	res, err := Optimize(context.Background(), eaf, tariff, fin, programs, base, smallSearch())
	require.NoError(t, err)
	assert.Nil(t, res.Best)
	for _, c := range res.Grid {
		if c.Skipped {
			continue
		}
		assert.NotEmpty(t, c.Err)
	}
}

func TestOptimizeCancellation(t *testing.T) {
	eaf, tariff, fin, programs, base := scenario(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Optimize(ctx, eaf, tariff, fin, programs, base, smallSearch())
	assert.Error(t, err)
}

func TestOptimizeRejectsBadSearchConfig(t *testing.T) {
	eaf, tariff, fin, programs, base := scenario(t)
	cfg := smallSearch()
	cfg.Steps = 0
	_, err := Optimize(context.Background(), eaf, tariff, fin, programs, base, cfg)
	assert.Error(t, err)
}

func TestLinspace(t *testing.T) {
	vals := linspace(10, 100, 10)
	require.Len(t, vals, 10)
	assert.Equal(t, 10.0, vals[0])
	assert.Equal(t, 100.0, vals[9])
	assert.InDelta(t, 20.0, vals[1], 1e-9)

	assert.Equal(t, []float64{5}, linspace(5, 50, 1))
}

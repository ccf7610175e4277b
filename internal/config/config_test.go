package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-valuation/internal/model"
)

func TestDefaultScenarioIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	asset, err := cfg.BESS.ToModel()
	require.NoError(t, err)
	require.NoError(t, asset.Validate())
	assert.Equal(t, model.OpexFixedPerKWYear, asset.Opex.Kind)
}

func TestPresetCatalogsConvert(t *testing.T) {
	for id, mill := range DefaultMills() {
		assert.NoError(t, mill.ToModel().Validate(), "mill %s", id)
	}
	for id, tech := range DefaultTechnologies() {
		tech.CapacityMWh = 10
		tech.PowerMW = 5
		asset, err := tech.ToModel()
		require.NoError(t, err, "technology %s", id)
		assert.NoError(t, asset.Validate(), "technology %s", id)
	}
	for id, tariff := range DefaultTariffs() {
		m := tariff.ToModel()
		assert.NotEmpty(t, m.EnergyRates, "tariff %s", id)
	}
}

func TestMergeOverridesNonZeroOnly(t *testing.T) {
	base := DefaultMills()["mini_mill"]
	merged := MergeEAF(base, EAFConfig{SizeTons: 120})
	assert.Equal(t, 120.0, merged.SizeTons)
	assert.Equal(t, base.GridCapMW, merged.GridCapMW)
	assert.Equal(t, base.CyclesPerDay, merged.CyclesPerDay)

	techBase := DefaultTechnologies()["vanadium_flow"]
	mergedTech := MergeBESS(techBase, BESSConfig{CapacityMWh: 80, PowerMW: 20})
	assert.Equal(t, 80.0, mergedTech.CapacityMWh)
	assert.Equal(t, techBase.StorageCostPerKWh, mergedTech.StorageCostPerKWh)
	assert.Equal(t, "per_kwh_year", mergedTech.OpexModel)
}

func TestLoadScenarioWithPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	body := `
mill_preset: mini_mill
tariff_preset: tou_seasonal
technology_preset: lfp
eaf:
  size_tons: 140
bess:
  capacity_mwh: 30
  power_mw: 15
financial:
  discount_rate: 0.07
  lifespan_years: 15
  tax_rate: 0.21
incentives:
  itc_enabled: true
  itc_pct: 0.30
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Preset base with per-field overrides on top.
	assert.Equal(t, 140.0, cfg.EAF.SizeTons)
	assert.Equal(t, DefaultMills()["mini_mill"].GridCapMW, cfg.EAF.GridCapMW)
	assert.Equal(t, 30.0, cfg.BESS.CapacityMWh)
	assert.Equal(t, DefaultTechnologies()["lfp"].StorageCostPerKWh, cfg.BESS.StorageCostPerKWh)
	assert.Equal(t, "TOU seasonal industrial", cfg.Tariff.Name)
}

func TestLoadRejectsUnknownPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mill_preset: nonexistent\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mill preset")
}

func TestParseOpexModel(t *testing.T) {
	opex, err := parseOpexModel("fixed_per_kw", 8)
	require.NoError(t, err)
	assert.Equal(t, model.OpexFixedPerKWYear, opex.Kind)

	opex, err = parseOpexModel("per_kwh_year", 6)
	require.NoError(t, err)
	assert.Equal(t, model.OpexPerKWhYear, opex.Kind)

	_, err = parseOpexModel("bogus", 1)
	assert.Error(t, err)
}

func TestIncentivesToModelCustomKinds(t *testing.T) {
	inc := IncentivesConfig{CustomName: "grant", CustomKind: "pct_of_cost", CustomRate: 0.05}
	programs, err := inc.ToModel()
	require.NoError(t, err)
	require.NotNil(t, programs.Custom)
	assert.Equal(t, model.CustomPctOfCost, programs.Custom.Kind)

	inc.CustomKind = "bogus"
	_, err = inc.ToModel()
	assert.Error(t, err)
}

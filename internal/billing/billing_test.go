package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-valuation/internal/model"
)

func testEAF() model.EAFParameters {
	return model.EAFParameters{
		SizeTons:             100,
		FurnaceCount:         1,
		GridCapMW:            60,
		CyclesPerDay:         24,
		BaseCycleDurationMin: 36,
		OperatingDaysPerYear: 330,
	}
}

func testTariff(t *testing.T) model.TariffDefinition {
	t.Helper()
	tariff := model.TariffDefinition{
		EnergyRates: map[string]float64{
			"off_peak": 40,
			"peak":     100,
		},
		DemandChargePerKWMonth: 15,
		TOUIntervals: []model.TOUInterval{
			{StartHour: 8, EndHour: 20, RateClass: "peak"},
		},
	}
	normalized, diags := NormalizeTariff(tariff)
	require.Empty(t, diags)
	return normalized
}

func TestAnnualHighGridCapYieldsNoSavings(t *testing.T) {
	// Grid cap far above any EAF peak: the battery never runs.
	eaf := testEAF()
	eaf.GridCapMW = 1000

	bills, err := Annual(eaf, 25, testTariff(t))
	require.NoError(t, err)
	assert.InDelta(t, 0, bills.AnnualSavings, 1e-6)
	assert.InDelta(t, 0, bills.AnnualDischargeMWh, 1e-6)
	assert.InDelta(t, bills.AnnualWithout, bills.AnnualWith, 1e-6)
}

func TestAnnualFlatTariffEnergyOnly(t *testing.T) {
	// Flat rate, no demand charge, cap above peak: both variants bill
	// identical pure-energy costs.
	flat := model.TariffDefinition{
		EnergyRates: map[string]float64{"off_peak": 55},
	}
	normalized, _ := NormalizeTariff(flat)

	eaf := testEAF()
	eaf.GridCapMW = 1000

	bills, err := Annual(eaf, 25, normalized)
	require.NoError(t, err)
	assert.InDelta(t, bills.AnnualWithout, bills.AnnualWith, 1e-6)
	for _, m := range bills.Months {
		assert.Zero(t, m.Without.DemandCost)
		assert.Zero(t, m.With.DemandCost)
		assert.InDelta(t, m.Without.EnergyCost, m.Without.Total, 1e-9)
	}
}

func TestMonthBillPeakShavingReducesDemandCharge(t *testing.T) {
	eaf := testEAF() // 60 MW cap, ~81 MW peak
	pair, diags := MonthBillPair(eaf, 25, testTariff(t), 1, 31)
	assert.Empty(t, diags)

	assert.Greater(t, pair.Without.PeakDemandKW, pair.With.PeakDemandKW)
	assert.InDelta(t, 60000, pair.With.PeakDemandKW, 1.0)
	assert.Greater(t, pair.Savings, 0.0)
	assert.Greater(t, pair.DischargeMWh, 0.0)
}

func TestMonthBillSeasonalMultiplier(t *testing.T) {
	tariff := testTariff(t)
	tariff.Seasonal = true
	tariff.SummerMonths = []int{7}
	tariff.WinterMonths = []int{1}
	tariff.SummerMultiplier = 2.0
	tariff.WinterMultiplier = 1.0

	eaf := testEAF()
	eaf.GridCapMW = 1000 // isolate pure scaling

	january, _ := MonthBillPair(eaf, 25, tariff, 1, 31)
	july, _ := MonthBillPair(eaf, 25, tariff, 7, 31)
	assert.InDelta(t, 2*january.Without.Total, july.Without.Total, 1e-6)

	// Month in no season set: multiplier defaults to 1.0 with a diagnostic.
	_, diags := MonthBillPair(eaf, 25, tariff, 3, 31)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "season")
}

func TestAnnualDischargeScalesWithCycles(t *testing.T) {
	tariff := testTariff(t)
	eaf := testEAF()

	base, err := Annual(eaf, 25, tariff)
	require.NoError(t, err)
	require.Greater(t, base.AnnualDischargeMWh, 0.0)

	eaf.CyclesPerDay = 48
	double, err := Annual(eaf, 25, tariff)
	require.NoError(t, err)
	assert.InDelta(t, 2*base.AnnualDischargeMWh, double.AnnualDischargeMWh, 1e-6)
}

func TestTrapezoidMWh(t *testing.T) {
	// Constant 60 MW for 60 minutes = 60 MWh.
	power := make([]float64, 61)
	for i := range power {
		power[i] = 60
	}
	assert.InDelta(t, 60.0, trapezoidMWh(power, 1.0), 1e-9)

	assert.Zero(t, trapezoidMWh(nil, 1.0))
	assert.Zero(t, trapezoidMWh([]float64{5}, 1.0))
}

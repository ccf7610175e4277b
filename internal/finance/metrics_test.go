package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV(t *testing.T) {
	// -1000 now, +1100 in a year at 10% discounts to exactly zero.
	assert.InDelta(t, 0.0, npv(0.10, []float64{-1000, 1100}), 1e-9)

	// Zero rate: plain sum.
	assert.InDelta(t, 300.0, npv(0, []float64{-100, 200, 200}), 1e-9)
}

func TestIRRKnownRoot(t *testing.T) {
	v, ok := irr([]float64{-1000, 1100})
	require.True(t, ok)
	assert.InDelta(t, 0.10, v, 1e-6)

	v, ok = irr([]float64{-1000, 0, 0, 1331})
	require.True(t, ok)
	assert.InDelta(t, 0.10, v, 1e-6)
}

func TestIRRUndefined(t *testing.T) {
	// No initial outflow.
	_, ok := irr([]float64{1000, 100})
	assert.False(t, ok)

	// No positive flows.
	_, ok = irr([]float64{-1000, -100, -100})
	assert.False(t, ok)

	_, ok = irr([]float64{-1000})
	assert.False(t, ok)
}

func TestPaybackInterpolation(t *testing.T) {
	ledger := []CashFlowRecord{
		{Year: 0, NetCashFlow: -100, CumulativeCashFlow: -100},
		{Year: 1, NetCashFlow: 40, CumulativeCashFlow: -60},
		{Year: 2, NetCashFlow: 80, CumulativeCashFlow: 20},
	}
	v, ok := payback(ledger)
	require.True(t, ok)
	// Recovers 60 of year 2's 80: 1.75 years.
	assert.InDelta(t, 1.75, v, 1e-9)
}

func TestPaybackNever(t *testing.T) {
	ledger := []CashFlowRecord{
		{Year: 0, NetCashFlow: -100, CumulativeCashFlow: -100},
		{Year: 1, NetCashFlow: 10, CumulativeCashFlow: -90},
	}
	_, ok := payback(ledger)
	assert.False(t, ok)
}

func TestLCOSUndefinedWithoutDischarge(t *testing.T) {
	in := testInputs()
	in.AnnualDischargeMWh = 0
	res, err := Evaluate(in)
	require.NoError(t, err)
	assert.False(t, res.LCOS.OK)

	found := false
	for _, d := range res.Diagnostics {
		if d == "zero discounted discharge; LCOS undefined" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLCOSMatchesHandComputation(t *testing.T) {
	in := testInputs()
	in.Assumptions.InflationRate = 0
	in.Assumptions.LifespanYears = 2
	in.Asset.DisconnectCostPerKWh = 0
	in.Asset.RecyclingCostPerKWh = 0

	res, err := Evaluate(in)
	require.NoError(t, err)
	require.True(t, res.LCOS.OK)

	r := in.Assumptions.DiscountRate
	om := res.Ledger[1].OMCost
	costs := om/(1+r) + om/math.Pow(1+r, 2)
	energy := in.AnnualDischargeMWh/(1+r) + in.AnnualDischargeMWh/math.Pow(1+r, 2)
	assert.InDelta(t, costs/energy, res.LCOS.Value, 1e-9)
}

func TestNPVMatchesLedger(t *testing.T) {
	in := testInputs()
	res, err := Evaluate(in)
	require.NoError(t, err)
	require.True(t, res.NPV.OK)

	want := 0.0
	for _, rec := range res.Ledger {
		want += rec.NetCashFlow / math.Pow(1+in.Assumptions.DiscountRate, float64(rec.Year))
	}
	assert.InDelta(t, want, res.NPV.Value, 1e-6)
}

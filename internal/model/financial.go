package model

import "errors"

// FinancialAssumptions drive the multi-year cash-flow projection.
// Rates are fractions (0.08 = 8%), not percentages.
type FinancialAssumptions struct {
	DiscountRate  float64 // WACC
	LifespanYears int
	TaxRate       float64
	InflationRate float64
	// SalvagePct is an optional salvage value as a fraction of gross cost,
	// secondary to the decommissioning cost model.
	SalvagePct float64
}

func (f FinancialAssumptions) Validate() error {
	if f.LifespanYears <= 0 {
		return errors.New("LifespanYears must be > 0")
	}
	if f.DiscountRate <= -1 {
		return errors.New("DiscountRate must be > -100%")
	}
	if f.TaxRate < 0 || f.TaxRate > 1 {
		return errors.New("TaxRate must be in [0, 1]")
	}
	return nil
}

// Package valuation orchestrates the full techno-economic chain:
// billing -> incentives -> financial projection.
package valuation

import (
	"fmt"

	"bess-valuation/internal/billing"
	"bess-valuation/internal/finance"
	"bess-valuation/internal/incentive"
	"bess-valuation/internal/model"
)

// SimulationResult aggregates one full calculation run. Created fresh per
// invocation and never mutated afterwards.
type SimulationResult struct {
	Billing     billing.AnnualBilling
	Incentives  incentive.Result
	Finance     *finance.Result
	Diagnostics []string
}

// ValidateInputs runs the tier-1 configuration checks and returns every
// problem found as a human-readable message. Any entry blocks calculation.
func ValidateInputs(eaf model.EAFParameters, asset model.BESSAssetParameters, tariff model.TariffDefinition, fin model.FinancialAssumptions) []string {
	var problems []string
	if err := eaf.Validate(); err != nil {
		problems = append(problems, fmt.Sprintf("eaf parameters: %v", err))
	}
	if err := asset.Validate(); err != nil {
		problems = append(problems, fmt.Sprintf("battery parameters: %v", err))
	}
	if len(tariff.EnergyRates) == 0 {
		problems = append(problems, "tariff: EnergyRates must not be empty")
	}
	if tariff.DemandChargePerKWMonth < 0 {
		problems = append(problems, "tariff: DemandChargePerKWMonth must be >= 0")
	}
	if err := fin.Validate(); err != nil {
		problems = append(problems, fmt.Sprintf("financial assumptions: %v", err))
	}
	return problems
}

// Calculate runs one full valuation for a fixed battery size.
//
// The tariff's derived TOU cover is (re)built here, so callers may pass raw
// interval lists; gap-filler diagnostics surface on the result.
func Calculate(eaf model.EAFParameters, asset model.BESSAssetParameters, tariff model.TariffDefinition, fin model.FinancialAssumptions, programs model.IncentiveProgramSet) (*SimulationResult, error) {
	if problems := ValidateInputs(eaf, asset, tariff, fin); len(problems) > 0 {
		return nil, fmt.Errorf("invalid inputs: %v", problems)
	}

	normalized, touDiags := billing.NormalizeTariff(tariff)

	bills, err := billing.Annual(eaf, asset.PowerMW, normalized)
	if err != nil {
		return nil, fmt.Errorf("billing: %w", err)
	}

	inc := incentive.Apply(asset, programs)

	proj, err := finance.Evaluate(finance.Inputs{
		Asset:                asset,
		Assumptions:          fin,
		AnnualSavings:        bills.AnnualSavings,
		AnnualDischargeMWh:   bills.AnnualDischargeMWh,
		Incentives:           inc,
		CyclesPerDay:         eaf.CyclesPerDay,
		OperatingDaysPerYear: eaf.OperatingDaysPerYear,
	})
	if err != nil {
		return nil, fmt.Errorf("finance: %w", err)
	}

	res := &SimulationResult{
		Billing:    bills,
		Incentives: inc,
		Finance:    proj,
	}
	res.Diagnostics = append(res.Diagnostics, touDiags...)
	res.Diagnostics = append(res.Diagnostics, bills.Diagnostics...)
	res.Diagnostics = append(res.Diagnostics, proj.Diagnostics...)
	return res, nil
}

package main

import (
	"fmt"
	"os"

	"bess-valuation/internal/analysis"
	"bess-valuation/internal/config"
	"bess-valuation/internal/valuation"
)

// Demo:
// - Build the default mini-mill scenario (100t EAF, seasonal TOU tariff, LFP BESS)
// - Run one valuation
// - Print the monthly comparison and the cash-flow ledger
func main() {
	cfg := config.Default()

	asset, err := cfg.BESS.ToModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bess config: %v\n", err)
		os.Exit(1)
	}
	programs, err := cfg.Incentives.ToModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "incentives config: %v\n", err)
		os.Exit(1)
	}

	res, err := valuation.Calculate(cfg.EAF.ToModel(), asset, cfg.Tariff.ToModel(), cfg.Financial.ToModel(), programs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scenario: %s / %s / %s %.0f MWh %.0f MW\n\n",
		cfg.MillPreset, cfg.Tariff.Name, cfg.BESS.Technology, cfg.BESS.CapacityMWh, cfg.BESS.PowerMW)

	pot := analysis.ComputePotential(cfg.EAF.ToModel())
	fmt.Printf("Load: peak %.1f MW, mean %.1f MW, p95 %.1f MW against a %.1f MW cap\n",
		pot.PeakMW, pot.MeanMW, pot.P95MW, pot.GridCapMW)
	fmt.Printf("Full shave needs %.1f MW and %.2f MWh per cycle (%.0f MWh/year shavable)\n\n",
		pot.RequiredPowerMW, pot.EnergyAboveCapMWh, pot.ShavableMWhPerYear)

	fmt.Printf("%-6s %-14s %-14s %-12s %-12s\n", "month", "bill w/o BESS", "bill w/ BESS", "savings", "peak kW w/")
	for _, m := range res.Billing.Months {
		fmt.Printf("%-6d %-14.0f %-14.0f %-12.0f %-12.0f\n",
			m.Month, m.Without.Total, m.With.Total, m.Savings, m.With.PeakDemandKW)
	}
	fmt.Printf("\nAnnual savings: $%.0f   Annual discharge: %.1f MWh\n",
		res.Billing.AnnualSavings, res.Billing.AnnualDischargeMWh)

	fmt.Printf("\nGross cost $%.0f, incentives $%.0f, net $%.0f\n",
		res.Finance.GrossInitialCost, res.Incentives.Total, res.Finance.NetInitialCost)
	for _, e := range res.Incentives.Breakdown {
		fmt.Printf("  %-38s $%.0f\n", e.Program, e.Amount)
	}

	fmt.Printf("\n%-5s %-12s %-12s %-12s %-12s %-12s\n", "year", "savings", "o&m", "replace", "net", "cumulative")
	for _, r := range res.Finance.Ledger {
		fmt.Printf("%-5d %-12.0f %-12.0f %-12.0f %-12.0f %-12.0f\n",
			r.Year, r.GrossSavings, r.OMCost, r.ReplacementCost, r.NetCashFlow, r.CumulativeCashFlow)
	}

	fmt.Println()
	if res.Finance.NPV.OK {
		fmt.Printf("NPV: $%.0f\n", res.Finance.NPV.Value)
	}
	if res.Finance.IRR.OK {
		fmt.Printf("IRR: %.2f%%\n", res.Finance.IRR.Value*100)
	}
	if res.Finance.PaybackYears.OK {
		fmt.Printf("Payback: %.1f years\n", res.Finance.PaybackYears.Value)
	}
	if res.Finance.LCOS.OK {
		fmt.Printf("LCOS: $%.2f/MWh\n", res.Finance.LCOS.Value)
	}
}

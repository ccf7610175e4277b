package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"bess-valuation/internal/analysis"
	"bess-valuation/internal/config"
	"bess-valuation/internal/finance"
	"bess-valuation/internal/model"
	"bess-valuation/internal/sizing"
	"bess-valuation/internal/valuation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calculate":
		cmdCalculate(os.Args[2:])
	case "optimize":
		cmdOptimize(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calculate --config examples/scenario.yaml --out results/cashflow.csv")
	fmt.Println("  cli optimize --config examples/scenario.yaml --out results/grid.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - calculate writes the per-year cash-flow ledger as CSV")
	fmt.Println("  - optimize searches capacity/power pairs and writes the grid table as CSV")
	fmt.Println("  - with no --config, the built-in mini-mill scenario is used")
}

func loadScenario(path string) *config.Config {
	if path == "" {
		cfg := config.Default()
		return &cfg
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdCalculate(args []string) {
	fs := flag.NewFlagSet("calculate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "results/cashflow.csv", "Output CSV path for the cash-flow ledger")
	_ = fs.Parse(args)

	cfg := loadScenario(*cfgPath)
	eaf, asset, tariff, fin, programs := toModels(cfg)

	if problems := valuation.ValidateInputs(eaf, asset, tariff, fin); len(problems) > 0 {
		fmt.Fprintln(os.Stderr, "invalid inputs:")
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		os.Exit(1)
	}

	res, err := valuation.Calculate(eaf, asset, tariff, fin, programs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculate: %v\n", err)
		os.Exit(1)
	}

	pot := analysis.ComputePotential(eaf)
	fmt.Printf("Plant peak %.1f MW against a %.1f MW cap: %.1f MW / %.2f MWh per cycle to shave fully\n",
		pot.PeakMW, pot.GridCapMW, pot.RequiredPowerMW, pot.EnergyAboveCapMWh)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := finance.WriteCashFlowCSV(*outPath, res.Finance.Ledger); err != nil {
		fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d ledger rows to %s\n", len(res.Finance.Ledger), *outPath)
	fmt.Printf("Annual savings $%.0f  Net initial cost $%.0f\n",
		res.Billing.AnnualSavings, res.Finance.NetInitialCost)
	printMetric("NPV", res.Finance.NPV, "$%.0f")
	printMetric("IRR", res.Finance.IRR, "%.2f%%", 100)
	printMetric("Payback", res.Finance.PaybackYears, "%.1f years")
	printMetric("LCOS", res.Finance.LCOS, "$%.2f/MWh")
	for _, d := range res.Diagnostics {
		fmt.Printf("note: %s\n", d)
	}
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "results/grid.csv", "Output CSV path for the candidate grid")
	_ = fs.Parse(args)

	cfg := loadScenario(*cfgPath)
	eaf, asset, tariff, fin, programs := toModels(cfg)

	search := sizing.DefaultSearchConfig()
	if s := cfg.Search; s != nil {
		if s.CapacityMinMWh > 0 {
			search.CapacityMinMWh = s.CapacityMinMWh
		}
		if s.CapacityMaxMWh > 0 {
			search.CapacityMaxMWh = s.CapacityMaxMWh
		}
		if s.PowerMinMW > 0 {
			search.PowerMinMW = s.PowerMinMW
		}
		if s.PowerMaxMW > 0 {
			search.PowerMaxMW = s.PowerMaxMW
		}
		if s.Steps > 0 {
			search.Steps = s.Steps
		}
		if s.CRateMin > 0 {
			search.CRateMin = s.CRateMin
		}
		if s.CRateMax > 0 {
			search.CRateMax = s.CRateMax
		}
		if s.Workers > 0 {
			search.Workers = s.Workers
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := sizing.Optimize(ctx, eaf, tariff, fin, programs, asset, search)
	if err != nil {
		fmt.Fprintf(os.Stderr, "optimize: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := sizing.WriteGridCSV(*outPath, res.Grid); err != nil {
		fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Evaluated %d candidates, wrote %d rows to %s\n", res.Evaluated, len(res.Grid), *outPath)
	if res.Best == nil {
		fmt.Println("No candidate produced a computable NPV")
		return
	}
	fmt.Printf("Best size: %.1f MWh / %.1f MW\n", res.Best.CapacityMWh, res.Best.PowerMW)
	printMetric("NPV", res.Best.NPV, "$%.0f")
	printMetric("IRR", res.Best.IRR, "%.2f%%", 100)
	printMetric("Payback", res.Best.PaybackYears, "%.1f years")
	printMetric("LCOS", res.Best.LCOS, "$%.2f/MWh")

	fmt.Println("\nTop candidates by NPV:")
	for i, c := range analysis.RankByNPV(res.Grid, 5) {
		fmt.Printf("  %d. %.1f MWh / %.1f MW  NPV $%.0f\n", i+1, c.CapacityMWh, c.PowerMW, c.NPV.Value)
	}
}

func toModels(cfg *config.Config) (model.EAFParameters, model.BESSAssetParameters, model.TariffDefinition, model.FinancialAssumptions, model.IncentiveProgramSet) {
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
	return cfg.EAF.ToModel(), asset, cfg.Tariff.ToModel(), cfg.Financial.ToModel(), programs
}

// printMetric renders a possibly-undefined metric; scale (optional) multiplies
// the value first, e.g. fraction -> percent.
func printMetric(name string, m model.Metric, format string, scale ...float64) {
	if !m.OK {
		fmt.Printf("%s: not computable\n", name)
		return
	}
	v := m.Value
	if len(scale) > 0 {
		v *= scale[0]
	}
	fmt.Printf("%s: "+format+"\n", name, v)
}

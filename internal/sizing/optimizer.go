// Package sizing searches capacity/power combinations for the NPV-maximizing
// battery size.
package sizing

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bess-valuation/internal/model"
	"bess-valuation/internal/valuation"
)

// SearchConfig bounds the candidate grid. Steps candidates are evaluated per
// axis; pairs whose C-rate (power/capacity) falls outside the feasible band
// are skipped.
type SearchConfig struct {
	CapacityMinMWh float64
	CapacityMaxMWh float64
	PowerMinMW     float64
	PowerMaxMW     float64
	Steps          int
	CRateMin       float64
	CRateMax       float64
	Workers        int
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		CapacityMinMWh: 5,
		CapacityMaxMWh: 100,
		PowerMinMW:     5,
		PowerMaxMW:     80,
		Steps:          10,
		CRateMin:       0.2,
		CRateMax:       2.5,
		Workers:        4,
	}
}

func (c SearchConfig) validate() error {
	if c.Steps <= 0 {
		return errors.New("Steps must be > 0")
	}
	if c.CapacityMinMWh <= 0 || c.CapacityMaxMWh < c.CapacityMinMWh {
		return errors.New("capacity range invalid")
	}
	if c.PowerMinMW <= 0 || c.PowerMaxMW < c.PowerMinMW {
		return errors.New("power range invalid")
	}
	if c.CRateMin <= 0 || c.CRateMax < c.CRateMin {
		return errors.New("C-rate band invalid")
	}
	return nil
}

// Candidate is one evaluated (capacity, power) pair. Err carries the failure
// message for pairs whose evaluation failed; Skipped marks infeasible C-rates.
type Candidate struct {
	CapacityMWh float64
	PowerMW     float64
	Skipped     bool
	Err         string

	NPV            model.Metric
	IRR            model.Metric
	PaybackYears   model.Metric
	LCOS           model.Metric
	AnnualSavings  float64
	NetInitialCost float64
}

// OptimizationResult is the full grid table plus the best valid pair.
// Best is nil when no candidate produced a computable NPV.
type OptimizationResult struct {
	Grid      []Candidate
	Best      *Candidate
	Evaluated int
}

// Optimize runs the full valuation chain for every feasible pair in the grid,
// substituting the candidate size into the base asset. Candidates are
// independent, so they are evaluated on a bounded worker pool; ctx is observed
// between evaluations and aborts the remaining grid.
func Optimize(ctx context.Context, eaf model.EAFParameters, tariff model.TariffDefinition, fin model.FinancialAssumptions, programs model.IncentiveProgramSet, base model.BESSAssetParameters, cfg SearchConfig) (*OptimizationResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("search config: %w", err)
	}

	capacities := linspace(cfg.CapacityMinMWh, cfg.CapacityMaxMWh, cfg.Steps)
	powers := linspace(cfg.PowerMinMW, cfg.PowerMaxMW, cfg.Steps)

	grid := make([]Candidate, 0, len(capacities)*len(powers))
	for _, cap := range capacities {
		for _, pw := range powers {
			c := Candidate{CapacityMWh: cap, PowerMW: pw}
			rate := pw / cap
			if rate < cfg.CRateMin || rate > cfg.CRateMax {
				c.Skipped = true
			}
			grid = append(grid, c)
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range grid {
		if grid[i].Skipped {
			continue
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			evaluate(&grid[i], eaf, tariff, fin, programs, base)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &OptimizationResult{Grid: grid}
	for i := range grid {
		c := &grid[i]
		if c.Skipped {
			continue
		}
		res.Evaluated++
		if c.Err != "" || !c.NPV.OK {
			continue
		}
		if res.Best == nil || c.NPV.Value > res.Best.NPV.Value {
			res.Best = c
		}
	}
	return res, nil
}

// evaluate runs one candidate; panics and errors are recorded on the
// candidate so a bad pair never aborts the search.
func evaluate(c *Candidate, eaf model.EAFParameters, tariff model.TariffDefinition, fin model.FinancialAssumptions, programs model.IncentiveProgramSet, base model.BESSAssetParameters) {
	defer func() {
		if r := recover(); r != nil {
			c.Err = fmt.Sprintf("panic: %v", r)
		}
	}()

	asset := base
	asset.CapacityMWh = c.CapacityMWh
	asset.PowerMW = c.PowerMW

	sim, err := valuation.Calculate(eaf, asset, tariff, fin, programs)
	if err != nil {
		c.Err = err.Error()
		return
	}
	c.NPV = sim.Finance.NPV
	c.IRR = sim.Finance.IRR
	c.PaybackYears = sim.Finance.PaybackYears
	c.LCOS = sim.Finance.LCOS
	c.AnnualSavings = sim.Billing.AnnualSavings
	c.NetInitialCost = sim.Finance.NetInitialCost
}

func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

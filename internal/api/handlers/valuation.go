package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bess-valuation/internal/analysis"
	"bess-valuation/internal/api/models"
	"bess-valuation/internal/config"
	"bess-valuation/internal/model"
	"bess-valuation/internal/sizing"
	"bess-valuation/internal/valuation"
)

// ValuationHandler serves the calculate and optimize endpoints.
type ValuationHandler struct{}

func NewValuationHandler() *ValuationHandler {
	return &ValuationHandler{}
}

// Calculate handles POST /api/v1/calculate.
func (h *ValuationHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	in, err := resolveInputs(req.MillPreset, req.TariffPreset, req.TechnologyPreset,
		req.EAF, req.Tariff, req.BESS, req.Financial, req.Incentives)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}

	if problems := valuation.ValidateInputs(in.eaf, in.asset, in.tariff, in.financial); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:     "VALIDATION_FAILED",
				Message:  "input validation failed",
				Problems: problems,
			},
		})
		return
	}

	res, err := valuation.Calculate(in.eaf, in.asset, in.tariff, in.financial, in.incentives)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "CALCULATION_ERROR", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, buildCalculateResponse(res, in.eaf, req.Options))
}

// Optimize handles POST /api/v1/optimize.
func (h *ValuationHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	in, err := resolveInputs(req.MillPreset, req.TariffPreset, req.TechnologyPreset,
		req.EAF, req.Tariff, req.BESS, req.Financial, req.Incentives)
	if err != nil {
		badRequest(c, "INVALID_CONFIG", err.Error())
		return
	}

	cfg := sizing.DefaultSearchConfig()
	if s := req.Search; s != nil {
		cfg = searchFromConfig(*s, cfg)
	}

	res, err := sizing.Optimize(c.Request.Context(), in.eaf, in.tariff, in.financial, in.incentives, in.asset, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "OPTIMIZATION_ERROR", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, buildOptimizeResponse(res, req.Options))
}

type resolvedInputs struct {
	eaf        model.EAFParameters
	asset      model.BESSAssetParameters
	tariff     model.TariffDefinition
	financial  model.FinancialAssumptions
	incentives model.IncentiveProgramSet
}

// resolveInputs applies preset bases then converts the merged configs into
// core parameter structs. For optimize, capacity/power may be zero here; the
// search grid substitutes real sizes before validation runs per candidate.
func resolveInputs(millPreset, tariffPreset, techPreset string,
	eaf config.EAFConfig, tariff config.TariffConfig, bess config.BESSConfig,
	fin config.FinancialConfig, inc config.IncentivesConfig) (resolvedInputs, error) {

	if millPreset != "" {
		base, ok := config.DefaultMills()[millPreset]
		if !ok {
			return resolvedInputs{}, fmt.Errorf("unknown mill preset %q", millPreset)
		}
		eaf = config.MergeEAF(base, eaf)
	}
	if tariffPreset != "" {
		base, ok := config.DefaultTariffs()[tariffPreset]
		if !ok {
			return resolvedInputs{}, fmt.Errorf("unknown tariff preset %q", tariffPreset)
		}
		tariff = config.MergeTariff(base, tariff)
	}
	if techPreset != "" {
		base, ok := config.DefaultTechnologies()[techPreset]
		if !ok {
			return resolvedInputs{}, fmt.Errorf("unknown technology preset %q", techPreset)
		}
		bess = config.MergeBESS(base, bess)
	}

	asset, err := bess.ToModel()
	if err != nil {
		return resolvedInputs{}, err
	}
	programs, err := inc.ToModel()
	if err != nil {
		return resolvedInputs{}, err
	}
	return resolvedInputs{
		eaf:        eaf.ToModel(),
		asset:      asset,
		tariff:     tariff.ToModel(),
		financial:  fin.ToModel(),
		incentives: programs,
	}, nil
}

func searchFromConfig(s config.SearchConfig, def sizing.SearchConfig) sizing.SearchConfig {
	out := def
	if s.CapacityMinMWh > 0 {
		out.CapacityMinMWh = s.CapacityMinMWh
	}
	if s.CapacityMaxMWh > 0 {
		out.CapacityMaxMWh = s.CapacityMaxMWh
	}
	if s.PowerMinMW > 0 {
		out.PowerMinMW = s.PowerMinMW
	}
	if s.PowerMaxMW > 0 {
		out.PowerMaxMW = s.PowerMaxMW
	}
	if s.Steps > 0 {
		out.Steps = s.Steps
	}
	if s.CRateMin > 0 {
		out.CRateMin = s.CRateMin
	}
	if s.CRateMax > 0 {
		out.CRateMax = s.CRateMax
	}
	if s.Workers > 0 {
		out.Workers = s.Workers
	}
	return out
}

func buildCalculateResponse(res *valuation.SimulationResult, eaf model.EAFParameters, opts models.CalculateOptions) models.CalculateResponse {
	pot := analysis.ComputePotential(eaf)
	out := models.CalculateResponse{
		ID:     uuid.NewString(),
		Status: "ok",
		Summary: models.ValuationSummary{
			AnnualBillWithout:  res.Billing.AnnualWithout,
			AnnualBillWith:     res.Billing.AnnualWith,
			AnnualSavings:      res.Billing.AnnualSavings,
			AnnualDischargeMWh: res.Billing.AnnualDischargeMWh,
			GrossInitialCost:   res.Finance.GrossInitialCost,
			NetInitialCost:     res.Finance.NetInitialCost,
			NPV:                res.Finance.NPV.Ptr(),
			IRR:                res.Finance.IRR.Ptr(),
			PaybackYears:       res.Finance.PaybackYears.Ptr(),
			LCOS:               res.Finance.LCOS.Ptr(),
		},
		Potential: models.ShavingPotentialRow{
			PeakMW:             pot.PeakMW,
			MeanMW:             pot.MeanMW,
			P95MW:              pot.P95MW,
			GridCapMW:          pot.GridCapMW,
			RequiredPowerMW:    pot.RequiredPowerMW,
			EnergyAboveCapMWh:  pot.EnergyAboveCapMWh,
			ShavableMWhPerYear: pot.ShavableMWhPerYear,
		},
		Incentives: models.IncentiveSummary{
			Total:     res.Incentives.Total,
			Breakdown: map[string]float64{},
		},
		Diagnostics: res.Diagnostics,
	}
	for _, e := range res.Incentives.Breakdown {
		out.Incentives.Breakdown[e.Program] = e.Amount
	}
	if opts.IncludeMonths {
		for _, m := range res.Billing.Months {
			out.Months = append(out.Months, models.MonthlyPairRow{
				Month:               m.Month,
				BillWithout:         m.Without.Total,
				BillWith:            m.With.Total,
				Savings:             m.Savings,
				PeakDemandKWWithout: m.Without.PeakDemandKW,
				PeakDemandKWWith:    m.With.PeakDemandKW,
				DischargeMWh:        m.DischargeMWh,
			})
		}
	}
	if opts.IncludeCashFlow {
		for _, r := range res.Finance.Ledger {
			out.CashFlow = append(out.CashFlow, models.CashFlowRow{
				Year:                r.Year,
				GrossSavings:        r.GrossSavings,
				OMCost:              r.OMCost,
				ReplacementCost:     r.ReplacementCost,
				DecommissioningCost: r.DecommissioningCost,
				TaxableIncome:       r.TaxableIncome,
				Taxes:               r.Taxes,
				NetCashFlow:         r.NetCashFlow,
				CumulativeCashFlow:  r.CumulativeCashFlow,
			})
		}
	}
	return out
}

func buildOptimizeResponse(res *sizing.OptimizationResult, opts models.OptimizeOptions) models.OptimizeResponse {
	out := models.OptimizeResponse{
		ID:        uuid.NewString(),
		Status:    "ok",
		Evaluated: res.Evaluated,
	}
	if res.Best != nil {
		row := candidateRow(*res.Best)
		out.Best = &row
	}
	for _, c := range analysis.RankByNPV(res.Grid, 5) {
		out.Top = append(out.Top, candidateRow(c))
	}
	if opts.IncludeGrid {
		for _, c := range res.Grid {
			out.Grid = append(out.Grid, candidateRow(c))
		}
	}
	return out
}

func candidateRow(c sizing.Candidate) models.CandidateRow {
	return models.CandidateRow{
		CapacityMWh:    c.CapacityMWh,
		PowerMW:        c.PowerMW,
		Skipped:        c.Skipped,
		Error:          c.Err,
		NPV:            c.NPV.Ptr(),
		IRR:            c.IRR.Ptr(),
		PaybackYears:   c.PaybackYears.Ptr(),
		LCOS:           c.LCOS.Ptr(),
		AnnualSavings:  c.AnnualSavings,
		NetInitialCost: c.NetInitialCost,
	}
}

func badRequest(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: msg},
	})
}

package models

import "bess-valuation/internal/config"

// CalculateRequest is the body for POST /api/v1/calculate. Preset names and
// inline sections follow the same merge semantics as scenario files.
type CalculateRequest struct {
	MillPreset       string `json:"mill_preset,omitempty"`
	TariffPreset     string `json:"tariff_preset,omitempty"`
	TechnologyPreset string `json:"technology_preset,omitempty"`

	EAF        config.EAFConfig        `json:"eaf"`
	Tariff     config.TariffConfig     `json:"tariff"`
	BESS       config.BESSConfig       `json:"bess"`
	Financial  config.FinancialConfig  `json:"financial"`
	Incentives config.IncentivesConfig `json:"incentives"`

	Options CalculateOptions `json:"options,omitempty"`
}

// CalculateOptions controls response verbosity.
type CalculateOptions struct {
	IncludeMonths   bool `json:"include_months,omitempty"`
	IncludeCashFlow bool `json:"include_cash_flow,omitempty"`
}

// OptimizeRequest is the body for POST /api/v1/optimize. BESS supplies the
// base technology; capacity and power come from the search grid.
type OptimizeRequest struct {
	MillPreset       string `json:"mill_preset,omitempty"`
	TariffPreset     string `json:"tariff_preset,omitempty"`
	TechnologyPreset string `json:"technology_preset,omitempty"`

	EAF        config.EAFConfig        `json:"eaf"`
	Tariff     config.TariffConfig     `json:"tariff"`
	BESS       config.BESSConfig       `json:"bess"`
	Financial  config.FinancialConfig  `json:"financial"`
	Incentives config.IncentivesConfig `json:"incentives"`

	Search *config.SearchConfig `json:"search,omitempty"`

	Options OptimizeOptions `json:"options,omitempty"`
}

// OptimizeOptions controls response verbosity.
type OptimizeOptions struct {
	IncludeGrid bool `json:"include_grid,omitempty"`
}

// Package config loads scenario configuration and the preset reference
// datasets (mills, tariffs, technologies) consumed by the valuation core.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bess-valuation/internal/model"
)

// Config is the on-disk scenario shape (YAML). Preset names select a base
// from the built-in catalogs; inline sections overlay field-by-field on top.
type Config struct {
	MillPreset       string `yaml:"mill_preset" json:"mill_preset"`
	TariffPreset     string `yaml:"tariff_preset" json:"tariff_preset"`
	TechnologyPreset string `yaml:"technology_preset" json:"technology_preset"`

	EAF        EAFConfig        `yaml:"eaf" json:"eaf"`
	Tariff     TariffConfig     `yaml:"tariff" json:"tariff"`
	BESS       BESSConfig       `yaml:"bess" json:"bess"`
	Financial  FinancialConfig  `yaml:"financial" json:"financial"`
	Incentives IncentivesConfig `yaml:"incentives" json:"incentives"`
	Search     *SearchConfig    `yaml:"search" json:"search"`
}

type EAFConfig struct {
	SizeTons             float64 `yaml:"size_tons" json:"size_tons"`
	FurnaceCount         int     `yaml:"furnace_count" json:"furnace_count"`
	GridCapMW            float64 `yaml:"grid_cap_mw" json:"grid_cap_mw"`
	CyclesPerDay         float64 `yaml:"cycles_per_day" json:"cycles_per_day"`
	BaseCycleDurationMin float64 `yaml:"base_cycle_duration_min" json:"base_cycle_duration_min"`
	CycleDurationMin     float64 `yaml:"cycle_duration_min" json:"cycle_duration_min"`
	OperatingDaysPerYear float64 `yaml:"operating_days_per_year" json:"operating_days_per_year"`
}

type TOUIntervalConfig struct {
	StartHour float64 `yaml:"start_hour" json:"start_hour"`
	EndHour   float64 `yaml:"end_hour" json:"end_hour"`
	RateClass string  `yaml:"rate_class" json:"rate_class"`
}

type TariffConfig struct {
	Name                   string              `yaml:"name" json:"name"`
	EnergyRates            map[string]float64  `yaml:"energy_rates" json:"energy_rates"` // $/MWh by rate class
	DemandChargePerKWMonth float64             `yaml:"demand_charge_per_kw_month" json:"demand_charge_per_kw_month"`
	TOUIntervals           []TOUIntervalConfig `yaml:"tou_intervals" json:"tou_intervals"`
	Seasonal               bool                `yaml:"seasonal" json:"seasonal"`
	WinterMonths           []int               `yaml:"winter_months" json:"winter_months"`
	SummerMonths           []int               `yaml:"summer_months" json:"summer_months"`
	ShoulderMonths         []int               `yaml:"shoulder_months" json:"shoulder_months"`
	WinterMultiplier       float64             `yaml:"winter_multiplier" json:"winter_multiplier"`
	SummerMultiplier       float64             `yaml:"summer_multiplier" json:"summer_multiplier"`
	ShoulderMultiplier     float64             `yaml:"shoulder_multiplier" json:"shoulder_multiplier"`
}

type BESSConfig struct {
	Technology  string  `yaml:"technology" json:"technology"`
	CapacityMWh float64 `yaml:"capacity_mwh" json:"capacity_mwh"`
	PowerMW     float64 `yaml:"power_mw" json:"power_mw"`

	StorageCostPerKWh     float64 `yaml:"storage_cost_per_kwh" json:"storage_cost_per_kwh"`
	PCSCostPerKW          float64 `yaml:"pcs_cost_per_kw" json:"pcs_cost_per_kw"`
	EPCCostPerKWh         float64 `yaml:"epc_cost_per_kwh" json:"epc_cost_per_kwh"`
	IntegrationCostPerKWh float64 `yaml:"integration_cost_per_kwh" json:"integration_cost_per_kwh"`

	// OpexModel is "fixed_per_kw" or "per_kwh_year"; fixed per technology.
	OpexModel           string  `yaml:"opex_model" json:"opex_model"`
	OpexRate            float64 `yaml:"opex_rate" json:"opex_rate"`
	InsurancePctPerYear float64 `yaml:"insurance_pct_per_year" json:"insurance_pct_per_year"`

	DisconnectCostPerKWh float64 `yaml:"disconnect_cost_per_kwh" json:"disconnect_cost_per_kwh"`
	RecyclingCostPerKWh  float64 `yaml:"recycling_cost_per_kwh" json:"recycling_cost_per_kwh"`

	RoundTripEfficiencyPct float64 `yaml:"round_trip_efficiency_pct" json:"round_trip_efficiency_pct"`
	CycleLife              float64 `yaml:"cycle_life" json:"cycle_life"`
	DepthOfDischargePct    float64 `yaml:"depth_of_discharge_pct" json:"depth_of_discharge_pct"`
	CalendarLifeYears      float64 `yaml:"calendar_life_years" json:"calendar_life_years"`
}

type FinancialConfig struct {
	DiscountRate  float64 `yaml:"discount_rate" json:"discount_rate"`
	LifespanYears int     `yaml:"lifespan_years" json:"lifespan_years"`
	TaxRate       float64 `yaml:"tax_rate" json:"tax_rate"`
	InflationRate float64 `yaml:"inflation_rate" json:"inflation_rate"`
	SalvagePct    float64 `yaml:"salvage_pct" json:"salvage_pct"`
}

type StateProgramConfig struct {
	Name       string  `yaml:"name" json:"name"`
	RatePerKWh float64 `yaml:"rate_per_kwh" json:"rate_per_kwh"`
}

type IncentivesConfig struct {
	ITCEnabled    bool                 `yaml:"itc_enabled" json:"itc_enabled"`
	ITCPct        float64              `yaml:"itc_pct" json:"itc_pct"`
	CEICEnabled   bool                 `yaml:"ceic_enabled" json:"ceic_enabled"`
	CEICPct       float64              `yaml:"ceic_pct" json:"ceic_pct"`
	BonusEnabled  bool                 `yaml:"bonus_enabled" json:"bonus_enabled"`
	BonusPct      float64              `yaml:"bonus_pct" json:"bonus_pct"`
	StatePrograms []StateProgramConfig `yaml:"state_programs" json:"state_programs"`
	CustomName    string               `yaml:"custom_name" json:"custom_name"`
	CustomKind    string               `yaml:"custom_kind" json:"custom_kind"` // "per_kwh" or "pct_of_cost"
	CustomRate    float64              `yaml:"custom_rate" json:"custom_rate"`
}

type SearchConfig struct {
	CapacityMinMWh float64 `yaml:"capacity_min_mwh" json:"capacity_min_mwh"`
	CapacityMaxMWh float64 `yaml:"capacity_max_mwh" json:"capacity_max_mwh"`
	PowerMinMW     float64 `yaml:"power_min_mw" json:"power_min_mw"`
	PowerMaxMW     float64 `yaml:"power_max_mw" json:"power_max_mw"`
	Steps          int     `yaml:"steps" json:"steps"`
	CRateMin       float64 `yaml:"c_rate_min" json:"c_rate_min"`
	CRateMax       float64 `yaml:"c_rate_max" json:"c_rate_max"`
	Workers        int     `yaml:"workers" json:"workers"`
}

// Load reads a scenario file, resolves presets and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and resolves presets but does not validate.
// Useful for debugging partial scenarios.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.resolvePresets(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) resolvePresets() error {
	if c.MillPreset != "" {
		base, ok := DefaultMills()[c.MillPreset]
		if !ok {
			return fmt.Errorf("unknown mill preset %q", c.MillPreset)
		}
		c.EAF = MergeEAF(base, c.EAF)
	}
	if c.TariffPreset != "" {
		base, ok := DefaultTariffs()[c.TariffPreset]
		if !ok {
			return fmt.Errorf("unknown tariff preset %q", c.TariffPreset)
		}
		c.Tariff = MergeTariff(base, c.Tariff)
	}
	if c.TechnologyPreset != "" {
		base, ok := DefaultTechnologies()[c.TechnologyPreset]
		if !ok {
			return fmt.Errorf("unknown technology preset %q", c.TechnologyPreset)
		}
		c.BESS = MergeBESS(base, c.BESS)
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.EAF.ToModel().Validate(); err != nil {
		return fmt.Errorf("eaf config invalid: %w", err)
	}
	asset, err := c.BESS.ToModel()
	if err != nil {
		return fmt.Errorf("bess config invalid: %w", err)
	}
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("bess config invalid: %w", err)
	}
	if err := c.Financial.ToModel().Validate(); err != nil {
		return fmt.Errorf("financial config invalid: %w", err)
	}
	if len(c.Tariff.EnergyRates) == 0 {
		return errors.New("tariff config invalid: energy_rates must not be empty")
	}
	return nil
}

func (e EAFConfig) ToModel() model.EAFParameters {
	return model.EAFParameters{
		SizeTons:             e.SizeTons,
		FurnaceCount:         e.FurnaceCount,
		GridCapMW:            e.GridCapMW,
		CyclesPerDay:         e.CyclesPerDay,
		BaseCycleDurationMin: e.BaseCycleDurationMin,
		CycleDurationMin:     e.CycleDurationMin,
		OperatingDaysPerYear: e.OperatingDaysPerYear,
	}
}

func (t TariffConfig) ToModel() model.TariffDefinition {
	out := model.TariffDefinition{
		Name:                   t.Name,
		EnergyRates:            map[string]float64{},
		DemandChargePerKWMonth: t.DemandChargePerKWMonth,
		Seasonal:               t.Seasonal,
		WinterMonths:           t.WinterMonths,
		SummerMonths:           t.SummerMonths,
		ShoulderMonths:         t.ShoulderMonths,
		WinterMultiplier:       t.WinterMultiplier,
		SummerMultiplier:       t.SummerMultiplier,
		ShoulderMultiplier:     t.ShoulderMultiplier,
	}
	for k, v := range t.EnergyRates {
		out.EnergyRates[k] = v
	}
	for _, iv := range t.TOUIntervals {
		out.TOUIntervals = append(out.TOUIntervals, model.TOUInterval{
			StartHour: iv.StartHour,
			EndHour:   iv.EndHour,
			RateClass: iv.RateClass,
		})
	}
	return out
}

func (b BESSConfig) ToModel() (model.BESSAssetParameters, error) {
	opex, err := parseOpexModel(b.OpexModel, b.OpexRate)
	if err != nil {
		return model.BESSAssetParameters{}, err
	}
	return model.BESSAssetParameters{
		Technology:             b.Technology,
		CapacityMWh:            b.CapacityMWh,
		PowerMW:                b.PowerMW,
		StorageCostPerKWh:      b.StorageCostPerKWh,
		PCSCostPerKW:           b.PCSCostPerKW,
		EPCCostPerKWh:          b.EPCCostPerKWh,
		IntegrationCostPerKWh:  b.IntegrationCostPerKWh,
		Opex:                   opex,
		InsurancePctPerYear:    b.InsurancePctPerYear,
		DisconnectCostPerKWh:   b.DisconnectCostPerKWh,
		RecyclingCostPerKWh:    b.RecyclingCostPerKWh,
		RoundTripEfficiencyPct: b.RoundTripEfficiencyPct,
		CycleLife:              b.CycleLife,
		DepthOfDischargePct:    b.DepthOfDischargePct,
		CalendarLifeYears:      b.CalendarLifeYears,
	}, nil
}

func parseOpexModel(kind string, rate float64) (model.OpexModel, error) {
	switch kind {
	case "", "fixed_per_kw":
		return model.OpexModel{Kind: model.OpexFixedPerKWYear, Rate: rate}, nil
	case "per_kwh_year":
		return model.OpexModel{Kind: model.OpexPerKWhYear, Rate: rate}, nil
	default:
		return model.OpexModel{}, fmt.Errorf("unknown opex model %q", kind)
	}
}

func (f FinancialConfig) ToModel() model.FinancialAssumptions {
	return model.FinancialAssumptions{
		DiscountRate:  f.DiscountRate,
		LifespanYears: f.LifespanYears,
		TaxRate:       f.TaxRate,
		InflationRate: f.InflationRate,
		SalvagePct:    f.SalvagePct,
	}
}

func (i IncentivesConfig) ToModel() (model.IncentiveProgramSet, error) {
	out := model.IncentiveProgramSet{
		ITCEnabled:   i.ITCEnabled,
		ITCPct:       i.ITCPct,
		CEICEnabled:  i.CEICEnabled,
		CEICPct:      i.CEICPct,
		BonusEnabled: i.BonusEnabled,
		BonusPct:     i.BonusPct,
	}
	for _, sp := range i.StatePrograms {
		out.StatePrograms = append(out.StatePrograms, model.StateProgram{
			Name:       sp.Name,
			RatePerKWh: sp.RatePerKWh,
		})
	}
	if i.CustomName != "" {
		kind := model.CustomPerKWh
		switch i.CustomKind {
		case "", "per_kwh":
		case "pct_of_cost":
			kind = model.CustomPctOfCost
		default:
			return out, fmt.Errorf("unknown custom incentive kind %q", i.CustomKind)
		}
		out.Custom = &model.CustomProgram{Name: i.CustomName, Kind: kind, Rate: i.CustomRate}
	}
	return out, nil
}

package config

// Built-in reference datasets. These mirror the preset catalogs an operator
// would otherwise supply as YAML files; scenario configs select one by name
// and override individual fields.

// DefaultMills returns per-mill EAF presets keyed by preset id.
func DefaultMills() map[string]EAFConfig {
	return map[string]EAFConfig{
		"mini_mill": {
			SizeTons:             100,
			FurnaceCount:         1,
			GridCapMW:            60,
			CyclesPerDay:         24,
			BaseCycleDurationMin: 36,
			OperatingDaysPerYear: 330,
		},
		"integrated_retrofit": {
			SizeTons:             150,
			FurnaceCount:         2,
			GridCapMW:            160,
			CyclesPerDay:         20,
			BaseCycleDurationMin: 42,
			OperatingDaysPerYear: 340,
		},
		"specialty_steel": {
			SizeTons:             60,
			FurnaceCount:         1,
			GridCapMW:            40,
			CyclesPerDay:         16,
			BaseCycleDurationMin: 48,
			OperatingDaysPerYear: 300,
		},
	}
}

// DefaultTariffs returns per-utility tariff presets keyed by preset id.
func DefaultTariffs() map[string]TariffConfig {
	return map[string]TariffConfig{
		"flat_industrial": {
			Name: "Flat industrial",
			EnergyRates: map[string]float64{
				"off_peak": 55,
			},
			DemandChargePerKWMonth: 12,
		},
		"tou_seasonal": {
			Name: "TOU seasonal industrial",
			EnergyRates: map[string]float64{
				"off_peak": 38,
				"mid_peak": 62,
				"peak":     104,
			},
			DemandChargePerKWMonth: 18.5,
			TOUIntervals: []TOUIntervalConfig{
				{StartHour: 7, EndHour: 11, RateClass: "mid_peak"},
				{StartHour: 11, EndHour: 19, RateClass: "peak"},
				{StartHour: 19, EndHour: 23, RateClass: "mid_peak"},
			},
			Seasonal:           true,
			WinterMonths:       []int{11, 12, 1, 2, 3},
			SummerMonths:       []int{6, 7, 8, 9},
			ShoulderMonths:     []int{4, 5, 10},
			WinterMultiplier:   0.95,
			SummerMultiplier:   1.25,
			ShoulderMultiplier: 1.0,
		},
		"tou_flat_season": {
			Name: "TOU year-round",
			EnergyRates: map[string]float64{
				"off_peak": 42,
				"peak":     96,
			},
			DemandChargePerKWMonth: 15,
			TOUIntervals: []TOUIntervalConfig{
				{StartHour: 8, EndHour: 22, RateClass: "peak"},
			},
		},
	}
}

// DefaultTechnologies returns per-technology BESS cost/performance presets.
// Capacity and power are sizing choices, not technology attributes, so the
// presets leave them zero for the scenario to fill in.
func DefaultTechnologies() map[string]BESSConfig {
	return map[string]BESSConfig{
		"lfp": {
			Technology:             "lfp",
			StorageCostPerKWh:      236,
			PCSCostPerKW:           90,
			EPCCostPerKWh:          72,
			IntegrationCostPerKWh:  40,
			OpexModel:              "fixed_per_kw",
			OpexRate:               8.5,
			InsurancePctPerYear:    0.005,
			DisconnectCostPerKWh:   2.5,
			RecyclingCostPerKWh:    -1.0,
			RoundTripEfficiencyPct: 88,
			CycleLife:              6000,
			DepthOfDischargePct:    90,
			CalendarLifeYears:      16,
		},
		"nmc": {
			Technology:             "nmc",
			StorageCostPerKWh:      262,
			PCSCostPerKW:           90,
			EPCCostPerKWh:          75,
			IntegrationCostPerKWh:  42,
			OpexModel:              "fixed_per_kw",
			OpexRate:               9.0,
			InsurancePctPerYear:    0.005,
			DisconnectCostPerKWh:   2.5,
			RecyclingCostPerKWh:    -4.0,
			RoundTripEfficiencyPct: 90,
			CycleLife:              4000,
			DepthOfDischargePct:    85,
			CalendarLifeYears:      13,
		},
		"vanadium_flow": {
			Technology:             "vanadium_flow",
			StorageCostPerKWh:      315,
			PCSCostPerKW:           110,
			EPCCostPerKWh:          88,
			IntegrationCostPerKWh:  55,
			OpexModel:              "per_kwh_year",
			OpexRate:               6.2,
			InsurancePctPerYear:    0.004,
			DisconnectCostPerKWh:   3.0,
			RecyclingCostPerKWh:    1.5,
			RoundTripEfficiencyPct: 72,
			CycleLife:              16000,
			DepthOfDischargePct:    100,
			CalendarLifeYears:      22,
		},
	}
}

// Default returns a complete runnable scenario: the mini-mill preset on the
// seasonal TOU tariff with a mid-size LFP system.
func Default() Config {
	bess := DefaultTechnologies()["lfp"]
	bess.CapacityMWh = 40
	bess.PowerMW = 25
	return Config{
		MillPreset:       "mini_mill",
		TariffPreset:     "tou_seasonal",
		TechnologyPreset: "lfp",
		EAF:              DefaultMills()["mini_mill"],
		Tariff:           DefaultTariffs()["tou_seasonal"],
		BESS:             bess,
		Financial: FinancialConfig{
			DiscountRate:  0.08,
			LifespanYears: 20,
			TaxRate:       0.21,
			InflationRate: 0.025,
		},
		Incentives: IncentivesConfig{
			ITCEnabled: true,
			ITCPct:     0.30,
		},
	}
}

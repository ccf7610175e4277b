package config

// The merge helpers overlay non-zero override fields onto a preset base.
// Zero-valued override fields keep the base value, which lets scenario files
// name a preset and tweak only what differs.

func MergeEAF(base, override EAFConfig) EAFConfig {
	out := base
	if override.SizeTons != 0 {
		out.SizeTons = override.SizeTons
	}
	if override.FurnaceCount != 0 {
		out.FurnaceCount = override.FurnaceCount
	}
	if override.GridCapMW != 0 {
		out.GridCapMW = override.GridCapMW
	}
	if override.CyclesPerDay != 0 {
		out.CyclesPerDay = override.CyclesPerDay
	}
	if override.BaseCycleDurationMin != 0 {
		out.BaseCycleDurationMin = override.BaseCycleDurationMin
	}
	if override.CycleDurationMin != 0 {
		out.CycleDurationMin = override.CycleDurationMin
	}
	if override.OperatingDaysPerYear != 0 {
		out.OperatingDaysPerYear = override.OperatingDaysPerYear
	}
	return out
}

func MergeTariff(base, override TariffConfig) TariffConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if len(override.EnergyRates) > 0 {
		out.EnergyRates = override.EnergyRates
	}
	if override.DemandChargePerKWMonth != 0 {
		out.DemandChargePerKWMonth = override.DemandChargePerKWMonth
	}
	if len(override.TOUIntervals) > 0 {
		out.TOUIntervals = override.TOUIntervals
	}
	if override.Seasonal {
		out.Seasonal = true
	}
	if len(override.WinterMonths) > 0 {
		out.WinterMonths = override.WinterMonths
	}
	if len(override.SummerMonths) > 0 {
		out.SummerMonths = override.SummerMonths
	}
	if len(override.ShoulderMonths) > 0 {
		out.ShoulderMonths = override.ShoulderMonths
	}
	if override.WinterMultiplier != 0 {
		out.WinterMultiplier = override.WinterMultiplier
	}
	if override.SummerMultiplier != 0 {
		out.SummerMultiplier = override.SummerMultiplier
	}
	if override.ShoulderMultiplier != 0 {
		out.ShoulderMultiplier = override.ShoulderMultiplier
	}
	return out
}

func MergeBESS(base, override BESSConfig) BESSConfig {
	out := base
	if override.Technology != "" {
		out.Technology = override.Technology
	}
	if override.CapacityMWh != 0 {
		out.CapacityMWh = override.CapacityMWh
	}
	if override.PowerMW != 0 {
		out.PowerMW = override.PowerMW
	}
	if override.StorageCostPerKWh != 0 {
		out.StorageCostPerKWh = override.StorageCostPerKWh
	}
	if override.PCSCostPerKW != 0 {
		out.PCSCostPerKW = override.PCSCostPerKW
	}
	if override.EPCCostPerKWh != 0 {
		out.EPCCostPerKWh = override.EPCCostPerKWh
	}
	if override.IntegrationCostPerKWh != 0 {
		out.IntegrationCostPerKWh = override.IntegrationCostPerKWh
	}
	if override.OpexModel != "" {
		out.OpexModel = override.OpexModel
	}
	if override.OpexRate != 0 {
		out.OpexRate = override.OpexRate
	}
	if override.InsurancePctPerYear != 0 {
		out.InsurancePctPerYear = override.InsurancePctPerYear
	}
	if override.DisconnectCostPerKWh != 0 {
		out.DisconnectCostPerKWh = override.DisconnectCostPerKWh
	}
	if override.RecyclingCostPerKWh != 0 {
		out.RecyclingCostPerKWh = override.RecyclingCostPerKWh
	}
	if override.RoundTripEfficiencyPct != 0 {
		out.RoundTripEfficiencyPct = override.RoundTripEfficiencyPct
	}
	if override.CycleLife != 0 {
		out.CycleLife = override.CycleLife
	}
	if override.DepthOfDischargePct != 0 {
		out.DepthOfDischargePct = override.DepthOfDischargePct
	}
	if override.CalendarLifeYears != 0 {
		out.CalendarLifeYears = override.CalendarLifeYears
	}
	return out
}

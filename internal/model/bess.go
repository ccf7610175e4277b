package model

import "errors"

// OpexKind selects which of the two mutually exclusive O&M models applies.
// The choice is fixed per technology and resolved once at construction time.
type OpexKind int

const (
	// OpexFixedPerKWYear charges Rate $/kW/yr against the power rating.
	OpexFixedPerKWYear OpexKind = iota
	// OpexPerKWhYear charges Rate $/kWh/yr against the energy capacity.
	OpexPerKWhYear
)

// OpexModel is the resolved O&M representation (tagged union).
type OpexModel struct {
	Kind OpexKind
	Rate float64
}

// BESSAssetParameters describes one candidate battery system.
// Units:
// - CapacityMWh / PowerMW: overall system size, chosen independently of technology
// - unit costs: $/kWh or $/kW as named
// - RecyclingCostPerKWh may be negative (salvage value)
// - RoundTripEfficiencyPct, DepthOfDischargePct: (0,100]
type BESSAssetParameters struct {
	Technology  string
	CapacityMWh float64
	PowerMW     float64

	StorageCostPerKWh     float64 // storage modules + balance of system
	PCSCostPerKW          float64 // power conversion system
	EPCCostPerKWh         float64
	IntegrationCostPerKWh float64

	Opex                OpexModel
	InsurancePctPerYear float64 // % of gross capital cost per year

	DisconnectCostPerKWh float64
	RecyclingCostPerKWh  float64

	RoundTripEfficiencyPct float64
	CycleLife              float64 // full-equivalent cycles
	DepthOfDischargePct    float64
	CalendarLifeYears      float64
}

func (b BESSAssetParameters) CapacityKWh() float64 { return b.CapacityMWh * 1000 }
func (b BESSAssetParameters) PowerKW() float64     { return b.PowerMW * 1000 }

// GrossCapitalCost is the pre-incentive installed cost: three $/kWh components
// against energy capacity plus the PCS $/kW component against power.
func (b BESSAssetParameters) GrossCapitalCost() float64 {
	kwh := b.CapacityKWh()
	kw := b.PowerKW()
	return b.StorageCostPerKWh*kwh +
		b.EPCCostPerKWh*kwh +
		b.IntegrationCostPerKWh*kwh +
		b.PCSCostPerKW*kw
}

// DecommissioningCost is the end-of-life outflow; a negative result means
// recycling salvage exceeds disconnection cost.
func (b BESSAssetParameters) DecommissioningCost() float64 {
	return (b.DisconnectCostPerKWh + b.RecyclingCostPerKWh) * b.CapacityKWh()
}

func (b BESSAssetParameters) Validate() error {
	if b.CapacityMWh <= 0 {
		return errors.New("CapacityMWh must be > 0")
	}
	if b.PowerMW <= 0 {
		return errors.New("PowerMW must be > 0")
	}
	if b.CycleLife <= 0 {
		return errors.New("CycleLife must be > 0")
	}
	if b.CalendarLifeYears <= 0 {
		return errors.New("CalendarLifeYears must be > 0")
	}
	if b.RoundTripEfficiencyPct <= 0 || b.RoundTripEfficiencyPct > 100 {
		return errors.New("RoundTripEfficiencyPct must be in (0, 100]")
	}
	if b.DepthOfDischargePct <= 0 || b.DepthOfDischargePct > 100 {
		return errors.New("DepthOfDischargePct must be in (0, 100]")
	}
	if b.Opex.Rate < 0 {
		return errors.New("opex rate must be >= 0")
	}
	if b.InsurancePctPerYear < 0 {
		return errors.New("InsurancePctPerYear must be >= 0")
	}
	return nil
}

package model

import "errors"

// EAFParameters describes the electric-arc-furnace load being served.
// Units:
// - SizeTons: heat size in tons
// - GridCapMW: contracted grid power cap, MW
// - BaseCycleDurationMin / CycleDurationMin: minutes per melt cycle
type EAFParameters struct {
	SizeTons             float64
	FurnaceCount         int
	GridCapMW            float64
	CyclesPerDay         float64
	BaseCycleDurationMin float64
	// CycleDurationMin overrides BaseCycleDurationMin when > 0.
	CycleDurationMin     float64
	OperatingDaysPerYear float64
}

// EffectiveCycleDurationMin resolves the user override against the preset default.
func (e EAFParameters) EffectiveCycleDurationMin() float64 {
	if e.CycleDurationMin > 0 {
		return e.CycleDurationMin
	}
	return e.BaseCycleDurationMin
}

func (e EAFParameters) Validate() error {
	if e.SizeTons <= 0 {
		return errors.New("SizeTons must be > 0")
	}
	if e.FurnaceCount <= 0 {
		return errors.New("FurnaceCount must be > 0")
	}
	if e.GridCapMW < 0 {
		return errors.New("GridCapMW must be >= 0")
	}
	if e.CyclesPerDay <= 0 {
		return errors.New("CyclesPerDay must be > 0")
	}
	if e.EffectiveCycleDurationMin() <= 0 {
		return errors.New("cycle duration must be > 0")
	}
	if e.OperatingDaysPerYear <= 0 {
		return errors.New("OperatingDaysPerYear must be > 0")
	}
	return nil
}

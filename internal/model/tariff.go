package model

import (
	"errors"
	"fmt"
	"math"
)

// RateClassOffPeak is the backfill class used for uncovered TOU hours.
const RateClassOffPeak = "off_peak"

// TOUInterval is one time-of-use window on a 24h clock.
// Hours are fractional, [StartHour, EndHour).
type TOUInterval struct {
	StartHour float64
	EndHour   float64
	RateClass string
}

func (i TOUInterval) Hours() float64 {
	return i.EndHour - i.StartHour
}

// TariffDefinition is a utility rate schedule.
// EnergyRates are $/MWh keyed by rate class; DemandChargePerKWMonth is $/kW/month.
// Filled is the derived gap-free cover of [0,24); callers populate it via
// billing.FillTOUGaps before running bills.
type TariffDefinition struct {
	Name                   string
	EnergyRates            map[string]float64
	DemandChargePerKWMonth float64
	TOUIntervals           []TOUInterval
	Filled                 []TOUInterval

	Seasonal           bool
	WinterMonths       []int
	SummerMonths       []int
	ShoulderMonths     []int
	WinterMultiplier   float64
	SummerMultiplier   float64
	ShoulderMultiplier float64
}

// SeasonalMultiplier resolves the multiplier for a calendar month (1..12).
// ok is false when the tariff is seasonal but the month is in no season set.
func (t TariffDefinition) SeasonalMultiplier(month int) (mult float64, ok bool) {
	if !t.Seasonal {
		return 1.0, true
	}
	if containsMonth(t.WinterMonths, month) {
		return t.WinterMultiplier, true
	}
	if containsMonth(t.SummerMonths, month) {
		return t.SummerMultiplier, true
	}
	if containsMonth(t.ShoulderMonths, month) {
		return t.ShoulderMultiplier, true
	}
	return 1.0, false
}

func containsMonth(months []int, m int) bool {
	for _, v := range months {
		if v == m {
			return true
		}
	}
	return false
}

// Validate checks the derived Filled list and rate-class references.
// It assumes Filled has already been produced by the gap filler.
func (t TariffDefinition) Validate() error {
	if len(t.EnergyRates) == 0 {
		return errors.New("EnergyRates must not be empty")
	}
	if t.DemandChargePerKWMonth < 0 {
		return errors.New("DemandChargePerKWMonth must be >= 0")
	}
	if len(t.Filled) == 0 {
		return errors.New("Filled TOU intervals missing; run the gap filler first")
	}
	cursor := 0.0
	total := 0.0
	for i, iv := range t.Filled {
		if math.Abs(iv.StartHour-cursor) > 1e-9 {
			return fmt.Errorf("filled interval %d starts at %.4f, expected %.4f", i, iv.StartHour, cursor)
		}
		if iv.EndHour <= iv.StartHour {
			return fmt.Errorf("filled interval %d is empty or inverted", i)
		}
		if _, known := t.EnergyRates[iv.RateClass]; !known {
			return fmt.Errorf("rate class %q has no energy rate", iv.RateClass)
		}
		total += iv.Hours()
		cursor = iv.EndHour
	}
	if math.Abs(total-24.0) > 1e-9 {
		return fmt.Errorf("filled intervals cover %.4f hours, expected 24", total)
	}
	for _, iv := range t.TOUIntervals {
		if _, known := t.EnergyRates[iv.RateClass]; !known {
			return fmt.Errorf("TOU rate class %q has no energy rate", iv.RateClass)
		}
	}
	return nil
}

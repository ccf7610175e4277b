// Package dispatch implements the peak-shaving allocation between grid and battery.
package dispatch

// Split holds parallel grid- and battery-supplied power sequences (MW).
type Split struct {
	GridMW    []float64
	BatteryMW []float64
}

// PeakShave allocates each load sample between grid and battery.
//
// The rule is stateless and discharge-only: whenever load exceeds the grid
// cap, the battery supplies min(load-cap, batteryLimitMW) and the grid takes
// the remainder; otherwise the grid carries the full load. No state of charge
// or intra-cycle recharge is modeled; the battery is assumed able to deliver
// its full rated power at every sample. Downstream billing depends on exactly
// this behavior.
//
// Negative caps or limits are coerced to zero.
func PeakShave(loadMW []float64, gridCapMW, batteryLimitMW float64) Split {
	if gridCapMW < 0 {
		gridCapMW = 0
	}
	if batteryLimitMW < 0 {
		batteryLimitMW = 0
	}
	s := Split{
		GridMW:    make([]float64, len(loadMW)),
		BatteryMW: make([]float64, len(loadMW)),
	}
	for i, load := range loadMW {
		if load > gridCapMW {
			batt := load - gridCapMW
			if batt > batteryLimitMW {
				batt = batteryLimitMW
			}
			s.BatteryMW[i] = batt
			s.GridMW[i] = load - batt
		} else {
			s.GridMW[i] = load
		}
	}
	return s
}

package model

// Metric is a numeric result that may be undefined.
// IRR without a sign change, LCOS with zero discharge and similar edge cases
// are reported as undefined rather than as a misleading zero.
type Metric struct {
	Value float64
	OK    bool
}

func DefinedMetric(v float64) Metric {
	return Metric{Value: v, OK: true}
}

func UndefinedMetric() Metric {
	return Metric{}
}

// Ptr returns the value as a pointer, or nil when undefined.
// Intended for JSON response models where undefined must render as null.
func (m Metric) Ptr() *float64 {
	if !m.OK {
		return nil
	}
	v := m.Value
	return &v
}

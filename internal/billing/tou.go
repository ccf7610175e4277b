package billing

import (
	"fmt"
	"sort"

	"bess-valuation/internal/model"
)

// FillTOUGaps cleans an arbitrary TOU interval list into a sorted, contiguous
// cover of [0,24), backfilling uncovered hours as off_peak.
//
// Invalid intervals (start >= end, or outside [0,24]) are dropped with a
// diagnostic. Overlaps are flagged but not resolved: the interval with the
// earlier start wins the overlapped range. An empty input yields a single
// all-day off_peak interval.
func FillTOUGaps(intervals []model.TOUInterval) ([]model.TOUInterval, []string) {
	var diags []string

	valid := make([]model.TOUInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.StartHour >= iv.EndHour || iv.StartHour < 0 || iv.EndHour > 24 {
			diags = append(diags, fmt.Sprintf(
				"dropped invalid TOU interval [%.2f, %.2f) %s", iv.StartHour, iv.EndHour, iv.RateClass))
			continue
		}
		valid = append(valid, iv)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].StartHour < valid[j].StartHour
	})

	filled := make([]model.TOUInterval, 0, len(valid)+2)
	cursor := 0.0
	for _, iv := range valid {
		if iv.EndHour <= cursor {
			diags = append(diags, fmt.Sprintf(
				"TOU interval [%.2f, %.2f) %s fully overlapped by earlier intervals",
				iv.StartHour, iv.EndHour, iv.RateClass))
			continue
		}
		if iv.StartHour < cursor {
			diags = append(diags, fmt.Sprintf(
				"TOU interval [%.2f, %.2f) %s overlaps previous interval; truncated to start at %.2f",
				iv.StartHour, iv.EndHour, iv.RateClass, cursor))
			iv.StartHour = cursor
		} else if iv.StartHour > cursor {
			filled = append(filled, model.TOUInterval{
				StartHour: cursor,
				EndHour:   iv.StartHour,
				RateClass: model.RateClassOffPeak,
			})
		}
		filled = append(filled, iv)
		cursor = iv.EndHour
	}
	if cursor < 24 {
		filled = append(filled, model.TOUInterval{
			StartHour: cursor,
			EndHour:   24,
			RateClass: model.RateClassOffPeak,
		})
	}
	return filled, diags
}

// NormalizeTariff returns a copy of the tariff with the derived Filled list
// populated, ensuring off_peak has an energy rate for backfilled hours.
func NormalizeTariff(t model.TariffDefinition) (model.TariffDefinition, []string) {
	filled, diags := FillTOUGaps(t.TOUIntervals)
	t.Filled = filled
	if t.EnergyRates == nil {
		t.EnergyRates = map[string]float64{}
	}
	if _, ok := t.EnergyRates[model.RateClassOffPeak]; !ok {
		t.EnergyRates[model.RateClassOffPeak] = 0
		diags = append(diags, "off_peak energy rate missing; defaulted to 0")
	}
	return t, diags
}

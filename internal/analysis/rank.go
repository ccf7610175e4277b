package analysis

import (
	"sort"

	"bess-valuation/internal/sizing"
)

// RankByNPV returns the valid search candidates ordered by descending NPV,
// at most topN of them. Skipped and failed candidates are excluded.
func RankByNPV(grid []sizing.Candidate, topN int) []sizing.Candidate {
	out := make([]sizing.Candidate, 0, len(grid))
	for _, c := range grid {
		if c.Skipped || c.Err != "" || !c.NPV.OK {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NPV.Value > out[j].NPV.Value
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

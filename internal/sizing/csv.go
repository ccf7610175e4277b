package sizing

import (
	"encoding/csv"
	"os"
	"strconv"

	"bess-valuation/internal/model"
)

// WriteGridCSV writes the per-candidate result table. Undefined metrics are
// written as empty cells so they stay distinguishable from real zeros.
func WriteGridCSV(path string, grid []Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"capacity_mwh",
		"power_mw",
		"skipped",
		"error",
		"npv",
		"irr",
		"payback_years",
		"lcos",
		"annual_savings",
		"net_initial_cost",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, c := range grid {
		row := []string{
			fmtFloat(c.CapacityMWh),
			fmtFloat(c.PowerMW),
			strconv.FormatBool(c.Skipped),
			c.Err,
			fmtMetric(c.NPV),
			fmtMetric(c.IRR),
			fmtMetric(c.PaybackYears),
			fmtMetric(c.LCOS),
			fmtFloat(c.AnnualSavings),
			fmtFloat(c.NetInitialCost),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtMetric(m model.Metric) string {
	if !m.OK {
		return ""
	}
	return fmtFloat(m.Value)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

package finance

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCashFlowCSV writes the per-year ledger, one row per project year.
func WriteCashFlowCSV(path string, ledger []CashFlowRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"gross_savings",
		"om_cost",
		"replacement_cost",
		"decommissioning_cost",
		"taxable_income",
		"taxes",
		"net_cash_flow",
		"cumulative_cash_flow",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.GrossSavings),
			fmtFloat(r.OMCost),
			fmtFloat(r.ReplacementCost),
			fmtFloat(r.DecommissioningCost),
			fmtFloat(r.TaxableIncome),
			fmtFloat(r.Taxes),
			fmtFloat(r.NetCashFlow),
			fmtFloat(r.CumulativeCashFlow),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

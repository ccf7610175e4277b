package models

// CalculateResponse is the result of one valuation run. Undefined metrics
// render as null, never as zero.
type CalculateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Summary     ValuationSummary    `json:"summary"`
	Potential   ShavingPotentialRow `json:"potential"`
	Incentives  IncentiveSummary    `json:"incentives"`
	Months      []MonthlyPairRow    `json:"months,omitempty"`
	CashFlow    []CashFlowRow       `json:"cash_flow,omitempty"`
	Diagnostics []string            `json:"diagnostics,omitempty"`
}

// ShavingPotentialRow summarizes the load above the grid cap independent of
// the chosen battery size.
type ShavingPotentialRow struct {
	PeakMW             float64 `json:"peak_mw"`
	MeanMW             float64 `json:"mean_mw"`
	P95MW              float64 `json:"p95_mw"`
	GridCapMW          float64 `json:"grid_cap_mw"`
	RequiredPowerMW    float64 `json:"required_power_mw"`
	EnergyAboveCapMWh  float64 `json:"energy_above_cap_mwh"`
	ShavableMWhPerYear float64 `json:"shavable_mwh_per_year"`
}

// ValuationSummary carries annual billing totals and investment metrics.
type ValuationSummary struct {
	AnnualBillWithout  float64 `json:"annual_bill_without_bess"`
	AnnualBillWith     float64 `json:"annual_bill_with_bess"`
	AnnualSavings      float64 `json:"annual_savings"`
	AnnualDischargeMWh float64 `json:"annual_discharge_mwh"`

	GrossInitialCost float64 `json:"gross_initial_cost"`
	NetInitialCost   float64 `json:"net_initial_cost"`

	NPV          *float64 `json:"npv"`
	IRR          *float64 `json:"irr"`
	PaybackYears *float64 `json:"payback_years"`
	LCOS         *float64 `json:"lcos"`
}

// IncentiveSummary is the stacked incentive value and its breakdown.
type IncentiveSummary struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// MonthlyPairRow is one month of the with/without comparison.
type MonthlyPairRow struct {
	Month               int     `json:"month"`
	BillWithout         float64 `json:"bill_without_bess"`
	BillWith            float64 `json:"bill_with_bess"`
	Savings             float64 `json:"savings"`
	PeakDemandKWWithout float64 `json:"peak_demand_kw_without_bess"`
	PeakDemandKWWith    float64 `json:"peak_demand_kw_with_bess"`
	DischargeMWh        float64 `json:"discharge_mwh"`
}

// CashFlowRow mirrors finance.CashFlowRecord for export.
type CashFlowRow struct {
	Year                int     `json:"year"`
	GrossSavings        float64 `json:"gross_savings"`
	OMCost              float64 `json:"om_cost"`
	ReplacementCost     float64 `json:"replacement_cost"`
	DecommissioningCost float64 `json:"decommissioning_cost"`
	TaxableIncome       float64 `json:"taxable_income"`
	Taxes               float64 `json:"taxes"`
	NetCashFlow         float64 `json:"net_cash_flow"`
	CumulativeCashFlow  float64 `json:"cumulative_cash_flow"`
}

// OptimizeResponse is the sizing search result.
type OptimizeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Best      *CandidateRow  `json:"best"`
	Top       []CandidateRow `json:"top,omitempty"`
	Evaluated int            `json:"evaluated"`
	Grid      []CandidateRow `json:"grid,omitempty"`
}

// CandidateRow is one evaluated (capacity, power) pair.
type CandidateRow struct {
	CapacityMWh float64 `json:"capacity_mwh"`
	PowerMW     float64 `json:"power_mw"`
	Skipped     bool    `json:"skipped,omitempty"`
	Error       string  `json:"error,omitempty"`

	NPV            *float64 `json:"npv"`
	IRR            *float64 `json:"irr"`
	PaybackYears   *float64 `json:"payback_years"`
	LCOS           *float64 `json:"lcos"`
	AnnualSavings  float64  `json:"annual_savings"`
	NetInitialCost float64  `json:"net_initial_cost"`
}

// PresetInfo describes one entry of a reference catalog.
type PresetInfo struct {
	ID   string      `json:"id"`
	Body interface{} `json:"body"`
}

// ErrorResponse is the common error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable code plus a human-readable message. Problems
// lists individual validation failures when the request was structurally
// valid but semantically rejected.
type ErrorDetail struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Problems []string `json:"problems,omitempty"`
}

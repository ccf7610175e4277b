package model

// CustomIncentiveKind selects how a user-defined program is applied.
type CustomIncentiveKind int

const (
	CustomPerKWh CustomIncentiveKind = iota
	CustomPctOfCost
)

// StateProgram is a flat, stackable $/kWh capital incentive.
type StateProgram struct {
	Name       string
	RatePerKWh float64
}

// CustomProgram is a user-defined incentive, either $/kWh or % of gross cost.
type CustomProgram struct {
	Name string
	Kind CustomIncentiveKind
	Rate float64 // $/kWh or fraction of cost depending on Kind
}

// IncentiveProgramSet enumerates the capital incentives under consideration.
// ITC and CEIC are mutually exclusive percentage-of-cost credits; when both
// are enabled the larger one applies. Bonus, state and custom programs stack
// additively on top.
type IncentiveProgramSet struct {
	ITCEnabled bool
	ITCPct     float64 // fraction of gross cost

	CEICEnabled bool
	CEICPct     float64

	BonusEnabled bool
	BonusPct     float64

	StatePrograms []StateProgram
	Custom        *CustomProgram
}

package scenario

import (
	"lohnplaner/internal/domain/social"
	"lohnplaner/internal/domain/tariff"
)

const (
	KindSalaryOnly     = "salary_only"
	KindSalaryDividend = "salary_dividend"

	// Warnings surfaced on degraded-but-computed results.
	WarningResidualClamped = "residual_profit_clamped"
	WarningMissingFactors  = "missing_municipality_factors"
	WarningMissingTariff   = "missing_canton_tariff"
	WarningDividendBlocked = "dividend_blocked_below_minimum_salary"
)

// Params are the caller-supplied inputs for one evaluation. Amounts are in
// francs; a zero DesiredPayout means "pay out everything available".
type Params struct {
	Profit              float64            `json:"profit"`
	DesiredPayout       float64            `json:"desiredPayout"`
	OtherIncome         float64            `json:"otherIncome"`
	Deductions          float64            `json:"deductions"`
	MinimumSalary       float64            `json:"minimumSalary"`
	ShareholdingPercent float64            `json:"shareholdingPercent"`
	AgeBand             social.AgeBand     `json:"ageBand"`
	FilingStatus        tariff.FilingGroup `json:"filingStatus"`
	Canton              string             `json:"canton"`
	Commune             string             `json:"commune"`
	ContributionsApply  bool               `json:"contributionsApply"`
}

// payoutCap is the upper bound of the salary axis: the profit, or the desired
// payout when one is requested, whichever is smaller.
func (p Params) payoutCap() float64 {
	cap := p.Profit
	if p.DesiredPayout > 0 && p.DesiredPayout < cap {
		cap = p.DesiredPayout
	}
	if cap < 0 {
		cap = 0
	}
	return cap
}

// TaxBreakdown splits the personal income tax by authority. Federal tax
// carries no local multiplier; the confessional part is the church surcharge
// on the cantonal and communal parts.
type TaxBreakdown struct {
	Federal      float64 `json:"federal"`
	Cantonal     float64 `json:"cantonal"`
	Communal     float64 `json:"communal"`
	Confessional float64 `json:"confessional"`
	Total        float64 `json:"total"`
}

// Result is the outcome of one scenario evaluation. It is a pure value
// object, derived entirely from the inputs and the immutable ruleset.
type Result struct {
	Kind               string              `json:"kind"`
	GrossSalary        float64             `json:"grossSalary"`
	Dividend           float64             `json:"dividend"`
	EmployerCost       social.Contribution `json:"employerCost"`
	EmployeeDeductions social.Contribution `json:"employeeDeductions"`
	CorporateTax       float64             `json:"corporateTax"`
	IncomeTax          TaxBreakdown        `json:"incomeTax"`
	NetToOwner         float64             `json:"netToOwner"`
	RetainedProfit     float64             `json:"retainedProfit"`
	Warnings           []string            `json:"warnings,omitempty"`
}

package scenario

import (
	"lohnplaner/internal/domain/jurisdiction"
	"lohnplaner/internal/domain/social"
)

// Evaluator computes the full salary/dividend chain against one immutable
// ruleset. Every method is a pure function of its inputs; out-of-range values
// are clamped at each stage rather than rejected, so an evaluation always
// produces a (possibly degraded) result.
type Evaluator struct {
	rules *Ruleset
}

func NewEvaluator(rules *Ruleset) *Evaluator {
	return &Evaluator{rules: rules}
}

// Rules exposes the evaluator's ruleset to callers that need jurisdiction
// listings or the tax year.
func (e *Evaluator) Rules() *Ruleset {
	return e.rules
}

// SalaryOnly evaluates the scenario where the whole payout is drawn as
// salary: employer costs reduce the residual profit, the residual is taxed at
// the corporate rate and retained, and the salary is taxed as personal income.
func (e *Evaluator) SalaryOnly(p Params) Result {
	salary := p.payoutCap()
	employer, employee := e.contributions(p, salary)

	var warnings []string
	factors, found := e.rules.FactorsFor(p.Canton, p.Commune)
	if !found {
		warnings = append(warnings, WarningMissingFactors)
	}

	residual := p.Profit - salary - employer.Total
	if residual < 0 {
		residual = 0
		warnings = append(warnings, WarningResidualClamped)
	}
	corporateTax := e.rules.Corporate.TaxOn(residual, p.Canton, factors)

	base := clamp(salary - employee.Total + p.OtherIncome - p.Deductions)
	tax, taxWarnings := e.personalTax(base, base, p, factors)
	warnings = append(warnings, taxWarnings...)

	return Result{
		Kind:               KindSalaryOnly,
		GrossSalary:        salary,
		EmployerCost:       employer,
		EmployeeDeductions: employee,
		CorporateTax:       corporateTax,
		IncomeTax:          tax,
		NetToOwner:         clamp(salary - employee.Total - tax.Total),
		RetainedProfit:     clamp(residual - corporateTax),
		Warnings:           warnings,
	}
}

// SalaryDividend evaluates the strict-rule blended scenario: salary is capped
// at the market-conforming minimum and the after-tax pool is distributed as a
// dividend, but only once that minimum salary is actually paid.
func (e *Evaluator) SalaryDividend(p Params) Result {
	cap := p.payoutCap()
	salary := p.MinimumSalary
	if salary > cap {
		salary = cap
	}
	return e.salaryDividendAt(p, salary)
}

// salaryDividendAt runs the blended chain at a fixed salary level. The
// optimizer sweeps this function across the salary axis.
func (e *Evaluator) salaryDividendAt(p Params, salary float64) Result {
	cap := p.payoutCap()
	if salary > cap {
		salary = cap
	}
	if salary < 0 {
		salary = 0
	}
	employer, employee := e.contributions(p, salary)

	var warnings []string
	factors, found := e.rules.FactorsFor(p.Canton, p.Commune)
	if !found {
		warnings = append(warnings, WarningMissingFactors)
	}

	residual := p.Profit - salary - employer.Total
	if residual < 0 {
		residual = 0
		warnings = append(warnings, WarningResidualClamped)
	}
	corporateTax := e.rules.Corporate.TaxOn(residual, p.Canton, factors)
	pool := clamp(residual - corporateTax)

	// Strict rule: no dividend until the minimum salary is paid in full.
	var div float64
	if salary >= p.MinimumSalary {
		div = pool
		if p.DesiredPayout > 0 {
			if remaining := clamp(cap - salary); div > remaining {
				div = remaining
			}
		}
	} else {
		warnings = append(warnings, WarningDividendBlocked)
	}

	// Federal and cantonal inclusion rates differ; the two taxable bases are
	// tracked separately, never collapsed.
	inclusion := e.rules.Dividend.InclusionRates(p.ShareholdingPercent, p.Canton)
	net := salary - employee.Total + p.OtherIncome - p.Deductions
	federalBase := clamp(net + div*inclusion.Federal)
	cantonalBase := clamp(net + div*inclusion.Cantonal)

	tax, taxWarnings := e.personalTax(federalBase, cantonalBase, p, factors)
	warnings = append(warnings, taxWarnings...)

	return Result{
		Kind:               KindSalaryDividend,
		GrossSalary:        salary,
		Dividend:           div,
		EmployerCost:       employer,
		EmployeeDeductions: employee,
		CorporateTax:       corporateTax,
		IncomeTax:          tax,
		NetToOwner:         clamp(salary - employee.Total + div - tax.Total),
		RetainedProfit:     clamp(pool - div),
		Warnings:           warnings,
	}
}

// personalTax composes the federal tariff (no local multiplier) with the
// cantonal tariff scaled by the municipality factors. The marital quotient is
// applied only for splittable filing statuses, using the divisor each table
// publishes.
func (e *Evaluator) personalTax(federalBase, cantonalBase float64, p Params, factors jurisdiction.Factors) (TaxBreakdown, []string) {
	federalFactor := 1.0
	if p.FilingStatus.Splittable() && e.rules.FederalTariff.SplittingDivisor > 1 {
		federalFactor = e.rules.FederalTariff.SplittingDivisor
	}
	federal := e.rules.FederalTariff.Evaluate(federalBase, federalFactor)

	var warnings []string
	table, ok := e.rules.CantonTariff(p.Canton)
	if !ok {
		warnings = append(warnings, WarningMissingTariff)
	}
	cantonalFactor := 1.0
	if p.FilingStatus.Splittable() && table.SplittingDivisor > 1 {
		cantonalFactor = table.SplittingDivisor
	}
	baseTax := table.Evaluate(cantonalBase, cantonalFactor)

	cantonal := baseTax * factors.IncomeCanton
	communal := baseTax * factors.IncomeCommune
	confessional := (cantonal + communal) * factors.Confession

	return TaxBreakdown{
		Federal:      federal,
		Cantonal:     cantonal,
		Communal:     communal,
		Confessional: confessional,
		Total:        federal + cantonal + communal + confessional,
	}, warnings
}

func (e *Evaluator) contributions(p Params, salary float64) (social.Contribution, social.Contribution) {
	if !p.ContributionsApply {
		return social.Contribution{}, social.Contribution{}
	}
	return e.rules.Social.EmployerCost(salary, p.AgeBand), e.rules.Social.EmployeeDeduction(salary, p.AgeBand)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

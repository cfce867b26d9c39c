package social

import "math"

// EmployerCost returns the employer-side contributions on a gross salary.
func (c Config) EmployerCost(salary float64, band AgeBand) Contribution {
	if salary <= 0 {
		return Contribution{}
	}
	contrib := Contribution{
		OldAge:       c.OldAgeEmployerRate * salary,
		Unemployment: c.unemployment(salary, c.UnemploymentEmployerRate, c.SolidarityEmployerRate),
		Pension:      c.pension(salary, band),
		Other:        (c.FamilyAllowanceRate + c.AccidentInsuranceRate) * salary,
	}
	contrib.Total = contrib.OldAge + contrib.Unemployment + contrib.Pension + contrib.Other
	return contrib
}

// EmployeeDeduction returns the employee-side contributions withheld from a
// gross salary.
func (c Config) EmployeeDeduction(salary float64, band AgeBand) Contribution {
	if salary <= 0 {
		return Contribution{}
	}
	contrib := Contribution{
		OldAge:       c.OldAgeEmployeeRate * salary,
		Unemployment: c.unemployment(salary, c.UnemploymentEmployeeRate, c.SolidarityEmployeeRate),
		Pension:      c.pension(salary, band),
	}
	contrib.Total = contrib.OldAge + contrib.Unemployment + contrib.Pension
	return contrib
}

func (c Config) unemployment(salary, rate, solidarityRate float64) float64 {
	capped := math.Min(salary, c.UnemploymentCeiling)
	if c.UnemploymentCeiling <= 0 {
		capped = salary
	}
	amount := rate * capped
	if excess := salary - c.UnemploymentCeiling; excess > 0 && solidarityRate > 0 {
		amount += solidarityRate * excess
	}
	return amount
}

// pension returns one side's occupational-pension contribution: half the age
// band's total rate on the coordinated salary. Salaries below the entry
// threshold are not insured.
func (c Config) pension(salary float64, band AgeBand) float64 {
	if salary < c.PensionEntryThreshold {
		return 0
	}
	rate, ok := c.PensionRates[band]
	if !ok {
		return 0
	}
	insured := math.Min(salary, c.PensionMaxInsuredSalary) - c.PensionCoordinationDeduction
	if insured <= 0 {
		return 0
	}
	return rate / 2 * insured
}

package social

// AgeBand selects the occupational-pension savings rate. Bands follow the
// statutory schedule; rates are totals split evenly between employer and
// employee.
type AgeBand string

const (
	Band25to34 AgeBand = "25-34"
	Band35to44 AgeBand = "35-44"
	Band45to54 AgeBand = "45-54"
	Band55to65 AgeBand = "55-65"
)

// Config holds the social-insurance constants for one tax year. These are
// policy values that change by year and must come from configuration, never
// from code. All rates are fractions.
type Config struct {
	OldAgeEmployerRate float64
	OldAgeEmployeeRate float64

	UnemploymentEmployerRate float64
	UnemploymentEmployeeRate float64
	UnemploymentCeiling      float64
	// Solidarity surcharge on salary above the ceiling. Zero in years where
	// the surcharge is abolished.
	SolidarityEmployerRate float64
	SolidarityEmployeeRate float64

	// Employer-only levies, flat percentages of the full salary. Not
	// deductible from the employee's taxable base.
	FamilyAllowanceRate   float64
	AccidentInsuranceRate float64

	PensionEntryThreshold        float64
	PensionCoordinationDeduction float64
	PensionMaxInsuredSalary      float64
	PensionRates                 map[AgeBand]float64
}

// Contribution is one side's statutory contributions on a salary. Other is
// only populated on the employer side (family-allowance fund, accident
// insurance).
type Contribution struct {
	OldAge       float64 `json:"oldAge"`
	Unemployment float64 `json:"unemployment"`
	Pension      float64 `json:"pension"`
	Other        float64 `json:"other"`
	Total        float64 `json:"total"`
}

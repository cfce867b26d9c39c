package dataset

// Raw on-disk schemas. Rates are published as percentages and converted to
// fractions while building the ruleset.

type rawMultipliers struct {
	Municipalities []rawMunicipality `json:"municipalities"`
}

type rawMunicipality struct {
	Canton        string  `json:"canton"`
	Commune       string  `json:"commune"`
	IncomeCanton  float64 `json:"incomeCanton"`
	IncomeCommune float64 `json:"incomeCommune"`
	Confession    float64 `json:"confession"`
	ProfitCanton  float64 `json:"profitCanton"`
	ProfitCommune float64 `json:"profitCommune"`
}

type rawTable struct {
	Kind             string  `json:"kind"`
	Group            string  `json:"group"`
	SplittingDivisor float64 `json:"splittingDivisor"`
	// UpperBounds marks tables published with bracket upper bounds and the
	// accumulated tax at each bound. These are shifted to lower-bound rows
	// while loading.
	UpperBounds bool     `json:"upperBounds"`
	Rows        []rawRow `json:"rows"`
}

type rawRow struct {
	Threshold   float64 `json:"threshold"`
	Width       float64 `json:"width"`
	RatePercent float64 `json:"ratePercent"`
	Base        float64 `json:"base"`
	Formula     string  `json:"formula"`
}

type rawCantonTariffs struct {
	Cantons map[string]rawTable `json:"cantons"`
}

type rawCorporate struct {
	FederalRatePercent     float64            `json:"federalRatePercent"`
	CantonBaseRatesPercent map[string]float64 `json:"cantonBaseRatesPercent"`
}

type rawDividend struct {
	QualifyingThresholdPercent float64            `json:"qualifyingThresholdPercent"`
	FederalPercent             float64            `json:"federalPercent"`
	CantonsPercent             map[string]float64 `json:"cantonsPercent"`
}

type rawSocial struct {
	OldAge struct {
		EmployerRatePercent float64 `yaml:"employer_rate_percent"`
		EmployeeRatePercent float64 `yaml:"employee_rate_percent"`
	} `yaml:"old_age"`
	Unemployment struct {
		EmployerRatePercent           float64 `yaml:"employer_rate_percent"`
		EmployeeRatePercent           float64 `yaml:"employee_rate_percent"`
		Ceiling                       float64 `yaml:"ceiling"`
		SolidarityEmployerRatePercent float64 `yaml:"solidarity_employer_rate_percent"`
		SolidarityEmployeeRatePercent float64 `yaml:"solidarity_employee_rate_percent"`
	} `yaml:"unemployment"`
	Other struct {
		FamilyAllowanceRatePercent   float64 `yaml:"family_allowance_rate_percent"`
		AccidentInsuranceRatePercent float64 `yaml:"accident_insurance_rate_percent"`
	} `yaml:"other"`
	Pension struct {
		EntryThreshold        float64            `yaml:"entry_threshold"`
		CoordinationDeduction float64            `yaml:"coordination_deduction"`
		MaxInsuredSalary      float64            `yaml:"max_insured_salary"`
		RatesPercent          map[string]float64 `yaml:"rates_percent"`
	} `yaml:"pension"`
}

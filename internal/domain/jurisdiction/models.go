package jurisdiction

// Factors are the per-municipality tax multipliers, expressed as fractions.
// IncomeCanton/IncomeCommune scale the cantonal base tariff for personal
// income tax; ProfitCanton/ProfitCommune scale the cantonal base rate for
// corporate profit tax; Confession is the church surcharge (0 when the
// taxpayer has no confession).
type Factors struct {
	IncomeCanton  float64
	IncomeCommune float64
	Confession    float64
	ProfitCanton  float64
	ProfitCommune float64
}

// Defaults returns neutral factors for a municipality without a record:
// canton multiplier 1.0, commune and confession 0.0, leaving the base tariff
// unchanged so composition never fails on incomplete data.
func Defaults() Factors {
	return Factors{IncomeCanton: 1.0, ProfitCanton: 1.0}
}

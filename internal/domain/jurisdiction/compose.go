package jurisdiction

// ComposeIncomeTax scales a cantonal base tariff result by the municipality's
// canton and commune multipliers, then adds the church surcharge on top.
// Federal tax has no local multiplier and is added separately by the caller.
func ComposeIncomeTax(baseTax float64, f Factors) float64 {
	if baseTax < 0 {
		baseTax = 0
	}
	return baseTax * (f.IncomeCanton + f.IncomeCommune) * (1 + f.Confession)
}

// ComposeCorporateRate combines the federal flat rate with the cantonal base
// rate scaled by the municipality's profit multipliers.
func ComposeCorporateRate(cantonBaseRate, federalRate float64, f Factors) float64 {
	if cantonBaseRate < 0 {
		cantonBaseRate = 0
	}
	if federalRate < 0 {
		federalRate = 0
	}
	return federalRate + cantonBaseRate*(f.ProfitCanton+f.ProfitCommune)
}

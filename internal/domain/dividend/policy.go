// Package dividend decides what fraction of a distributed dividend is subject
// to personal income tax (partial inclusion).
package dividend

// DefaultInclusionRate is the flat fallback when no per-canton rate is
// configured: 70% of the dividend is taxable.
const DefaultInclusionRate = 0.70

// Config holds the partial-inclusion policy for one tax year.
type Config struct {
	// QualifyingThresholdPercent is the minimum shareholding (in percent of
	// the company) required for relief, typically 10.
	QualifyingThresholdPercent float64
	FederalRate                float64
	CantonRates                map[string]float64
}

// Rates are the taxable fractions of a dividend per tax authority. Federal
// and cantonal bases differ and must be tracked separately.
type Rates struct {
	Federal  float64
	Cantonal float64
}

// InclusionRates returns the inclusion rates for a shareholder. Holdings
// below the qualifying threshold receive no relief: both rates are 1.0.
// A canton without a specific entry falls back to the federal flat rate.
func (c Config) InclusionRates(shareholdingPercent float64, canton string) Rates {
	if shareholdingPercent < c.QualifyingThresholdPercent {
		return Rates{Federal: 1.0, Cantonal: 1.0}
	}
	federal := c.FederalRate
	if federal <= 0 {
		federal = DefaultInclusionRate
	}
	cantonal, ok := c.CantonRates[canton]
	if !ok || cantonal <= 0 {
		cantonal = federal
	}
	return Rates{Federal: federal, Cantonal: cantonal}
}

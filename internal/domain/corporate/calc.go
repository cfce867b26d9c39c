// Package corporate computes the effective corporate profit tax applicable to
// retained company profit.
package corporate

import "lohnplaner/internal/domain/jurisdiction"

// Config holds the corporate income tax rates for one tax year: the federal
// flat rate and the cantonal base rates before municipal multipliers.
type Config struct {
	FederalRate     float64
	CantonBaseRates map[string]float64
}

// EffectiveRate returns the combined corporate tax rate for a municipality.
// A canton without a configured base rate degrades to the federal rate alone.
func (c Config) EffectiveRate(canton string, f jurisdiction.Factors) float64 {
	return jurisdiction.ComposeCorporateRate(c.CantonBaseRates[canton], c.FederalRate, f)
}

// TaxOn returns the corporate tax on a retained profit. Negative profit is
// clamped to zero.
func (c Config) TaxOn(profit float64, canton string, f jurisdiction.Factors) float64 {
	if profit <= 0 {
		return 0
	}
	return profit * c.EffectiveRate(canton, f)
}

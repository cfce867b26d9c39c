package scenario

import (
	"lohnplaner/internal/domain/corporate"
	"lohnplaner/internal/domain/dividend"
	"lohnplaner/internal/domain/jurisdiction"
	"lohnplaner/internal/domain/social"
	"lohnplaner/internal/domain/tariff"
)

// Ruleset bundles the full rule configuration for one tax year. It is built
// once by the dataset loader and treated as read-only for the lifetime of
// every computation; evaluators hold it by reference and never mutate it.
type Ruleset struct {
	Year          int
	FederalTariff tariff.Table
	CantonTariffs map[string]tariff.Table
	Factors       map[string]jurisdiction.Factors
	Social        social.Config
	Corporate     corporate.Config
	Dividend      dividend.Config
}

// FactorKey addresses a municipality record.
func FactorKey(canton, commune string) string {
	return canton + "/" + commune
}

// FactorsFor returns the municipality's multipliers, or neutral defaults when
// the record is missing. The boolean reports whether a record was found so
// callers can surface the degradation.
func (rs *Ruleset) FactorsFor(canton, commune string) (jurisdiction.Factors, bool) {
	if f, ok := rs.Factors[FactorKey(canton, commune)]; ok {
		return f, true
	}
	return jurisdiction.Defaults(), false
}

// CantonTariff returns the canton's income tariff table.
func (rs *Ruleset) CantonTariff(canton string) (tariff.Table, bool) {
	t, ok := rs.CantonTariffs[canton]
	return t, ok
}

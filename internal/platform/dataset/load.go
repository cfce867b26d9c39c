// Package dataset loads the published tax tables for one year from a data
// directory and assembles the immutable ruleset the engine computes against.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v2"

	"lohnplaner/internal/domain/corporate"
	"lohnplaner/internal/domain/dividend"
	"lohnplaner/internal/domain/jurisdiction"
	"lohnplaner/internal/domain/scenario"
	"lohnplaner/internal/domain/social"
	"lohnplaner/internal/domain/tariff"
)

const (
	fileMultipliers   = "multipliers.json"
	fileFederalTariff = "income_tax_federal.json"
	fileCantonTariffs = "income_tax_cantons.json"
	fileCorporate     = "corporate_tax.json"
	fileDividend      = "dividend_inclusion.json"
	fileSocial        = "social_insurance.yaml"
)

// Load reads the data directory and builds the ruleset for the given year.
// Malformed rows inside a table are dropped; an unrecognized table kind is a
// hard error because guessing a tariff shape silently mistaxes everyone.
func Load(dir string, year int) (*scenario.Ruleset, error) {
	rules := &scenario.Ruleset{
		Year:          year,
		CantonTariffs: map[string]tariff.Table{},
		Factors:       map[string]jurisdiction.Factors{},
	}

	var multipliers rawMultipliers
	if err := readJSON(filepath.Join(dir, fileMultipliers), &multipliers); err != nil {
		return nil, err
	}
	for _, m := range multipliers.Municipalities {
		if m.Canton == "" || m.Commune == "" {
			continue
		}
		rules.Factors[scenario.FactorKey(m.Canton, m.Commune)] = jurisdiction.Factors{
			IncomeCanton:  m.IncomeCanton,
			IncomeCommune: m.IncomeCommune,
			Confession:    m.Confession,
			ProfitCanton:  m.ProfitCanton,
			ProfitCommune: m.ProfitCommune,
		}
	}

	var federal rawTable
	if err := readJSON(filepath.Join(dir, fileFederalTariff), &federal); err != nil {
		return nil, err
	}
	table, err := buildTable(federal)
	if err != nil {
		return nil, fmt.Errorf("federal tariff: %w", err)
	}
	rules.FederalTariff = table

	var cantons rawCantonTariffs
	if err := readJSON(filepath.Join(dir, fileCantonTariffs), &cantons); err != nil {
		return nil, err
	}
	for canton, raw := range cantons.Cantons {
		table, err := buildTable(raw)
		if err != nil {
			return nil, fmt.Errorf("canton %s tariff: %w", canton, err)
		}
		rules.CantonTariffs[canton] = table
	}

	var corp rawCorporate
	if err := readJSON(filepath.Join(dir, fileCorporate), &corp); err != nil {
		return nil, err
	}
	rules.Corporate = corporate.Config{
		FederalRate:     corp.FederalRatePercent / 100,
		CantonBaseRates: map[string]float64{},
	}
	for canton, pct := range corp.CantonBaseRatesPercent {
		rules.Corporate.CantonBaseRates[canton] = pct / 100
	}

	rules.Dividend, err = loadDividend(filepath.Join(dir, fileDividend))
	if err != nil {
		return nil, err
	}

	rules.Social, err = loadSocial(filepath.Join(dir, fileSocial))
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// buildTable converts a raw table to the normalized evaluator shape: percent
// rates become fractions, step rows carry slice widths as bounds, and
// upper-bound tables are shifted to lower-bound rows.
func buildTable(raw rawTable) (tariff.Table, error) {
	kind, err := tariff.ParseKind(raw.Kind)
	if err != nil {
		return tariff.Table{}, fmt.Errorf("%w: %q", err, raw.Kind)
	}

	var rows []tariff.Row
	switch {
	case kind == tariff.KindThresholdBase && raw.UpperBounds:
		rows = shiftUpperBounds(raw.Rows)
	case kind == tariff.KindStep:
		for _, r := range raw.Rows {
			rows = append(rows, tariff.Row{Bound: r.Width, Rate: r.RatePercent / 100})
		}
	default:
		for _, r := range raw.Rows {
			rows = append(rows, tariff.Row{
				Bound:     r.Threshold,
				Rate:      r.RatePercent / 100,
				FixedBase: r.Base,
				Formula:   r.Formula,
			})
		}
	}

	return tariff.Table{
		Kind:             kind,
		Rows:             rows,
		SplittingDivisor: raw.SplittingDivisor,
		Group:            tariff.FilingGroup(raw.Group),
	}.Normalize(), nil
}

// shiftUpperBounds turns published rows of the form "up to threshold T the
// accumulated tax is B, the marginal rate within is R" into lower-bound rows:
// each bracket starts where the previous one ended and carries the
// accumulated tax at its own start.
func shiftUpperBounds(raws []rawRow) []tariff.Row {
	rows := make([]tariff.Row, 0, len(raws))
	lower, base := 0.0, 0.0
	for _, r := range raws {
		rows = append(rows, tariff.Row{
			Bound:     lower,
			Rate:      r.RatePercent / 100,
			FixedBase: base,
		})
		lower, base = r.Threshold, r.Base
	}
	return rows
}

func loadDividend(path string) (dividend.Config, error) {
	cfg := dividend.Config{
		QualifyingThresholdPercent: 10,
		FederalRate:                dividend.DefaultInclusionRate,
	}

	var raw rawDividend
	err := readJSON(path, &raw)
	if os.IsNotExist(err) {
		// Optional file: fall back to the flat default for every canton.
		return cfg, nil
	}
	if err != nil {
		return dividend.Config{}, err
	}

	if raw.QualifyingThresholdPercent > 0 {
		cfg.QualifyingThresholdPercent = raw.QualifyingThresholdPercent
	}
	if raw.FederalPercent > 0 {
		cfg.FederalRate = raw.FederalPercent / 100
	}
	cfg.CantonRates = map[string]float64{}
	for canton, pct := range raw.CantonsPercent {
		cfg.CantonRates[canton] = pct / 100
	}
	return cfg, nil
}

func loadSocial(path string) (social.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return social.Config{}, err
	}
	var raw rawSocial
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return social.Config{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	cfg := social.Config{
		OldAgeEmployerRate:           raw.OldAge.EmployerRatePercent / 100,
		OldAgeEmployeeRate:           raw.OldAge.EmployeeRatePercent / 100,
		UnemploymentEmployerRate:     raw.Unemployment.EmployerRatePercent / 100,
		UnemploymentEmployeeRate:     raw.Unemployment.EmployeeRatePercent / 100,
		UnemploymentCeiling:          raw.Unemployment.Ceiling,
		SolidarityEmployerRate:       raw.Unemployment.SolidarityEmployerRatePercent / 100,
		SolidarityEmployeeRate:       raw.Unemployment.SolidarityEmployeeRatePercent / 100,
		FamilyAllowanceRate:          raw.Other.FamilyAllowanceRatePercent / 100,
		AccidentInsuranceRate:        raw.Other.AccidentInsuranceRatePercent / 100,
		PensionEntryThreshold:        raw.Pension.EntryThreshold,
		PensionCoordinationDeduction: raw.Pension.CoordinationDeduction,
		PensionMaxInsuredSalary:      raw.Pension.MaxInsuredSalary,
		PensionRates:                 map[social.AgeBand]float64{},
	}
	for band, pct := range raw.Pension.RatesPercent {
		cfg.PensionRates[social.AgeBand(band)] = pct / 100
	}
	return cfg, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

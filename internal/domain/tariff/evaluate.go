package tariff

import "math"

// Evaluate returns the tax on amount. A factor above 1 applies the marital
// quotient: the amount is divided, rounded down to the nearest 100 francs
// (after the division, a jurisdiction quirk), evaluated, and the result is
// multiplied back up. Tables restricted to single filers never split; callers
// pass a factor above 1 only for married or single-with-children taxpayers.
//
// Negative amounts are a caller error and are treated as zero. An empty table
// yields zero tax; validating configuration is the loader's job.
func (t Table) Evaluate(amount, factor float64) float64 {
	if amount < 0 || !finite(amount) {
		amount = 0
	}
	if len(t.Rows) == 0 {
		return 0
	}
	if factor > 1 && t.Group != GroupSingle {
		split := math.Floor(amount/factor/100) * 100
		return t.taxOn(split) * factor
	}
	return t.taxOn(amount)
}

func (t Table) taxOn(amount float64) float64 {
	switch t.Kind {
	case KindStep:
		return t.stepTax(amount)
	case KindFlat:
		return t.Rows[0].Rate * amount
	case KindThresholdBase:
		return t.thresholdTax(amount)
	case KindFormula:
		return t.formulaTax(amount)
	}
	return 0
}

func (t Table) stepTax(amount float64) float64 {
	remaining := amount
	var tax float64
	for _, row := range t.Rows {
		if remaining <= 0 {
			break
		}
		// A zero-width row is a placeholder, not "tax the rest at this rate".
		if row.Bound <= 0 {
			continue
		}
		chunk := math.Min(remaining, row.Bound)
		tax += chunk * row.Rate
		remaining -= chunk
	}
	if remaining > 0 {
		// Income past the last published slice is taxed at the final row's
		// rate; a zero-width final row therefore acts as an open-ended bracket.
		tax += remaining * t.Rows[len(t.Rows)-1].Rate
	}
	return tax
}

func (t Table) thresholdTax(amount float64) float64 {
	row, ok := t.rowAt(amount)
	if !ok {
		return 0
	}
	return row.FixedBase + (amount-row.Bound)*row.Rate
}

func (t Table) formulaTax(amount float64) float64 {
	row, ok := t.rowAt(amount)
	if !ok {
		return 0
	}
	tax, err := EvalFormula(row.Formula, amount)
	if err != nil || tax < 0 {
		return 0
	}
	return tax
}

// rowAt returns the highest row whose threshold does not exceed amount. Rows
// are sorted ascending at normalization time.
func (t Table) rowAt(amount float64) (Row, bool) {
	idx := -1
	for i, row := range t.Rows {
		if row.Bound > amount {
			break
		}
		idx = i
	}
	if idx < 0 {
		return Row{}, false
	}
	return t.Rows[idx], true
}

package tariff

import (
	"math"
	"sort"
	"strings"
)

// Kind selects the evaluation strategy for a tariff table. Published Swiss
// tariffs come in several incompatible shapes and each canton tags its table
// with the shape it uses.
type Kind string

const (
	// KindStep taxes successive income slices: each row's bound is the width
	// of the slice taxed at the row's rate.
	KindStep Kind = "step"
	// KindFlat applies a single rate to the whole amount.
	KindFlat Kind = "flat"
	// KindThresholdBase models tables publishing a running total: each row's
	// bound is the bracket lower threshold and the fixed base is the tax owed
	// at that threshold.
	KindThresholdBase Kind = "threshold_base"
	// KindFormula models cantons publishing a continuous function instead of
	// discrete brackets; each row carries a closed-form expression over the
	// taxable amount.
	KindFormula Kind = "formula"
)

// ParseKind maps a raw configuration tag to a Kind. An unrecognized tag is a
// hard configuration error, never guessed.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindStep:
		return KindStep, nil
	case KindFlat:
		return KindFlat, nil
	case KindThresholdBase:
		return KindThresholdBase, nil
	case KindFormula:
		return KindFormula, nil
	}
	return "", ErrUnknownKind
}

// FilingGroup identifies the taxpayers a tariff table applies to.
type FilingGroup string

const (
	GroupAll                FilingGroup = "all"
	GroupMarried            FilingGroup = "married"
	GroupSingle             FilingGroup = "single"
	GroupSingleWithChildren FilingGroup = "single_with_children"
)

// Splittable reports whether taxpayers in this group receive the marital
// quotient. Shareholding individuals filing singly never do.
func (g FilingGroup) Splittable() bool {
	return g == GroupMarried || g == GroupSingleWithChildren
}

// Row is one normalized step of a tariff table. Bound is the slice width for
// step tables and the bracket lower threshold otherwise. Rate is a fraction,
// not a percentage. FixedBase is the running total at the threshold for
// threshold/base tables. Formula is only set for formula tables.
type Row struct {
	Bound     float64
	Rate      float64
	FixedBase float64
	Formula   string
}

// Table is an immutable normalized tariff. SplittingDivisor is the marital
// quotient divisor published with the table (1 when the jurisdiction has no
// splitting).
type Table struct {
	Kind             Kind
	Rows             []Row
	SplittingDivisor float64
	Group            FilingGroup
}

// Normalize drops malformed rows (non-finite or negative numbers) and orders
// threshold-addressed tables by ascending threshold. A table that normalizes
// to empty simply yields zero tax.
func (t Table) Normalize() Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !finite(row.Bound) || !finite(row.Rate) || !finite(row.FixedBase) {
			continue
		}
		if row.Bound < 0 || row.Rate < 0 || row.FixedBase < 0 {
			continue
		}
		rows = append(rows, row)
	}
	if t.Kind == KindThresholdBase || t.Kind == KindFormula {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Bound < rows[j].Bound })
	}
	if t.SplittingDivisor < 1 || !finite(t.SplittingDivisor) {
		t.SplittingDivisor = 1
	}
	if t.Group == "" {
		t.Group = GroupAll
	}
	t.Rows = rows
	return t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

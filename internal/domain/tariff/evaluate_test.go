package tariff

import (
	"math"
	"testing"
)

func stepTable() Table {
	return Table{
		Kind: KindStep,
		Rows: []Row{
			{Bound: 6900, Rate: 0},
			{Bound: 4600, Rate: 0.02},
			{Bound: 4700, Rate: 0.03},
			{Bound: 7100, Rate: 0.04},
		},
		SplittingDivisor: 2,
		Group:            GroupAll,
	}.Normalize()
}

func TestStepTableTaxesSlices(t *testing.T) {
	table := stepTable()

	tax := table.Evaluate(11500, 1)
	want := 4600 * 0.02
	if math.Abs(tax-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, tax)
	}
}

func TestStepTableRemainderUsesLastRate(t *testing.T) {
	table := stepTable()

	// 6900+4600+4700+7100 = 23300 covered by published slices.
	tax := table.Evaluate(33300, 1)
	want := 4600*0.02 + 4700*0.03 + 7100*0.04 + 10000*0.04
	if math.Abs(tax-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, tax)
	}
}

func TestStepTableSkipsZeroWidthPlaceholder(t *testing.T) {
	table := Table{
		Kind: KindStep,
		Rows: []Row{
			{Bound: 0, Rate: 0},
			{Bound: 10000, Rate: 0.05},
		},
	}.Normalize()

	tax := table.Evaluate(8000, 1)
	if math.Abs(tax-400) > 1e-9 {
		t.Fatalf("expected 400, got %v", tax)
	}
}

func TestStepTableZeroWidthFinalRowIsOpenEnded(t *testing.T) {
	table := Table{
		Kind: KindStep,
		Rows: []Row{
			{Bound: 10000, Rate: 0.02},
			{Bound: 0, Rate: 0.08},
		},
	}.Normalize()

	tax := table.Evaluate(15000, 1)
	want := 10000*0.02 + 5000*0.08
	if math.Abs(tax-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, tax)
	}
}

func TestFlatTable(t *testing.T) {
	table := Table{Kind: KindFlat, Rows: []Row{{Rate: 0.071}}}.Normalize()

	tax := table.Evaluate(100000, 1)
	if math.Abs(tax-7100) > 1e-9 {
		t.Fatalf("expected 7100, got %v", tax)
	}
}

func thresholdTable() Table {
	return Table{
		Kind: KindThresholdBase,
		Rows: []Row{
			{Bound: 0, Rate: 0, FixedBase: 0},
			{Bound: 15200, Rate: 0.0077, FixedBase: 0},
			{Bound: 33200, Rate: 0.0088, FixedBase: 138.60},
		},
		SplittingDivisor: 2,
	}.Normalize()
}

func TestThresholdBaseTable(t *testing.T) {
	table := thresholdTable()

	tax := table.Evaluate(40000, 1)
	want := 138.60 + (40000-33200)*0.0088
	if math.Abs(tax-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, tax)
	}
}

func TestThresholdBaseContinuityAtBoundary(t *testing.T) {
	table := thresholdTable()

	below := table.Evaluate(33199.99, 1)
	at := table.Evaluate(33200, 1)
	if math.Abs(at-below) > 0.01 {
		t.Fatalf("discontinuity at bracket boundary: %v vs %v", below, at)
	}
}

func TestFormulaTable(t *testing.T) {
	table := Table{
		Kind: KindFormula,
		Rows: []Row{{Bound: 0, Formula: "0.05 * x"}},
	}.Normalize()

	tax := table.Evaluate(20000, 1)
	if math.Abs(tax-1000) > 1e-9 {
		t.Fatalf("expected 1000, got %v", tax)
	}
}

func TestFormulaTableFailsSoftOnBadFormula(t *testing.T) {
	table := Table{
		Kind: KindFormula,
		Rows: []Row{{Bound: 0, Formula: "os.exit(1)"}},
	}.Normalize()

	if tax := table.Evaluate(20000, 1); tax != 0 {
		t.Fatalf("expected 0 for malformed formula, got %v", tax)
	}
}

func TestNegativeAmountTreatedAsZero(t *testing.T) {
	if tax := stepTable().Evaluate(-5000, 1); tax != 0 {
		t.Fatalf("expected 0, got %v", tax)
	}
}

func TestEmptyTableYieldsZero(t *testing.T) {
	table := Table{Kind: KindStep}.Normalize()
	if tax := table.Evaluate(100000, 1); tax != 0 {
		t.Fatalf("expected 0, got %v", tax)
	}
}

func TestSplittingRoundsDownAfterDivision(t *testing.T) {
	table := Table{
		Kind:             KindFlat,
		Rows:             []Row{{Rate: 0.10}},
		SplittingDivisor: 2,
		Group:            GroupAll,
	}.Normalize()

	// 90150 / 2 = 45075, rounded down to 45000, taxed, doubled.
	tax := table.Evaluate(90150, 2)
	if math.Abs(tax-9000) > 1e-9 {
		t.Fatalf("expected 9000, got %v", tax)
	}
}

func TestSingleGroupTableNeverSplits(t *testing.T) {
	table := Table{
		Kind:             KindFlat,
		Rows:             []Row{{Rate: 0.10}},
		SplittingDivisor: 2,
		Group:            GroupSingle,
	}.Normalize()

	tax := table.Evaluate(90000, 2)
	if math.Abs(tax-9000) > 1e-9 {
		t.Fatalf("expected unsplit 9000, got %v", tax)
	}
}

func TestEvaluateMonotonicity(t *testing.T) {
	table := stepTable()
	prev := 0.0
	for amount := 0.0; amount <= 300000; amount += 777 {
		tax := table.Evaluate(amount, 1)
		if tax < prev-1e-9 {
			t.Fatalf("tax decreased at %v: %v < %v", amount, tax, prev)
		}
		prev = tax
	}
}

func TestNormalizeDropsMalformedRows(t *testing.T) {
	table := Table{
		Kind: KindStep,
		Rows: []Row{
			{Bound: math.NaN(), Rate: 0.05},
			{Bound: -100, Rate: 0.05},
			{Bound: 10000, Rate: 0.05},
		},
	}.Normalize()

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(table.Rows))
	}
}

func TestParseKind(t *testing.T) {
	if _, err := ParseKind("step"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseKind("progressive_spline"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

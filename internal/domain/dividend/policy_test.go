package dividend

import "testing"

func testConfig() Config {
	return Config{
		QualifyingThresholdPercent: 10,
		FederalRate:                0.70,
		CantonRates:                map[string]float64{"ZH": 0.50},
	}
}

func TestBelowThresholdFullyTaxable(t *testing.T) {
	cfg := testConfig()

	got := cfg.InclusionRates(5, "ZH")
	if got.Federal != 1.0 || got.Cantonal != 1.0 {
		t.Fatalf("expected full inclusion below threshold, got %+v", got)
	}
}

func TestQualifyingShareholding(t *testing.T) {
	cfg := testConfig()

	got := cfg.InclusionRates(25, "ZH")
	if got.Federal != 0.70 {
		t.Fatalf("expected federal 0.70, got %v", got.Federal)
	}
	if got.Cantonal != 0.50 {
		t.Fatalf("expected cantonal 0.50, got %v", got.Cantonal)
	}
}

func TestCantonWithoutEntryFallsBackToFederal(t *testing.T) {
	cfg := testConfig()

	got := cfg.InclusionRates(25, "AI")
	if got.Cantonal != 0.70 {
		t.Fatalf("expected fallback to federal rate, got %v", got.Cantonal)
	}
}

func TestExactThresholdQualifies(t *testing.T) {
	cfg := testConfig()

	got := cfg.InclusionRates(10, "ZH")
	if got.Federal != 0.70 {
		t.Fatalf("threshold is inclusive, got %+v", got)
	}
}

func TestEmptyConfigDefaults(t *testing.T) {
	cfg := Config{QualifyingThresholdPercent: 10}

	got := cfg.InclusionRates(50, "ZH")
	if got.Federal != DefaultInclusionRate || got.Cantonal != DefaultInclusionRate {
		t.Fatalf("expected %v fallback, got %+v", DefaultInclusionRate, got)
	}
}

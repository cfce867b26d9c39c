package corporate

import (
	"math"
	"testing"

	"lohnplaner/internal/domain/jurisdiction"
)

func TestEffectiveRate(t *testing.T) {
	cfg := Config{
		FederalRate:     0.085,
		CantonBaseRates: map[string]float64{"ZH": 0.07},
	}
	f := jurisdiction.Factors{ProfitCanton: 0.98, ProfitCommune: 1.19}

	got := cfg.EffectiveRate("ZH", f)
	want := 0.085 + 0.07*(0.98+1.19)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEffectiveRateUnknownCantonFallsBackToFederal(t *testing.T) {
	cfg := Config{FederalRate: 0.085}

	got := cfg.EffectiveRate("XX", jurisdiction.Defaults())
	if math.Abs(got-0.085) > 1e-9 {
		t.Fatalf("expected federal rate only, got %v", got)
	}
}

func TestTaxOnClampsNegativeProfit(t *testing.T) {
	cfg := Config{FederalRate: 0.085}

	if got := cfg.TaxOn(-1000, "ZH", jurisdiction.Defaults()); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

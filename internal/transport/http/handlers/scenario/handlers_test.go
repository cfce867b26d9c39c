package scenariohandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"lohnplaner/internal/domain/corporate"
	"lohnplaner/internal/domain/dividend"
	"lohnplaner/internal/domain/history"
	"lohnplaner/internal/domain/jurisdiction"
	"lohnplaner/internal/domain/scenario"
	"lohnplaner/internal/domain/tariff"
)

type fakeRunStore struct {
	runs []history.Run
}

func (f *fakeRunStore) InsertRun(_ context.Context, run history.Run) (string, error) {
	f.runs = append(f.runs, run)
	return "run-1", nil
}

func (f *fakeRunStore) ListRuns(_ context.Context, _, _ int) ([]history.Run, error) {
	return f.runs, nil
}

func testRules() *scenario.Ruleset {
	return &scenario.Ruleset{
		Year: 2025,
		FederalTariff: tariff.Table{
			Kind: tariff.KindFlat,
			Rows: []tariff.Row{{Rate: 0.10}},
		}.Normalize(),
		CantonTariffs: map[string]tariff.Table{
			"ZH": tariff.Table{
				Kind: tariff.KindFlat,
				Rows: []tariff.Row{{Rate: 0.05}},
			}.Normalize(),
		},
		Factors: map[string]jurisdiction.Factors{
			scenario.FactorKey("ZH", "Zurich"): {IncomeCanton: 1.0, IncomeCommune: 1.0, ProfitCanton: 1.0},
		},
		Corporate: corporate.Config{FederalRate: 0.085, CantonBaseRates: map[string]float64{"ZH": 0.035}},
		Dividend: dividend.Config{
			QualifyingThresholdPercent: 10,
			FederalRate:                0.70,
			CantonRates:                map[string]float64{"ZH": 0.50},
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestRouter(store history.StoreAPI) chi.Router {
	eval := scenario.NewEvaluator(testRules())
	opt := scenario.NewOptimizer(eval, 1000)
	handler := NewHandler(eval, opt, store, nil, 1000)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestEvaluateReturnsBothScenarios(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"profit": 200000, "minimumSalary": 80000, "shareholdingPercent": 100,
	          "filingStatus": "single", "ageBand": "35-44",
	          "canton": "ZH", "commune": "Zurich", "contributionsApply": false}`
	req := httptest.NewRequest(http.MethodPost, "/scenarios/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}

	var data Comparison
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad comparison payload: %v", err)
	}
	if data.Year != 2025 {
		t.Fatalf("expected year 2025, got %d", data.Year)
	}
	if data.SalaryOnly.Kind != scenario.KindSalaryOnly || data.SalaryDividend.Kind != scenario.KindSalaryDividend {
		t.Fatalf("unexpected scenario kinds: %s / %s", data.SalaryOnly.Kind, data.SalaryDividend.Kind)
	}
	if data.SalaryOnly.NetToOwner <= 0 || data.SalaryDividend.NetToOwner <= 0 {
		t.Fatalf("expected positive nets, got %v / %v", data.SalaryOnly.NetToOwner, data.SalaryDividend.NetToOwner)
	}
}

func TestOptimizeRecordsRun(t *testing.T) {
	store := &fakeRunStore{}
	router := newTestRouter(store)

	body := `{"profit": 300000, "minimumSalary": 100000, "shareholdingPercent": 100,
	          "filingStatus": "single", "canton": "ZH", "commune": "Zurich"}`
	req := httptest.NewRequest(http.MethodPost, "/scenarios/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	var best scenario.Result
	if err := json.Unmarshal(env.Data, &best); err != nil {
		t.Fatalf("bad result payload: %v", err)
	}
	if best.Kind != scenario.KindSalaryDividend {
		t.Fatalf("unexpected result kind: %s", best.Kind)
	}

	if len(store.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(store.runs))
	}
	run := store.runs[0]
	if run.Canton != "ZH" || run.Profit != 300000 || run.Step != 1000 {
		t.Fatalf("unexpected recorded run: %+v", run)
	}
	if run.BestSalary != best.GrossSalary || run.NetToOwner != best.NetToOwner {
		t.Fatalf("recorded run does not match result: %+v vs %+v", run, best)
	}
}

func TestEvaluateRejectsBadPayload(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		name string
		body string
	}{
		{"negative profit", `{"profit": -1, "canton": "ZH", "commune": "Zurich"}`},
		{"missing canton", `{"profit": 100000, "commune": "Zurich"}`},
		{"bad filing status", `{"profit": 100000, "canton": "ZH", "commune": "Zurich", "filingStatus": "divorced"}`},
		{"not json", `profit=100000`},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/scenarios/evaluate", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tc.name, rec.Code, rec.Body.String())
		}
		var env envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s: bad envelope: %v", tc.name, err)
		}
		if env.Success || env.Error == nil {
			t.Fatalf("%s: expected error envelope, got %s", tc.name, rec.Body.String())
		}
	}
}

package scenariohandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lohnplaner/internal/domain/history"
	"lohnplaner/internal/domain/scenario"
	"lohnplaner/internal/platform/metrics"
	"lohnplaner/internal/transport/http/api"
	"lohnplaner/internal/transport/http/middleware"
	"lohnplaner/internal/transport/http/shared"
)

type Handler struct {
	Eval    *scenario.Evaluator
	Opt     *scenario.Optimizer
	Runs    history.StoreAPI
	Metrics *metrics.Collector
	Step    float64
}

func NewHandler(eval *scenario.Evaluator, opt *scenario.Optimizer, runs history.StoreAPI, collector *metrics.Collector, step float64) *Handler {
	return &Handler{Eval: eval, Opt: opt, Runs: runs, Metrics: collector, Step: step}
}

// Comparison pairs the two fixed scenarios for one set of inputs.
type Comparison struct {
	Year           int             `json:"year"`
	SalaryOnly     scenario.Result `json:"salaryOnly"`
	SalaryDividend scenario.Result `json:"salaryDividend"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/scenarios", func(r chi.Router) {
		r.Post("/evaluate", h.handleEvaluate)
		r.Post("/optimize", h.handleOptimize)
	})
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordEvaluation()
	}
	api.Success(w, Comparison{
		Year:           h.Eval.Rules().Year,
		SalaryOnly:     h.Eval.SalaryOnly(params),
		SalaryDividend: h.Eval.SalaryDividend(params),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}

	best := h.Opt.OptimalMix(params)
	if h.Metrics != nil {
		h.Metrics.RecordOptimization()
	}

	if h.Runs != nil {
		_, err := h.Runs.InsertRun(r.Context(), history.Run{
			Canton:        params.Canton,
			Commune:       params.Commune,
			Profit:        params.Profit,
			MinimumSalary: params.MinimumSalary,
			Step:          h.Step,
			BestSalary:    best.GrossSalary,
			BestDividend:  best.Dividend,
			NetToOwner:    best.NetToOwner,
		})
		if err != nil {
			// History is best-effort; the computed result still goes out.
			slog.Warn("record optimizer run failed", "err", err)
		}
	}

	api.Success(w, best, middleware.GetRequestID(r.Context()))
}

func (h *Handler) decodeParams(w http.ResponseWriter, r *http.Request) (scenario.Params, bool) {
	requestID := middleware.GetRequestID(r.Context())

	var params scenario.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return scenario.Params{}, false
	}

	v := shared.NewValidator()
	v.Required("canton", params.Canton, "canton is required")
	v.Required("commune", params.Commune, "commune is required")
	v.Amount("profit", params.Profit)
	v.Amount("desiredPayout", params.DesiredPayout)
	v.Amount("otherIncome", params.OtherIncome)
	v.Amount("deductions", params.Deductions)
	v.Amount("minimumSalary", params.MinimumSalary)
	v.Amount("shareholdingPercent", params.ShareholdingPercent)
	v.Enum("filingStatus", string(params.FilingStatus),
		[]string{"all", "single", "married", "single_with_children"},
		"must be one of all, single, married, single_with_children")
	v.Enum("ageBand", string(params.AgeBand),
		[]string{"25-34", "35-44", "45-54", "55-65"},
		"must be one of 25-34, 35-44, 45-54, 55-65")
	if v.Reject(w, requestID) {
		return scenario.Params{}, false
	}

	return params, true
}

package reportshandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"lohnplaner/internal/domain/scenario"
	"lohnplaner/internal/transport/http/api"
	"lohnplaner/internal/transport/http/middleware"
)

type Handler struct {
	Eval *scenario.Evaluator
	Opt  *scenario.Optimizer
}

func NewHandler(eval *scenario.Evaluator, opt *scenario.Optimizer) *Handler {
	return &Handler{Eval: eval, Opt: opt}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/reports/comparison", h.handleComparisonReport)
}

// handleComparisonReport renders the three scenarios side by side as a PDF.
func (h *Handler) handleComparisonReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var params scenario.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", requestID)
		return
	}

	salaryOnly := h.Eval.SalaryOnly(params)
	blended := h.Eval.SalaryDividend(params)
	optimal := h.Opt.OptimalMix(params)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary / Dividend Comparison")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Tax year: %d", h.Eval.Rules().Year))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Location: %s / %s", params.Canton, params.Commune))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Company profit: %.2f CHF", params.Profit))
	pdf.Ln(10)

	writeScenario(pdf, "Salary only", salaryOnly)
	writeScenario(pdf, "Salary + dividend (minimum salary)", blended)
	writeScenario(pdf, "Optimal mix", optimal)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="comparison.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeScenario(pdf *gofpdf.Fpdf, title string, result scenario.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Gross salary: %.2f CHF", result.GrossSalary))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Dividend: %.2f CHF", result.Dividend))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Corporate tax: %.2f CHF", result.CorporateTax))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Income tax: %.2f CHF", result.IncomeTax.Total))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Net to owner: %.2f CHF", result.NetToOwner))
	pdf.Ln(9)
}

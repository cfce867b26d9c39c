package runshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lohnplaner/internal/domain/history"
	"lohnplaner/internal/transport/http/api"
	"lohnplaner/internal/transport/http/middleware"
	"lohnplaner/internal/transport/http/shared"
)

type Handler struct {
	Runs history.StoreAPI
}

func NewHandler(runs history.StoreAPI) *Handler {
	return &Handler{Runs: runs}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/runs", h.handleListRuns)
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if h.Runs == nil {
		api.Fail(w, http.StatusServiceUnavailable, "history_disabled", "run history requires a configured database", requestID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	runs, err := h.Runs.ListRuns(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "runs_list_failed", "failed to list optimizer runs", requestID)
		return
	}
	if runs == nil {
		runs = []history.Run{}
	}
	api.Success(w, runs, requestID)
}

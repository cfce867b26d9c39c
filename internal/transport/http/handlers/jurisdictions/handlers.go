package jurisdictionshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lohnplaner/internal/domain/scenario"
	"lohnplaner/internal/platform/dataset"
	"lohnplaner/internal/transport/http/api"
	"lohnplaner/internal/transport/http/middleware"
)

type Handler struct {
	Rules *scenario.Ruleset
}

func NewHandler(rules *scenario.Ruleset) *Handler {
	return &Handler{Rules: rules}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jurisdictions", func(r chi.Router) {
		r.Get("/", h.handleListCantons)
		r.Get("/{canton}/communes", h.handleListCommunes)
	})
}

func (h *Handler) handleListCantons(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"year":    h.Rules.Year,
		"cantons": dataset.Cantons(h.Rules),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListCommunes(w http.ResponseWriter, r *http.Request) {
	canton := chi.URLParam(r, "canton")
	communes := dataset.Communes(h.Rules, canton)
	if len(communes) == 0 {
		api.Fail(w, http.StatusNotFound, "unknown_canton", "no communes configured for canton "+canton, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"canton":   canton,
		"communes": communes,
	}, middleware.GetRequestID(r.Context()))
}

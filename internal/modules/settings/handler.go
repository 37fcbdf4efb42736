package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the language preference endpoints.
type Handler struct{ repo Repository }

func NewHandler(repo Repository) *Handler { return &Handler{repo: repo} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/settings", func(r chi.Router) {
		r.Get("/language", h.getLanguage)
		r.Put("/language", h.setLanguage)
	})
}

type languageBody struct {
	Language Language `json:"language"`
}

func (h *Handler) getLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := h.repo.GetLanguage(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, languageBody{Language: lang})
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.repo.SetLanguage(r.Context(), req.Language); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, req)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

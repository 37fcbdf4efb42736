package invoice

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
	"github.com/nujoom-retail/pos-backend/internal/modules/settings"
)

// Handler exposes invoice rendering over recorded transactions.
type Handler struct {
	renderer *Renderer
	ledger   ledger.Service
	settings settings.Repository
}

func NewHandler(renderer *Renderer, ledgerService ledger.Service, settingsRepo settings.Repository) *Handler {
	return &Handler{renderer: renderer, ledger: ledgerService, settings: settingsRepo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/ledger/transactions/{id}/invoice", h.renderInvoice)
}

func (h *Handler) renderInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tx, err := h.ledger.GetTransaction(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	lang := settings.Language(r.URL.Query().Get("lang"))
	if !lang.Valid() {
		lang, err = h.settings.GetLanguage(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.renderer.Render(tx, lang))
}

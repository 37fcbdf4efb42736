package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nujoom-retail/pos-backend/internal/modules/catalog"
)

// Handler exposes the cart endpoints of the sales screen.
type Handler struct {
	engine  *Engine
	catalog catalog.Service
}

func NewHandler(engine *Engine, catalogService catalog.Service) *Handler {
	return &Handler{engine: engine, catalog: catalogService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Patch("/items/{productId}", h.adjustQuantity)
		r.Delete("/items/{productId}", h.removeItem)
		r.Post("/scan", h.scan)
	})
}

type cartView struct {
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
}

func (h *Handler) view() cartView {
	return cartView{Items: h.engine.Items(), Totals: h.engine.Totals()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.view())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.engine.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.engine.Add(p)
	respond(w, http.StatusOK, h.view())
}

func (h *Handler) adjustQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.engine.AdjustQuantity(productID, req.Delta)
	respond(w, http.StatusOK, h.view())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.engine.Remove(productID)
	respond(w, http.StatusOK, h.view())
}

// scanResult tells the sales screen what happened to the scanner input:
// an exact barcode hit was added to the cart (clear the input), anything
// else keeps filtering the catalog as free text.
type scanResult struct {
	Added   *catalog.Product   `json:"added,omitempty"`
	Matches []*catalog.Product `json:"matches,omitempty"`
	Cart    *cartView          `json:"cart,omitempty"`
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.catalog.LookupBarcode(r.Context(), req.Input)
	if err == nil {
		h.engine.Add(p)
		view := h.view()
		respond(w, http.StatusOK, scanResult{Added: p, Cart: &view})
		return
	}
	if !errors.Is(err, catalog.ErrProductNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	matches, err := h.catalog.Search(r.Context(), req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, scanResult{Matches: matches})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

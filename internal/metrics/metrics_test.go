package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware())
	router.Get("/api/v1/catalog/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/api/v1/catalog/products/{id}", "200"))

	for _, id := range []string{"aaaaaaaa-0000-0000-0000-000000000001", "aaaaaaaa-0000-0000-0000-000000000002"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	after := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/api/v1/catalog/products/{id}", "200"))
	assert.Equal(t, float64(2), after-before, "both requests share the pattern label, not per-id labels")
}

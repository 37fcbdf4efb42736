package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
	"github.com/nujoom-retail/pos-backend/internal/modules/catalog"
)

func newScanRouter(t *testing.T, engine *Engine, catalogService catalog.Service) *chi.Mux {
	t.Helper()
	router := chi.NewRouter()
	NewHandler(engine, catalogService).RegisterRoutes(router)
	return router
}

func postScan(t *testing.T, router http.Handler, input string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"input": input})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/scan", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestScanExactBarcodeAddsToCart(t *testing.T) {
	engine := NewEngine(0.05)
	svc := catalog.NewService(catalog.NewKVRepository(kvstore.NewMemory()))
	router := newScanRouter(t, engine, svc)

	rec := postScan(t, router, " 123456 ")
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Added   *catalog.Product   `json:"added"`
		Matches []*catalog.Product `json:"matches"`
		Cart    *cartView          `json:"cart"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))

	require.NotNil(t, result.Added)
	assert.Equal(t, "Apple", result.Added.NameEN)
	assert.Empty(t, result.Matches)
	require.NotNil(t, result.Cart)
	require.Len(t, result.Cart.Items, 1)
	assert.Equal(t, 1, result.Cart.Items[0].Quantity)

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "123456", items[0].Barcode)
}

func TestScanRepeatedBumpsQuantity(t *testing.T) {
	engine := NewEngine(0.05)
	svc := catalog.NewService(catalog.NewKVRepository(kvstore.NewMemory()))
	router := newScanRouter(t, engine, svc)

	postScan(t, router, "123456")
	postScan(t, router, "123456")

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestScanNoMatchFallsBackToSearch(t *testing.T) {
	engine := NewEngine(0.05)
	svc := catalog.NewService(catalog.NewKVRepository(kvstore.NewMemory()))
	router := newScanRouter(t, engine, svc)

	// partial barcode: not a scanner hit, but it still filters the catalog
	rec := postScan(t, router, "9012")
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Added   *catalog.Product   `json:"added"`
		Matches []*catalog.Product `json:"matches"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))

	assert.Nil(t, result.Added)
	assert.Len(t, result.Matches, 2) // 789012 and 901234
	assert.Empty(t, engine.Items(), "free-text search must not touch the cart")
}

// failingCatalog simulates a broken catalog backend for every operation.
type failingCatalog struct{ err error }

func (f *failingCatalog) CreateProduct(context.Context, catalog.ProductRequest) (*catalog.Product, error) {
	return nil, f.err
}
func (f *failingCatalog) UpdateProduct(context.Context, string, catalog.ProductRequest) (*catalog.Product, error) {
	return nil, f.err
}
func (f *failingCatalog) DeleteProduct(context.Context, string) error { return f.err }
func (f *failingCatalog) GetProduct(context.Context, string) (*catalog.Product, error) {
	return nil, f.err
}
func (f *failingCatalog) ListProducts(context.Context) ([]*catalog.Product, error) {
	return nil, f.err
}
func (f *failingCatalog) Search(context.Context, string) ([]*catalog.Product, error) {
	return nil, f.err
}
func (f *failingCatalog) LookupBarcode(context.Context, string) (*catalog.Product, error) {
	return nil, f.err
}

func TestScanBackendErrorIsNotTreatedAsMiss(t *testing.T) {
	engine := NewEngine(0.05)
	router := newScanRouter(t, engine, &failingCatalog{err: errors.New("storage exploded")})

	rec := postScan(t, router, "123456")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, engine.Items())
}

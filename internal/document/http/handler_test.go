package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
	"github.com/dampeche/seadoc/internal/parse"
)

type fixedParser struct {
	items []Item
}

// Item aliases keep the stub readable.
type Item = parse.Item

func (p fixedParser) Parse(ctx context.Context, text string) ([]Item, error) {
	return p.items, nil
}

func newTestRouter(t *testing.T, parserItems []Item) (*chi.Mux, *catalog.Service) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := catalog.NewStore(client, slog.Default())
	catalogs, err := catalog.NewService(context.Background(), store, slog.Default())
	require.NoError(t, err)

	docs := document.NewService(catalogs, nil, slog.Default())
	parser := parse.NewService(fixedParser{items: parserItems}, slog.Default())

	r := chi.NewRouter()
	NewHandler(docs, catalogs, parser).MountRoutes(r)
	return r, catalogs
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) document.Snapshot {
	t.Helper()
	var snap document.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	return snap
}

func TestGetDocument(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rec := doJSON(t, r, http.MethodGet, "/document", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decodeSnapshot(t, rec)
	assert.Equal(t, document.StateDraft, snap.State)
	assert.Equal(t, "APERITIVOS INAKI S.L", snap.Invoice.ClientName)
}

func TestHeaderAndItemFlow(t *testing.T) {
	r, catalogs := newTestRouter(t, nil)
	productID := catalogs.Products()[0].ID

	rec := doJSON(t, r, http.MethodPut, "/document/header", map[string]string{
		"invoiceNumber": "188",
		"date":          "2025-06-14",
		"exchangeRate":  "10,85",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeSnapshot(t, rec)
	assert.Equal(t, "188", snap.Invoice.InvoiceNumber)
	assert.Equal(t, 10.85, snap.Invoice.ExchangeRate)

	rec = doJSON(t, r, http.MethodPost, "/document/items", map[string]string{"productId": productID})
	require.Equal(t, http.StatusCreated, rec.Code)
	snap = decodeSnapshot(t, rec)
	require.Len(t, snap.Invoice.Items, 1)
	itemID := snap.Invoice.Items[0].ID

	rec = doJSON(t, r, http.MethodPatch, "/document/items/"+itemID, map[string]string{
		"quantity":    "10",
		"netWeight":   "100",
		"grossWeight": "110",
		"unitPrice":   "8,50",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decodeSnapshot(t, rec)
	assert.InDelta(t, 850, snap.View.Totals.Monetary, 1e-9)

	rec = doJSON(t, r, http.MethodDelete, "/document/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decodeSnapshot(t, rec)
	assert.Empty(t, snap.Invoice.Items)
}

func TestHeaderBadDate(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	rec := doJSON(t, r, http.MethodPut, "/document/header", map[string]string{"date": "14/06/2025"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	rec := doJSON(t, r, http.MethodPost, "/document/items", map[string]string{"productId": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateAndReset(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rec := doJSON(t, r, http.MethodPost, "/document/validate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, document.StateValidated, decodeSnapshot(t, rec).State)

	rec = doJSON(t, r, http.MethodPost, "/document/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, document.StateDraft, decodeSnapshot(t, rec).State)
}

func TestParseTextAppendsMatchedItems(t *testing.T) {
	r, _ := newTestRouter(t, []Item{
		{FishNameSuggestion: "dorada", Quantity: 10, Symbol: "C", GrossWeight: 110, NetWeight: 100, UnitPrice: 8.5},
	})

	rec := doJSON(t, r, http.MethodPost, "/document/parse", map[string]string{"text": "10 caisses dorada"})
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decodeSnapshot(t, rec)
	require.Len(t, snap.Invoice.Items, 1)
	assert.Equal(t, 10.0, snap.Invoice.Items[0].Quantity)

	var name string
	for _, row := range snap.View.Items {
		name = row.ProductName
	}
	assert.Equal(t, "DORADA", name)
}

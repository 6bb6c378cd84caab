package render

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
	"github.com/dampeche/seadoc/internal/layout"
)

func exportSnapshot(state document.State) document.Snapshot {
	products := map[string]catalog.Product{
		"1": {ID: "1", Name: "DORADA", LatinName: "SPARUS AURATA", DefaultSymbol: catalog.SymbolCrate},
	}
	items := []document.LineItem{
		{ID: "a", ProductID: "1", Quantity: 10, Symbol: catalog.SymbolCrate, GrossWeight: 110, NetWeight: 100, UnitPrice: 8.5},
	}
	return document.Snapshot{
		Invoice: document.Invoice{
			InvoiceNumber: "188",
			Date:          time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
			ClientName:    "PESCNORT MAR SL",
			ClientAddress: "SILLA VALENCIA ESPAGNE",
			Transport:     "DAMJI TRANS SARL",
			Trailer:       "1234-A-5",
			ExchangeRate:  10.47,
			Incoterm:      "FOB",
			Items:         items,

			TransportInvoiceNumber: "77",
			TransportAmount:        1500,
		},
		State:       state,
		View:        document.ComputeView(items, products),
		Designation: document.Designation(items, products, document.DefaultMolluskNames),
	}
}

func TestExporterRender(t *testing.T) {
	var gotPath, gotHTML string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(4<<20))
		assert.Equal(t, "8.27", r.FormValue("paperWidth"))
		assert.Equal(t, "11.69", r.FormValue("paperHeight"))

		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		raw, err := io.ReadAll(file)
		require.NoError(t, err)
		gotHTML = string(raw)

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	exporter, err := NewExporter(srv.URL, srv.Client())
	require.NoError(t, err)

	payload := layout.BuildInvoice(exportSnapshot(document.StateDraft))
	pdf, err := exporter.Render(context.Background(), "invoice.html", payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

	assert.Equal(t, "/forms/chromium/convert/html", gotPath)
	assert.Contains(t, gotHTML, "FACTURE N° 188")
	assert.Contains(t, gotHTML, "DORADA")
	assert.Contains(t, gotHTML, "SPARUS AURATA")
}

func TestExporterRenderAllTemplates(t *testing.T) {
	exporter, err := NewExporter("http://unused", nil)
	require.NoError(t, err)

	snap := exportSnapshot(document.StateValidated)
	invoice := layout.BuildInvoice(snap)
	cmr, err := layout.BuildCMR(snap)
	require.NoError(t, err)
	note, err := layout.BuildShippingNote(snap)
	require.NoError(t, err)
	transport := layout.BuildTransportInvoice(snap)

	tests := []struct {
		template string
		data     any
		want     string
	}{
		{"invoice.html", invoice, "TOTAL GENERAL"},
		{"cmr.html", cmr, "POIDS NET"},
		{"shipping_note.html", note, "PETICION DE EMBARQUE"},
		{"transport_invoice.html", transport, "FRAIS DE TRANSPORT"},
	}
	for _, tc := range tests {
		t.Run(tc.template, func(t *testing.T) {
			html, err := exporter.buildHTML(tc.template, tc.data)
			require.NoError(t, err)
			assert.Contains(t, html, tc.want)
		})
	}
}

func TestExporterRenderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chromium crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	exporter, err := NewExporter(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = exporter.Render(context.Background(), "invoice.html", layout.InvoicePayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExporterRequiresEndpoint(t *testing.T) {
	exporter, err := NewExporter("", nil)
	require.NoError(t, err)

	_, err = exporter.Render(context.Background(), "invoice.html", layout.InvoicePayload{})
	assert.Error(t, err)
}

func TestExporterUnknownTemplate(t *testing.T) {
	exporter, err := NewExporter("http://unused", nil)
	require.NoError(t, err)

	_, err = exporter.buildHTML("nope.html", nil)
	assert.Error(t, err)
}

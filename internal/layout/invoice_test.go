package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
)

func testSnapshot(state document.State) document.Snapshot {
	products := map[string]catalog.Product{
		"1": {ID: "1", Name: "DORADA", LatinName: "SPARUS AURATA", DefaultSymbol: catalog.SymbolCrate},
		"2": {ID: "2", Name: "ATUN", DefaultSymbol: catalog.SymbolCrate},
	}
	items := []document.LineItem{
		{ID: "a", ProductID: "1", Quantity: 10, Symbol: catalog.SymbolCrate, GrossWeight: 1100, NetWeight: 1000, UnitPrice: 8.5},
		{ID: "b", ProductID: "2", Quantity: 5, Symbol: catalog.SymbolCrate, GrossWeight: 550, NetWeight: 500, UnitPrice: 12},
	}
	inv := document.Invoice{
		InvoiceNumber: "188",
		Date:          time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		ClientName:    "PESCNORT MAR SL",
		ClientAddress: "C/MASET 4 SILLA VALENCIA ESPAGNE",
		Transport:     "Damji Trans Sarl",
		Trailer:       "1234-a-5",
		ExchangeRate:  10.47,
		Incoterm:      "FOB",
		Items:         items,

		TransportInvoiceNumber: "77",
		TransportAmount:        1500,
	}
	return document.Snapshot{
		Invoice:     inv,
		State:       state,
		View:        document.ComputeView(items, products),
		Designation: document.Designation(items, products, document.DefaultMolluskNames),
	}
}

func TestBuildInvoice(t *testing.T) {
	p := BuildInvoice(testSnapshot(document.StateDraft))

	assert.Equal(t, "FACTURE N° 188", p.Title)
	assert.Equal(t, "Tanger, Le: 14/06/2025", p.DateLine)
	assert.Equal(t, "PESCNORT MAR SL - C/MASET 4 SILLA VALENCIA ESPAGNE", p.ClientLine)

	require.Len(t, p.Lines, 2)
	// Rows come pre-sorted from the computed view.
	assert.Equal(t, "ATUN", p.Lines[0].Name)
	assert.Equal(t, "DORADA", p.Lines[1].Name)
	assert.Equal(t, "SPARUS AURATA", p.Lines[1].LatinName)
	assert.Equal(t, "10 C", p.Lines[1].Quantity)
	assert.Equal(t, "1.000", p.Lines[1].Net)
	assert.Equal(t, "8,50", p.Lines[1].UnitPrice)
	assert.Equal(t, "8.500,00", p.Lines[1].Amount)

	assert.Equal(t, "15 C", p.TotalQuantity)
	assert.Equal(t, "1.650", p.TotalGross)
	assert.Equal(t, "1.500", p.TotalNet)
	assert.Equal(t, "14.500,00 €", p.TotalAmount)

	assert.Equal(t, "TOTAL PESO NETO DE PLASTICO NO REUTILIZABLE: 10 KG NETOS", p.PlasticLine)
	assert.Equal(t, "151.815,00 DHS", p.DirhamValue)
	assert.Equal(t, "FOB TANGER", p.IncotermLine)
}

func TestBuildInvoiceBlankNumber(t *testing.T) {
	snap := testSnapshot(document.StateDraft)
	snap.Invoice.InvoiceNumber = ""

	p := BuildInvoice(snap)
	assert.Equal(t, "FACTURE N° ____", p.Title)
	assert.Equal(t, "Facture_Draft.pdf", p.Filename())
}

func TestInvoiceFilename(t *testing.T) {
	p := BuildInvoice(testSnapshot(document.StateDraft))
	assert.Equal(t, "Facture_188.pdf", p.Filename())
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dampeche/seadoc/internal/document"
)

func TestBuildTransportInvoice(t *testing.T) {
	// The carrier invoice works from a draft; no validation gate.
	p := BuildTransportInvoice(testSnapshot(document.StateDraft))

	assert.Equal(t, "FACTURE N° 77", p.Title)
	assert.Equal(t, "TANGER LE 14/06/2025", p.DateLine)
	assert.Equal(t, "FRAIS DE TRANSPORT : TANGER - VALENCIA", p.RouteLine)
	assert.Equal(t, "C/R : 1234-A-5", p.TrailerLine)
	assert.Equal(t, "1.500,00", p.Amount)
	assert.Equal(t, "1.500,00", p.Total)
	assert.Equal(t, "MILLE CINQ CENTS EUROS.", p.AmountSentence)
	assert.Equal(t, CarrierRIB, p.RIBLine)

	assert.Equal(t, "Facture_Transport_77.pdf", p.Filename())
}

func TestBuildTransportInvoiceCityFallback(t *testing.T) {
	snap := testSnapshot(document.StateDraft)
	snap.Invoice.ClientAddress = "ESPAGNE"

	p := BuildTransportInvoice(snap)
	assert.Equal(t, "FRAIS DE TRANSPORT : TANGER - CADIZ", p.RouteLine)
}

func TestBuildTransportInvoiceOddTariff(t *testing.T) {
	snap := testSnapshot(document.StateDraft)
	snap.Invoice.TransportAmount = 1350

	p := BuildTransportInvoice(snap)
	assert.Equal(t, "1350 EUROS EUROS.", p.AmountSentence)
}

func TestBuildTransportInvoiceDraftFilename(t *testing.T) {
	snap := testSnapshot(document.StateDraft)
	snap.Invoice.TransportInvoiceNumber = ""

	p := BuildTransportInvoice(snap)
	assert.Equal(t, "FACTURE N° ____", p.Title)
	assert.Equal(t, "Facture_Transport_Draft.pdf", p.Filename())
}

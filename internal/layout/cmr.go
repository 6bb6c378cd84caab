package layout

import (
	"strings"

	"github.com/dampeche/seadoc/internal/document"
	"github.com/dampeche/seadoc/internal/platform/httpx"
)

// CMRPayload is the transport waybill contract. The gross weight is the
// prominent figure; the net weight appears parenthetically next to the
// goods description.
type CMRPayload struct {
	Number string

	SenderLines    []string
	ConsigneeLines []string
	CarrierLines   []string
	TrailerLine    string

	DeliveryPlace   string
	EstablishedLine string
	AttachedDocs    string

	GoodsLine     string
	NetLine       string
	GrossWeight   string
	SignatureLine string
}

// BuildCMR assembles the waybill. A draft document is refused: the CMR may
// only be produced once the user has validated the invoice data.
func BuildCMR(snap document.Snapshot) (CMRPayload, error) {
	if snap.State != document.StateValidated {
		return CMRPayload{}, httpx.ErrNotValidated
	}

	inv := snap.Invoice
	view := snap.View
	date := document.FormatDate(inv.Date)

	return CMRPayload{
		Number: inv.InvoiceNumber,

		SenderLines:    []string{ExporterShort + ".", "PORT DE PECHE TANGER", ExporterCountry},
		ConsigneeLines: []string{inv.ClientName, "VALENCIA", "ESPAGNE"},
		CarrierLines:   []string{strings.ToUpper(inv.Transport), "PORT DE PECHE TANGER"},
		TrailerLine:    "Matricule: " + inv.Trailer,

		DeliveryPlace:   "Valencia Espagne",
		EstablishedLine: "Tanger, le " + date,
		AttachedDocs:    "Facture + EUR 1",

		GoodsLine:     goodsDescription(view, snap.Designation),
		NetLine:       "(POIDS NET " + document.FormatWeight(view.Totals.Net) + " KG)",
		GrossWeight:   document.FormatWeight(view.Totals.Gross) + " KG",
		SignatureLine: "Tanger, le " + date,
	}, nil
}

// Filename derives the export file name.
func (p CMRPayload) Filename() string {
	return "CMR_" + draftToken(p.Number) + ".pdf"
}

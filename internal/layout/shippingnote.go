package layout

import (
	"strings"

	"github.com/dampeche/seadoc/internal/document"
	"github.com/dampeche/seadoc/internal/platform/httpx"
)

// ShippingNotePayload is the ship-loading note (peticion de embarque)
// contract. Most of the form is a fixed bilingual Spanish/French template
// kept in the renderer; the payload carries only the declared data.
type ShippingNotePayload struct {
	Number string

	Shipper   string
	Carrier   string
	Consignee string

	// Marks is the free-text trailer plate block, printed as-is.
	Marks            string
	GoodsDescription string
	GrossWeight      string
	DateLine         string
}

// BuildShippingNote assembles the loading note. Like the CMR it refuses a
// draft document.
func BuildShippingNote(snap document.Snapshot) (ShippingNotePayload, error) {
	if snap.State != document.StateValidated {
		return ShippingNotePayload{}, httpx.ErrNotValidated
	}

	inv := snap.Invoice
	view := snap.View

	return ShippingNotePayload{
		Number: inv.InvoiceNumber,

		Shipper:   ExporterShort,
		Carrier:   strings.ToUpper(inv.Transport),
		Consignee: strings.ToUpper(inv.ClientName),

		Marks:            strings.ToUpper(inv.Trailer),
		GoodsDescription: strings.ToUpper(goodsDescription(view, snap.Designation)),
		GrossWeight:      document.FormatWeight(view.Totals.Gross) + " KG",
		DateLine:         document.FormatDate(inv.Date),
	}, nil
}

// Filename derives the export file name.
func (p ShippingNotePayload) Filename() string {
	return "Note_Navire_" + draftToken(p.Number) + ".pdf"
}

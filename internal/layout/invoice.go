package layout

import (
	"github.com/dampeche/seadoc/internal/document"
)

// InvoiceLine is one formatted row of the commercial invoice table.
type InvoiceLine struct {
	Quantity  string
	Gross     string
	Net       string
	Name      string
	LatinName string
	UnitPrice string
	Amount    string
}

// InvoicePayload is the commercial invoice contract: letterhead, client
// block, sorted item table, totals row, then the regulatory and payment
// blocks in reading order.
type InvoicePayload struct {
	Number string

	CompanyName     string
	CompanyActivity string
	CompanyRegistry string
	CompanyAddress  string

	DateLine   string
	Title      string
	ClientLine string

	Lines []InvoiceLine

	TotalQuantity string
	TotalGross    string
	TotalNet      string
	TotalAmount   string

	PlasticLine string
	DirhamLabel string
	DirhamValue string

	IncotermLine  string
	TransportLine string
	TrailerLine   string

	BankLines   []string
	ContactLine string
}

// BuildInvoice assembles the commercial invoice. It does not gate on the
// validated flag: the invoice is always printable from a draft.
func BuildInvoice(snap document.Snapshot) InvoicePayload {
	inv := snap.Invoice
	view := snap.View

	lines := make([]InvoiceLine, 0, len(view.Items))
	for _, row := range view.Items {
		lines = append(lines, InvoiceLine{
			Quantity:  document.FormatWeight(row.Quantity) + " " + string(row.Symbol),
			Gross:     document.FormatWeight(row.GrossWeight),
			Net:       document.FormatWeight(row.NetWeight),
			Name:      row.ProductName,
			LatinName: row.LatinName,
			UnitPrice: document.FormatMoney(row.UnitPrice),
			Amount:    document.FormatMoney(row.Amount),
		})
	}

	return InvoicePayload{
		Number: inv.InvoiceNumber,

		CompanyName:     ExporterName,
		CompanyActivity: ExporterActivity,
		CompanyRegistry: ExporterRegistry,
		CompanyAddress:  ExporterAddress,

		DateLine:   "Tanger, Le: " + document.FormatDate(inv.Date),
		Title:      "FACTURE N° " + blankNumber(inv.InvoiceNumber),
		ClientLine: inv.ClientName + " - " + inv.ClientAddress,

		Lines: lines,

		TotalQuantity: document.FormatWeight(view.Totals.Quantity) + " " + string(view.UnifiedSymbol),
		TotalGross:    document.FormatWeight(view.Totals.Gross),
		TotalNet:      document.FormatWeight(view.Totals.Net),
		TotalAmount:   document.FormatMoney(view.Totals.Monetary) + " €",

		PlasticLine: "TOTAL PESO NETO DE PLASTICO NO REUTILIZABLE: " + document.FormatWeight(view.PlasticWeight) + " KG NETOS",
		DirhamLabel: "Contre valeur approximative en Dirhams:",
		DirhamValue: document.FormatMoney(view.Totals.Monetary*inv.ExchangeRate) + " DHS",

		IncotermLine:  inv.Incoterm + " " + OriginCity,
		TransportLine: inv.Transport,
		TrailerLine:   inv.Trailer,

		BankLines:   ExporterBankLines,
		ContactLine: ExporterContact,
	}
}

// Filename derives the export file name, using the Draft token while the
// invoice number is empty.
func (p InvoicePayload) Filename() string {
	return "Facture_" + draftToken(p.Number) + ".pdf"
}

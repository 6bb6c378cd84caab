package layout

import (
	"strings"

	"github.com/dampeche/seadoc/internal/document"
)

// TransportInvoicePayload is the carrier's own invoice contract. It is
// independent of the validated flag and usable standalone.
type TransportInvoicePayload struct {
	Number string

	CompanyName     string
	CompanyActivity string
	CompanyRegistry string

	DateLine   string
	Title      string
	ClientLine string

	RouteLine   string
	TrailerLine string
	Amount      string
	Total       string

	AmountSentence string

	BankLine    string
	RIBLine     string
	SwiftLine   string
	BankName    string
	BankAgency  string
	ContactLine string
}

// BuildTransportInvoice assembles the carrier invoice. The destination is
// guessed from the delivery address; the amount-in-words keeps the two
// literal tariffs and falls back to the raw numeral otherwise.
func BuildTransportInvoice(snap document.Snapshot) TransportInvoicePayload {
	inv := snap.Invoice
	destination := strings.ToUpper(document.DestinationCity(inv.ClientAddress, document.TransportDestinationCity))

	return TransportInvoicePayload{
		Number: inv.TransportInvoiceNumber,

		CompanyName:     CarrierName,
		CompanyActivity: CarrierActivity,
		CompanyRegistry: CarrierRegistry,

		DateLine:   "TANGER LE " + document.FormatDate(inv.Date),
		Title:      "FACTURE N° " + blankNumber(inv.TransportInvoiceNumber),
		ClientLine: "CLIENT: " + strings.ToUpper(inv.ClientName) + "   " + strings.ToUpper(inv.ClientAddress),

		RouteLine:   "FRAIS DE TRANSPORT : " + OriginCity + " - " + destination,
		TrailerLine: "C/R : " + strings.ToUpper(inv.Trailer),
		Amount:      document.FormatMoney(inv.TransportAmount),
		Total:       document.FormatMoney(inv.TransportAmount),

		AmountSentence: document.AmountWords(inv.TransportAmount) + " EUROS.",

		BankLine:    "PAYEMENT PAR VIREMENT COMPTE",
		RIBLine:     CarrierRIB,
		SwiftLine:   CarrierSwift,
		BankName:    CarrierBankName,
		BankAgency:  CarrierAgency,
		ContactLine: CarrierContact,
	}
}

// Filename derives the export file name from the carrier invoice number.
func (p TransportInvoicePayload) Filename() string {
	return "Facture_Transport_" + draftToken(p.Number) + ".pdf"
}

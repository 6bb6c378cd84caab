// Package layout builds the field-set payloads for the four paper forms.
// Each builder is a pure function from the document snapshot to a payload;
// the rendering backend consumes payloads without recomputing anything.
package layout

import (
	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
)

// Static letterhead, bank and contact data. This is reference
// configuration printed verbatim on the forms, not derived values.
var (
	ExporterName     = "DAM PECHE S.A.R.L"
	ExporterShort    = "DAM PECHE SARL"
	ExporterActivity = "EXPORTATION DE POISSONS FRAIS ET CONGELES"
	ExporterRegistry = "RC 17845 | AGREMENT 1048 | ICE 001531533000097"
	ExporterAddress  = "SIEGE SOCIAL: PORT DE PECHE TANGER"
	ExporterCountry  = "MAROC"
	ExporterContact  = "PORT DE PECHE TANGER TEL:039 93 35 25 FAX:039 93 04 07 Email: dampeche@gmail.com"

	ExporterBankLines = []string{
		"PAYEMENT PAR VIREMENT",
		"IBAN : MA64 0116 4000 0001 2100 0620 2556",
		"CODE SWIFT: BMCEMAMCXXX",
	}

	CarrierName     = "DAMJI-TRANS S.A.R.L"
	CarrierActivity = "TRANSPORT NATIONAL ET INTERNATIONAL"
	CarrierRegistry = "RC N°:23883/PATENTE N°:50502638/ IF: 04907266 / ICE : 000226225000015"
	CarrierRIB      = "RIB: 011640000001210000390801"
	CarrierSwift    = "CODE SWIFT : BMCEMAMCXXX"
	CarrierBankName = "BANQUE OF AFRICA"
	CarrierAgency   = "AGENCE TANGER VILLE"
	CarrierContact  = "PORT DE PECHE TANGER TEL: +(212)539933525/+(212)539934101 FAX:+(212)539930407/+(212)539948403"
)

// OriginCity is the fixed port of loading printed next to the incoterm and
// in the carrier-invoice route.
const OriginCity = "TANGER"

// symbolWord maps the unified packaging symbol to the display word used on
// the CMR and shipping note.
func symbolWord(s catalog.Symbol) string {
	if s == catalog.SymbolPiece {
		return "PIECES"
	}
	return "COLIS"
}

// draftToken substitutes the literal Draft marker when a document number
// is still empty.
func draftToken(number string) string {
	if number == "" {
		return "Draft"
	}
	return number
}

// blankNumber is printed in place of a missing document number on the
// form itself.
func blankNumber(number string) string {
	if number == "" {
		return "____"
	}
	return number
}

// goodsDescription is the shared cargo line: quantity, packaging word and
// species designation.
func goodsDescription(view document.View, designation string) string {
	return document.FormatWeight(view.Totals.Quantity) + " " + symbolWord(view.UnifiedSymbol) + " D' " + designation
}

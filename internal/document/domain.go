// Package document implements the invoice computation core: line-item
// aggregation, species classification, the document state machine, and the
// numeric/locale conventions shared by all four paper forms.
package document

import (
	"time"

	"github.com/dampeche/seadoc/internal/catalog"
)

// State is the document lifecycle. Any mutation of items or header fields
// drops a validated document back to draft.
type State string

const (
	StateDraft     State = "DRAFT"
	StateValidated State = "VALIDATED"
)

// LineItem is one invoice row. Symbol defaults from the product but may be
// changed per line. Weights are kilograms; UnitPrice is EUR per kilogram.
type LineItem struct {
	ID          string         `json:"id"`
	ProductID   string         `json:"productId"`
	Quantity    float64        `json:"quantity"`
	Symbol      catalog.Symbol `json:"symbol"`
	GrossWeight float64        `json:"grossWeight"`
	NetWeight   float64        `json:"netWeight"`
	UnitPrice   float64        `json:"unitPrice"`
}

// Invoice is the aggregate root for one export session. ClientAddress is a
// deliberate denormalized copy of the catalog address: it is initialized
// on client selection and may then be edited per shipment without touching
// the catalog.
type Invoice struct {
	InvoiceNumber string     `json:"invoiceNumber"`
	Date          time.Time  `json:"date"`
	ClientName    string     `json:"clientName"`
	ClientAddress string     `json:"clientAddress"`
	Transport     string     `json:"transport"`
	Trailer       string     `json:"trailer"`
	ExchangeRate  float64    `json:"exchangeRate"`
	Incoterm      string     `json:"incoterm"`
	Items         []LineItem `json:"items"`

	TransportInvoiceNumber string  `json:"transportInvoiceNumber"`
	TransportAmount        float64 `json:"transportAmount"`
}

// Totals are the document-wide sums, recomputed from the items on every
// read and never cached across mutations.
type Totals struct {
	Gross    float64 `json:"gross"`
	Net      float64 `json:"net"`
	Quantity float64 `json:"quantity"`
	Monetary float64 `json:"monetary"`
}

// LineView is a line item joined with its resolved product and the derived
// per-line values.
type LineView struct {
	LineItem
	ProductName string  `json:"productName"`
	LatinName   string  `json:"latinName,omitempty"`
	Amount      float64 `json:"amount"`
	WeightError bool    `json:"weightError"`
}

// View is the full computed state of the item collection: sorted rows,
// totals, the unified packaging symbol, the plastic-weight surcharge and
// the weight-consistency flag.
type View struct {
	Items          []LineView     `json:"items"`
	Totals         Totals         `json:"totals"`
	UnifiedSymbol  catalog.Symbol `json:"unifiedSymbol"`
	PlasticWeight  float64        `json:"plasticWeight"`
	HasWeightError bool           `json:"hasWeightError"`
}

// Defaults applied when a session starts.
const (
	DefaultExchangeRate = 10.47
	DefaultIncoterm     = "FOB"
)

// Incoterms is the selectable delivery-term list.
var Incoterms = []string{"EXW", "FCA", "CPT", "CIP", "DAP", "DPU", "DDP", "FAS", "FOB", "CFR", "CIF"}

package document

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dampeche/seadoc/internal/catalog"
)

// PlasticWeightFactor estimates the non-reusable plastic packaging weight
// declared on the commercial invoice, as a fraction of gross weight.
const PlasticWeightFactor = 0.006

// UnknownProductName is displayed when a line references a product that is
// no longer in the catalog.
const UnknownProductName = "Inconnu"

// ComputeView derives the full computed state from the item collection and
// the product catalog. It is a pure function: the input slice is not
// modified and repeated calls with unchanged input give identical results.
func ComputeView(items []LineItem, products map[string]catalog.Product) View {
	rows := make([]LineView, 0, len(items))
	for _, item := range items {
		row := LineView{LineItem: item, ProductName: UnknownProductName}
		if p, ok := products[item.ProductID]; ok {
			row.ProductName = p.Name
			row.LatinName = p.LatinName
		}
		row.Amount = item.NetWeight * item.UnitPrice
		row.WeightError = item.NetWeight > item.GrossWeight
		rows = append(rows, row)
	}

	// Rows sort by resolved product name; an unresolved product keeps an
	// empty key and therefore sorts first.
	collator := collate.New(language.French)
	sort.SliceStable(rows, func(i, j int) bool {
		return collator.CompareString(sortKey(rows[i]), sortKey(rows[j])) < 0
	})

	view := View{Items: rows}
	allPieces := len(rows) > 0
	for _, row := range rows {
		view.Totals.Gross += row.GrossWeight
		view.Totals.Net += row.NetWeight
		view.Totals.Quantity += row.Quantity
		view.Totals.Monetary += row.Amount
		if row.WeightError {
			view.HasWeightError = true
		}
		if row.Symbol != catalog.SymbolPiece {
			allPieces = false
		}
	}
	if view.Totals.Net > view.Totals.Gross {
		view.HasWeightError = true
	}

	// Any crate in the collection makes the whole document a crate
	// shipment; only an all-piece collection keeps the piece symbol.
	switch {
	case len(rows) == 0:
		view.UnifiedSymbol = ""
	case allPieces:
		view.UnifiedSymbol = catalog.SymbolPiece
	default:
		view.UnifiedSymbol = catalog.SymbolCrate
	}

	view.PlasticWeight = round2(view.Totals.Gross * PlasticWeightFactor)
	return view
}

func sortKey(row LineView) string {
	if row.ProductName == UnknownProductName {
		return ""
	}
	return row.ProductName
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package parse

import (
	"strings"

	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
)

// FallbackProductID is used when the catalog is empty and no product can
// back a suggested line.
const FallbackProductID = "default"

// MatchItems turns suggested lines into invoice lines by resolving each
// name hint against the catalog: case-insensitive substring containment on
// the product name, first catalog entry when nothing matches.
func MatchItems(items []Item, products []catalog.Product) []document.LineItem {
	lines := make([]document.LineItem, 0, len(items))
	for _, item := range items {
		productID := FallbackProductID
		if len(products) > 0 {
			productID = products[0].ID
		}
		hint := strings.ToLower(strings.TrimSpace(item.FishNameSuggestion))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), hint) {
				productID = p.ID
				break
			}
		}

		symbol := catalog.Symbol(item.Symbol)
		if !symbol.Valid() {
			symbol = catalog.SymbolCrate
		}

		lines = append(lines, document.LineItem{
			ProductID:   productID,
			Quantity:    item.Quantity,
			Symbol:      symbol,
			GrossWeight: item.GrossWeight,
			NetWeight:   item.NetWeight,
			UnitPrice:   item.UnitPrice,
		})
	}
	return lines
}

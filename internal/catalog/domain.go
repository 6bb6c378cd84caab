package catalog

// Symbol classifies the packaging unit of a product or invoice line.
type Symbol string

const (
	// SymbolCrate marks goods packed in crates (caisses).
	SymbolCrate Symbol = "C"
	// SymbolPiece marks goods counted by the piece.
	SymbolPiece Symbol = "P"
)

// Valid reports whether the symbol is one of the two known packaging units.
func (s Symbol) Valid() bool {
	return s == SymbolCrate || s == SymbolPiece
}

// Product is a sellable species. Name is the uppercase display string used
// on every document; LatinName is the optional scientific name printed
// alongside it on the commercial invoice.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LatinName     string `json:"latinName,omitempty"`
	DefaultSymbol Symbol `json:"defaultSymbol"`
}

// Client is a buyer. Name doubles as the join key between a document and
// the catalog, so it must stay unique within the collection.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

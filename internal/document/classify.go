package document

import (
	"strings"

	"github.com/dampeche/seadoc/internal/catalog"
)

// DefaultMolluskNames is the reference list of species that force the
// combined designation wording. It is configuration, not a constant: the
// service accepts an override so the list can grow without code changes.
var DefaultMolluskNames = []string{"ALMENDRITAS", "CALAMARS", "CHOCOS", "PUNTILLAS"}

// Fallback cities for the destination heuristic. The on-screen preview and
// the CMR default to Conil; the carrier invoice keeps the reference
// behaviour of falling back to Cadiz.
const (
	DefaultDestinationCity   = "CONIL"
	TransportDestinationCity = "CADIZ"
)

// Designation derives the textual species designation printed on the CMR
// and shipping note: a single species keeps its own name, mixed cargo is
// generic, and any mollusk species switches to the combined wording.
func Designation(items []LineItem, products map[string]catalog.Product, molluskNames []string) string {
	mollusks := make(map[string]struct{}, len(molluskNames))
	for _, name := range molluskNames {
		mollusks[strings.ToUpper(name)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var unique []string
	hasMollusk := false
	for _, item := range items {
		p, ok := products[item.ProductID]
		if !ok {
			continue
		}
		if _, dup := seen[p.Name]; !dup {
			seen[p.Name] = struct{}{}
			unique = append(unique, p.Name)
		}
		if _, isMollusk := mollusks[strings.ToUpper(p.Name)]; isMollusk {
			hasMollusk = true
		}
	}

	if len(unique) == 1 {
		return unique[0] + " FRAIS"
	}
	if hasMollusk {
		return "POISSONS ET MOLLUSQUES FRAIS"
	}
	return "POISSONS FRAIS"
}

// DestinationCity guesses the destination from a free-text address by
// taking its second-to-last whitespace-delimited token. This is a known
// heuristic carried over from the paper workflow, not a guarantee; it
// falls back to the given default when the address is too short.
func DestinationCity(address, fallback string) string {
	parts := strings.Fields(address)
	if len(parts) < 2 {
		return fallback
	}
	return parts[len(parts)-2]
}

package catalog

import (
	"embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFS embed.FS

type seedProduct struct {
	Name   string `yaml:"name"`
	Latin  string `yaml:"latin"`
	Symbol string `yaml:"symbol"`
}

type seedClient struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// SeedProducts returns the built-in species list used when no stored
// catalog exists yet.
func SeedProducts() ([]Product, error) {
	raw, err := seedFS.ReadFile("seed/products.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: read product seed: %w", err)
	}
	var entries []seedProduct
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse product seed: %w", err)
	}
	products := make([]Product, 0, len(entries))
	for i, e := range entries {
		sym := Symbol(e.Symbol)
		if !sym.Valid() {
			sym = SymbolCrate
		}
		products = append(products, Product{
			ID:            strconv.Itoa(i + 1),
			Name:          e.Name,
			LatinName:     e.Latin,
			DefaultSymbol: sym,
		})
	}
	return products, nil
}

// SeedClients returns the built-in client list.
func SeedClients() ([]Client, error) {
	raw, err := seedFS.ReadFile("seed/clients.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: read client seed: %w", err)
	}
	var entries []seedClient
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse client seed: %w", err)
	}
	clients := make([]Client, 0, len(entries))
	for i, e := range entries {
		clients = append(clients, Client{
			ID:      fmt.Sprintf("c%d", i+1),
			Name:    e.Name,
			Address: e.Address,
		})
	}
	return clients, nil
}

// SeedTransports returns the built-in carrier list.
func SeedTransports() ([]string, error) {
	raw, err := seedFS.ReadFile("seed/transports.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: read transport seed: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("catalog: parse transport seed: %w", err)
	}
	return names, nil
}

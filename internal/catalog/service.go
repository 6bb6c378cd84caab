package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dampeche/seadoc/internal/platform/httpx"
)

// Service holds the three reference collections in memory and mirrors every
// mutation into the Store. Persistence failures are logged, never surfaced:
// a broken cache must not block data entry.
type Service struct {
	mu         sync.RWMutex
	products   []Product
	clients    []Client
	transports []string

	store  *Store
	logger *slog.Logger
}

// NewService loads all three collections (stored value or seed).
func NewService(ctx context.Context, store *Store, logger *slog.Logger) (*Service, error) {
	products, err := store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := store.LoadClients(ctx)
	if err != nil {
		return nil, err
	}
	transports, err := store.LoadTransports(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{
		products:   products,
		clients:    clients,
		transports: transports,
		store:      store,
		logger:     logger,
	}, nil
}

// Products returns a copy of the product list.
func (s *Service) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Clients returns a copy of the client list.
func (s *Service) Clients() []Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Transports returns a copy of the carrier list.
func (s *Service) Transports() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.transports))
	copy(out, s.transports)
	return out
}

// ProductIndex returns the products keyed by ID for line-item resolution.
func (s *Service) ProductIndex() map[string]Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index := make(map[string]Product, len(s.products))
	for _, p := range s.products {
		index[p.ID] = p
	}
	return index
}

// FindProduct resolves a product by ID.
func (s *Service) FindProduct(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindClient resolves a client by its display name, the document join key.
func (s *Service) FindClient(name string) (Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.Name == name {
			return c, true
		}
	}
	return Client{}, false
}

// FirstClient returns the first catalog client, used for session defaults.
func (s *Service) FirstClient() (Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.clients) == 0 {
		return Client{}, false
	}
	return s.clients[0], true
}

// FirstTransport returns the first carrier, used for session defaults.
func (s *Service) FirstTransport() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.transports) == 0 {
		return "", false
	}
	return s.transports[0], true
}

// SearchProducts returns products whose name or latin name contains the
// query, case-insensitively. An empty query matches nothing.
func (s *Service) SearchProducts(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.LatinName), query) {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct registers a new species. Names are uppercased like the rest of
// the catalog and must not collide with an existing product.
func (s *Service) AddProduct(ctx context.Context, name, latinName string, symbol Symbol) (Product, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return Product{}, fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	if !symbol.Valid() {
		symbol = SymbolCrate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if strings.EqualFold(p.Name, name) {
			return Product{}, fmt.Errorf("%w: product %q already exists", httpx.ErrDuplicate, name)
		}
	}
	product := Product{
		ID:            uuid.NewString(),
		Name:          name,
		LatinName:     strings.ToUpper(strings.TrimSpace(latinName)),
		DefaultSymbol: symbol,
	}
	s.products = append([]Product{product}, s.products...)
	s.persistProducts(ctx)
	return product, nil
}

// AddClient registers a new client. The name is the lookup key, so
// collisions are rejected rather than silently tolerated.
func (s *Service) AddClient(ctx context.Context, name, address string) (Client, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return Client{}, fmt.Errorf("%w: client name is required", httpx.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if strings.EqualFold(c.Name, name) {
			return Client{}, fmt.Errorf("%w: client %q already exists", httpx.ErrDuplicate, name)
		}
	}
	client := Client{
		ID:      uuid.NewString(),
		Name:    name,
		Address: strings.TrimSpace(address),
	}
	s.clients = append(s.clients, client)
	s.persistClients(ctx)
	return client, nil
}

// AddTransport registers a new carrier name.
func (s *Service) AddTransport(ctx context.Context, name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("%w: transport name is required", httpx.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transports {
		if strings.EqualFold(t, name) {
			return "", fmt.Errorf("%w: transport %q already exists", httpx.ErrDuplicate, name)
		}
	}
	s.transports = append(s.transports, name)
	s.persistTransports(ctx)
	return name, nil
}

func (s *Service) persistProducts(ctx context.Context) {
	if err := s.store.SaveProducts(ctx, s.products); err != nil {
		s.warn("save products", err)
	}
}

func (s *Service) persistClients(ctx context.Context) {
	if err := s.store.SaveClients(ctx, s.clients); err != nil {
		s.warn("save clients", err)
	}
}

func (s *Service) persistTransports(ctx context.Context) {
	if err := s.store.SaveTransports(ctx, s.transports); err != nil {
		s.warn("save transports", err)
	}
}

func (s *Service) warn(op string, err error) {
	if s.logger != nil {
		s.logger.Warn("catalog persistence", slog.String("op", op), slog.Any("error", err))
	}
}

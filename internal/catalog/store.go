package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const (
	keyProducts   = "seadoc:catalog:products"
	keyClients    = "seadoc:catalog:clients"
	keyTransports = "seadoc:catalog:transports"
)

// Store persists the three reference collections as independent JSON values.
// Writes follow last-write-wins; there is exactly one logical writer.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// NewStore builds a Store around an existing Redis client.
func NewStore(client *redis.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// LoadProducts returns the stored product list, falling back to the seed
// when nothing has been saved yet.
func (s *Store) LoadProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	ok, err := s.load(ctx, keyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedProducts()
	}
	return products, nil
}

// LoadClients returns the stored client list or the seed.
func (s *Store) LoadClients(ctx context.Context) ([]Client, error) {
	var clients []Client
	ok, err := s.load(ctx, keyClients, &clients)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedClients()
	}
	return clients, nil
}

// LoadTransports returns the stored carrier list or the seed.
func (s *Store) LoadTransports(ctx context.Context) ([]string, error) {
	var names []string
	ok, err := s.load(ctx, keyTransports, &names)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedTransports()
	}
	return names, nil
}

// SaveProducts overwrites the stored product list.
func (s *Store) SaveProducts(ctx context.Context, products []Product) error {
	return s.save(ctx, keyProducts, products)
}

// SaveClients overwrites the stored client list.
func (s *Store) SaveClients(ctx context.Context, clients []Client) error {
	return s.save(ctx, keyClients, clients)
}

// SaveTransports overwrites the stored carrier list.
func (s *Store) SaveTransports(ctx context.Context, names []string) error {
	return s.save(ctx, keyTransports, names)
}

func (s *Store) load(ctx context.Context, key string, dest any) (bool, error) {
	if s == nil || s.client == nil {
		return false, nil
	}
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("catalog: load %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		// A corrupted value must not lock the user out of the app.
		if s.logger != nil {
			s.logger.Warn("discarding unreadable catalog value", slog.String("key", key), slog.Any("error", err))
		}
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	if s == nil || s.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("catalog: encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("catalog: save %s: %w", key, err)
	}
	return nil
}

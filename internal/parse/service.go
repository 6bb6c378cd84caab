package parse

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// Parser is the collaborator surface the service depends on.
type Parser interface {
	Parse(ctx context.Context, text string) ([]Item, error)
}

// Service coordinates parse submissions: identical texts submitted while a
// request is in flight share a single upstream call, and collaborator
// failures are swallowed into an empty result rather than surfaced.
type Service struct {
	client Parser
	group  singleflight.Group
	logger *slog.Logger
}

// NewService builds a Service around a Parser.
func NewService(client Parser, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Parse returns the suggested items for the text, or an empty slice when
// the collaborator fails or returns nothing.
func (s *Service) Parse(ctx context.Context, text string) []Item {
	result, err, _ := s.group.Do(text, func() (any, error) {
		return s.client.Parse(ctx, text)
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("free-text parse failed", slog.Any("error", err))
		}
		return nil
	}
	items, _ := result.([]Item)
	return items
}

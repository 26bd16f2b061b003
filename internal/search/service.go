package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"boldstore-be/internal/catalog"
	"boldstore-be/internal/filter"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"

	"go.uber.org/zap"
)

var ErrMissingSession = errors.New("session id is required")

// Trending is the fixed list of suggested searches.
var Trending = []string{"Arduino", "Raspberry Pi", "Sensors", "LED", "ESP32", "NodeMCU"}

type Service interface {
	Search(ctx context.Context, sessionID, query string, spec filter.Spec) ([]catalog.Product, error)
	Recent(ctx context.Context, sessionID string) ([]string, error)
	ClearRecent(ctx context.Context, sessionID string) error
	Trending() []string
}

type service struct {
	kv      storage.Store
	catalog catalog.Service
	mu      sync.Mutex
}

func NewService(kv storage.Store, catalogSvc catalog.Service) Service {
	return &service{kv: kv, catalog: catalogSvc}
}

// Search matches query against the catalog, narrows the matches with spec and
// records the query in the session's history. A blank query matches nothing
// and is not recorded.
func (s *service) Search(ctx context.Context, sessionID, query string, spec filter.Spec) ([]catalog.Product, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []catalog.Product{}, nil
	}

	matches, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	results := filter.Apply(matches, spec)

	s.mu.Lock()
	LoadHistory(ctx, storage.Scope(s.kv, sessionID)).Add(ctx, query)
	s.mu.Unlock()

	logger.FromCtx(ctx).Debug("search",
		zap.String("layer", "service"),
		zap.String("query", query),
		zap.Int("matches", len(matches)),
		zap.Int("results", len(results)),
	)

	return results, nil
}

func (s *service) Recent(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return LoadHistory(ctx, storage.Scope(s.kv, sessionID)).Terms(), nil
}

func (s *service) ClearRecent(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return LoadHistory(ctx, storage.Scope(s.kv, sessionID)).Clear(ctx)
}

func (s *service) Trending() []string {
	return append([]string{}, Trending...)
}

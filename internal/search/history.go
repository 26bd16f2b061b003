package search

import (
	"context"
	"strings"

	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"

	"go.uber.org/zap"
)

const (
	HistoryKey = "recentSearches"
	MaxHistory = 5
)

// History is the list of recent search terms, newest first.
type History struct {
	kv    storage.Store
	terms []string
}

// LoadHistory restores the history from kv. A corrupt record is treated as
// an empty history.
func LoadHistory(ctx context.Context, kv storage.Store) *History {
	h := &History{kv: kv}

	var terms []string
	if _, err := storage.GetJSON(ctx, kv, HistoryKey, &terms); err != nil {
		logger.FromCtx(ctx).Warn("discarding unreadable search history",
			zap.String("layer", "search"),
			zap.Error(err),
		)
		return h
	}

	for _, t := range terms {
		if len(h.terms) == MaxHistory {
			break
		}
		if t = strings.TrimSpace(t); t != "" && !h.contains(t) {
			h.terms = append(h.terms, t)
		}
	}
	return h
}

func (h *History) Terms() []string {
	return append([]string{}, h.terms...)
}

// Add records term at the front. A term that is already present keeps its
// position; the oldest term is dropped once the list is full.
func (h *History) Add(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	if term == "" || h.contains(term) {
		return
	}

	h.terms = append([]string{term}, h.terms...)
	if len(h.terms) > MaxHistory {
		h.terms = h.terms[:MaxHistory]
	}

	if err := storage.SetJSON(ctx, h.kv, HistoryKey, h.terms); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist search history",
			zap.String("layer", "search"),
			zap.Error(err),
		)
	}
}

func (h *History) Clear(ctx context.Context) error {
	h.terms = nil
	return h.kv.Remove(ctx, HistoryKey)
}

func (h *History) contains(term string) bool {
	for _, t := range h.terms {
		if t == term {
			return true
		}
	}
	return false
}

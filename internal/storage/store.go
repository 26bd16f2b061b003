package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store is the key-value port behind every piece of client-persisted state.
// Get reports a missing key with ok == false, never with an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

var ErrEmptyKey = errors.New("storage key is empty")

// GetJSON decodes the value under key into dst. It returns ok == false when
// the key is absent; a value that does not decode is returned as an error so
// callers can choose their fallback.
func GetJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}

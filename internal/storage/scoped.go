package storage

import "context"

type scoped struct {
	inner  Store
	prefix string
}

// Scope returns a view of s in which every key is prefixed with the session
// id, so each client session sees its own namespace.
func Scope(s Store, sessionID string) Store {
	return &scoped{inner: s, prefix: "session:" + sessionID + ":"}
}

func (s *scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}

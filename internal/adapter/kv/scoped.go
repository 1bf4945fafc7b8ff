package kv

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// ScopedState namespaces keys so several visitors can share one backend.
type ScopedState struct {
	inner  repository.StateStore
	prefix string
}

var _ repository.StateStore = (*ScopedState)(nil)

func Scope(inner repository.StateStore, visitorID string) *ScopedState {
	return &ScopedState{
		inner:  inner,
		prefix: "visitor:" + visitorID + ":",
	}
}

func (s *ScopedState) Key(key string) string {
	return s.prefix + key
}

func (s *ScopedState) Load(ctx context.Context, key string, dst any) (bool, error) {
	return s.inner.Load(ctx, s.Key(key), dst)
}

func (s *ScopedState) Save(ctx context.Context, key string, value any) error {
	return s.inner.Save(ctx, s.Key(key), value)
}

func (s *ScopedState) Clear(ctx context.Context, key string) error {
	return s.inner.Clear(ctx, s.Key(key))
}

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// JSONState stores JSON documents on top of a KVStore.
type JSONState struct {
	store repository.KVStore
	log   logger.Logger
}

var _ repository.StateStore = (*JSONState)(nil)

func NewJSONState(store repository.KVStore, log logger.Logger) *JSONState {
	return &JSONState{
		store: store,
		log:   log,
	}
}

func (s *JSONState) Load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, entity.StorageUnavailable("state.load", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warnf("Discarding malformed state under key %s: %v", key, err)
		resetValue(dst)
		return false, nil
	}
	return true, nil
}

func (s *JSONState) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal state for key %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return entity.StorageUnavailable("state.save", err)
	}
	return nil
}

func (s *JSONState) Clear(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return entity.StorageUnavailable("state.clear", err)
	}
	return nil
}

// resetValue zeroes whatever a failed decode may have partially written.
func resetValue(dst any) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	elem := v.Elem()
	elem.Set(reflect.Zero(elem.Type()))
}

package service

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type CartEventType string

const (
	CartItemAdded       CartEventType = "item_added"
	CartItemRemoved     CartEventType = "item_removed"
	CartQuantityChanged CartEventType = "quantity_changed"
	CartCleared         CartEventType = "cleared"
)

// CartEvent is delivered to observers after every committed mutation.
// PersistErr is set when the new state could not be written to the store.
type CartEvent struct {
	Type       CartEventType
	Lines      []entity.CartLineItem
	ItemCount  int
	PersistErr error
}

type CartObserver interface {
	CartChanged(ctx context.Context, event CartEvent)
}

type CartObserverFunc func(ctx context.Context, event CartEvent)

func (f CartObserverFunc) CartChanged(ctx context.Context, event CartEvent) {
	f(ctx, event)
}

type SessionEventType string

const (
	SessionLoggedIn  SessionEventType = "logged_in"
	SessionLoggedOut SessionEventType = "logged_out"
	SessionExpired   SessionEventType = "expired"
)

type SessionEvent struct {
	Type       SessionEventType
	Session    entity.Session
	PersistErr error
}

type SessionObserver interface {
	SessionChanged(ctx context.Context, event SessionEvent)
}

type SessionObserverFunc func(ctx context.Context, event SessionEvent)

func (f SessionObserverFunc) SessionChanged(ctx context.Context, event SessionEvent) {
	f(ctx, event)
}

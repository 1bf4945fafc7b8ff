package service

import (
	"context"
	"sync"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/shopspring/decimal"
)

const CartStateKey = "cart"

// CartManager owns one visitor's cart. Every mutation is persisted before the
// call returns and observers are notified afterwards, outside the lock.
// A failed write is logged and the in-memory state is kept.
type CartManager struct {
	mu             sync.Mutex
	cart           *entity.Cart
	store          repository.StateStore
	pricing        Pricing
	log            logger.Logger
	observers      []CartObserver
	lastPersistErr error
}

func NewCartManager(ctx context.Context, store repository.StateStore, pricing Pricing, log logger.Logger, observers ...CartObserver) *CartManager {
	m := &CartManager{
		cart:      entity.NewCart(),
		store:     store,
		pricing:   pricing,
		log:       log,
		observers: observers,
	}

	var lines []entity.CartLineItem
	found, err := store.Load(ctx, CartStateKey, &lines)
	switch {
	case err != nil:
		m.log.Warnf("Could not load stored cart, starting empty: %v", err)
		m.lastPersistErr = err
	case found:
		m.cart = entity.FromLines(lines)
		m.log.Debugf("Loaded cart with %d lines", len(m.cart.Items))
	}
	return m
}

func (m *CartManager) AddItem(ctx context.Context, name string, unitPrice decimal.Decimal, imageRef string) error {
	m.mu.Lock()
	if err := m.cart.AddItem(name, unitPrice, imageRef); err != nil {
		m.mu.Unlock()
		return entity.InvalidArgument("cart.add_item", err)
	}
	event := m.commitLocked(ctx, CartItemAdded)
	m.mu.Unlock()

	m.log.Debugf("Added %q to cart", name)
	m.notify(ctx, event)
	return nil
}

func (m *CartManager) RemoveItem(ctx context.Context, index int) error {
	m.mu.Lock()
	if err := m.cart.RemoveAt(index); err != nil {
		m.mu.Unlock()
		return entity.InvalidArgument("cart.remove_item", err)
	}
	event := m.commitLocked(ctx, CartItemRemoved)
	m.mu.Unlock()

	m.notify(ctx, event)
	return nil
}

// ChangeQuantity adds delta to the quantity of the line at index. A result of
// zero or less removes the line.
func (m *CartManager) ChangeQuantity(ctx context.Context, index, delta int) error {
	m.mu.Lock()
	before := len(m.cart.Items)
	if err := m.cart.ChangeQuantity(index, delta); err != nil {
		m.mu.Unlock()
		return entity.InvalidArgument("cart.change_quantity", err)
	}
	eventType := CartQuantityChanged
	if len(m.cart.Items) < before {
		eventType = CartItemRemoved
	}
	event := m.commitLocked(ctx, eventType)
	m.mu.Unlock()

	m.notify(ctx, event)
	return nil
}

// Clear empties the cart and persists the empty state even if it was
// already empty.
func (m *CartManager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.cart.Clear()
	event := m.commitLocked(ctx, CartCleared)
	m.mu.Unlock()

	m.notify(ctx, event)
}

// RemoveOrdered takes ordered lines out of the cart. Lines and units added
// after the order snapshot was taken are kept.
func (m *CartManager) RemoveOrdered(ctx context.Context, ordered []entity.CartLineItem) {
	m.mu.Lock()
	m.cart.Subtract(ordered)
	eventType := CartItemRemoved
	if m.cart.IsEmpty() {
		eventType = CartCleared
	}
	event := m.commitLocked(ctx, eventType)
	m.mu.Unlock()

	m.notify(ctx, event)
}

func (m *CartManager) Lines() []entity.CartLineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Lines()
}

func (m *CartManager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.ItemCount()
}

func (m *CartManager) Subtotal() decimal.Decimal {
	return m.pricing.Subtotal(m.Lines())
}

func (m *CartManager) ShippingFee() decimal.Decimal {
	return m.pricing.ShippingFee(m.Subtotal())
}

func (m *CartManager) Total() decimal.Decimal {
	return m.pricing.Total(m.Subtotal())
}

func (m *CartManager) Summary() CartSummary {
	return m.pricing.Summarize(m.Lines())
}

// LastPersistError returns the error of the most recent store write, or nil
// if it succeeded.
func (m *CartManager) LastPersistError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPersistErr
}

func (m *CartManager) commitLocked(ctx context.Context, eventType CartEventType) CartEvent {
	lines := m.cart.Lines()
	err := m.store.Save(ctx, CartStateKey, lines)
	if err != nil {
		m.log.Warnf("Cart change %s kept in memory only, could not persist: %v", eventType, err)
	}
	m.lastPersistErr = err

	return CartEvent{
		Type:       eventType,
		Lines:      lines,
		ItemCount:  m.cart.ItemCount(),
		PersistErr: err,
	}
}

func (m *CartManager) notify(ctx context.Context, event CartEvent) {
	for _, o := range m.observers {
		o.CartChanged(ctx, event)
	}
}

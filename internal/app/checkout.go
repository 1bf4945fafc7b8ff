package app

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

// timedCheckout bounds a whole checkout, lookups and notifications
// included, by one deadline.
type timedCheckout struct {
	inner   *service.CheckoutService
	timeout time.Duration
}

func (c timedCheckout) PlaceOrder(ctx context.Context, cart *service.CartManager, customer entity.CustomerDetails) (*entity.OrderConfirmation, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.inner.PlaceOrder(ctx, cart, customer)
}

package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLookupConcurrency = 4
	defaultOrderSubject      = "order.created"
	defaultOrderNotes        = "Pedido desde la tienda online"
)

type ProductLookup interface {
	FindByName(ctx context.Context, name string) ([]entity.Product, error)
}

type OrderCreator interface {
	Create(ctx context.Context, header entity.OrderHeader, lines []entity.OrderLine) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, message interface{}) error
}

type EmailSender interface {
	Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error
}

type CheckoutServiceConfig struct {
	LookupConcurrency int
	OrderSubject      string
	Pricing           Pricing
}

// OrderCreatedEvent is published once an order has been stored.
type OrderCreatedEvent struct {
	OrderID       int64              `json:"order_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Total         string             `json:"total"`
	Lines         []entity.OrderLine `json:"lines"`
	CreatedAt     time.Time          `json:"created_at"`
}

type CheckoutService struct {
	products  ProductLookup
	orders    OrderCreator
	publisher EventPublisher
	mailer    EmailSender
	log       logger.Logger
	cfg       CheckoutServiceConfig
}

// NewCheckoutService wires checkout. publisher and mailer may be nil.
func NewCheckoutService(
	products ProductLookup,
	orders OrderCreator,
	publisher EventPublisher,
	mailer EmailSender,
	log logger.Logger,
	cfg CheckoutServiceConfig,
) *CheckoutService {
	if cfg.LookupConcurrency <= 0 {
		cfg.LookupConcurrency = defaultLookupConcurrency
	}
	if cfg.OrderSubject == "" {
		cfg.OrderSubject = defaultOrderSubject
	}
	return &CheckoutService{
		products:  products,
		orders:    orders,
		publisher: publisher,
		mailer:    mailer,
		log:       log,
		cfg:       cfg,
	}
}

// PlaceOrder turns the cart into an order. Any failed product lookup or a
// failed order write aborts the checkout and leaves the cart as it was. On
// success the ordered lines are removed from the cart; anything added while
// the order was being placed stays.
func (s *CheckoutService) PlaceOrder(ctx context.Context, cart *CartManager, customer entity.CustomerDetails) (*entity.OrderConfirmation, error) {
	ctx, span := otel.Tracer("storefront/checkout").Start(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Email) == "" {
		return nil, entity.InvalidArgument("checkout.place_order", entity.ErrInvalidCustomer)
	}

	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, entity.InvalidArgument("checkout.place_order", entity.ErrEmptyCart)
	}
	span.SetAttributes(attribute.Int("cart.lines", len(lines)))
	s.log.Infof("Placing order for %s with %d cart lines", customer.Email, len(lines))

	orderLines, err := s.resolveLines(ctx, lines)
	if err != nil {
		s.log.Errorf("Checkout aborted for %s: %v", customer.Email, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "product lookup failed")
		return nil, err
	}

	summary := s.cfg.Pricing.Summarize(lines)
	notes := customer.Notes
	if strings.TrimSpace(notes) == "" {
		notes = defaultOrderNotes
	}
	header := entity.OrderHeader{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Total:         summary.Total,
		Notes:         notes,
		Status:        entity.OrderStatusPending,
	}

	orderID, err := s.orders.Create(ctx, header, orderLines)
	if err != nil {
		s.log.Errorf("Could not create order for %s: %v", customer.Email, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "create order failed")
		return nil, entity.CollaboratorFailure("checkout.create_order", err)
	}
	span.SetAttributes(attribute.Int64("order.id", orderID))
	s.log.Infof("Order %d created for %s, total %s", orderID, customer.Email, summary.Total.StringFixed(2))

	// The order exists now, so the cart update must not be lost to a
	// request deadline.
	cart.RemoveOrdered(context.WithoutCancel(ctx), lines)

	confirmation := &entity.OrderConfirmation{
		OrderID:  orderID,
		Subtotal: summary.Subtotal,
		Shipping: summary.Shipping,
		Total:    summary.Total,
		Lines:    orderLines,
	}
	s.announce(ctx, header, confirmation)
	return confirmation, nil
}

// resolveLines looks every cart line up by name, concurrently, keeping cart
// order. The first product returned for a name wins.
func (s *CheckoutService) resolveLines(ctx context.Context, lines []entity.CartLineItem) ([]entity.OrderLine, error) {
	resolved := make([]entity.OrderLine, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.LookupConcurrency)

	for i, line := range lines {
		g.Go(func() error {
			products, err := s.products.FindByName(gctx, line.Name)
			if err != nil {
				return entity.CollaboratorFailure("checkout.find_product", fmt.Errorf("lookup of %q failed: %w", line.Name, err))
			}
			if len(products) == 0 {
				return entity.CollaboratorFailure("checkout.find_product", fmt.Errorf("%w: %q", entity.ErrProductNotFound, line.Name))
			}
			resolved[i] = entity.OrderLine{
				ProductID:   products[0].ID,
				ProductName: line.Name,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				Subtotal:    line.LineTotal(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// announce publishes the order event and mails the buyer. Neither failure
// affects the placed order.
func (s *CheckoutService) announce(ctx context.Context, header entity.OrderHeader, confirmation *entity.OrderConfirmation) {
	if s.publisher != nil {
		event := OrderCreatedEvent{
			OrderID:       confirmation.OrderID,
			CustomerName:  header.CustomerName,
			CustomerEmail: header.CustomerEmail,
			Total:         confirmation.Total.StringFixed(2),
			Lines:         confirmation.Lines,
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, s.cfg.OrderSubject, event); err != nil {
			s.log.Warnf("Failed to publish %s for order %d: %v", s.cfg.OrderSubject, confirmation.OrderID, err)
		}
	}

	if s.mailer != nil {
		subject, bodyHTML, bodyText := s.confirmationEmail(header, confirmation)
		if err := s.mailer.Send(ctx, []string{header.CustomerEmail}, subject, bodyHTML, bodyText); err != nil {
			s.log.Warnf("Failed to send confirmation for order %d: %v", confirmation.OrderID, err)
		}
	}
}

func (s *CheckoutService) confirmationEmail(header entity.OrderHeader, c *entity.OrderConfirmation) (subject, bodyHTML, bodyText string) {
	p := s.cfg.Pricing
	subject = fmt.Sprintf("Pedido #%d recibido", c.OrderID)

	var tb, hb strings.Builder
	fmt.Fprintf(&tb, "Hola %s,\n\nRecibimos tu pedido #%d.\n\n", header.CustomerName, c.OrderID)
	fmt.Fprintf(&hb, "<p>Hola %s,</p><p>Recibimos tu pedido <b>#%d</b>.</p><ul>", html.EscapeString(header.CustomerName), c.OrderID)
	for _, l := range c.Lines {
		fmt.Fprintf(&tb, "- %s x%d: %s\n", l.ProductName, l.Quantity, p.Format(l.Subtotal))
		fmt.Fprintf(&hb, "<li>%s x%d: %s</li>", html.EscapeString(l.ProductName), l.Quantity, p.Format(l.Subtotal))
	}
	fmt.Fprintf(&tb, "\nSubtotal: %s\nEnvio: %s\nTotal: %s\n", p.Format(c.Subtotal), p.Format(c.Shipping), p.Format(c.Total))
	fmt.Fprintf(&hb, "</ul><p>Subtotal: %s<br>Envio: %s<br><b>Total: %s</b></p>", p.Format(c.Subtotal), p.Format(c.Shipping), p.Format(c.Total))
	return subject, hb.String(), tb.String()
}

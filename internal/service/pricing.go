package service

import (
	"fmt"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	DefaultFreeShippingThreshold = decimal.NewFromInt(100)
	DefaultFlatShippingCost      = decimal.NewFromInt(10)
)

const DefaultCurrencySymbol = "S/"

// Pricing derives order amounts from cart lines. All arithmetic is exact.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingCost      decimal.Decimal
	CurrencySymbol        string
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		FlatShippingCost:      DefaultFlatShippingCost,
		CurrencySymbol:        DefaultCurrencySymbol,
	}
}

// NewPricing parses the threshold and flat cost from their decimal strings.
func NewPricing(threshold, flatCost, currency string) (Pricing, error) {
	t, err := decimal.NewFromString(threshold)
	if err != nil {
		return Pricing{}, fmt.Errorf("invalid free shipping threshold %q: %w", threshold, err)
	}
	c, err := decimal.NewFromString(flatCost)
	if err != nil {
		return Pricing{}, fmt.Errorf("invalid flat shipping cost %q: %w", flatCost, err)
	}
	if t.IsNegative() || c.IsNegative() {
		return Pricing{}, entity.InvalidArgument("pricing.new", entity.ErrNegativePrice)
	}
	return Pricing{
		FreeShippingThreshold: t,
		FlatShippingCost:      c,
		CurrencySymbol:        currency,
	}, nil
}

func (p Pricing) Subtotal(lines []entity.CartLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.LineTotal())
	}
	return sum
}

// ShippingFee is zero once the subtotal reaches the threshold.
func (p Pricing) ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.FlatShippingCost
}

func (p Pricing) Total(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(p.ShippingFee(subtotal))
}

func (p Pricing) RemainingForFreeShipping(subtotal decimal.Decimal) decimal.Decimal {
	rest := p.FreeShippingThreshold.Sub(subtotal)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

func (p Pricing) Format(amount decimal.Decimal) string {
	return entity.FormatMoney(amount, p.CurrencySymbol)
}

// CartSummary is one consistent snapshot of a cart and its amounts.
type CartSummary struct {
	Lines                    []entity.CartLineItem `json:"lines"`
	ItemCount                int                   `json:"itemCount"`
	Subtotal                 decimal.Decimal       `json:"subtotal"`
	Shipping                 decimal.Decimal       `json:"shipping"`
	Total                    decimal.Decimal       `json:"total"`
	RemainingForFreeShipping decimal.Decimal       `json:"remainingForFreeShipping"`
	FreeShipping             bool                  `json:"freeShipping"`
	Display                  SummaryDisplay        `json:"display"`
}

type SummaryDisplay struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func (p Pricing) Summarize(lines []entity.CartLineItem) CartSummary {
	subtotal := p.Subtotal(lines)
	shipping := p.ShippingFee(subtotal)
	total := subtotal.Add(shipping)

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return CartSummary{
		Lines:                    lines,
		ItemCount:                count,
		Subtotal:                 subtotal,
		Shipping:                 shipping,
		Total:                    total,
		RemainingForFreeShipping: p.RemainingForFreeShipping(subtotal),
		FreeShipping:             shipping.IsZero(),
		Display: SummaryDisplay{
			Subtotal: p.Format(subtotal),
			Shipping: p.Format(shipping),
			Total:    p.Format(total),
		},
	}
}

package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type CartLineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
	Quantity  int
}

func (l CartLineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// cartLineJSON is the persisted shape of a line. The price is written as a
// JSON number so stored carts stay readable by other clients.
type cartLineJSON struct {
	Name      string      `json:"name"`
	UnitPrice json.Number `json:"unitPrice"`
	ImageRef  string      `json:"imageRef"`
	Quantity  int         `json:"quantity"`
}

func (l CartLineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartLineJSON{
		Name:      l.Name,
		UnitPrice: json.Number(l.UnitPrice.String()),
		ImageRef:  l.ImageRef,
		Quantity:  l.Quantity,
	})
}

func (l *CartLineItem) UnmarshalJSON(data []byte) error {
	var raw cartLineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw.Name) == "" {
		return ErrEmptyName
	}
	if raw.UnitPrice == "" {
		return errors.New("cart line is missing unitPrice")
	}
	price, err := decimal.NewFromString(raw.UnitPrice.String())
	if err != nil {
		return fmt.Errorf("invalid unitPrice %q: %w", raw.UnitPrice, err)
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if raw.Quantity < 1 {
		return fmt.Errorf("invalid quantity %d for %q", raw.Quantity, raw.Name)
	}

	*l = CartLineItem{
		Name:      raw.Name,
		UnitPrice: price,
		ImageRef:  raw.ImageRef,
		Quantity:  raw.Quantity,
	}
	return nil
}

// Cart is the insertion-ordered list of lines; at most one line per name.
type Cart struct {
	Items []CartLineItem
}

func NewCart() *Cart {
	return &Cart{Items: make([]CartLineItem, 0)}
}

// FromLines builds a cart from persisted lines, merging duplicate names
// into the first occurrence.
func FromLines(lines []CartLineItem) *Cart {
	c := NewCart()
	for _, line := range lines {
		if _, idx := c.GetItem(line.Name); idx >= 0 {
			c.Items[idx].Quantity += line.Quantity
			continue
		}
		c.Items = append(c.Items, line)
	}
	return c
}

func (c *Cart) GetItem(name string) (*CartLineItem, int) {
	for i, item := range c.Items {
		if item.Name == name {
			return &c.Items[i], i
		}
	}
	return nil, -1
}

func (c *Cart) AddItem(name string, unitPrice decimal.Decimal, imageRef string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}

	if item, _ := c.GetItem(name); item != nil {
		if item.Quantity == math.MaxInt {
			return ErrQuantityOverflow
		}
		item.Quantity++
		return nil
	}
	c.Items = append(c.Items, CartLineItem{
		Name:      name,
		UnitPrice: unitPrice,
		ImageRef:  imageRef,
		Quantity:  1,
	})
	return nil
}

func (c *Cart) RemoveAt(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrInvalidIndex
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// ChangeQuantity applies delta to the line at index. A resulting quantity of
// zero or less removes the line.
func (c *Cart) ChangeQuantity(index, delta int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrInvalidIndex
	}
	current := c.Items[index].Quantity
	if delta > 0 && current > math.MaxInt-delta {
		return ErrQuantityOverflow
	}
	next := current + delta
	if next <= 0 {
		return c.RemoveAt(index)
	}
	c.Items[index].Quantity = next
	return nil
}

// Subtract takes the quantities of lines off the matching lines of the cart,
// by name, and drops lines that reach zero. Lines or units not present in
// lines stay in the cart.
func (c *Cart) Subtract(lines []CartLineItem) {
	for _, ordered := range lines {
		item, idx := c.GetItem(ordered.Name)
		if item == nil {
			continue
		}
		if item.Quantity <= ordered.Quantity {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			continue
		}
		item.Quantity -= ordered.Quantity
	}
}

func (c *Cart) Clear() {
	c.Items = make([]CartLineItem, 0)
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Lines() []CartLineItem {
	out := make([]CartLineItem, len(c.Items))
	copy(out, c.Items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

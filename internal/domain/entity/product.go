package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   *int64          `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	ImageURL     string          `json:"imageUrl"`
	Available    bool            `json:"available"`
	Featured     bool            `json:"featured"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ProductInput is the editable part of a product, as submitted from the
// admin form.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoryId"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
	Featured    bool            `json:"featured"`
}

func (p ProductInput) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return InvalidArgument("product.validate", ErrEmptyName)
	}
	if p.Price.IsNegative() {
		return InvalidArgument("product.validate", ErrNegativePrice)
	}
	if p.Stock < 0 {
		return InvalidArgument("product.validate", ErrInvalidProduct)
	}
	return nil
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

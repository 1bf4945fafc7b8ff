package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pendiente"
	OrderStatusProcessing OrderStatus = "en proceso"
	OrderStatusCompleted  OrderStatus = "completado"
	OrderStatusCancelled  OrderStatus = "cancelado"
)

// Badge returns the colour hint the admin panel shows for a status.
func (s OrderStatus) Badge() string {
	switch s {
	case OrderStatusPending:
		return "warning"
	case OrderStatusProcessing:
		return "info"
	case OrderStatusCompleted:
		return "success"
	case OrderStatusCancelled:
		return "danger"
	default:
		return "secondary"
	}
}

type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type OrderHeader struct {
	ID            int64           `json:"id,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderLine struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type Order struct {
	Header OrderHeader `json:"header"`
	Lines  []OrderLine `json:"lines"`
}

// OrderConfirmation is returned to the buyer after a successful checkout.
type OrderConfirmation struct {
	OrderID  int64           `json:"orderId"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
	Lines    []OrderLine     `json:"lines"`
}

type DashboardStats struct {
	ProductCount  int64           `json:"productCount"`
	OrderCount    int64           `json:"orderCount"`
	CustomerCount int64           `json:"customerCount"`
	TotalSales    decimal.Decimal `json:"totalSales"`
}

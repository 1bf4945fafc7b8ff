package supabase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/supabase-community/postgrest-go"
)

const orderWithLines = "*, pedidos_detalles(*, productos(nombre, imagen_url))"

type orderRepository struct {
	c *Client
}

var _ repository.OrderRepository = (*orderRepository)(nil)

func NewOrderRepository(c *Client) repository.OrderRepository {
	return &orderRepository{c: c}
}

// Create inserts the header and then its lines. If the lines cannot be
// written the header is deleted again.
func (r *orderRepository) Create(ctx context.Context, header entity.OrderHeader, lines []entity.OrderLine) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var created orderRow
	_, err := r.c.client.From(tableOrders).
		Insert(newOrderRow(header), false, "", "representation", "").
		Single().
		ExecuteTo(&created)
	if err != nil {
		return 0, classify("create order", err)
	}

	details := make([]orderLineRow, 0, len(lines))
	for _, l := range lines {
		details = append(details, orderLineRow{
			OrderID:   created.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	_, _, err = r.c.client.From(tableOrderDetails).
		Insert(details, false, "", "minimal", "").
		Execute()
	if err != nil {
		_, _, delErr := r.c.client.From(tableOrders).
			Delete("minimal", "").
			Eq("id", strconv.FormatInt(created.ID, 10)).
			Execute()
		if delErr != nil {
			return 0, fmt.Errorf("%w (order %d left without lines: %v)", classify("create order lines", err), created.ID, delErr)
		}
		return 0, classify("create order lines", err)
	}
	return created.ID, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var row orderRow
	_, err := r.c.client.From(tableOrders).
		Select(orderWithLines, "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, classify("get order", err)
	}

	order := &entity.Order{Header: row.header(), Lines: make([]entity.OrderLine, 0, len(row.Details))}
	for _, d := range row.Details {
		order.Lines = append(order.Lines, d.toEntity())
	}
	return order, nil
}

func (r *orderRepository) Recent(ctx context.Context, limit int) ([]entity.OrderHeader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []orderRow
	_, err := r.c.client.From(tableOrders).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("list recent orders", err)
	}
	out := make([]entity.OrderHeader, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.header())
	}
	return out, nil
}

// Stats counts products, orders and customers and sums order totals.
func (r *orderRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, products, err := r.c.client.From(tableProducts).Select("id", "exact", true).Execute()
	if err != nil {
		return nil, classify("count products", err)
	}
	_, orders, err := r.c.client.From(tableOrders).Select("id", "exact", true).Execute()
	if err != nil {
		return nil, classify("count orders", err)
	}
	_, customers, err := r.c.client.From(tableUsers).
		Select("id", "exact", true).
		Eq("rol_id", strconv.Itoa(int(entity.RoleCustomer))).
		Execute()
	if err != nil {
		return nil, classify("count customers", err)
	}

	var totals []struct {
		Total decimal.Decimal `json:"total"`
	}
	if _, err := r.c.client.From(tableOrders).Select("total", "", false).ExecuteTo(&totals); err != nil {
		return nil, classify("sum order totals", err)
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}

	return &entity.DashboardStats{
		ProductCount:  products,
		OrderCount:    orders,
		CustomerCount: customers,
		TotalSales:    sum,
	}, nil
}

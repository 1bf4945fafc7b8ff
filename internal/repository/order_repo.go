package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type OrderRepository interface {
	// Create stores the header, then its lines, and returns the new order id.
	Create(ctx context.Context, header entity.OrderHeader, lines []entity.OrderLine) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	Recent(ctx context.Context, limit int) ([]entity.OrderHeader, error)
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

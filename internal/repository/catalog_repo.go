package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type ProductRepository interface {
	FindByName(ctx context.Context, name string) ([]entity.Product, error)
	ListAvailable(ctx context.Context, categoryID *int64) ([]entity.Product, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
	Featured(ctx context.Context, limit int) ([]entity.Product, error)
	Search(ctx context.Context, term string) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, input entity.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id int64, input entity.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]entity.Category, error)
}

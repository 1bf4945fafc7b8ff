package http

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

type Catalog interface {
	ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error)
	Featured(ctx context.Context) ([]entity.Product, error)
	Search(ctx context.Context, term string) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

type Checkout interface {
	PlaceOrder(ctx context.Context, cart *service.CartManager, customer entity.CustomerDetails) (*entity.OrderConfirmation, error)
}

type Auth interface {
	Register(ctx context.Context, in entity.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, sessions *service.SessionManager, email, password string, portal entity.Portal) (*service.LoginResult, error)
	Logout(ctx context.Context, sessions *service.SessionManager)
}

type Admin interface {
	Dashboard(ctx context.Context, sessions *service.SessionManager) (*entity.DashboardStats, error)
	RecentOrders(ctx context.Context, sessions *service.SessionManager) ([]service.AdminOrder, error)
	GetOrder(ctx context.Context, sessions *service.SessionManager, id int64) (*entity.Order, error)
	ListProducts(ctx context.Context, sessions *service.SessionManager) ([]entity.Product, error)
	CreateProduct(ctx context.Context, sessions *service.SessionManager, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sessions *service.SessionManager, id int64, input entity.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, sessions *service.SessionManager, id int64) error
	UploadProductImage(ctx context.Context, sessions *service.SessionManager, fileName string, data []byte) (string, error)
}

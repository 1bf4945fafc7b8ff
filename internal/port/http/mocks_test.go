package http

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/kv"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

const testCookieName = "sf_visitor"

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) products(args mock.Arguments) ([]entity.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockCatalog) ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	return m.products(m.Called(ctx, categoryID))
}

func (m *MockCatalog) Featured(ctx context.Context) ([]entity.Product, error) {
	return m.products(m.Called(ctx))
}

func (m *MockCatalog) Search(ctx context.Context, term string) ([]entity.Product, error) {
	return m.products(m.Called(ctx, term))
}

func (m *MockCatalog) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockCatalog) Categories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) PlaceOrder(ctx context.Context, cart *service.CartManager, customer entity.CustomerDetails) (*entity.OrderConfirmation, error) {
	args := m.Called(ctx, cart, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OrderConfirmation), args.Error(1)
}

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) Register(ctx context.Context, in entity.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuth) Login(ctx context.Context, sessions *service.SessionManager, email, password string, portal entity.Portal) (*service.LoginResult, error) {
	args := m.Called(ctx, sessions, email, password, portal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuth) Logout(ctx context.Context, sessions *service.SessionManager) {
	m.Called(ctx, sessions)
}

type MockAdmin struct {
	mock.Mock
}

func (m *MockAdmin) Dashboard(ctx context.Context, sessions *service.SessionManager) (*entity.DashboardStats, error) {
	args := m.Called(ctx, sessions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardStats), args.Error(1)
}

func (m *MockAdmin) RecentOrders(ctx context.Context, sessions *service.SessionManager) ([]service.AdminOrder, error) {
	args := m.Called(ctx, sessions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AdminOrder), args.Error(1)
}

func (m *MockAdmin) GetOrder(ctx context.Context, sessions *service.SessionManager, id int64) (*entity.Order, error) {
	args := m.Called(ctx, sessions, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockAdmin) ListProducts(ctx context.Context, sessions *service.SessionManager) ([]entity.Product, error) {
	args := m.Called(ctx, sessions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockAdmin) CreateProduct(ctx context.Context, sessions *service.SessionManager, input entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, sessions, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockAdmin) UpdateProduct(ctx context.Context, sessions *service.SessionManager, id int64, input entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, sessions, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockAdmin) DeleteProduct(ctx context.Context, sessions *service.SessionManager, id int64) error {
	return m.Called(ctx, sessions, id).Error(0)
}

func (m *MockAdmin) UploadProductImage(ctx context.Context, sessions *service.SessionManager, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, sessions, fileName, data)
	return args.String(0), args.Error(1)
}

type testEnv struct {
	router   *chi.Mux
	catalog  *MockCatalog
	checkout *MockCheckout
	auth     *MockAuth
	admin    *MockAdmin
	visitors *service.VisitorRegistry
	tokens   *VisitorTokens
	metrics  *metrics.MetricsManager
}

func newTestEnv() *testEnv {
	log := logger.NewNopLogger()
	shared := kv.NewJSONState(kv.NewMemoryStore(), log)
	env := &testEnv{
		catalog:  new(MockCatalog),
		checkout: new(MockCheckout),
		auth:     new(MockAuth),
		admin:    new(MockAdmin),
		tokens:   NewVisitorTokens("test-secret", time.Hour),
		metrics:  metrics.NewMetricsManager("test"),
	}
	env.visitors = service.NewVisitorRegistry(service.VisitorRegistryConfig{
		Scope: func(id string) repository.StateStore {
			return kv.Scope(shared, id)
		},
		Pricing: service.DefaultPricing(),
	}, log)
	env.router = NewRouter(RouterDeps{
		Catalog:        env.catalog,
		Checkout:       env.checkout,
		Auth:           env.auth,
		Admin:          env.admin,
		Visitors:       env.visitors,
		Tokens:         env.tokens,
		Cookie:         CookieConfig{Name: testCookieName, MaxAge: time.Hour},
		Metrics:        env.metrics,
		RequestTimeout: 5 * time.Second,
		MaxUploadBytes: 1 << 10,
		Log:            log,
	})
	return env
}

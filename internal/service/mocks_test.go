package service

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/kv"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/stretchr/testify/mock"
)

func newMemoryState() *kv.JSONState {
	return kv.NewJSONState(kv.NewMemoryStore(), logger.NewNopLogger())
}

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateStore) Save(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStateStore) Clear(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) products(args mock.Arguments) ([]entity.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) product(args mock.Arguments) (*entity.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) ([]entity.Product, error) {
	return m.products(m.Called(ctx, name))
}

func (m *MockProductRepository) ListAvailable(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	return m.products(m.Called(ctx, categoryID))
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	return m.products(m.Called(ctx))
}

func (m *MockProductRepository) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	return m.products(m.Called(ctx, limit))
}

func (m *MockProductRepository) Search(ctx context.Context, term string) ([]entity.Product, error) {
	return m.products(m.Called(ctx, term))
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return m.product(m.Called(ctx, id))
}

func (m *MockProductRepository) Create(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	return m.product(m.Called(ctx, input))
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, input entity.ProductInput) (*entity.Product, error) {
	return m.product(m.Called(ctx, id, input))
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListActive(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, header entity.OrderHeader, lines []entity.OrderLine) (int64, error) {
	args := m.Called(ctx, header, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) Recent(ctx context.Context, limit int) ([]entity.OrderHeader, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderHeader), args.Error(1)
}

func (m *MockOrderRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardStats), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastAccess(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	return m.Called(ctx, subject, message).Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error {
	return m.Called(ctx, to, subject, bodyHTML, bodyText).Error(0)
}

type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	args := m.Called(ctx, originalFileName, data)
	return args.String(0), args.Error(1)
}

type recordingCartObserver struct {
	events []CartEvent
}

func (r *recordingCartObserver) CartChanged(ctx context.Context, event CartEvent) {
	r.events = append(r.events, event)
}

package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const recentOrdersLimit = 5

var (
	ErrImageStorageDisabled = errors.New("image storage is not configured")
	ErrUnsupportedImage     = errors.New("unsupported image type")
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type ImageUploader interface {
	Upload(ctx context.Context, originalFileName string, data []byte) (string, error)
}

// AdminOrder is an order header with the badge colour the panel shows.
type AdminOrder struct {
	entity.OrderHeader
	Badge string `json:"badge"`
}

// AdminService backs the administration panel. Every call requires a
// session whose role may open the panel.
type AdminService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	images   ImageUploader
	log      logger.Logger
}

// NewAdminService wires the panel. images may be nil.
func NewAdminService(products repository.ProductRepository, orders repository.OrderRepository, images ImageUploader, log logger.Logger) *AdminService {
	return &AdminService{
		products: products,
		orders:   orders,
		images:   images,
		log:      log,
	}
}

func (s *AdminService) authorize(ctx context.Context, sessions *SessionManager, op string) (entity.Session, error) {
	current, ok := sessions.Current(ctx)
	if !ok {
		return entity.Session{}, entity.NewError(entity.KindUnauthenticated, op, entity.ErrNotAuthenticated)
	}
	if !current.Role.CanAccessAdminPanel() {
		s.log.Warnf("User %s with role %s denied %s", current.UserID, current.Role, op)
		return entity.Session{}, entity.NewError(entity.KindForbidden, op, entity.ErrForbidden)
	}
	return current, nil
}

func (s *AdminService) Dashboard(ctx context.Context, sessions *SessionManager) (*entity.DashboardStats, error) {
	if _, err := s.authorize(ctx, sessions, "admin.dashboard"); err != nil {
		return nil, err
	}
	stats, err := s.orders.Stats(ctx)
	if err != nil {
		s.log.Errorf("Error loading dashboard stats: %v", err)
		return nil, entity.CollaboratorFailure("admin.dashboard", err)
	}
	return stats, nil
}

func (s *AdminService) RecentOrders(ctx context.Context, sessions *SessionManager) ([]AdminOrder, error) {
	if _, err := s.authorize(ctx, sessions, "admin.recent_orders"); err != nil {
		return nil, err
	}
	headers, err := s.orders.Recent(ctx, recentOrdersLimit)
	if err != nil {
		s.log.Errorf("Error loading recent orders: %v", err)
		return nil, entity.CollaboratorFailure("admin.recent_orders", err)
	}
	out := make([]AdminOrder, 0, len(headers))
	for _, h := range headers {
		out = append(out, AdminOrder{OrderHeader: h, Badge: h.Status.Badge()})
	}
	return out, nil
}

func (s *AdminService) GetOrder(ctx context.Context, sessions *SessionManager, id int64) (*entity.Order, error) {
	if _, err := s.authorize(ctx, sessions, "admin.get_order"); err != nil {
		return nil, err
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, entity.NewError(entity.KindNotFound, "admin.get_order", entity.ErrOrderNotFound)
		}
		return nil, entity.CollaboratorFailure("admin.get_order", err)
	}
	return order, nil
}

// ListProducts returns every product, available or not, ordered by name.
func (s *AdminService) ListProducts(ctx context.Context, sessions *SessionManager) ([]entity.Product, error) {
	if _, err := s.authorize(ctx, sessions, "admin.list_products"); err != nil {
		return nil, err
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		s.log.Errorf("Error listing products for admin: %v", err)
		return nil, entity.CollaboratorFailure("admin.list_products", err)
	}
	return products, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, sessions *SessionManager, input entity.ProductInput) (*entity.Product, error) {
	current, err := s.authorize(ctx, sessions, "admin.create_product")
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	product, err := s.products.Create(ctx, input)
	if err != nil {
		s.log.Errorf("Error creating product %q: %v", input.Name, err)
		return nil, entity.CollaboratorFailure("admin.create_product", err)
	}
	s.log.Infof("Product %d (%s) created by user %s", product.ID, product.Name, current.UserID)
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, sessions *SessionManager, id int64, input entity.ProductInput) (*entity.Product, error) {
	current, err := s.authorize(ctx, sessions, "admin.update_product")
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	product, err := s.products.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, entity.NewError(entity.KindNotFound, "admin.update_product", entity.ErrProductNotFound)
		}
		s.log.Errorf("Error updating product %d: %v", id, err)
		return nil, entity.CollaboratorFailure("admin.update_product", err)
	}
	s.log.Infof("Product %d updated by user %s", id, current.UserID)
	return product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, sessions *SessionManager, id int64) error {
	current, err := s.authorize(ctx, sessions, "admin.delete_product")
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		s.log.Errorf("Error deleting product %d: %v", id, err)
		return entity.CollaboratorFailure("admin.delete_product", err)
	}
	s.log.Infof("Product %d deleted by user %s", id, current.UserID)
	return nil
}

// UploadProductImage stores an image and returns its public URL for the
// product's imageUrl field.
func (s *AdminService) UploadProductImage(ctx context.Context, sessions *SessionManager, fileName string, data []byte) (string, error) {
	if _, err := s.authorize(ctx, sessions, "admin.upload_image"); err != nil {
		return "", err
	}
	if s.images == nil {
		return "", entity.CollaboratorFailure("admin.upload_image", ErrImageStorageDisabled)
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(fileName))] || len(data) == 0 {
		return "", entity.InvalidArgument("admin.upload_image", ErrUnsupportedImage)
	}
	url, err := s.images.Upload(ctx, fileName, data)
	if err != nil {
		s.log.Errorf("Error uploading image %s: %v", fileName, err)
		return "", entity.CollaboratorFailure("admin.upload_image", err)
	}
	return url, nil
}

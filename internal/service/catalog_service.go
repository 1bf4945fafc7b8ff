package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const (
	featuredLimit     = 6
	minSearchTermSize = 2
)

type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	log        logger.Logger
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, log logger.Logger) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		log:        log,
	}
}

// ListProducts returns available products ordered by name, optionally
// restricted to one category.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	products, err := s.products.ListAvailable(ctx, categoryID)
	if err != nil {
		s.log.Errorf("Error listing products: %v", err)
		return nil, entity.CollaboratorFailure("catalog.list_products", err)
	}
	return products, nil
}

func (s *CatalogService) Featured(ctx context.Context) ([]entity.Product, error) {
	products, err := s.products.Featured(ctx, featuredLimit)
	if err != nil {
		s.log.Errorf("Error listing featured products: %v", err)
		return nil, entity.CollaboratorFailure("catalog.featured", err)
	}
	return products, nil
}

// Search matches term against name and description. Terms shorter than two
// characters return the full list.
func (s *CatalogService) Search(ctx context.Context, term string) ([]entity.Product, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minSearchTermSize {
		return s.ListProducts(ctx, nil)
	}
	products, err := s.products.Search(ctx, term)
	if err != nil {
		s.log.Errorf("Error searching products for %q: %v", term, err)
		return nil, entity.CollaboratorFailure("catalog.search", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, entity.NewError(entity.KindNotFound, "catalog.get_product", entity.ErrProductNotFound)
		}
		s.log.Errorf("Error getting product %d: %v", id, err)
		return nil, entity.CollaboratorFailure("catalog.get_product", err)
	}
	return product, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		s.log.Errorf("Error listing categories: %v", err)
		return nil, entity.CollaboratorFailure("catalog.categories", err)
	}
	return categories, nil
}

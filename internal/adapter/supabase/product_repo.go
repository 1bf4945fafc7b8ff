package supabase

import (
	"context"
	"strconv"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/supabase-community/postgrest-go"
)

const productWithCategory = "*, categorias(nombre)"

var byName = &postgrest.OrderOpts{Ascending: true}

type productRepository struct {
	c *Client
}

var _ repository.ProductRepository = (*productRepository)(nil)

func NewProductRepository(c *Client) repository.ProductRepository {
	return &productRepository{c: c}
}

func toProducts(rows []productRow) []entity.Product {
	out := make([]entity.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}

func (r *productRepository) FindByName(ctx context.Context, name string) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []productRow
	_, err := r.c.client.From(tableProducts).
		Select("*", "", false).
		Eq("nombre", name).
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("find product by name", err)
	}
	return toProducts(rows), nil
}

func (r *productRepository) ListAvailable(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := r.c.client.From(tableProducts).
		Select(productWithCategory, "", false).
		Eq("disponible", "true")
	if categoryID != nil {
		q = q.Eq("categoria_id", strconv.FormatInt(*categoryID, 10))
	}

	var rows []productRow
	_, err := q.Order("nombre", byName).ExecuteTo(&rows)
	if err != nil {
		return nil, classify("list available products", err)
	}
	return toProducts(rows), nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []productRow
	_, err := r.c.client.From(tableProducts).
		Select(productWithCategory, "", false).
		Order("nombre", byName).
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("list products", err)
	}
	return toProducts(rows), nil
}

func (r *productRepository) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []productRow
	_, err := r.c.client.From(tableProducts).
		Select(productWithCategory, "", false).
		Eq("destacado", "true").
		Eq("disponible", "true").
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("list featured products", err)
	}
	return toProducts(rows), nil
}

// searchReplacer strips characters that would break the or=(...) filter.
var searchReplacer = strings.NewReplacer(",", " ", "(", " ", ")", " ")

func (r *productRepository) Search(ctx context.Context, term string) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	term = searchReplacer.Replace(term)
	var rows []productRow
	_, err := r.c.client.From(tableProducts).
		Select(productWithCategory, "", false).
		Eq("disponible", "true").
		Or("nombre.ilike.%"+term+"%,descripcion.ilike.%"+term+"%", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("search products", err)
	}
	return toProducts(rows), nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var row productRow
	_, err := r.c.client.From(tableProducts).
		Select(productWithCategory, "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, classify("get product", err)
	}
	p := row.toEntity()
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var row productRow
	_, err := r.c.client.From(tableProducts).
		Insert(newProductWrite(input), false, "", "representation", "").
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, classify("create product", err)
	}
	p := row.toEntity()
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, input entity.ProductInput) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var row productRow
	_, err := r.c.client.From(tableProducts).
		Update(newProductWrite(input), "representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, classify("update product", err)
	}
	p := row.toEntity()
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.c.client.From(tableProducts).
		Delete("minimal", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	return classify("delete product", err)
}

type categoryRepository struct {
	c *Client
}

var _ repository.CategoryRepository = (*categoryRepository)(nil)

func NewCategoryRepository(c *Client) repository.CategoryRepository {
	return &categoryRepository{c: c}
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []categoryRow
	_, err := r.c.client.From(tableCategories).
		Select("*", "", false).
		Eq("activo", "true").
		Order("nombre", byName).
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("list categories", err)
	}
	out := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Category{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Active:      row.Active,
		})
	}
	return out, nil
}

package supabase

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// rowID accepts both numeric and uuid primary keys.
type rowID string

func (id *rowID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = rowID(n.String())
	return nil
}

type nameRef struct {
	Name     string `json:"nombre"`
	ImageURL string `json:"imagen_url"`
}

type productRow struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoria_id"`
	ImageURL    string          `json:"imagen_url"`
	Available   bool            `json:"disponible"`
	Featured    bool            `json:"destacado"`
	CreatedAt   time.Time       `json:"created_at"`
	Category    *nameRef        `json:"categorias,omitempty"`
}

func (r productRow) toEntity() entity.Product {
	p := entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
		Featured:    r.Featured,
		CreatedAt:   r.CreatedAt,
	}
	if r.Category != nil {
		p.CategoryName = r.Category.Name
	}
	return p
}

type productWrite struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoria_id"`
	ImageURL    string          `json:"imagen_url"`
	Available   bool            `json:"disponible"`
	Featured    bool            `json:"destacado"`
}

func newProductWrite(in entity.ProductInput) productWrite {
	return productWrite{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		Available:   in.Available,
		Featured:    in.Featured,
	}
}

type categoryRow struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Active      bool   `json:"activo"`
}

type orderRow struct {
	ID            int64           `json:"id,omitempty"`
	CustomerName  string          `json:"cliente_nombre"`
	CustomerEmail string          `json:"cliente_email"`
	CustomerPhone string          `json:"cliente_telefono"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notas"`
	Status        string          `json:"estado"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
	Details       []orderLineRow  `json:"pedidos_detalles,omitempty"`
}

func newOrderRow(h entity.OrderHeader) orderRow {
	return orderRow{
		CustomerName:  h.CustomerName,
		CustomerEmail: h.CustomerEmail,
		CustomerPhone: h.CustomerPhone,
		Total:         h.Total,
		Notes:         h.Notes,
		Status:        string(h.Status),
	}
}

func (r orderRow) header() entity.OrderHeader {
	h := entity.OrderHeader{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Total:         r.Total,
		Notes:         r.Notes,
		Status:        entity.OrderStatus(r.Status),
	}
	if r.CreatedAt != nil {
		h.CreatedAt = *r.CreatedAt
	}
	return h
}

type orderLineRow struct {
	OrderID   int64           `json:"pedido_id"`
	ProductID int64           `json:"producto_id"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Product   *nameRef        `json:"productos,omitempty"`
}

func (r orderLineRow) toEntity() entity.OrderLine {
	l := entity.OrderLine{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Subtotal:  r.Subtotal,
	}
	if r.Product != nil {
		l.ProductName = r.Product.Name
	}
	return l
}

type roleRef struct {
	Name string `json:"nombre"`
}

type userRow struct {
	ID           rowID      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	FirstName    string     `json:"nombre"`
	LastName     string     `json:"apellido"`
	Phone        string     `json:"telefono"`
	Address      string     `json:"direccion"`
	RoleID       int        `json:"rol_id"`
	Active       bool       `json:"activo"`
	LastAccessAt *time.Time `json:"ultimo_acceso"`
	Role         *roleRef   `json:"roles,omitempty"`
}

// role prefers the joined role name and falls back to rol_id.
func (r userRow) role() entity.Role {
	if r.Role != nil {
		if parsed, err := entity.ParseRole(r.Role.Name); err == nil {
			return parsed
		}
	}
	return entity.Role(r.RoleID)
}

func (r userRow) toEntity() entity.User {
	return entity.User{
		ID:           string(r.ID),
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		Address:      r.Address,
		Role:         r.role(),
		Active:       r.Active,
		LastAccessAt: r.LastAccessAt,
	}
}

type userWrite struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellido"`
	Phone        string `json:"telefono"`
	Address      string `json:"direccion"`
	RoleID       int    `json:"rol_id"`
	Active       bool   `json:"activo"`
}

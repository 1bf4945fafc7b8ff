package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/supabase-community/supabase-go"
)

const (
	tableProducts     = "productos"
	tableCategories   = "categorias"
	tableOrders       = "pedidos"
	tableOrderDetails = "pedidos_detalles"
	tableUsers        = "usuarios"
)

// PostgREST reports failures as "(code) message".
const (
	codeUniqueViolation = "(23505)"
	codeNoRows          = "(PGRST116)"
)

type Client struct {
	client *supabase.Client
}

func New(cfg config.SupabaseConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	client, err := supabase.NewClient(cfg.URL, cfg.APIKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &Client{client: client}, nil
}

// Ping issues a one-row read against the products table.
func (c *Client) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := c.client.From(tableProducts).Select("id", "", false).Limit(1, "").Execute()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrConnectionFailed, err)
	}
	return nil
}

// classify maps PostgREST error codes onto repository errors.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, codeNoRows):
		return repository.ErrNotFound
	case strings.Contains(msg, codeUniqueViolation):
		return fmt.Errorf("%s: %w", op, repository.ErrAlreadyExists)
	default:
		return fmt.Errorf("failed to %s: %w: %v", op, repository.ErrQueryFailed, err)
	}
}

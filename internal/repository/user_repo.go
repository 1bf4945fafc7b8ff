package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type UserRepository interface {
	// GetActiveByEmail returns ErrNotFound when no active user has the email.
	GetActiveByEmail(ctx context.Context, email string) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create returns ErrAlreadyExists on a unique email violation.
	Create(ctx context.Context, user entity.User) (*entity.User, error)
	TouchLastAccess(ctx context.Context, userID string) error
}

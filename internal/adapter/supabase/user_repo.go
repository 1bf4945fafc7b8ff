package supabase

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type userRepository struct {
	c *Client
}

var _ repository.UserRepository = (*userRepository)(nil)

func NewUserRepository(c *Client) repository.UserRepository {
	return &userRepository{c: c}
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []userRow
	_, err := r.c.client.From(tableUsers).
		Select("*, roles(nombre)", "", false).
		Eq("email", email).
		Eq("activo", "true").
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, classify("get user by email", err)
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	u := rows[0].toEntity()
	return &u, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var rows []struct {
		Email string `json:"email"`
	}
	_, err := r.c.client.From(tableUsers).
		Select("email", "", false).
		Eq("email", email).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return false, classify("check email", err)
	}
	return len(rows) > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var row userRow
	_, err := r.c.client.From(tableUsers).
		Insert(userWrite{
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			Phone:        user.Phone,
			Address:      user.Address,
			RoleID:       int(user.Role),
			Active:       user.Active,
		}, false, "", "representation", "").
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, classify("create user", err)
	}
	created := row.toEntity()
	return &created, nil
}

func (r *userRepository) TouchLastAccess(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.c.client.From(tableUsers).
		Update(map[string]any{"ultimo_acceso": time.Now().UTC()}, "minimal", "").
		Eq("id", userID).
		Execute()
	return classify("update last access", err)
}

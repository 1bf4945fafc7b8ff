package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthServiceConfig struct {
	BcryptCost int
}

type AuthService struct {
	users      repository.UserRepository
	log        logger.Logger
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, log logger.Logger, cfg AuthServiceConfig) *AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		log:        log,
		bcryptCost: cost,
	}
}

// HashPassword produces a salted one-way hash suitable for the
// password_hash column.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *AuthService) Register(ctx context.Context, in entity.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	s.log.Infof("Registering user %s", email)

	if email == "" {
		return nil, entity.InvalidArgument("auth.register", entity.ErrEmailRequired)
	}
	if in.Password != in.ConfirmPassword {
		return nil, entity.InvalidArgument("auth.register", entity.ErrPasswordMismatch)
	}
	if len([]rune(in.Password)) < minPasswordLength {
		return nil, entity.InvalidArgument("auth.register", entity.ErrPasswordTooShort)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		s.log.Errorf("Error checking email %s: %v", email, err)
		return nil, entity.CollaboratorFailure("auth.register", err)
	}
	if exists {
		return nil, entity.NewError(entity.KindConflict, "auth.register", entity.ErrEmailTaken)
	}

	hash, err := HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Role:         entity.RoleCustomer,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, entity.NewError(entity.KindConflict, "auth.register", entity.ErrEmailTaken)
		}
		s.log.Errorf("Error creating user %s: %v", email, err)
		return nil, entity.CollaboratorFailure("auth.register", err)
	}

	s.log.Infof("User %s registered with id %s", email, created.ID)
	return created, nil
}

// VerifyCredentials returns the active user matching email and password.
// Unknown users and wrong passwords yield the same error.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Infof("Login attempt for unknown or inactive user %s", email)
			return nil, entity.NewError(entity.KindUnauthenticated, "auth.verify", entity.ErrInvalidCredentials)
		}
		s.log.Errorf("Error fetching user %s: %v", email, err)
		return nil, entity.CollaboratorFailure("auth.verify", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Infof("Wrong password for user %s", email)
		return nil, entity.NewError(entity.KindUnauthenticated, "auth.verify", entity.ErrInvalidCredentials)
	}
	return user, nil
}

type LoginResult struct {
	Session entity.Session `json:"session"`
	Landing string         `json:"landing"`
}

// Login verifies credentials, checks that the user's role may use portal and
// opens a session, replacing any previous one.
func (s *AuthService) Login(ctx context.Context, sessions *SessionManager, email, password string, portal entity.Portal) (*LoginResult, error) {
	ctx, span := otel.Tracer("storefront/auth").Start(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if !portal.Admits(user.Role) {
		s.log.Warnf("User %s with role %s denied at portal %s", user.Email, user.Role, portal)
		return nil, entity.NewError(entity.KindForbidden, "auth.login", entity.ErrPortalDenied)
	}

	if err := s.users.TouchLastAccess(ctx, user.ID); err != nil {
		s.log.Warnf("Could not update last access for user %s: %v", user.ID, err)
	}

	session, err := sessions.Login(ctx, user.Identity())
	if err != nil {
		return nil, err
	}
	s.log.Infof("User %s logged in as %s", user.Email, user.Role)
	return &LoginResult{Session: session, Landing: user.Role.Landing()}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessions *SessionManager) {
	if current, ok := sessions.Current(ctx); ok {
		s.log.Infof("User %s logged out", current.Email)
	}
	sessions.Logout(ctx)
}

type PasswordStrength string

const (
	PasswordWeak   PasswordStrength = "weak"
	PasswordMedium PasswordStrength = "medium"
	PasswordStrong PasswordStrength = "strong"
)

// RatePassword scores one point each for length >= 6, length >= 8, an upper
// case letter, a digit and a symbol.
func RatePassword(password string) (PasswordStrength, int) {
	score := 0
	length := len([]rune(password))
	if length >= 6 {
		score++
	}
	if length >= 8 {
		score++
	}

	var upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case !(r >= 'a' && r <= 'z'):
			symbol = true
		}
	}
	for _, ok := range []bool{upper, digit, symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return PasswordWeak, score
	case score <= 4:
		return PasswordMedium, score
	default:
		return PasswordStrong, score
	}
}

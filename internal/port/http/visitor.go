package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const visitorIssuer = "storefront"

var ErrInvalidVisitorToken = errors.New("invalid visitor token")

// VisitorResolver hands out a visitor's managers for the length of a request.
type VisitorResolver interface {
	Acquire(ctx context.Context, visitorID string) (*service.Visitor, func())
}

// VisitorClaims identify an anonymous or signed-in browser. They carry no
// identity; the session lives in the visitor's state.
type VisitorClaims struct {
	VisitorID string `json:"vid"`
	jwt.RegisteredClaims
}

// VisitorTokens signs and verifies visitor cookies with HMAC-SHA256.
type VisitorTokens struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

func NewVisitorTokens(secret string, maxAge time.Duration) *VisitorTokens {
	return &VisitorTokens{secret: []byte(secret), maxAge: maxAge, now: time.Now}
}

func (t *VisitorTokens) Issue(visitorID string) (string, error) {
	now := t.now()
	claims := VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   visitorIssuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.maxAge > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.maxAge))
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign visitor token: %w", err)
	}
	return signed, nil
}

func (t *VisitorTokens) Parse(token string) (string, error) {
	claims := &VisitorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(visitorIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidVisitorToken, err)
	}
	if _, err := uuid.Parse(claims.VisitorID); err != nil {
		return "", fmt.Errorf("%w: bad visitor id", ErrInvalidVisitorToken)
	}
	return claims.VisitorID, nil
}

type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// VisitorMiddleware resolves the visitor from the signed cookie, issuing a
// new visitor id when the cookie is missing or does not verify.
func VisitorMiddleware(tokens *VisitorTokens, visitors VisitorResolver, cookie CookieConfig, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var visitorID string
			if c, err := r.Cookie(cookie.Name); err == nil {
				id, err := tokens.Parse(c.Value)
				if err != nil {
					log.Debugf("Discarding visitor cookie: %v", err)
				} else {
					visitorID = id
				}
			}

			if visitorID == "" {
				visitorID = uuid.NewString()
				signed, err := tokens.Issue(visitorID)
				if err != nil {
					log.Errorf("Could not issue visitor cookie: %v", err)
					writeError(w, log, err)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookie.Name,
					Value:    signed,
					Path:     "/",
					MaxAge:   int(cookie.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   cookie.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			v, release := visitors.Acquire(r.Context(), visitorID)
			defer release()
			next.ServeHTTP(w, r.WithContext(withVisitor(r.Context(), v)))
		})
	}
}

func visitorOrFail(w http.ResponseWriter, r *http.Request, log logger.Logger) (*service.Visitor, bool) {
	v, ok := VisitorFrom(r.Context())
	if !ok {
		log.Errorf("No visitor in context for %s %s", r.Method, r.URL.Path)
		http.Error(w, "visitor not resolved", http.StatusInternalServerError)
		return nil, false
	}
	return v, true
}

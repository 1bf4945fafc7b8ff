package entity

import "time"

// Identity is what credential verification hands to the session manager.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
	Role        Role
}

type Session struct {
	UserID      string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
	IssuedAt    time.Time `json:"issuedAt"`
}

func NewSession(identity Identity, now time.Time) Session {
	return Session{
		UserID:      identity.UserID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
		IssuedAt:    now.UTC(),
	}
}

// Expired reports whether the session is older than maxAge. A zero maxAge
// never expires.
func (s Session) Expired(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.IssuedAt) > maxAge
}

func (s Session) Valid() bool {
	return s.UserID != "" && s.Role.Valid()
}

package entity

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Role         Role
	Active       bool
	LastAccessAt *time.Time
}

func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) Identity() Identity {
	return Identity{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName(),
		Role:        u.Role,
	}
}

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

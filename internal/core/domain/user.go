package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountUnverified = errors.New("account pending approval")
var ErrUnauthorized = errors.New("not authenticated")

// User models an employee account. Accounts are created unverified by
// registration and become usable once an administrator approves them.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NIPP         string    `json:"nipp"`
	Email        string    `json:"email"`
	Position     string    `json:"position"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"createdAt"`
}

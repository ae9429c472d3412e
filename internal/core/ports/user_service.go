package ports

import (
	"context"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

// RegisterInput carries the fields collected by the registration form.
type RegisterInput struct {
	Name     string
	NIPP     string
	Email    string
	Position string
	Password string
}

// LoginResult bundles the signed session token with the authenticated user.
type LoginResult struct {
	Token     string
	SessionID string
	User      *domain.User
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Approve(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

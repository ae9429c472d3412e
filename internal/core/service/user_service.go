package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

// SessionStore abstracts the active-session registry (Redis). Logout deletes
// the entry, which invalidates the cookie even before the JWT expires.
type SessionStore interface {
	Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// UserService implements registration, the cookie-session login flow, and the
// employee approval workflow.
type UserService struct {
	repo      ports.UserRepository
	sessions  SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, sessions SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates an unverified employee account.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		NIPP:         in.NIPP,
		Email:        in.Email,
		Position:     in.Position,
		PasswordHash: string(hash),
		Verified:     false,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("nipp", created.NIPP).Msg("employee registered")
	return created, nil
}

// Login verifies credentials, refuses unverified accounts, and opens a new
// session backed by the session store.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Verified && !user.Admin {
		return nil, domain.ErrAccountUnverified
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Put(ctx, sessionID, user.ID, s.tokenTTL); err != nil {
		return nil, err
	}

	token, err := s.signToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("session opened")
	return &ports.LoginResult{Token: token, SessionID: sessionID, User: user}, nil
}

// Logout invalidates the session; the cookie becomes useless immediately.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthorized
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves the identity behind an authenticated request.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.FindByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Approve flips the verified flag and returns the updated record.
func (s *UserService) Approve(ctx context.Context, id string) (*domain.User, error) {
	if err := s.repo.SetVerified(ctx, id); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("employee approved")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("employee deleted")
	return nil
}

func (s *UserService) signToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"sid":   sessionID,
		"admin": user.Admin,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

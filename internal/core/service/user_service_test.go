package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
	"github.com/gridsentry/genset-monitoring/pkg/logger"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) SetVerified(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Verified = true
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubSessionStore struct {
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Put(_ context.Context, sessionID, userID string, _ time.Duration) error {
	s.sessions[sessionID] = userID
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newTestUserService(repo ports.UserRepository, sessions SessionStore) *UserService {
	logger.Reset()
	log := logger.Init(logger.Options{Level: "error"})
	return NewUserService(repo, sessions, "secret", time.Hour, log)
}

func register(t *testing.T, svc *UserService, email string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		NIPP:     "12345",
		Email:    email,
		Position: "Engineer",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestUserService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, newStubSessionStore())

	user := register(t, svc, "alice@example.com")

	if user.Verified {
		t.Fatalf("expected new account to be unverified")
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := newTestUserService(newStubUserRepo(), newStubSessionStore())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@example.com"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := newTestUserService(newStubUserRepo(), newStubSessionStore())

	register(t, svc, "bob@example.com")
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "another-pass",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Login_RejectsUnverified(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, newStubSessionStore())

	register(t, svc, "carol@example.com")

	if _, err := svc.Login(context.Background(), "carol@example.com", "s3cret-pass"); err != domain.ErrAccountUnverified {
		t.Fatalf("expected ErrAccountUnverified, got %v", err)
	}
}

func TestUserService_Login_AfterApproval(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newTestUserService(repo, sessions)

	user := register(t, svc, "dave@example.com")

	approved, err := svc.Approve(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if !approved.Verified {
		t.Fatalf("expected approved account to be verified")
	}

	result, err := svc.Login(context.Background(), "dave@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" || result.SessionID == "" {
		t.Fatalf("expected token and session id, got %+v", result)
	}
	if sessions.sessions[result.SessionID] != user.ID {
		t.Fatalf("expected session registered for user %s", user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != user.ID || claims["sid"] != result.SessionID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestUserService_Login_BadPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, newStubSessionStore())

	user := register(t, svc, "erin@example.com")
	if _, err := svc.Approve(context.Background(), user.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "erin@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Logout(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newTestUserService(repo, sessions)

	user := register(t, svc, "frank@example.com")
	if _, err := svc.Approve(context.Background(), user.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	result, err := svc.Login(context.Background(), "frank@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.SessionID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, ok := sessions.sessions[result.SessionID]; ok {
		t.Fatalf("expected session to be removed")
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, newStubSessionStore())

	user := register(t, svc, "grace@example.com")
	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

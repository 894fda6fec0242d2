package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn     func(ctx context.Context, email, passwordHash string) (*domain.User, error)
	countFn      func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, email, passwordHash)
	}
	return &domain.User{ID: 1, Email: email, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, errors.New("not found")
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           1,
				Email:        "me@example.com",
				PasswordHash: string(hash),
			}, nil
		},
	}

	sessions := &mockSessionRepo{
		createFn: func(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
			if userID != 1 {
				t.Errorf("expected userID 1, got %d", userID)
			}
			if token == "" {
				t.Error("token should not be empty")
			}
			if time.Until(expiresAt) <= 0 {
				t.Error("expected expiry in the future")
			}
			return nil
		},
	}

	svc := NewAuthService(users, sessions, time.Hour)
	token, err := svc.Login(ctx, "me@example.com", password)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected token, got empty string")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           1,
				Email:        "me@example.com",
				PasswordHash: string(hash),
			}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	_, err := svc.Login(ctx, "me@example.com", "wrongpass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()

	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, time.Hour)

	_, err := svc.Login(ctx, "nobody@example.com", "pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateSession_Valid(t *testing.T) {
	ctx := context.Background()
	token := "validtoken"

	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, tok string) (*domain.Session, error) {
			return &domain.Session{
				Token:     token,
				UserID:    1,
				ExpiresAt: time.Now().Add(1 * time.Hour),
			}, nil
		},
	}

	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{
				ID:    1,
				Email: "me@example.com",
			}, nil
		},
	}

	svc := NewAuthService(users, sessions, time.Hour)
	user, err := svc.ValidateSession(ctx, token)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "me@example.com" {
		t.Errorf("expected email 'me@example.com', got %s", user.Email)
	}
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	ctx := context.Background()
	token := "expiredtoken"

	deleted := false
	sessions := &mockSessionRepo{
		getByTokenFn: func(ctx context.Context, tok string) (*domain.Session, error) {
			return &domain.Session{
				Token:     token,
				UserID:    1,
				ExpiresAt: time.Now().Add(-1 * time.Hour),
			}, nil
		},
		deleteFn: func(ctx context.Context, tok string) error {
			deleted = true
			return nil
		},
	}

	svc := NewAuthService(&mockUserRepo{}, sessions, time.Hour)

	_, err := svc.ValidateSession(ctx, token)
	if !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if !deleted {
		t.Error("expected session to be deleted")
	}
}

func TestAuthService_EnsureAdminUser_Creates(t *testing.T) {
	ctx := context.Background()

	created := false
	users := &mockUserRepo{
		createFn: func(ctx context.Context, email, passwordHash string) (*domain.User, error) {
			created = true
			if email != "admin@example.com" {
				t.Errorf("expected admin@example.com, got %s", email)
			}
			if passwordHash == "" {
				t.Error("password hash should not be empty")
			}
			return &domain.User{ID: 1, Email: email}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)
	if err := svc.EnsureAdminUser(ctx, "admin@example.com", "password123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !created {
		t.Error("expected user to be created")
	}
}

func TestAuthService_EnsureAdminUser_Idempotent(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
		createFn: func(ctx context.Context, email, passwordHash string) (*domain.User, error) {
			t.Error("should not create when user exists")
			return nil, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)
	if err := svc.EnsureAdminUser(ctx, "admin@example.com", "password123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAuthService_EnsureAdminUser_SkipsWhenUnconfigured(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		createFn: func(ctx context.Context, email, passwordHash string) (*domain.User, error) {
			t.Error("should not create without configured credentials")
			return nil, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)
	if err := svc.EnsureAdminUser(ctx, "", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAuthService_ValidateForwardAuth_ExistingUser(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:    1,
				Email: "sso@example.com",
			}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	user, err := svc.ValidateForwardAuth(ctx, "sso@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "sso@example.com" {
		t.Errorf("expected email 'sso@example.com', got %s", user.Email)
	}
}

func TestAuthService_ValidateForwardAuth_NewUser(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepo{
		createFn: func(ctx context.Context, email, passwordHash string) (*domain.User, error) {
			return &domain.User{
				ID:    2,
				Email: email,
			}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{}, time.Hour)

	user, err := svc.ValidateForwardAuth(ctx, "new-sso@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "new-sso@example.com" {
		t.Errorf("expected email 'new-sso@example.com', got %s", user.Email)
	}
}

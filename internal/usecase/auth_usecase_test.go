package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"skillmatch/internal/pkg/jwt"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUserRepo struct {
	mockUserRepo
	byUsername map[string]repository.User
	created    *repository.User
}

func (m authUserRepo) GetByUsername(_ context.Context, username string) (repository.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m authUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m authUserRepo) Create(_ context.Context, u repository.User) error {
	if m.created != nil {
		*m.created = u
	}
	return nil
}

func newAuthService() jwt.Service {
	return jwt.NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
}

func TestRegister_LowersUsernameAndHashesPassword(t *testing.T) {
	var created repository.User
	uc := NewAuthUsecase(authUserRepo{created: &created}, newAuthService())

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Username: "  TestUser ",
		Email:    "test@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if usr.Username != "testuser" {
		t.Errorf("username = %q, want testuser", usr.Username)
	}
	if usr.PasswordHash != "" {
		t.Error("password hash leaked in returned user")
	}
	if access == "" || refresh == "" {
		t.Error("expected non-empty token pair")
	}

	if created.Username != "testuser" {
		t.Errorf("stored username = %q, want testuser", created.Username)
	}
	if strings.Contains(created.PasswordHash, "secret123") || created.PasswordHash == "" {
		t.Error("password not hashed before storage")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	uc := NewAuthUsecase(authUserRepo{}, newAuthService())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Username: "testuser", Password: "abc"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_TakenUsername(t *testing.T) {
	uc := NewAuthUsecase(authUserRepo{
		byUsername: map[string]repository.User{"testuser": {Username: "testuser"}},
	}, newAuthService())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Username: "TestUser", Password: "secret123"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_VerifiesPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := authUserRepo{byUsername: map[string]repository.User{
		"testuser": {ID: uuid.New(), Username: "testuser", PasswordHash: string(hash)},
	}}
	uc := NewAuthUsecase(repo, newAuthService())

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Username: "TestUser", Password: "secret123"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, _, err = uc.Login(context.Background(), LoginInput{Username: "testuser", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, _, err = uc.Login(context.Background(), LoginInput{Username: "ghost", Password: "secret123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newAuthService()
	userID := uuid.New()
	repo := authUserRepo{
		mockUserRepo: mockUserRepo{users: map[uuid.UUID]repository.User{
			userID: {ID: userID, Username: "testuser"},
		}},
	}
	uc := NewAuthUsecase(repo, svc)

	access, err := svc.GenerateAccessToken(userID, "testuser")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}

	refresh, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	newAccess, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Error("expected rotated token pair")
	}
}

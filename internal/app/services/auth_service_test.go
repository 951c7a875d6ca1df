package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"registro-api/internal/app/models"
	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:     "test-secret",
		TokenLifetime: 5 * time.Minute,
		TokenIssuer:   "registro-api-test",
	})
}

func TestAuthServiceLogin(t *testing.T) {
	store := newFakeUsuarioStore()
	hash, err := auth.HashPassword("Password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := store.Create(context.Background(), &models.Usuario{
		Email:    "ana@example.com",
		Username: "ana",
		Password: hash,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	jwtService := testJWTService()
	svc := NewAuthService(store, jwtService, zerolog.Nop())

	token, username, err := svc.Login(context.Background(), "ana@example.com", "Password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if username != "ana" {
		t.Errorf("username = %q, want %q", username, "ana")
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("claims.UserID = %d, want 1", claims.UserID)
	}
}

func TestAuthServiceLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeUsuarioStore()
	hash, _ := auth.HashPassword("Password1")
	store.Create(context.Background(), &models.Usuario{
		Email:    "ana@example.com",
		Username: "ana",
		Password: hash,
	})

	svc := NewAuthService(store, testJWTService(), zerolog.Nop())

	_, _, errWrongPassword := svc.Login(context.Background(), "ana@example.com", "nope-nope1")
	_, _, errUnknownEmail := svc.Login(context.Background(), "nadie@example.com", "Password1")

	for name, err := range map[string]error{
		"wrong password": errWrongPassword,
		"unknown email":  errUnknownEmail,
	} {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("%s: err = %v, want ErrInvalidCredentials", name, err)
		}
	}

	// Same user-facing message regardless of which check failed
	if apperrors.Message(errWrongPassword, "") != apperrors.Message(errUnknownEmail, "") {
		t.Errorf("messages differ: %q vs %q",
			apperrors.Message(errWrongPassword, ""), apperrors.Message(errUnknownEmail, ""))
	}
}

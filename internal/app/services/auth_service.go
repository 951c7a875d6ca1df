package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/auth"
)

// invalidCredentials is intentionally the same for an unknown email and a
// wrong password so login failures cannot be used to enumerate accounts.
func invalidCredentials() error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrInvalidCredentials,
		Message: "Usuario o contraseña inválidos",
	}
}

// AuthService handles login and token issuance
type AuthService struct {
	usuarioStore UsuarioStore
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(usuarioStore UsuarioStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		usuarioStore: usuarioStore,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login verifies credentials and issues a signed, time-limited bearer token.
// It returns the token and the account's username.
func (s *AuthService) Login(ctx context.Context, email, password string) (token, username string, err error) {
	usuario, err := s.usuarioStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return "", "", invalidCredentials()
		}
		return "", "", fmt.Errorf("error looking up usuario for login: %w", err)
	}

	if !auth.CheckPassword(usuario.Password, password) {
		return "", "", invalidCredentials()
	}

	token, err = s.jwtService.GenerateToken(usuario.ID)
	if err != nil {
		return "", "", fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Debug().Int64("userId", usuario.ID).Msg("Login successful")
	return token, usuario.Username, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"registro-api/internal/app/models"
	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/auth"
)

// UsuarioService handles account registration and management
type UsuarioService struct {
	usuarioStore UsuarioStore
}

// NewUsuarioService creates a new UsuarioService
func NewUsuarioService(usuarioStore UsuarioStore) *UsuarioService {
	return &UsuarioService{
		usuarioStore: usuarioStore,
	}
}

// Register creates a new account. Email and username must be unique; the
// password is stored only as a bcrypt hash.
func (s *UsuarioService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Usuario, error) {
	exists, err := s.usuarioStore.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("El email ya está registrado")
	}

	exists, err = s.usuarioStore.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("El nombre de usuario ya está registrado")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	usuario := &models.Usuario{
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
	}

	if err := s.usuarioStore.Create(ctx, usuario); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost the race against a concurrent registration; the store
			// already phrased which field collided
			return nil, err
		}
		return nil, fmt.Errorf("error creating usuario: %w", err)
	}

	return usuario, nil
}

// List returns every account as id/username/email only
func (s *UsuarioService) List(ctx context.Context) ([]dto.UsuarioSummary, error) {
	usuarios, err := s.usuarioStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing usuarios: %w", err)
	}

	summaries := make([]dto.UsuarioSummary, 0, len(usuarios))
	for i := range usuarios {
		summaries = append(summaries, dto.NewUsuarioSummary(&usuarios[i]))
	}

	return summaries, nil
}

// Delete removes an account by id
func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	if err := s.usuarioStore.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewResourceNotFoundError("Usuario no encontrado")
		}
		return fmt.Errorf("error deleting usuario: %w", err)
	}
	return nil
}

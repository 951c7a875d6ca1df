package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"registro-api/internal/app/models"
	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/dberrors"
)

// UsuarioRepository handles database operations for user accounts
type UsuarioRepository struct {
	db *pgxpool.Pool
}

// NewUsuarioRepository creates a new user repository
func NewUsuarioRepository(db *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{
		db: db,
	}
}

// Create inserts a new account and fills in the generated id
func (r *UsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	query := `
		INSERT INTO usuarios (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, usuario.Email, usuario.Username, usuario.Password).Scan(&usuario.ID)
	if err != nil {
		// The schema constraints resolve the check-then-act race; the
		// constraint name tells us which field collided
		switch {
		case dberrors.IsDuplicateConstraintError(err, "usuarios_email_key"):
			return apperrors.NewConflictError("El email ya está registrado")
		case dberrors.IsDuplicateConstraintError(err, "usuarios_username_key"):
			return apperrors.NewConflictError("El nombre de usuario ya está registrado")
		case dberrors.IsUniqueViolation(err):
			return apperrors.NewConflictError("El email o nombre de usuario ya está registrado")
		}
		return fmt.Errorf("error creating usuario: %w", err)
	}

	return nil
}

// GetByEmail retrieves an account by email, hash included
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	query := `
		SELECT id, email, username, password_hash
		FROM usuarios
		WHERE email = $1
	`

	var usuario models.Usuario
	err := r.db.QueryRow(ctx, query, email).Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.Username,
		&usuario.Password,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}

	return &usuario, nil
}

// GetAll retrieves every account. The hash column is never selected here.
func (r *UsuarioRepository) GetAll(ctx context.Context) ([]models.Usuario, error) {
	query := `
		SELECT id, email, username
		FROM usuarios
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []models.Usuario
	for rows.Next() {
		var usuario models.Usuario
		if err := rows.Scan(&usuario.ID, &usuario.Email, &usuario.Username); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, usuario)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usuarios, nil
}

// Delete removes an account by id
func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting usuario: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// ExistsByEmail checks whether an account uses the given email
func (r *UsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// ExistsByUsername checks whether an account uses the given username
func (r *UsuarioRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

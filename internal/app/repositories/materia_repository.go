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

// MateriaRepository handles database operations for subjects
type MateriaRepository struct {
	db *pgxpool.Pool
}

// NewMateriaRepository creates a new subject repository
func NewMateriaRepository(db *pgxpool.Pool) *MateriaRepository {
	return &MateriaRepository{
		db: db,
	}
}

// Create inserts a new subject and fills in the generated id
func (r *MateriaRepository) Create(ctx context.Context, materia *models.Materia) error {
	query := `
		INSERT INTO materias (nombre, anio)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, materia.Nombre, materia.Anio).Scan(&materia.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: materia duplicada", apperrors.ErrConflict)
		}
		return fmt.Errorf("error creating materia: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by id
func (r *MateriaRepository) GetByID(ctx context.Context, id int64) (*models.Materia, error) {
	query := `
		SELECT id, nombre, anio
		FROM materias
		WHERE id = $1
	`

	var materia models.Materia
	err := r.db.QueryRow(ctx, query, id).Scan(
		&materia.ID,
		&materia.Nombre,
		&materia.Anio,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving materia: %w", err)
	}

	return &materia, nil
}

// GetAll retrieves every subject ordered by (anio, nombre)
func (r *MateriaRepository) GetAll(ctx context.Context) ([]models.Materia, error) {
	query := `
		SELECT id, nombre, anio
		FROM materias
		ORDER BY anio, nombre
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materias []models.Materia
	for rows.Next() {
		var materia models.Materia
		if err := rows.Scan(&materia.ID, &materia.Nombre, &materia.Anio); err != nil {
			return nil, err
		}
		materias = append(materias, materia)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materias, nil
}

// Update replaces the full field set of an existing subject
func (r *MateriaRepository) Update(ctx context.Context, materia *models.Materia) error {
	query := `
		UPDATE materias
		SET nombre = $1, anio = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, materia.Nombre, materia.Anio, materia.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: materia duplicada", apperrors.ErrConflict)
		}
		return fmt.Errorf("error updating materia: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a subject; the schema cascades its nota rows
func (r *MateriaRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM materias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting materia: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// ExistsByNombreAnio checks whether another subject already uses the
// (nombre, anio) pair. Pass excludeID 0 when creating.
func (r *MateriaRepository) ExistsByNombreAnio(ctx context.Context, nombre string, anio int, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM materias WHERE nombre = $1 AND anio = $2 AND id != $3)`,
		nombre, anio, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking materia existence: %w", err)
	}

	return exists, nil
}

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

// AlumnoRepository handles database operations for students
type AlumnoRepository struct {
	db *pgxpool.Pool
}

// NewAlumnoRepository creates a new student repository
func NewAlumnoRepository(db *pgxpool.Pool) *AlumnoRepository {
	return &AlumnoRepository{
		db: db,
	}
}

// Create inserts a new student and fills in the generated id
func (r *AlumnoRepository) Create(ctx context.Context, alumno *models.Alumno) error {
	query := `
		INSERT INTO alumnos (nombre, apellido, dni)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, alumno.Nombre, alumno.Apellido, alumno.DNI).Scan(&alumno.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: dni duplicado", apperrors.ErrConflict)
		}
		return fmt.Errorf("error creating alumno: %w", err)
	}

	return nil
}

// GetByID retrieves a student by id
func (r *AlumnoRepository) GetByID(ctx context.Context, id int64) (*models.Alumno, error) {
	query := `
		SELECT id, nombre, apellido, dni
		FROM alumnos
		WHERE id = $1
	`

	var alumno models.Alumno
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alumno.ID,
		&alumno.Nombre,
		&alumno.Apellido,
		&alumno.DNI,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving alumno: %w", err)
	}

	return &alumno, nil
}

// GetAll retrieves every student ordered by (apellido, nombre)
func (r *AlumnoRepository) GetAll(ctx context.Context) ([]models.Alumno, error) {
	query := `
		SELECT id, nombre, apellido, dni
		FROM alumnos
		ORDER BY apellido, nombre
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alumnos []models.Alumno
	for rows.Next() {
		var alumno models.Alumno
		if err := rows.Scan(&alumno.ID, &alumno.Nombre, &alumno.Apellido, &alumno.DNI); err != nil {
			return nil, err
		}
		alumnos = append(alumnos, alumno)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alumnos, nil
}

// Update replaces the full field set of an existing student
func (r *AlumnoRepository) Update(ctx context.Context, alumno *models.Alumno) error {
	query := `
		UPDATE alumnos
		SET nombre = $1, apellido = $2, dni = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, alumno.Nombre, alumno.Apellido, alumno.DNI, alumno.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: dni duplicado", apperrors.ErrConflict)
		}
		return fmt.Errorf("error updating alumno: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a student; the schema cascades its nota rows
func (r *AlumnoRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alumnos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting alumno: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// ExistsByDNI checks whether another student already uses the given DNI.
// Pass excludeID 0 when creating, the row's own id when updating.
func (r *AlumnoRepository) ExistsByDNI(ctx context.Context, dni string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM alumnos WHERE dni = $1 AND id != $2)`,
		dni, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking dni existence: %w", err)
	}

	return exists, nil
}

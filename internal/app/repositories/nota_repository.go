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

// NotaRepository handles database operations for grade rows
type NotaRepository struct {
	db *pgxpool.Pool
}

// NewNotaRepository creates a new grade repository
func NewNotaRepository(db *pgxpool.Pool) *NotaRepository {
	return &NotaRepository{
		db: db,
	}
}

// Create inserts a new grade row and fills in the generated id
func (r *NotaRepository) Create(ctx context.Context, nota *models.Nota) error {
	query := `
		INSERT INTO notas (alumno_id, materia_id, nota1, nota2, nota3)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		nota.AlumnoID, nota.MateriaID, nota.Nota1, nota.Nota2, nota.Nota3).Scan(&nota.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: nota duplicada para alumno y materia", apperrors.ErrConflict)
		}
		// A parent deleted between the service's existence check and the
		// insert surfaces here as a foreign key violation.
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating nota: %w", err)
	}

	return nil
}

// GetByID retrieves a grade row by id
func (r *NotaRepository) GetByID(ctx context.Context, id int64) (*models.Nota, error) {
	query := `
		SELECT id, alumno_id, materia_id, nota1, nota2, nota3
		FROM notas
		WHERE id = $1
	`

	var nota models.Nota
	err := r.db.QueryRow(ctx, query, id).Scan(
		&nota.ID,
		&nota.AlumnoID,
		&nota.MateriaID,
		&nota.Nota1,
		&nota.Nota2,
		&nota.Nota3,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving nota: %w", err)
	}

	return &nota, nil
}

// GetAll retrieves every grade row joined with student and subject display
// names, ordered by (student apellido, subject nombre)
func (r *NotaRepository) GetAll(ctx context.Context) ([]models.NotaDetalle, error) {
	query := `
		SELECT
			n.id,
			n.alumno_id,
			a.nombre AS alumno_nombre,
			a.apellido AS alumno_apellido,
			n.materia_id,
			m.nombre AS materia_nombre,
			n.nota1,
			n.nota2,
			n.nota3
		FROM notas n
		JOIN alumnos a ON n.alumno_id = a.id
		JOIN materias m ON n.materia_id = m.id
		ORDER BY a.apellido, m.nombre
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notas []models.NotaDetalle
	for rows.Next() {
		var nota models.NotaDetalle
		if err := rows.Scan(
			&nota.ID,
			&nota.AlumnoID,
			&nota.AlumnoNombre,
			&nota.AlumnoApellido,
			&nota.MateriaID,
			&nota.MateriaNombre,
			&nota.Nota1,
			&nota.Nota2,
			&nota.Nota3,
		); err != nil {
			return nil, err
		}
		notas = append(notas, nota)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notas, nil
}

// UpdateNotas replaces the three grade values of an existing row. The parent
// references are immutable and never touched here.
func (r *NotaRepository) UpdateNotas(ctx context.Context, id int64, nota1, nota2, nota3 *float64) error {
	query := `
		UPDATE notas
		SET nota1 = $1, nota2 = $2, nota3 = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, nota1, nota2, nota3, id)
	if err != nil {
		return fmt.Errorf("error updating nota: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a grade row by id
func (r *NotaRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting nota: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// ExistsByAlumnoMateria checks whether a grade row already exists for the
// (alumno, materia) pair
func (r *NotaRepository) ExistsByAlumnoMateria(ctx context.Context, alumnoID, materiaID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM notas WHERE alumno_id = $1 AND materia_id = $2)`,
		alumnoID, materiaID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking nota existence: %w", err)
	}

	return exists, nil
}

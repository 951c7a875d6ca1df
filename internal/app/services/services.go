package services

import (
	"context"

	"registro-api/internal/app/models"
)

// Store interfaces satisfied by the pgx repositories. Services depend on
// these instead of the concrete types so tests can substitute in-memory
// doubles.

// UsuarioStore persists user accounts
type UsuarioStore interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	GetAll(ctx context.Context) ([]models.Usuario, error)
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// AlumnoStore persists students
type AlumnoStore interface {
	Create(ctx context.Context, alumno *models.Alumno) error
	GetByID(ctx context.Context, id int64) (*models.Alumno, error)
	GetAll(ctx context.Context) ([]models.Alumno, error)
	Update(ctx context.Context, alumno *models.Alumno) error
	Delete(ctx context.Context, id int64) error
	ExistsByDNI(ctx context.Context, dni string, excludeID int64) (bool, error)
}

// MateriaStore persists subjects
type MateriaStore interface {
	Create(ctx context.Context, materia *models.Materia) error
	GetByID(ctx context.Context, id int64) (*models.Materia, error)
	GetAll(ctx context.Context) ([]models.Materia, error)
	Update(ctx context.Context, materia *models.Materia) error
	Delete(ctx context.Context, id int64) error
	ExistsByNombreAnio(ctx context.Context, nombre string, anio int, excludeID int64) (bool, error)
}

// NotaStore persists grade rows
type NotaStore interface {
	Create(ctx context.Context, nota *models.Nota) error
	GetByID(ctx context.Context, id int64) (*models.Nota, error)
	GetAll(ctx context.Context) ([]models.NotaDetalle, error)
	UpdateNotas(ctx context.Context, id int64, nota1, nota2, nota3 *float64) error
	Delete(ctx context.Context, id int64) error
	ExistsByAlumnoMateria(ctx context.Context, alumnoID, materiaID int64) (bool, error)
}

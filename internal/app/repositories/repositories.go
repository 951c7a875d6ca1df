package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository built on the shared pool
type Repositories struct {
	UsuarioRepository *UsuarioRepository
	AlumnoRepository  *AlumnoRepository
	MateriaRepository *MateriaRepository
	NotaRepository    *NotaRepository
}

// NewRepositories creates the repository container
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UsuarioRepository: NewUsuarioRepository(db),
		AlumnoRepository:  NewAlumnoRepository(db),
		MateriaRepository: NewMateriaRepository(db),
		NotaRepository:    NewNotaRepository(db),
	}
}

package routes

import (
	"context"

	"registro-api/internal/app/models"
	"registro-api/internal/pkg/apperrors"
)

// Minimal in-memory stores for exercising the full router without Postgres.
// They return the same sentinel errors the pgx repositories do.

type memUsuarioStore struct {
	nextID   int64
	usuarios map[int64]models.Usuario
}

func newMemUsuarioStore() *memUsuarioStore {
	return &memUsuarioStore{usuarios: make(map[int64]models.Usuario)}
}

func (s *memUsuarioStore) Create(ctx context.Context, usuario *models.Usuario) error {
	for _, u := range s.usuarios {
		if u.Email == usuario.Email || u.Username == usuario.Username {
			return apperrors.ErrConflict
		}
	}
	s.nextID++
	usuario.ID = s.nextID
	s.usuarios[usuario.ID] = *usuario
	return nil
}

func (s *memUsuarioStore) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	for _, u := range s.usuarios {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (s *memUsuarioStore) GetAll(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range s.usuarios {
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

func (s *memUsuarioStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.usuarios[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.usuarios, id)
	return nil
}

func (s *memUsuarioStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range s.usuarios {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUsuarioStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range s.usuarios {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memAlumnoStore struct {
	nextID  int64
	alumnos map[int64]models.Alumno
}

func newMemAlumnoStore() *memAlumnoStore {
	return &memAlumnoStore{alumnos: make(map[int64]models.Alumno)}
}

func (s *memAlumnoStore) Create(ctx context.Context, alumno *models.Alumno) error {
	for _, a := range s.alumnos {
		if a.DNI == alumno.DNI {
			return apperrors.ErrConflict
		}
	}
	s.nextID++
	alumno.ID = s.nextID
	s.alumnos[alumno.ID] = *alumno
	return nil
}

func (s *memAlumnoStore) GetByID(ctx context.Context, id int64) (*models.Alumno, error) {
	a, ok := s.alumnos[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &a, nil
}

func (s *memAlumnoStore) GetAll(ctx context.Context) ([]models.Alumno, error) {
	var out []models.Alumno
	for _, a := range s.alumnos {
		out = append(out, a)
	}
	return out, nil
}

func (s *memAlumnoStore) Update(ctx context.Context, alumno *models.Alumno) error {
	if _, ok := s.alumnos[alumno.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	s.alumnos[alumno.ID] = *alumno
	return nil
}

func (s *memAlumnoStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.alumnos[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.alumnos, id)
	return nil
}

func (s *memAlumnoStore) ExistsByDNI(ctx context.Context, dni string, excludeID int64) (bool, error) {
	for id, a := range s.alumnos {
		if a.DNI == dni && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type memMateriaStore struct {
	nextID   int64
	materias map[int64]models.Materia
}

func newMemMateriaStore() *memMateriaStore {
	return &memMateriaStore{materias: make(map[int64]models.Materia)}
}

func (s *memMateriaStore) Create(ctx context.Context, materia *models.Materia) error {
	for _, m := range s.materias {
		if m.Nombre == materia.Nombre && m.Anio == materia.Anio {
			return apperrors.ErrConflict
		}
	}
	s.nextID++
	materia.ID = s.nextID
	s.materias[materia.ID] = *materia
	return nil
}

func (s *memMateriaStore) GetByID(ctx context.Context, id int64) (*models.Materia, error) {
	m, ok := s.materias[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &m, nil
}

func (s *memMateriaStore) GetAll(ctx context.Context) ([]models.Materia, error) {
	var out []models.Materia
	for _, m := range s.materias {
		out = append(out, m)
	}
	return out, nil
}

func (s *memMateriaStore) Update(ctx context.Context, materia *models.Materia) error {
	if _, ok := s.materias[materia.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	s.materias[materia.ID] = *materia
	return nil
}

func (s *memMateriaStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.materias[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.materias, id)
	return nil
}

func (s *memMateriaStore) ExistsByNombreAnio(ctx context.Context, nombre string, anio int, excludeID int64) (bool, error) {
	for id, m := range s.materias {
		if m.Nombre == nombre && m.Anio == anio && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type memNotaStore struct {
	nextID   int64
	notas    map[int64]models.Nota
	alumnos  *memAlumnoStore
	materias *memMateriaStore
}

func newMemNotaStore(alumnos *memAlumnoStore, materias *memMateriaStore) *memNotaStore {
	return &memNotaStore{
		notas:    make(map[int64]models.Nota),
		alumnos:  alumnos,
		materias: materias,
	}
}

func (s *memNotaStore) Create(ctx context.Context, nota *models.Nota) error {
	if _, ok := s.alumnos.alumnos[nota.AlumnoID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	if _, ok := s.materias.materias[nota.MateriaID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	for _, n := range s.notas {
		if n.AlumnoID == nota.AlumnoID && n.MateriaID == nota.MateriaID {
			return apperrors.ErrConflict
		}
	}
	s.nextID++
	nota.ID = s.nextID
	s.notas[nota.ID] = *nota
	return nil
}

func (s *memNotaStore) GetByID(ctx context.Context, id int64) (*models.Nota, error) {
	n, ok := s.notas[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &n, nil
}

func (s *memNotaStore) GetAll(ctx context.Context) ([]models.NotaDetalle, error) {
	var out []models.NotaDetalle
	for _, n := range s.notas {
		a := s.alumnos.alumnos[n.AlumnoID]
		m := s.materias.materias[n.MateriaID]
		out = append(out, models.NotaDetalle{
			ID:             n.ID,
			AlumnoID:       n.AlumnoID,
			AlumnoNombre:   a.Nombre,
			AlumnoApellido: a.Apellido,
			MateriaID:      n.MateriaID,
			MateriaNombre:  m.Nombre,
			Nota1:          n.Nota1,
			Nota2:          n.Nota2,
			Nota3:          n.Nota3,
		})
	}
	return out, nil
}

func (s *memNotaStore) UpdateNotas(ctx context.Context, id int64, nota1, nota2, nota3 *float64) error {
	n, ok := s.notas[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	n.Nota1 = nota1
	n.Nota2 = nota2
	n.Nota3 = nota3
	s.notas[id] = n
	return nil
}

func (s *memNotaStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.notas[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.notas, id)
	return nil
}

func (s *memNotaStore) ExistsByAlumnoMateria(ctx context.Context, alumnoID, materiaID int64) (bool, error) {
	for _, n := range s.notas {
		if n.AlumnoID == alumnoID && n.MateriaID == materiaID {
			return true, nil
		}
	}
	return false, nil
}

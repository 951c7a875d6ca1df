package services

import (
	"context"
	"sort"

	"registro-api/internal/app/models"
	"registro-api/internal/pkg/apperrors"
)

// In-memory stores mirroring the behavior of the pgx repositories:
// duplicates come back wrapped in ErrConflict, missing rows in
// ErrResourceNotFound, and listings use the same ordering as the SQL.

type fakeUsuarioStore struct {
	nextID   int64
	usuarios map[int64]models.Usuario
}

func newFakeUsuarioStore() *fakeUsuarioStore {
	return &fakeUsuarioStore{usuarios: make(map[int64]models.Usuario)}
}

func (s *fakeUsuarioStore) Create(ctx context.Context, usuario *models.Usuario) error {
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

func (s *fakeUsuarioStore) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	for _, u := range s.usuarios {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (s *fakeUsuarioStore) GetAll(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range s.usuarios {
		u.Password = ""
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeUsuarioStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.usuarios[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.usuarios, id)
	return nil
}

func (s *fakeUsuarioStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range s.usuarios {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUsuarioStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range s.usuarios {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeAlumnoStore struct {
	nextID  int64
	alumnos map[int64]models.Alumno
}

func newFakeAlumnoStore() *fakeAlumnoStore {
	return &fakeAlumnoStore{alumnos: make(map[int64]models.Alumno)}
}

func (s *fakeAlumnoStore) Create(ctx context.Context, alumno *models.Alumno) error {
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

func (s *fakeAlumnoStore) GetByID(ctx context.Context, id int64) (*models.Alumno, error) {
	a, ok := s.alumnos[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &a, nil
}

func (s *fakeAlumnoStore) GetAll(ctx context.Context) ([]models.Alumno, error) {
	var out []models.Alumno
	for _, a := range s.alumnos {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Apellido != out[j].Apellido {
			return out[i].Apellido < out[j].Apellido
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}

func (s *fakeAlumnoStore) Update(ctx context.Context, alumno *models.Alumno) error {
	if _, ok := s.alumnos[alumno.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	for id, a := range s.alumnos {
		if id != alumno.ID && a.DNI == alumno.DNI {
			return apperrors.ErrConflict
		}
	}
	s.alumnos[alumno.ID] = *alumno
	return nil
}

func (s *fakeAlumnoStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.alumnos[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.alumnos, id)
	return nil
}

func (s *fakeAlumnoStore) ExistsByDNI(ctx context.Context, dni string, excludeID int64) (bool, error) {
	for id, a := range s.alumnos {
		if a.DNI == dni && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeMateriaStore struct {
	nextID   int64
	materias map[int64]models.Materia
}

func newFakeMateriaStore() *fakeMateriaStore {
	return &fakeMateriaStore{materias: make(map[int64]models.Materia)}
}

func (s *fakeMateriaStore) Create(ctx context.Context, materia *models.Materia) error {
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

func (s *fakeMateriaStore) GetByID(ctx context.Context, id int64) (*models.Materia, error) {
	m, ok := s.materias[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &m, nil
}

func (s *fakeMateriaStore) GetAll(ctx context.Context) ([]models.Materia, error) {
	var out []models.Materia
	for _, m := range s.materias {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Anio != out[j].Anio {
			return out[i].Anio < out[j].Anio
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}

func (s *fakeMateriaStore) Update(ctx context.Context, materia *models.Materia) error {
	if _, ok := s.materias[materia.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	for id, m := range s.materias {
		if id != materia.ID && m.Nombre == materia.Nombre && m.Anio == materia.Anio {
			return apperrors.ErrConflict
		}
	}
	s.materias[materia.ID] = *materia
	return nil
}

func (s *fakeMateriaStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.materias[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.materias, id)
	return nil
}

func (s *fakeMateriaStore) ExistsByNombreAnio(ctx context.Context, nombre string, anio int, excludeID int64) (bool, error) {
	for id, m := range s.materias {
		if m.Nombre == nombre && m.Anio == anio && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotaStore struct {
	nextID   int64
	notas    map[int64]models.Nota
	alumnos  *fakeAlumnoStore
	materias *fakeMateriaStore
}

func newFakeNotaStore(alumnos *fakeAlumnoStore, materias *fakeMateriaStore) *fakeNotaStore {
	return &fakeNotaStore{
		notas:    make(map[int64]models.Nota),
		alumnos:  alumnos,
		materias: materias,
	}
}

func (s *fakeNotaStore) Create(ctx context.Context, nota *models.Nota) error {
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

func (s *fakeNotaStore) GetByID(ctx context.Context, id int64) (*models.Nota, error) {
	n, ok := s.notas[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return &n, nil
}

func (s *fakeNotaStore) GetAll(ctx context.Context) ([]models.NotaDetalle, error) {
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
	sort.Slice(out, func(i, j int) bool {
		if out[i].AlumnoApellido != out[j].AlumnoApellido {
			return out[i].AlumnoApellido < out[j].AlumnoApellido
		}
		return out[i].MateriaNombre < out[j].MateriaNombre
	})
	return out, nil
}

func (s *fakeNotaStore) UpdateNotas(ctx context.Context, id int64, nota1, nota2, nota3 *float64) error {
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

func (s *fakeNotaStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.notas[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(s.notas, id)
	return nil
}

func (s *fakeNotaStore) ExistsByAlumnoMateria(ctx context.Context, alumnoID, materiaID int64) (bool, error) {
	for _, n := range s.notas {
		if n.AlumnoID == alumnoID && n.MateriaID == materiaID {
			return true, nil
		}
	}
	return false, nil
}

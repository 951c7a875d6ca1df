package models

// Nota holds up to three grade values (1-10) for one alumno in one materia.
// Absent grades stay null, never zero. The (alumno_id, materia_id) pair is
// unique and both references are immutable after creation; the rows are
// removed by the schema's ON DELETE CASCADE when either parent goes away.
type Nota struct {
	ID        int64    `json:"id"`
	AlumnoID  int64    `json:"alumno_id"`
	MateriaID int64    `json:"materia_id"`
	Nota1     *float64 `json:"nota1"`
	Nota2     *float64 `json:"nota2"`
	Nota3     *float64 `json:"nota3"`
}

// NotaDetalle is a Nota joined with the display names of its parents,
// used by the list endpoint.
type NotaDetalle struct {
	ID             int64    `json:"id"`
	AlumnoID       int64    `json:"alumno_id"`
	AlumnoNombre   string   `json:"alumno_nombre"`
	AlumnoApellido string   `json:"alumno_apellido"`
	MateriaID      int64    `json:"materia_id"`
	MateriaNombre  string   `json:"materia_nombre"`
	Nota1          *float64 `json:"nota1"`
	Nota2          *float64 `json:"nota2"`
	Nota3          *float64 `json:"nota3"`
}

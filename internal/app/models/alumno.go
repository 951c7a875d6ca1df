package models

// Alumno represents a student. DNI is unique across all students.
type Alumno struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	DNI      string `json:"dni"`
}

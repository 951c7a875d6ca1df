package models

// Materia represents a subject taught in a given year (1-9).
// The (nombre, año) pair is unique.
type Materia struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Anio   int    `json:"año"`
}

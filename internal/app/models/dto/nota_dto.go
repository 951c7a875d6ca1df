package dto

import "registro-api/internal/app/models"

// CrearNotaRequest creates a grade row. Grade values are optional and stay
// null when omitted.
type CrearNotaRequest struct {
	AlumnoID  int64    `json:"alumno_id" binding:"required,min=1"`
	MateriaID int64    `json:"materia_id" binding:"required,min=1"`
	Nota1     *float64 `json:"nota1" binding:"omitempty,gte=1,lte=10"`
	Nota2     *float64 `json:"nota2" binding:"omitempty,gte=1,lte=10"`
	Nota3     *float64 `json:"nota3" binding:"omitempty,gte=1,lte=10"`
}

// ActualizarNotaRequest updates a grade row. alumno_id and materia_id are
// immutable after creation, so only the grade values are accepted.
type ActualizarNotaRequest struct {
	Nota1 *float64 `json:"nota1" binding:"omitempty,gte=1,lte=10"`
	Nota2 *float64 `json:"nota2" binding:"omitempty,gte=1,lte=10"`
	Nota3 *float64 `json:"nota3" binding:"omitempty,gte=1,lte=10"`
}

// NotaListResponse wraps the joined grade listing
type NotaListResponse struct {
	Success bool                 `json:"success"`
	Notas   []models.NotaDetalle `json:"notas"`
}

// NotaResponse wraps a single grade row
type NotaResponse struct {
	Success bool        `json:"success"`
	Nota    models.Nota `json:"nota"`
}

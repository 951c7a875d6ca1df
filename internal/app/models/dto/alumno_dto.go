package dto

import "registro-api/internal/app/models"

// AlumnoRequest is the full field set for create and update;
// updates are full-record replacement.
type AlumnoRequest struct {
	Nombre   string `json:"nombre" binding:"required,max=100"`
	Apellido string `json:"apellido" binding:"required,max=100"`
	DNI      string `json:"dni" binding:"required,max=20"`
}

// AlumnoListResponse wraps the student listing
type AlumnoListResponse struct {
	Success bool            `json:"success"`
	Alumnos []models.Alumno `json:"alumnos"`
}

// AlumnoResponse wraps a single student
type AlumnoResponse struct {
	Success bool          `json:"success"`
	Alumno  models.Alumno `json:"alumno"`
}

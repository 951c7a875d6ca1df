package dto

import "registro-api/internal/app/models"

// MateriaRequest is the full field set for create and update
type MateriaRequest struct {
	Nombre string `json:"nombre" binding:"required,max=100"`
	Anio   int    `json:"año" binding:"required,min=1,max=9"`
}

// MateriaListResponse wraps the subject listing
type MateriaListResponse struct {
	Success  bool             `json:"success"`
	Materias []models.Materia `json:"materias"`
}

// MateriaResponse wraps a single subject
type MateriaResponse struct {
	Success bool           `json:"success"`
	Materia models.Materia `json:"materia"`
}

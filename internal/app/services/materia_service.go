package services

import (
	"context"
	"errors"
	"fmt"

	"registro-api/internal/app/models"
	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
)

// MateriaService handles subject business rules
type MateriaService struct {
	materiaStore MateriaStore
}

// NewMateriaService creates a new MateriaService
func NewMateriaService(materiaStore MateriaStore) *MateriaService {
	return &MateriaService{
		materiaStore: materiaStore,
	}
}

// Create registers a new subject with a fresh (nombre, año) pair
func (s *MateriaService) Create(ctx context.Context, req *dto.MateriaRequest) (*models.Materia, error) {
	exists, err := s.materiaStore.ExistsByNombreAnio(ctx, req.Nombre, req.Anio, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking materia: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("Esa materia ya esta registrada")
	}

	materia := &models.Materia{
		Nombre: req.Nombre,
		Anio:   req.Anio,
	}

	if err := s.materiaStore.Create(ctx, materia); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("Esa materia ya esta registrada")
		}
		return nil, fmt.Errorf("error creating materia: %w", err)
	}

	return materia, nil
}

// Get retrieves one subject by id
func (s *MateriaService) Get(ctx context.Context, id int64) (*models.Materia, error) {
	materia, err := s.materiaStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Materia no encontrada")
		}
		return nil, fmt.Errorf("error retrieving materia: %w", err)
	}
	return materia, nil
}

// List returns every subject ordered by (año, nombre)
func (s *MateriaService) List(ctx context.Context) ([]models.Materia, error) {
	materias, err := s.materiaStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing materias: %w", err)
	}
	if materias == nil {
		materias = []models.Materia{}
	}
	return materias, nil
}

// Update replaces the full field set, re-checking the (nombre, año) pair
// against every other subject
func (s *MateriaService) Update(ctx context.Context, id int64, req *dto.MateriaRequest) (*models.Materia, error) {
	exists, err := s.materiaStore.ExistsByNombreAnio(ctx, req.Nombre, req.Anio, id)
	if err != nil {
		return nil, fmt.Errorf("error checking materia: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("Esa materia ya esta registrada")
	}

	materia := &models.Materia{
		ID:     id,
		Nombre: req.Nombre,
		Anio:   req.Anio,
	}

	if err := s.materiaStore.Update(ctx, materia); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrResourceNotFound):
			return nil, apperrors.NewResourceNotFoundError("Materia no encontrada")
		case errors.Is(err, apperrors.ErrConflict):
			return nil, apperrors.NewConflictError("Esa materia ya esta registrada")
		}
		return nil, fmt.Errorf("error updating materia: %w", err)
	}

	return materia, nil
}

// Delete removes a subject; associated nota rows cascade away in the schema
func (s *MateriaService) Delete(ctx context.Context, id int64) error {
	if err := s.materiaStore.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewResourceNotFoundError("Materia no encontrada")
		}
		return fmt.Errorf("error deleting materia: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"registro-api/internal/app/models"
	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
)

// AlumnoService handles student business rules
type AlumnoService struct {
	alumnoStore AlumnoStore
}

// NewAlumnoService creates a new AlumnoService
func NewAlumnoService(alumnoStore AlumnoStore) *AlumnoService {
	return &AlumnoService{
		alumnoStore: alumnoStore,
	}
}

// Create registers a new student with a fresh DNI
func (s *AlumnoService) Create(ctx context.Context, req *dto.AlumnoRequest) (*models.Alumno, error) {
	exists, err := s.alumnoStore.ExistsByDNI(ctx, req.DNI, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking dni: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("El DNI ya esta registrado")
	}

	alumno := &models.Alumno{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		DNI:      req.DNI,
	}

	if err := s.alumnoStore.Create(ctx, alumno); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("El DNI ya esta registrado")
		}
		return nil, fmt.Errorf("error creating alumno: %w", err)
	}

	return alumno, nil
}

// Get retrieves one student by id
func (s *AlumnoService) Get(ctx context.Context, id int64) (*models.Alumno, error) {
	alumno, err := s.alumnoStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Alumno no encontrado")
		}
		return nil, fmt.Errorf("error retrieving alumno: %w", err)
	}
	return alumno, nil
}

// List returns every student ordered by (apellido, nombre)
func (s *AlumnoService) List(ctx context.Context) ([]models.Alumno, error) {
	alumnos, err := s.alumnoStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing alumnos: %w", err)
	}
	if alumnos == nil {
		// empty listings serialize as [] on the wire
		alumnos = []models.Alumno{}
	}
	return alumnos, nil
}

// Update replaces the full field set, re-checking DNI uniqueness against
// every other student
func (s *AlumnoService) Update(ctx context.Context, id int64, req *dto.AlumnoRequest) (*models.Alumno, error) {
	exists, err := s.alumnoStore.ExistsByDNI(ctx, req.DNI, id)
	if err != nil {
		return nil, fmt.Errorf("error checking dni: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("El DNI ya esta en uso por otro alumno")
	}

	alumno := &models.Alumno{
		ID:       id,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		DNI:      req.DNI,
	}

	if err := s.alumnoStore.Update(ctx, alumno); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrResourceNotFound):
			return nil, apperrors.NewResourceNotFoundError("Alumno no encontrado")
		case errors.Is(err, apperrors.ErrConflict):
			return nil, apperrors.NewConflictError("El DNI ya esta en uso por otro alumno")
		}
		return nil, fmt.Errorf("error updating alumno: %w", err)
	}

	return alumno, nil
}

// Delete removes a student; associated nota rows cascade away in the schema
func (s *AlumnoService) Delete(ctx context.Context, id int64) error {
	if err := s.alumnoStore.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewResourceNotFoundError("Alumno no encontrado")
		}
		return fmt.Errorf("error deleting alumno: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"registro-api/internal/app/models"
	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
)

// NotaService handles grade business rules
type NotaService struct {
	notaStore    NotaStore
	alumnoStore  AlumnoStore
	materiaStore MateriaStore
}

// NewNotaService creates a new NotaService
func NewNotaService(notaStore NotaStore, alumnoStore AlumnoStore, materiaStore MateriaStore) *NotaService {
	return &NotaService{
		notaStore:    notaStore,
		alumnoStore:  alumnoStore,
		materiaStore: materiaStore,
	}
}

// Create registers a grade row for an (alumno, materia) pair. Both parents
// must exist and the pair must not already have a row.
func (s *NotaService) Create(ctx context.Context, req *dto.CrearNotaRequest) (*models.Nota, error) {
	if _, err := s.alumnoStore.GetByID(ctx, req.AlumnoID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Alumno no encontrado")
		}
		return nil, fmt.Errorf("error checking alumno: %w", err)
	}

	if _, err := s.materiaStore.GetByID(ctx, req.MateriaID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Materia no encontrada")
		}
		return nil, fmt.Errorf("error checking materia: %w", err)
	}

	exists, err := s.notaStore.ExistsByAlumnoMateria(ctx, req.AlumnoID, req.MateriaID)
	if err != nil {
		return nil, fmt.Errorf("error checking nota: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("Este alumno ya tiene notas cargadas para esta materia")
	}

	nota := &models.Nota{
		AlumnoID:  req.AlumnoID,
		MateriaID: req.MateriaID,
		Nota1:     req.Nota1,
		Nota2:     req.Nota2,
		Nota3:     req.Nota3,
	}

	if err := s.notaStore.Create(ctx, nota); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return nil, apperrors.NewConflictError("Este alumno ya tiene notas cargadas para esta materia")
		case errors.Is(err, apperrors.ErrResourceNotFound):
			// A parent vanished between the checks above and the insert
			return nil, apperrors.NewResourceNotFoundError("Alumno o materia no encontrados")
		}
		return nil, fmt.Errorf("error creating nota: %w", err)
	}

	return nota, nil
}

// Get retrieves one grade row by id
func (s *NotaService) Get(ctx context.Context, id int64) (*models.Nota, error) {
	nota, err := s.notaStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Registro de nota no encontrado")
		}
		return nil, fmt.Errorf("error retrieving nota: %w", err)
	}
	return nota, nil
}

// List returns every grade row with parent display names
func (s *NotaService) List(ctx context.Context) ([]models.NotaDetalle, error) {
	notas, err := s.notaStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing notas: %w", err)
	}
	if notas == nil {
		notas = []models.NotaDetalle{}
	}
	return notas, nil
}

// Update replaces only the three grade values; the parent references stay as
// they were at creation
func (s *NotaService) Update(ctx context.Context, id int64, req *dto.ActualizarNotaRequest) (*models.Nota, error) {
	if err := s.notaStore.UpdateNotas(ctx, id, req.Nota1, req.Nota2, req.Nota3); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Registro de nota no encontrado")
		}
		return nil, fmt.Errorf("error updating nota: %w", err)
	}

	nota, err := s.notaStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error re-reading nota: %w", err)
	}
	return nota, nil
}

// Delete removes a grade row by id
func (s *NotaService) Delete(ctx context.Context, id int64) error {
	if err := s.notaStore.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewResourceNotFoundError("Registro de nota no encontrado")
		}
		return fmt.Errorf("error deleting nota: %w", err)
	}
	return nil
}

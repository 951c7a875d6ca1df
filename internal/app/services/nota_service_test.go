package services

import (
	"context"
	"errors"
	"testing"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
)

func ptr(v float64) *float64 { return &v }

func notaServiceFixture(t *testing.T) (*NotaService, int64, int64) {
	t.Helper()

	alumnos := newFakeAlumnoStore()
	materias := newFakeMateriaStore()
	notas := newFakeNotaStore(alumnos, materias)

	alumnoSvc := NewAlumnoService(alumnos)
	materiaSvc := NewMateriaService(materias)

	alumno, err := alumnoSvc.Create(context.Background(), &dto.AlumnoRequest{
		Nombre: "Juan", Apellido: "Pérez", DNI: "12345678",
	})
	if err != nil {
		t.Fatalf("create alumno: %v", err)
	}
	materia, err := materiaSvc.Create(context.Background(), &dto.MateriaRequest{
		Nombre: "Matemática", Anio: 1,
	})
	if err != nil {
		t.Fatalf("create materia: %v", err)
	}

	return NewNotaService(notas, alumnos, materias), alumno.ID, materia.ID
}

func TestNotaServiceCreate(t *testing.T) {
	svc, alumnoID, materiaID := notaServiceFixture(t)

	nota, err := svc.Create(context.Background(), &dto.CrearNotaRequest{
		AlumnoID:  alumnoID,
		MateriaID: materiaID,
		Nota1:     ptr(8.5),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if nota.Nota1 == nil || *nota.Nota1 != 8.5 {
		t.Errorf("Nota1 = %v, want 8.5", nota.Nota1)
	}
	// Grades not sent stay null, never zero
	if nota.Nota2 != nil || nota.Nota3 != nil {
		t.Errorf("Nota2/Nota3 = %v/%v, want nil/nil", nota.Nota2, nota.Nota3)
	}
}

func TestNotaServiceCreateMissingParents(t *testing.T) {
	svc, alumnoID, materiaID := notaServiceFixture(t)

	tests := []struct {
		name    string
		req     dto.CrearNotaRequest
		message string
	}{
		{"missing alumno", dto.CrearNotaRequest{AlumnoID: 999, MateriaID: materiaID}, "Alumno no encontrado"},
		{"missing materia", dto.CrearNotaRequest{AlumnoID: alumnoID, MateriaID: 999}, "Materia no encontrada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, apperrors.ErrResourceNotFound) {
				t.Fatalf("err = %v, want ErrResourceNotFound", err)
			}
			if msg := apperrors.Message(err, ""); msg != tt.message {
				t.Errorf("message = %q, want %q", msg, tt.message)
			}
		})
	}
}

func TestNotaServiceCreateDuplicatePair(t *testing.T) {
	svc, alumnoID, materiaID := notaServiceFixture(t)

	if _, err := svc.Create(context.Background(), &dto.CrearNotaRequest{
		AlumnoID: alumnoID, MateriaID: materiaID,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(context.Background(), &dto.CrearNotaRequest{
		AlumnoID: alumnoID, MateriaID: materiaID, Nota1: ptr(7),
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestNotaServiceUpdate(t *testing.T) {
	svc, alumnoID, materiaID := notaServiceFixture(t)

	created, err := svc.Create(context.Background(), &dto.CrearNotaRequest{
		AlumnoID: alumnoID, MateriaID: materiaID, Nota1: ptr(8.5), Nota2: ptr(6),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The update body carries grades only; omitted grades reset to null
	updated, err := svc.Update(context.Background(), created.ID, &dto.ActualizarNotaRequest{
		Nota1: ptr(9), Nota3: ptr(7.25),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Nota1 == nil || *updated.Nota1 != 9 {
		t.Errorf("Nota1 = %v, want 9", updated.Nota1)
	}
	if updated.Nota2 != nil {
		t.Errorf("Nota2 = %v, want nil", updated.Nota2)
	}
	if updated.Nota3 == nil || *updated.Nota3 != 7.25 {
		t.Errorf("Nota3 = %v, want 7.25", updated.Nota3)
	}

	// Parent references never change after creation
	if updated.AlumnoID != alumnoID || updated.MateriaID != materiaID {
		t.Errorf("parents = (%d, %d), want (%d, %d)",
			updated.AlumnoID, updated.MateriaID, alumnoID, materiaID)
	}
}

func TestNotaServiceUpdateMissing(t *testing.T) {
	svc, _, _ := notaServiceFixture(t)

	_, err := svc.Update(context.Background(), 999, &dto.ActualizarNotaRequest{Nota1: ptr(5)})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("err = %v, want ErrResourceNotFound", err)
	}
}

func TestNotaServiceListIncludesParentNames(t *testing.T) {
	svc, alumnoID, materiaID := notaServiceFixture(t)

	if _, err := svc.Create(context.Background(), &dto.CrearNotaRequest{
		AlumnoID: alumnoID, MateriaID: materiaID, Nota1: ptr(8.5),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	notas, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notas) != 1 {
		t.Fatalf("len(notas) = %d, want 1", len(notas))
	}
	n := notas[0]
	if n.AlumnoNombre != "Juan" || n.AlumnoApellido != "Pérez" || n.MateriaNombre != "Matemática" {
		t.Errorf("detalle = %+v", n)
	}
}
